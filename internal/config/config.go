package config

import "time"

// World resolution - the playfield in logical units.
// Actual rendering scales to fit terminal size.
const (
	WorldWidth  = 160
	WorldHeight = 240
)

// Round rules
const (
	AllowedMisses = 3
)

// Threshold and satellites
const (
	ThresholdDistance  = 100.0 // Top edge of the threshold bar
	ThresholdHeight    = 10.0
	SatelliteSpeed     = 200.0 // World units per second, upwards
	SatelliteSize      = 12.0
	SatelliteBoxOffset = -7.0 // Hit box shift so sprite padding is not credited
)

// Planet
const (
	PlanetY      = 50.0
	PlanetRadius = 18.0
	OrbitRadius  = 30.0
	OrbitSpeed   = 1.5 // Radians per second
)

// Feedback timings
const (
	PulseDuration    = 100 * time.Millisecond
	MissFadeDuration = 500 * time.Millisecond
)

// Explosion
const (
	ExplosionParticles = 60
	ExplosionSpeed     = 60.0
	ExplosionLifetime  = 1.2 // Seconds
)

// Background
const (
	StarCount = 48
	StarSeed  = 7
)

// Sessions
const (
	ShutdownDisplaySeconds      = 10.0 // Seconds to show shutdown message before auto-disconnect
	InactivityWarnSeconds       = 90
	InactivityDisconnectSeconds = 120
)

// Client rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)
