// Package game implements the gameplay core: beat-synchronized satellites,
// the threshold catch zone, miss accounting and the round state machine.
// It performs no I/O; rendering, audio and input are collaborators.
package game

import (
	"time"

	"github.com/tomz197/planetbeat/internal/config"
)

// Config holds the per-round tuning. Values are fixed for the lifetime of a round.
type Config struct {
	AllowedMisses     int
	ThresholdDistance float64 // Top edge of the threshold
	GateHeight        float64
	SatelliteSpeed    float64 // World units per second
	SatelliteSize     float64
	BoxOffsetY        float64 // Vertical hit box correction for satellites
	PulseDuration     time.Duration
	MissFadeDuration  time.Duration
	WorldWidth        float64
	WorldHeight       float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		AllowedMisses:     config.AllowedMisses,
		ThresholdDistance: config.ThresholdDistance,
		GateHeight:        config.ThresholdHeight,
		SatelliteSpeed:    config.SatelliteSpeed,
		SatelliteSize:     config.SatelliteSize,
		BoxOffsetY:        config.SatelliteBoxOffset,
		PulseDuration:     config.PulseDuration,
		MissFadeDuration:  config.MissFadeDuration,
		WorldWidth:        config.WorldWidth,
		WorldHeight:       config.WorldHeight,
	}
}

// ConfigFromEnv returns DefaultConfig with PLANETBEAT_* overrides applied.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.AllowedMisses = config.GetEnvInt("PLANETBEAT_ALLOWED_MISSES", cfg.AllowedMisses)
	cfg.ThresholdDistance = config.GetEnvFloat("PLANETBEAT_THRESHOLD", cfg.ThresholdDistance)
	cfg.SatelliteSpeed = config.GetEnvFloat("PLANETBEAT_SPEED", cfg.SatelliteSpeed)
	cfg.BoxOffsetY = config.GetEnvFloat("PLANETBEAT_BOX_OFFSET", cfg.BoxOffsetY)
	cfg.PulseDuration = config.GetEnvDuration("PLANETBEAT_PULSE", cfg.PulseDuration)
	if cfg.AllowedMisses < 1 {
		cfg.AllowedMisses = 1
	}
	return cfg
}
