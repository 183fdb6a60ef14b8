// Package metrics exposes gameplay and session counters to Prometheus.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tomz197/planetbeat/internal/game"
)

// Collector bundles the game's Prometheus metrics. It implements
// game.Observer so every session can report into it.
type Collector struct {
	gatherer prometheus.Gatherer

	Rounds       prometheus.Counter
	Taps         *prometheus.CounterVec
	FlyBys       prometheus.Counter
	Explosions   prometheus.Counter
	HitsPerRound prometheus.Histogram
	Sessions     prometheus.Gauge

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// NewCollector registers the metrics against reg, defaulting to the global
// Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		Rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planetbeat_rounds_started_total",
			Help: "Total number of rounds started.",
		}),
		Taps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planetbeat_taps_total",
			Help: "Total number of taps, labeled by result (hit or miss).",
		}, []string{"result"}),
		FlyBys: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planetbeat_flybys_total",
			Help: "Total number of satellites that passed the threshold uncaught.",
		}),
		Explosions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planetbeat_explosions_total",
			Help: "Total number of planets lost.",
		}),
		HitsPerRound: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "planetbeat_round_hits",
			Help:    "Satellites caught in a round, observed when the planet explodes.",
			Buckets: []float64{0, 1, 5, 10, 20, 40, 80, 160},
		}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "planetbeat_active_sessions",
			Help: "Current number of connected game sessions.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planetbeat_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"path", "method", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "planetbeat_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
	}

	collectors := []prometheus.Collector{
		c.Rounds, c.Taps, c.FlyBys, c.Explosions, c.HitsPerRound, c.Sessions,
		c.HTTPRequests, c.HTTPDuration,
	}
	for _, col := range collectors {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return c, nil
}

// Handler returns the Prometheus metrics HTTP handler for the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// RoundStarted implements game.Observer.
func (c *Collector) RoundStarted(int) {
	c.Rounds.Inc()
}

// Tapped implements game.Observer.
func (c *Collector) Tapped(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.Taps.WithLabelValues(result).Inc()
}

// FlewBy implements game.Observer.
func (c *Collector) FlewBy() {
	c.FlyBys.Inc()
}

// Exploded implements game.Observer.
func (c *Collector) Exploded(stats game.Stats) {
	c.Explosions.Inc()
	c.HitsPerRound.Observe(float64(stats.Hits))
}

// SessionStarted counts a connected session.
func (c *Collector) SessionStarted() {
	c.Sessions.Inc()
}

// SessionEnded counts a disconnected session.
func (c *Collector) SessionEnded() {
	c.Sessions.Dec()
}

// Ensure Collector implements game.Observer.
var _ game.Observer = (*Collector)(nil)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)

		c.HTTPRequests.WithLabelValues(r.URL.Path, r.Method, code).Inc()
		c.HTTPDuration.WithLabelValues(r.URL.Path, r.Method).Observe(duration)
	})
}
