// Package metrics exposes Prometheus counters for the SSH server and the
// games it hosts.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Collector bundles the snake metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	ActiveSessions prometheus.Gauge
	Sessions       prometheus.Counter
	GamesStarted   *prometheus.CounterVec
	ApplesEaten    prometheus.Counter
	GameOvers      prometheus.Counter
	FinalScores    prometheus.Histogram
}

// New registers the metrics against reg, defaulting to the global registry
// when nil.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "snake_ssh_sessions_active",
			Help: "Current number of connected SSH sessions.",
		}),
		Sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snake_ssh_sessions_total",
			Help: "Total number of SSH sessions accepted.",
		}),
		GamesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snake_games_started_total",
			Help: "Total number of games started, labeled by difficulty.",
		}, []string{"difficulty"}),
		ApplesEaten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snake_apples_eaten_total",
			Help: "Total number of apples eaten across all games.",
		}),
		GameOvers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snake_game_overs_total",
			Help: "Total number of games that ended in a fatal collision.",
		}),
		FinalScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "snake_final_score",
			Help:    "Score at game over.",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 200},
		}),
	}

	for _, col := range []prometheus.Collector{
		c.ActiveSessions, c.Sessions, c.GamesStarted, c.ApplesEaten, c.GameOvers, c.FinalScores,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return c, nil
}

// SessionStarted records a new SSH session.
func (c *Collector) SessionStarted() {
	if c == nil {
		return
	}
	c.Sessions.Inc()
	c.ActiveSessions.Inc()
}

// SessionEnded records a closed SSH session.
func (c *Collector) SessionEnded() {
	if c == nil {
		return
	}
	c.ActiveSessions.Dec()
}

func (c *Collector) GameStarted(d config.Difficulty) {
	if c == nil {
		return
	}
	c.GamesStarted.WithLabelValues(d.String()).Inc()
}

func (c *Collector) AppleEaten() {
	if c == nil {
		return
	}
	c.ApplesEaten.Inc()
}

func (c *Collector) GameOver(score int) {
	if c == nil {
		return
	}
	c.GameOvers.Inc()
	c.FinalScores.Observe(float64(score))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Serve runs a /metrics endpoint on addr until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving metrics", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
