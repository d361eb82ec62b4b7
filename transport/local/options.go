package local

import (
	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultQueueLimit is the largest queue depth accepted by default.
const DefaultQueueLimit = 255

type config struct {
	clock      clock.Clock
	logger     *zap.Logger
	registerer prometheus.Registerer
	queueLimit uint32
	observers  []Observer
}

// Option configures a Bus.
type Option func(*config)

// WithClock sets the clock used for sample timestamps and update intervals.
func WithClock(c clock.Clock) Option {
	return func(cfg *config) {
		cfg.clock = c
	}
}

// WithLogger sets the bus logger.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithRegisterer registers the bus metrics with r. Without it metrics are
// still counted but not exported.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(cfg *config) {
		cfg.registerer = r
	}
}

// WithQueueLimit caps the queue depth an advertisement may request.
// Larger requests are refused.
func WithQueueLimit(n uint32) Option {
	return func(cfg *config) {
		cfg.queueLimit = n
	}
}

// WithObserver adds an observer of advertisement and subscription events.
func WithObserver(o Observer) Option {
	return func(cfg *config) {
		cfg.observers = append(cfg.observers, o)
	}
}

func defaultConfig() config {
	return config{
		clock:      clock.New(),
		logger:     zap.NewNop(),
		queueLimit: DefaultQueueLimit,
	}
}
