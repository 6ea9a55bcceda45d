package pure

import "go.uber.org/zap"

// Option configures a memoized function.
type Option func(*config)

type config struct {
	name     string
	logger   *zap.Logger
	observer Observer
}

func defaultConfig() config {
	return config{
		name:     "anonymous",
		logger:   zap.NewNop(),
		observer: nopObserver{},
	}
}

// WithName labels the memoized function in logs and metrics.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger used for debug events. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}

// WithObserver reports cache events to o.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o == nil {
			o = nopObserver{}
		}
		c.observer = o
	}
}
