package stamp

import (
	"time"

	"github.com/ardnew/cppstamp/log"
)

// Option configures a run.
type Option func(config) config

type config struct {
	logger    log.Logger
	namespace string
	resolver  Resolver
	dryRun    bool
}

func makeConfig(opts ...Option) config {
	cfg := config{logger: log.Default()}

	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}

// WithNamespace restricts the lookup to declarations inside the named
// namespace.
func WithNamespace(name string) Option {
	return func(c config) config {
		c.namespace = name

		return c
	}
}

// WithResolver sets the placeholder resolver.
func WithResolver(r Resolver) Option {
	return func(c config) config {
		c.resolver = r

		return c
	}
}

// WithClock sets the clock used for {date} and {time}.
func WithClock(now func() time.Time) Option {
	return func(c config) config {
		c.resolver.Now = now

		return c
	}
}

// WithLocation sets the time zone used for {date} and {time}.
func WithLocation(loc *time.Location) Option {
	return func(c config) config {
		c.resolver.Location = loc

		return c
	}
}

// WithDryRun computes the result of a run without writing the file.
func WithDryRun(dryRun bool) Option {
	return func(c config) config {
		c.dryRun = dryRun

		return c
	}
}

// WithLogger sets the logger that receives per-request outcomes.
func WithLogger(l log.Logger) Option {
	return func(c config) config {
		c.logger = l

		return c
	}
}
