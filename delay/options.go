package delay

import (
	"log/slog"
	"time"

	"github.com/utkarsh5026/fanout/internal/random"
	"golang.org/x/time/rate"
)

// Option configures delay tasks and collectors.
type Option func(*config)

type config struct {
	unit       time.Duration
	src        *random.Source
	logger     *slog.Logger
	limiter    *rate.Limiter
	rateLimit  float64
	rateBurst  int
	onComplete func(float64)
}

func newConfig(opts []Option) *config {
	cfg := &config{
		unit:   time.Second,
		src:    random.New(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithUnit sets the length of one delay unit. Defaults to one second.
func WithUnit(unit time.Duration) Option {
	return func(cfg *config) {
		if unit > 0 {
			cfg.unit = unit
		}
	}
}

// WithSeed makes the sampled delays reproducible.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.src = random.Seeded(seed)
	}
}

// WithLogger sets the logger used for per-task and per-run records.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithRateLimit throttles how fast tasks may start sleeping. WaitN hands the
// limit to its worker pool; the other entry points share one limiter.
// Non-positive values are ignored.
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *config) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.limiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
			cfg.rateLimit = tasksPerSecond
			cfg.rateBurst = burst
		}
	}
}

// WithOnComplete registers fn to be called with each delay as its task
// finishes. Collectors call it from worker goroutines; fn must be safe for
// concurrent use.
func WithOnComplete(fn func(delay float64)) Option {
	return func(cfg *config) {
		cfg.onComplete = fn
	}
}
