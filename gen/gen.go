// Package gen produces a paced stream of random numbers and collects it.
//
// Generate is the producer: Count values, one per Interval. Collect gathers
// a whole sequence into a slice, and MeasureRuntime times several Collect
// calls running side by side.
package gen

import (
	"context"
	"iter"
	"time"

	"github.com/utkarsh5026/fanout/internal/random"
)

// Defaults used when no option overrides them.
const (
	DefaultCount    = 10
	DefaultInterval = time.Second
	DefaultScale    = 1.0
	DefaultParallel = 4
)

// Option configures a generator.
type Option func(*config)

type config struct {
	count    int
	interval time.Duration
	scale    float64
	src      *random.Source
}

func newConfig(opts []Option) *config {
	cfg := &config{
		count:    DefaultCount,
		interval: DefaultInterval,
		scale:    DefaultScale,
		src:      random.New(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithCount sets how many values are produced. Negative counts are ignored.
func WithCount(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.count = n
		}
	}
}

// WithInterval sets the pause before each value.
func WithInterval(d time.Duration) Option {
	return func(cfg *config) {
		if d >= 0 {
			cfg.interval = d
		}
	}
}

// WithScale sets the exclusive upper bound of the produced values.
func WithScale(scale float64) Option {
	return func(cfg *config) {
		if scale > 0 {
			cfg.scale = scale
		}
	}
}

// WithSeed makes the produced values reproducible.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.src = random.Seeded(seed)
	}
}

// Generate returns a lazy sequence of Count values drawn uniformly from
// [0, Scale). Each value is produced only when the consumer asks for the
// next one, after a full Interval pause. The sequence ends early once ctx
// is done.
func Generate(ctx context.Context, opts ...Option) iter.Seq[float64] {
	cfg := newConfig(opts)

	return func(yield func(float64) bool) {
		for range cfg.count {
			if err := sleep(ctx, cfg.interval); err != nil {
				return
			}
			if !yield(cfg.src.Uniform(cfg.scale)) {
				return
			}
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Collect drains a Generate sequence into a slice. If ctx ends first the
// values received so far are returned with ctx.Err().
func Collect(ctx context.Context, opts ...Option) ([]float64, error) {
	want := newConfig(opts).count
	values := make([]float64, 0, want)
	for v := range Generate(ctx, opts...) {
		values = append(values, v)
	}

	if len(values) < want {
		return values, ctx.Err()
	}
	return values, nil
}
