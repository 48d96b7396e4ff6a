package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/utkarsh5026/fanout/delay"
	"github.com/utkarsh5026/fanout/gen"
	"github.com/utkarsh5026/fanout/nested"
)

func runWait(ctx context.Context, args []string) error {
	fs := newFlagSet("wait")
	verbose := fs.Bool("v", false, "Verbose: log debug records to stderr")
	n := fs.Int("n", 5, "Number of delay tasks to run concurrently")
	maxDelay := fs.Float64("max", 10, "Upper bound of each sampled delay, in units")
	unit := fs.Duration("unit", time.Second, "Length of one delay unit")
	collector := fs.String("collector", "pool", "Collector to use: 'pool' or 'futures'")
	seed := fs.Uint64("seed", 0, "Seed for reproducible delays (0 = random)")
	rps := fs.Float64("rate", 0, "Max task starts per second (0 = unlimited)")
	burst := fs.Int("burst", 1, "Burst size for -rate")
	_ = fs.Parse(args)

	collect := delay.WaitN
	switch *collector {
	case "pool":
	case "futures":
		collect = delay.TaskWaitN
	default:
		return fmt.Errorf("unknown collector %q", *collector)
	}

	runID := uuid.New()
	printWaitConfig(runID, *n, *maxDelay, *unit, *collector)

	bar := makeProgressBar(*n, "Waiting")
	opts := []delay.Option{
		delay.WithUnit(*unit),
		delay.WithLogger(newLogger(*verbose).With("cli_run", runID)),
		delay.WithRateLimit(*rps, *burst),
		delay.WithOnComplete(func(float64) { _ = bar.Add(1) }),
	}
	if *seed != 0 {
		opts = append(opts, delay.WithSeed(*seed))
	}

	start := time.Now()
	delays, err := collect(ctx, *n, *maxDelay, opts...)
	_ = bar.Finish()
	if err != nil {
		_, _ = yellow.Printf("Stopped after %d of %d tasks\n", len(delays), *n)
	}

	printDelays(delays, *unit)
	_, _ = green.Printf("✓ %d tasks in %v\n", len(delays), time.Since(start).Round(time.Millisecond))
	return err
}

func runGenerate(ctx context.Context, args []string) error {
	fs := newFlagSet("generate")
	opts := generatorFlags(fs)
	_ = fs.Parse(args)

	values, err := gen.Collect(ctx, opts()...)
	printValues(values)
	return err
}

func runMeasure(ctx context.Context, args []string) error {
	fs := newFlagSet("measure")
	parallel := fs.Int("parallel", gen.DefaultParallel, "Number of collections to run at once")
	opts := generatorFlags(fs)
	_ = fs.Parse(args)

	_, _ = bold.Printf("⏱  Measuring %d parallel collections\n", *parallel)
	elapsed, err := gen.MeasureRuntime(ctx, *parallel, opts()...)
	if err != nil {
		return err
	}
	_, _ = green.Printf("✓ Elapsed: %v\n", elapsed.Round(time.Millisecond))
	return nil
}

func runGet(_ context.Context, args []string) error {
	fs := newFlagSet("get")
	doc := fs.String("json", "{}", "JSON object to read from")
	_ = fs.Parse(args)

	var m nested.Map
	if err := json.Unmarshal([]byte(*doc), &m); err != nil {
		return fmt.Errorf("decode -json: %w", err)
	}

	v, err := nested.AccessNestedMap(m, fs.Args()...)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode value: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// generatorFlags registers the generator flags on fs and returns a function
// that builds the options once fs has been parsed.
func generatorFlags(fs *flag.FlagSet) func() []gen.Option {
	count := fs.Int("count", gen.DefaultCount, "Values to generate")
	interval := fs.Duration("interval", gen.DefaultInterval, "Pause before each value")
	scale := fs.Float64("scale", gen.DefaultScale, "Values are drawn from [0, scale)")
	seed := fs.Uint64("seed", 0, "Seed for reproducible values (0 = random)")

	return func() []gen.Option {
		opts := []gen.Option{
			gen.WithCount(*count),
			gen.WithInterval(*interval),
			gen.WithScale(*scale),
		}
		if *seed != 0 {
			opts = append(opts, gen.WithSeed(*seed))
		}
		return opts
	}
}
