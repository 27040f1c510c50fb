package main

import (
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/segmentio/ksuid"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"monowedge.dev/monowedge/rolling"
	"monowedge.dev/monowedge/signals"
)

var benchCommand = &cli.Command{
	Name:  "bench",
	Usage: "Time rolling min/max tracking across every signal shape",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "samples",
			Value: 1_000_000,
			Usage: "number of samples per signal",
		},
		&cli.IntFlag{
			Name:  "window",
			Value: 512,
			Usage: "trailing window size in samples, 0 for unbounded",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Value: 1,
			Usage: "seed for signal synthesis",
		},
		&cli.BoolFlag{
			Name:  "metrics",
			Usage: "dump Prometheus metrics after the run",
		},
	},
	Action: runBench,
}

type benchResult struct {
	signal  string
	elapsed time.Duration
}

func runBench(ctx *cli.Context) error {
	sampleCount := ctx.Int("samples")
	window := ctx.Int("window")
	seed := ctx.Uint64("seed")

	slog.Info("starting benchmark run",
		"runID", ksuid.New().String(),
		"samples", sampleCount,
		"window", window)

	names := slices.Sorted(maps.Keys(signals.All))
	results := make([]benchResult, len(names))

	g := new(errgroup.Group)
	for i, name := range names {
		g.Go(func() error {
			samples := signals.All[name](sampleCount, seed)
			tracker := rolling.NewMinMax[int, float64](window)

			start := time.Now()
			for key, value := range samples {
				if _, _, err := tracker.Observe(key, value); err != nil {
					return err
				}
			}
			results[i] = benchResult{signal: name, elapsed: time.Since(start)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	for _, r := range results {
		rate := float64(sampleCount) / r.elapsed.Seconds()
		p.Printf("%-12s %d samples in %v (%.0f samples/sec)\n",
			r.signal, sampleCount, r.elapsed.Round(time.Millisecond), rate)
	}

	if ctx.Bool("metrics") {
		metrics.WritePrometheus(os.Stdout, false)
	}
	return nil
}
