package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"
	"monowedge.dev/monowedge/rolling"
	"monowedge.dev/monowedge/signals"
)

var demoCommand = &cli.Command{
	Name:  "demo",
	Usage: "Stream a synthesized signal and its rolling extremum as CSV",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "signal",
			Value: "white",
			Usage: "signal shape to synthesize (white, ramp-up, ramp-down, random-walk, red, square, sine, noisy-sine)",
		},
		&cli.IntFlag{
			Name:  "samples",
			Value: 1000,
			Usage: "number of samples to stream",
		},
		&cli.IntFlag{
			Name:  "window",
			Value: 20,
			Usage: "trailing window size in samples, 0 for unbounded",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Value: 1,
			Usage: "seed for signal synthesis",
		},
		&cli.BoolFlag{
			Name:  "min",
			Usage: "track the rolling minimum instead of the maximum",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "write CSV rows to this file instead of stdout",
		},
	},
	Action: runDemo,
}

func runDemo(ctx *cli.Context) error {
	gen, ok := signals.All[ctx.String("signal")]
	if !ok {
		return fmt.Errorf("unknown signal %q", ctx.String("signal"))
	}
	samples := gen(ctx.Int("samples"), ctx.Uint64("seed"))

	out := os.Stdout
	if path := ctx.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		out = f
	}
	w := csv.NewWriter(out)
	w.Comma = ';'

	var tracker *rolling.Extrema[int, float64]
	window := ctx.Int("window")
	if ctx.Bool("min") {
		tracker = rolling.NewMin[int, float64](window)
	} else {
		tracker = rolling.NewMax[int, float64](window)
	}

	maxDepth := 0
	for i, v := range samples {
		extremum, err := tracker.Observe(i, v)
		if err != nil {
			return fmt.Errorf("observe sample %d: %w", i, err)
		}
		maxDepth = max(maxDepth, tracker.Size())
		slog.Debug("observed sample",
			"key", i, "value", v, "extremum", extremum, "candidates", tracker.Size())

		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(v, 'g', -1, 64),
			strconv.FormatFloat(extremum, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		if out != os.Stdout {
			out.Close()
		}
		return err
	}
	if out != os.Stdout {
		if err := out.Close(); err != nil {
			return err
		}
	}

	slog.Info("demo complete",
		"signal", ctx.String("signal"),
		"samples", len(samples),
		"window", window,
		"maxCandidates", maxDepth)
	return nil
}
