package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"monowedge.dev/monowedge/logging"
)

func main() {
	app := &cli.App{
		Name:  "monowedge",
		Usage: "Track rolling extrema of sampled signals",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx *cli.Context) error {
			slog.SetDefault(slog.New(logging.NewTextHandler(os.Stderr)))
			if ctx.Bool("verbose") {
				logging.SetLevel(slog.LevelDebug)
			}
			return nil
		},
		Commands: []*cli.Command{
			demoCommand,
			benchCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
