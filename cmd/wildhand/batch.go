package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/wildhand/cmd/wildhand/shared"
	"github.com/lox/wildhand/internal/batch"
)

// BatchCmd evaluates a file of hands concurrently
type BatchCmd struct {
	File    string `arg:"" optional:"" default:"-" help:"File with one hand per line ('-' reads stdin)"`
	Workers int    `short:"w" help:"Override the configured worker count"`

	stdin io.Reader
	clock quartz.Clock
}

func (cmd *BatchCmd) Run(app *App) error {
	in, closeFn, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeFn()

	lines, err := batch.ReadHands(in)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("no hands found in %s", cmd.File)
	}

	workers := app.cfg.Workers
	if cmd.Workers > 0 {
		workers = cmd.Workers
	}

	clock := cmd.clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	ctx, cancel := shared.SetupSignalHandler(app.logger)
	defer cancel()

	runner := batch.NewRunner(app.logger, workers, clock)
	outcomes, summary, err := runner.Run(ctx, lines)
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	w := tabwriter.NewWriter(app.out, 0, 0, 2, ' ', 0)
	app.render.outcomes(w, outcomes)
	fmt.Fprintln(w)
	app.render.summary(w, summary)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(app.out, "\n%d hands in %v\n", summary.Hands, summary.Elapsed.Truncate(time.Millisecond))

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d hands failed", summary.Failed, summary.Hands)
	}
	return nil
}

func (cmd *BatchCmd) open() (io.Reader, func(), error) {
	if cmd.File == "" || cmd.File == "-" {
		if cmd.stdin != nil {
			return cmd.stdin, func() {}, nil
		}
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(cmd.File)
	if err != nil {
		return nil, nil, fmt.Errorf("opening hands file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
