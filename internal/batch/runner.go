// Package batch evaluates many hands concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/wildhand/internal/deck"
	"github.com/lox/wildhand/internal/evaluator"
)

// Line is one hand read from input, with its 1-based line number.
type Line struct {
	Number int
	Text   string
}

// Outcome is the evaluation of a single line. Err is set when the line could
// not be parsed or evaluated.
type Outcome struct {
	Line   Line
	Result evaluator.Result
	Err    error
}

// Summary aggregates a batch run
type Summary struct {
	Hands      int
	Failed     int
	ByCategory map[evaluator.Category]int
	Elapsed    time.Duration
}

// ReadHands reads one hand per line. Blank lines and lines starting with '#'
// are skipped.
func ReadHands(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, Line{Number: n, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hands: %w", err)
	}
	return lines, nil
}

// Runner evaluates lines on a bounded pool of workers
type Runner struct {
	workers int
	logger  *log.Logger
	clock   quartz.Clock
}

// NewRunner creates a runner. workers below one is treated as one.
func NewRunner(logger *log.Logger, workers int, clock quartz.Clock) *Runner {
	return &Runner{
		workers: max(workers, 1),
		logger:  logger.WithPrefix("batch"),
		clock:   clock,
	}
}

// Run evaluates every line and returns outcomes in input order. Per-line
// failures are reported in Outcome.Err; the returned error is only set when
// ctx is cancelled before the run completes.
func (r *Runner) Run(ctx context.Context, lines []Line) ([]Outcome, Summary, error) {
	start := r.clock.Now()
	outcomes := make([]Outcome, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.evaluate(line)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Summary{}, err
	}

	summary := Summary{
		Hands:      len(outcomes),
		ByCategory: make(map[evaluator.Category]int),
		Elapsed:    r.clock.Since(start),
	}
	for _, o := range outcomes {
		if o.Err != nil {
			summary.Failed++
			continue
		}
		summary.ByCategory[o.Result.Rank.Category]++
	}

	r.logger.Info("Batch complete",
		"hands", summary.Hands,
		"failed", summary.Failed,
		"workers", r.workers,
		"elapsed", summary.Elapsed)

	return outcomes, summary, nil
}

func (r *Runner) evaluate(line Line) Outcome {
	hand, err := deck.ParseHandString(line.Text)
	if err != nil {
		r.logger.Warn("Skipping invalid hand", "line", line.Number, "error", err)
		return Outcome{Line: line, Err: fmt.Errorf("line %d: %w", line.Number, err)}
	}

	result, err := evaluator.BestWildHand(hand)
	if err != nil {
		r.logger.Warn("Evaluation failed", "line", line.Number, "error", err)
		return Outcome{Line: line, Err: fmt.Errorf("line %d: %w", line.Number, err)}
	}

	r.logger.Debug("Evaluated hand",
		"line", line.Number,
		"hand", hand,
		"best", result,
		"substitutions", len(result.Substitutions))

	return Outcome{Line: line, Result: result}
}
