package main

import (
	"fmt"
	"strings"

	"github.com/lox/wildhand/internal/deck"
	"github.com/lox/wildhand/internal/evaluator"
)

// EvalCmd evaluates one hand given on the command line
type EvalCmd struct {
	Cards []string `arg:"" help:"Seven cards such as '6C 7C 8C 9C TC 5C ?B' (jokers ?R and ?B)"`
}

func (cmd *EvalCmd) Run(app *App) error {
	hand, err := deck.ParseHandString(strings.Join(cmd.Cards, " "))
	if err != nil {
		return fmt.Errorf("parsing hand: %w", err)
	}

	result, err := evaluator.BestWildHand(hand)
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", hand, err)
	}

	app.logger.Debug("Evaluated hand",
		"hand", hand,
		"rank", result.Rank,
		"substitutions", len(result.Substitutions))

	_, err = fmt.Fprintln(app.out, app.render.result(result))
	return err
}
