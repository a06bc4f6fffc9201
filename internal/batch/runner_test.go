package batch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/wildhand/internal/deck"
	"github.com/lox/wildhand/internal/evaluator"
	"github.com/lox/wildhand/internal/randutil"
)

func testRunner(t *testing.T, workers int) *Runner {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
	return NewRunner(logger, workers, quartz.NewMock(t))
}

func TestReadHands(t *testing.T) {
	input := `# sample hands
6C 7C 8C 9C TC 5C JS

  TD TC 5H 5C 7C ?R ?B
# trailing comment
`
	lines, err := ReadHands(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Line{
		{Number: 2, Text: "6C 7C 8C 9C TC 5C JS"},
		{Number: 4, Text: "TD TC 5H 5C 7C ?R ?B"},
	}, lines)
}

func TestRunPreservesOrder(t *testing.T) {
	lines := []Line{
		{Number: 1, Text: "6C 7C 8C 9C TC 5C JS"},
		{Number: 2, Text: "TD TC TH 7C 7D 8C 8S"},
		{Number: 3, Text: "JD TC TH 7C 7D 7S 7H"},
		{Number: 4, Text: "6C 7C 8C 9C TC 5C ?B"},
		{Number: 5, Text: "TD TC 5H 5C 7C ?R ?B"},
	}
	expected := []evaluator.Category{
		evaluator.CategoryStraightFlush,
		evaluator.CategoryFullHouse,
		evaluator.CategoryFourOfAKind,
		evaluator.CategoryStraightFlush,
		evaluator.CategoryFourOfAKind,
	}

	outcomes, summary, err := testRunner(t, 3).Run(context.Background(), lines)
	require.NoError(t, err)
	require.Len(t, outcomes, len(lines))

	for i, o := range outcomes {
		require.NoError(t, o.Err)
		assert.Equal(t, lines[i], o.Line)
		assert.Equal(t, expected[i], o.Result.Rank.Category, "line %d", o.Line.Number)
	}

	assert.Equal(t, 5, summary.Hands)
	assert.Zero(t, summary.Failed)
	assert.Equal(t, 2, summary.ByCategory[evaluator.CategoryStraightFlush])
	assert.Equal(t, 2, summary.ByCategory[evaluator.CategoryFourOfAKind])
	assert.Equal(t, 1, summary.ByCategory[evaluator.CategoryFullHouse])
	assert.Zero(t, summary.Elapsed, "mock clock does not advance")
}

func TestRunReportsLineErrors(t *testing.T) {
	lines := []Line{
		{Number: 1, Text: "6C 7C 8C 9C TC 5C JS"},
		{Number: 7, Text: "6C 7C 8C"},
		{Number: 9, Text: "6C 6C 8C 9C TC 5C JS"},
	}

	outcomes, summary, err := testRunner(t, 2).Run(context.Background(), lines)
	require.NoError(t, err)

	assert.NoError(t, outcomes[0].Err)
	assert.ErrorIs(t, outcomes[1].Err, deck.ErrHandSize)
	assert.ErrorContains(t, outcomes[1].Err, "line 7")
	assert.ErrorIs(t, outcomes[2].Err, deck.ErrDuplicateCard)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 3, summary.Hands)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := testRunner(t, 2).Run(ctx, []Line{{Number: 1, Text: "6C 7C 8C 9C TC 5C JS"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunManyHands(t *testing.T) {
	rng := randutil.New(11)
	var lines []Line
	for i := range 40 {
		hand := randutil.Hand(rng, i%3)
		lines = append(lines, Line{Number: i + 1, Text: hand.String()})
	}

	outcomes, summary, err := testRunner(t, 8).Run(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, len(lines), summary.Hands)
	for _, o := range outcomes {
		require.NoError(t, o.Err, fmt.Sprintf("line %d", o.Line.Number))
		want, err := evaluator.BestWildHand(deck.MustParseHand(o.Line.Text))
		require.NoError(t, err)
		assert.Equal(t, want, o.Result)
	}
}

func TestNewRunnerClampsWorkers(t *testing.T) {
	r := NewRunner(log.New(io.Discard), 0, quartz.NewReal())
	assert.Equal(t, 1, r.workers)
}
