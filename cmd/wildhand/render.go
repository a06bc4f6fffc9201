package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/wildhand/internal/batch"
	"github.com/lox/wildhand/internal/deck"
	"github.com/lox/wildhand/internal/evaluator"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	jokerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// renderer formats results for the terminal
type renderer struct {
	plain   bool
	symbols bool
}

func (r renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

func (r renderer) card(c deck.Card) string {
	text := c.String()
	if r.symbols {
		text = c.Symbol()
	}
	if c.Color() == deck.Red {
		return r.style(redCardStyle, text)
	}
	return r.style(blackCardStyle, text)
}

func (r renderer) cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.card(c)
	}
	return strings.Join(parts, " ")
}

func (r renderer) substitutions(subs []evaluator.Substitution) string {
	parts := make([]string, len(subs))
	for i, s := range subs {
		parts[i] = r.style(jokerStyle, s.Joker.String()) + "=" + r.card(s.Card)
	}
	return strings.Join(parts, " ")
}

// result renders a single evaluation on one line
func (r renderer) result(res evaluator.Result) string {
	line := fmt.Sprintf("%s  %s", r.cards(res.Cards[:]), r.style(categoryStyle, res.Rank.Describe()))
	if len(res.Substitutions) > 0 {
		line += "  (" + r.substitutions(res.Substitutions) + ")"
	}
	return line
}

func (r renderer) outcomes(w *tabwriter.Writer, outcomes []batch.Outcome) {
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		r.style(headerStyle, "line"),
		r.style(headerStyle, "hand"),
		r.style(headerStyle, "best"))

	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "%d\t%s\t%s\n", o.Line.Number, o.Line.Text, r.style(errorStyle, o.Err.Error()))
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", o.Line.Number, o.Line.Text, r.result(o.Result))
	}
}

var categoryOrder = []evaluator.Category{
	evaluator.CategoryStraightFlush,
	evaluator.CategoryFourOfAKind,
	evaluator.CategoryFullHouse,
	evaluator.CategoryFlush,
	evaluator.CategoryStraight,
	evaluator.CategoryThreeOfAKind,
	evaluator.CategoryTwoPair,
	evaluator.CategoryOnePair,
	evaluator.CategoryHighCard,
}

func (r renderer) summary(w *tabwriter.Writer, s batch.Summary) {
	for _, c := range categoryOrder {
		if n := s.ByCategory[c]; n > 0 {
			fmt.Fprintf(w, "%s\t%d\n", r.style(categoryStyle, c.String()), n)
		}
	}
	if s.Failed > 0 {
		fmt.Fprintf(w, "%s\t%d\n", r.style(errorStyle, "Failed"), s.Failed)
	}
}
