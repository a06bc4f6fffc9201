package evaluator

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/lox/wildhand/internal/deck"
)

// HandLen is the number of cards in a scored hand.
const HandLen = 5

var ErrTooFewCards = errors.New("too few cards")

// Substitution records the card a joker was resolved to.
type Substitution struct {
	Position int // index of the joker in the input hand
	Joker    deck.Joker
	Card     deck.Card
}

func (s Substitution) String() string {
	return fmt.Sprintf("%s→%s", s.Joker, s.Card)
}

// Result is the best five-card hand found for an input hand.
type Result struct {
	Cards         [HandLen]deck.Card
	Rank          HandRank
	Substitutions []Substitution // empty unless the input held jokers
}

// Codes returns the card codes of the hand in selection order.
func (r Result) Codes() []string {
	codes := make([]string, HandLen)
	for i, c := range r.Cards {
		codes[i] = c.String()
	}
	return codes
}

// String returns a string representation of the result
func (r Result) String() string {
	return fmt.Sprintf("%s [%s]", r.Rank, strings.Join(r.Codes(), " "))
}

// BestHand returns the strongest five-card subset of cards. It accepts five
// or more distinct concrete cards; a seven-card hand has 21 subsets. When
// several subsets share the best rank the first one enumerated is returned.
func BestHand(cards []deck.Card) (Result, error) {
	if len(cards) < HandLen {
		return Result{}, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewCards, len(cards), HandLen)
	}

	var seen deck.CardSet
	for _, c := range cards {
		if seen.Contains(c) {
			return Result{}, fmt.Errorf("%w: %s", deck.ErrDuplicateCard, c)
		}
		seen.Add(c)
	}

	return bestOf(cards), nil
}

func bestOf(cards []deck.Card) Result {
	var best Result
	first := true
	for combo := range combinations(cards) {
		rank := Rank5(combo[:])
		if first || rank.Compare(best.Rank) > 0 {
			best = Result{Cards: combo, Rank: rank}
			first = false
		}
	}
	return best
}

// combinations yields every five-card subset of cards in lexicographic index
// order. len(cards) must be at least five.
func combinations(cards []deck.Card) iter.Seq[[HandLen]deck.Card] {
	return func(yield func([HandLen]deck.Card) bool) {
		n := len(cards)
		var idx [HandLen]int
		for i := range idx {
			idx[i] = i
		}

		for {
			var combo [HandLen]deck.Card
			for i, j := range idx {
				combo[i] = cards[j]
			}
			if !yield(combo) {
				return
			}

			i := HandLen - 1
			for i >= 0 && idx[i] == n-HandLen+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < HandLen; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
