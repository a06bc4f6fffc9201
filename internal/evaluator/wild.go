package evaluator

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/lox/wildhand/internal/deck"
)

var ErrNoSubstitution = errors.New("no substitution available for joker")

// BestWildHand returns the strongest five-card hand obtainable from a hand
// that may contain jokers. Each joker may become any card of its color that
// is not already in the hand, and two jokers never become the same card.
// Hands without jokers are passed straight to BestHand.
func BestWildHand(hand deck.Hand) (Result, error) {
	if len(hand) < HandLen {
		return Result{}, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewCards, len(hand), HandLen)
	}

	var used deck.CardSet
	jokers := 0
	for i, token := range hand {
		switch t := token.(type) {
		case deck.Card:
			if used.Contains(t) {
				return Result{}, fmt.Errorf("%w: %s", deck.ErrDuplicateCard, t)
			}
			used.Add(t)
		case deck.Joker:
			jokers++
		default:
			return Result{}, fmt.Errorf("%w: unexpected token %T at %d", deck.ErrInvalidCard, token, i)
		}
	}
	if jokers > deck.MaxJokers {
		return Result{}, fmt.Errorf("%w: got %d", deck.ErrTooManyJokers, jokers)
	}
	if jokers == 0 {
		return BestHand(hand.Cards())
	}

	var best Result
	found := false
	for cards, subs := range Expansions(hand) {
		r := bestOf(cards)
		if !found || r.Rank.Compare(best.Rank) > 0 {
			r.Substitutions = subs
			best = r
			found = true
		}
	}
	if !found {
		return Result{}, ErrNoSubstitution
	}
	return best, nil
}

// Expansions yields every concrete hand obtained by replacing the jokers in
// hand, along with the substitutions made. Joker candidates are drawn from
// the joker's color in deck order, excluding cards already in the hand and
// cards taken by an earlier joker of the same expansion. A joker with no
// candidates produces no expansions. Each yielded slice is freshly allocated.
func Expansions(hand deck.Hand) iter.Seq2[[]deck.Card, []Substitution] {
	return func(yield func([]deck.Card, []Substitution) bool) {
		base := make([]deck.Card, len(hand))
		var slots []Substitution
		var used deck.CardSet
		for i, token := range hand {
			switch t := token.(type) {
			case deck.Card:
				base[i] = t
				used.Add(t)
			case deck.Joker:
				slots = append(slots, Substitution{Position: i, Joker: t})
			}
		}

		pools := make([][]deck.Card, len(slots))
		for i, s := range slots {
			pools[i] = used.Excluding(deck.OfColor(s.Joker.Color))
		}

		var assign func(k int, taken deck.CardSet) bool
		assign = func(k int, taken deck.CardSet) bool {
			if k == len(slots) {
				cards := slices.Clone(base)
				subs := slices.Clone(slots)
				for _, s := range subs {
					cards[s.Position] = s.Card
				}
				return yield(cards, subs)
			}

			for _, c := range pools[k] {
				if taken.Contains(c) {
					continue
				}
				slots[k].Card = c
				next := taken
				next.Add(c)
				if !assign(k+1, next) {
					return false
				}
			}
			return true
		}
		assign(0, used)
	}
}
