package evaluator

import (
	"cmp"
	"slices"

	"github.com/lox/wildhand/internal/deck"
)

var wheel = []deck.Rank{deck.Ace, deck.Five, deck.Four, deck.Three, deck.Two}

// RanksOf returns the ranks of a five-card hand sorted high to low. An
// A-5-4-3-2 hand yields 5-4-3-2-1 so that it scores as a five-high straight.
func RanksOf(cards []deck.Card) []deck.Rank {
	ranks := make([]deck.Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	slices.SortFunc(ranks, func(a, b deck.Rank) int { return cmp.Compare(b, a) })

	if slices.Equal(ranks, wheel) {
		return []deck.Rank{deck.Five, deck.Four, deck.Three, deck.Two, deck.LowAce}
	}
	return ranks
}

// IsFlush reports whether every card shares one suit
func IsFlush(cards []deck.Card) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// IsStraight reports whether descending ranks form five consecutive values.
func IsStraight(ranks []deck.Rank) bool {
	if len(ranks) != 5 || ranks[0]-ranks[4] != 4 {
		return false
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return false
		}
	}
	return true
}

// Kind returns the first rank in ranks that occurs exactly n times. Because
// ranks is sorted high to low the highest such rank wins.
func Kind(n int, ranks []deck.Rank) (deck.Rank, bool) {
	for _, r := range ranks {
		if count(ranks, r) == n {
			return r, true
		}
	}
	return 0, false
}

// TwoPair returns the high and low pair ranks. ok is false unless two
// different pairs are present.
func TwoPair(ranks []deck.Rank) (high, low deck.Rank, ok bool) {
	high, foundHigh := Kind(2, ranks)
	low, foundLow := Kind(2, reversed(ranks))
	if !foundHigh || !foundLow || high == low {
		return 0, 0, false
	}
	return high, low, true
}

func count(ranks []deck.Rank, r deck.Rank) int {
	n := 0
	for _, x := range ranks {
		if x == r {
			n++
		}
	}
	return n
}

func reversed(ranks []deck.Rank) []deck.Rank {
	out := slices.Clone(ranks)
	slices.Reverse(out)
	return out
}
