package evaluator

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/lox/wildhand/internal/deck"
)

// Category is the class of a five-card hand, weakest first.
type Category uint8

const (
	CategoryHighCard Category = iota
	CategoryOnePair
	CategoryTwoPair
	CategoryThreeOfAKind
	CategoryStraight
	CategoryFlush
	CategoryFullHouse
	CategoryFourOfAKind
	CategoryStraightFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case CategoryHighCard:
		return "High Card"
	case CategoryOnePair:
		return "One Pair"
	case CategoryTwoPair:
		return "Two Pair"
	case CategoryThreeOfAKind:
		return "Three of a Kind"
	case CategoryStraight:
		return "Straight"
	case CategoryFlush:
		return "Flush"
	case CategoryFullHouse:
		return "Full House"
	case CategoryFourOfAKind:
		return "Four of a Kind"
	case CategoryStraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank is the score of a five-card hand. Which fields are meaningful
// depends on the category:
//
//	StraightFlush, Straight   Primary = high card
//	FourOfAKind               Primary = quad rank, Secondary = kicker
//	FullHouse                 Primary = trip rank, Secondary = pair rank
//	Flush, HighCard           Kickers
//	ThreeOfAKind, OnePair     Primary = set rank, Kickers
//	TwoPair                   Primary = high pair, Secondary = low pair, Kickers
//
// Kickers always holds every rank of the hand high to low.
type HandRank struct {
	Category  Category
	Primary   deck.Rank
	Secondary deck.Rank
	Kickers   [5]deck.Rank
}

// Rank5 scores a hand of exactly five concrete cards.
func Rank5(cards []deck.Card) HandRank {
	ranks := RanksOf(cards)
	var kickers [5]deck.Rank
	copy(kickers[:], ranks)

	flush := IsFlush(cards)
	straight := IsStraight(ranks)
	quads, hasQuads := Kind(4, ranks)
	trips, hasTrips := Kind(3, ranks)
	pair, hasPair := Kind(2, ranks)
	single, _ := Kind(1, ranks)

	switch {
	case straight && flush:
		return HandRank{Category: CategoryStraightFlush, Primary: ranks[0]}
	case hasQuads:
		return HandRank{Category: CategoryFourOfAKind, Primary: quads, Secondary: single}
	case hasTrips && hasPair:
		return HandRank{Category: CategoryFullHouse, Primary: trips, Secondary: pair}
	case flush:
		return HandRank{Category: CategoryFlush, Kickers: kickers}
	case straight:
		return HandRank{Category: CategoryStraight, Primary: ranks[0]}
	case hasTrips:
		return HandRank{Category: CategoryThreeOfAKind, Primary: trips, Kickers: kickers}
	}

	if high, low, ok := TwoPair(ranks); ok {
		return HandRank{Category: CategoryTwoPair, Primary: high, Secondary: low, Kickers: kickers}
	}
	if hasPair {
		return HandRank{Category: CategoryOnePair, Primary: pair, Kickers: kickers}
	}
	return HandRank{Category: CategoryHighCard, Kickers: kickers}
}

// Compare returns 1 if h is stronger, -1 if other is stronger, 0 if equal
func (h HandRank) Compare(other HandRank) int {
	if c := cmp.Compare(h.Category, other.Category); c != 0 {
		return c
	}

	primary := cmp.Compare(h.Primary, other.Primary)
	secondary := cmp.Compare(h.Secondary, other.Secondary)
	kickers := slices.Compare(h.Kickers[:], other.Kickers[:])

	switch h.Category {
	case CategoryStraightFlush, CategoryStraight:
		return primary
	case CategoryFourOfAKind, CategoryFullHouse:
		return cmp.Or(primary, secondary)
	case CategoryFlush, CategoryHighCard:
		return kickers
	case CategoryThreeOfAKind, CategoryOnePair:
		return cmp.Or(primary, kickers)
	case CategoryTwoPair:
		return cmp.Or(primary, secondary, kickers)
	default:
		return 0
	}
}

// String returns the readable name of the hand
func (h HandRank) String() string {
	if h.Category == CategoryStraightFlush && h.Primary == deck.Ace {
		return "Royal Flush"
	}
	return h.Category.String()
}

// Describe returns the category together with the ranks that decide it,
// e.g. "Full House, T over 8".
func (h HandRank) Describe() string {
	switch h.Category {
	case CategoryStraightFlush, CategoryStraight:
		if h.String() == "Royal Flush" {
			return h.String()
		}
		return fmt.Sprintf("%s, %s high", h, h.Primary)
	case CategoryFourOfAKind:
		return fmt.Sprintf("%s, %s with %s kicker", h, h.Primary, h.Secondary)
	case CategoryFullHouse:
		return fmt.Sprintf("%s, %s over %s", h, h.Primary, h.Secondary)
	case CategoryThreeOfAKind, CategoryOnePair:
		return fmt.Sprintf("%s, %s", h, h.Primary)
	case CategoryTwoPair:
		return fmt.Sprintf("%s, %s and %s", h, h.Primary, h.Secondary)
	default:
		return fmt.Sprintf("%s, %s high", h, h.Kickers[0])
	}
}
