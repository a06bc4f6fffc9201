package deck

// Universe returns all 52 cards, suit by suit in code order.
func Universe() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// OfColor returns the 26 cards whose suit has the given color.
func OfColor(color Color) []Card {
	cards := make([]Card, 0, 26)
	for _, suit := range color.Suits() {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// CardSet is a set of cards backed by a bitmask.
type CardSet uint64

// NewCardSet creates a set containing cards.
func NewCardSet(cards []Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s.Add(c)
	}
	return s
}

func bit(c Card) CardSet {
	return 1 << (uint(c.Suit)*13 + uint(c.Rank-Two))
}

// Add inserts a card into the set
func (s *CardSet) Add(c Card) {
	*s |= bit(c)
}

// Remove deletes a card from the set
func (s *CardSet) Remove(c Card) {
	*s &^= bit(c)
}

// Contains reports whether the card is in the set
func (s CardSet) Contains(c Card) bool {
	return s&bit(c) != 0
}

// Excluding returns the cards not present in the set, preserving order.
func (s CardSet) Excluding(cards []Card) []Card {
	free := make([]Card, 0, len(cards))
	for _, c := range cards {
		if !s.Contains(c) {
			free = append(free, c)
		}
	}
	return free
}
