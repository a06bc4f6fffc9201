package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

// Suits lists every suit in code order.
var Suits = [...]Suit{Clubs, Spades, Hearts, Diamonds}

// String returns the single-letter code of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	default:
		return "?"
	}
}

// Symbol returns the unicode glyph for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// Color returns the color the suit belongs to.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Color partitions the suits into two groups. Jokers are bound to a color.
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Suits returns the two suits of the color.
func (c Color) Suits() [2]Suit {
	if c == Red {
		return [2]Suit{Hearts, Diamonds}
	}
	return [2]Suit{Clubs, Spades}
}

// Rank represents a card rank
type Rank int

const (
	// LowAce is the value an ace takes in an A-2-3-4-5 straight. It never
	// appears on a Card.
	LowAce Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// String returns the string representation of a rank
func (r Rank) String() string {
	switch {
	case r == LowAce:
		return "A"
	case r >= Two && r <= Ace:
		return string(rankChars[r-Two])
	default:
		return "?"
	}
}

// Token is one entry of a hand: either a concrete Card or a Joker.
type Token interface {
	fmt.Stringer
	token()
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

func (Card) token() {}

// String returns the two-character code of a card (e.g., "TC")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Symbol returns the card with a suit glyph (e.g., "T♣")
func (c Card) Symbol() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Color returns the color of the card's suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Joker stands in for any card of its color that is not already in the hand.
type Joker struct {
	Color Color
}

func (Joker) token() {}

// String returns the joker code ("?R" or "?B")
func (j Joker) String() string {
	if j.Color == Red {
		return "?R"
	}
	return "?B"
}
