package deck

import (
	"errors"
	"fmt"
	"strings"
)

// HandSize is the number of tokens in an input hand.
const HandSize = 7

// MaxJokers is the number of jokers a hand may carry.
const MaxJokers = 2

var (
	ErrInvalidCard   = errors.New("invalid card code")
	ErrHandSize      = errors.New("wrong hand size")
	ErrDuplicateCard = errors.New("duplicate card")
	ErrTooManyJokers = errors.New("too many jokers")
)

// Hand is a sequence of cards and jokers.
type Hand []Token

// Cards returns the concrete cards of the hand in order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, len(h))
	for _, t := range h {
		if c, ok := t.(Card); ok {
			cards = append(cards, c)
		}
	}
	return cards
}

// String returns the hand as space separated codes
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, t := range h {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// ParseCard parses a two-character card code such as "TC" or "as".
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("%w %q: must be 2 characters", ErrInvalidCard, code)
	}

	rank, err := parseRank(code[0])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %v", ErrInvalidCard, code, err)
	}

	suit, err := parseSuit(code[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %v", ErrInvalidCard, code, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseToken parses a card code or a joker code ("?R", "?B").
func ParseToken(code string) (Token, error) {
	if len(code) == 2 && code[0] == '?' {
		switch code[1] {
		case 'R', 'r':
			return Joker{Color: Red}, nil
		case 'B', 'b':
			return Joker{Color: Black}, nil
		default:
			return nil, fmt.Errorf("%w %q: unknown joker color '%c'", ErrInvalidCard, code, code[1])
		}
	}
	return ParseCard(code)
}

// ParseHand parses exactly seven tokens. Concrete cards must be distinct and
// at most two jokers are allowed.
func ParseHand(codes []string) (Hand, error) {
	if len(codes) != HandSize {
		return nil, fmt.Errorf("%w: got %d tokens, want %d", ErrHandSize, len(codes), HandSize)
	}

	hand := make(Hand, 0, HandSize)
	seen := make(map[Card]bool, HandSize)
	jokers := 0
	for i, code := range codes {
		token, err := ParseToken(code)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}

		switch t := token.(type) {
		case Card:
			if seen[t] {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, t)
			}
			seen[t] = true
		case Joker:
			jokers++
			if jokers > MaxJokers {
				return nil, fmt.Errorf("%w: at most %d allowed", ErrTooManyJokers, MaxJokers)
			}
		}
		hand = append(hand, token)
	}

	return hand, nil
}

// ParseHandString splits s on whitespace and parses the fields as a hand.
func ParseHandString(s string) (Hand, error) {
	return ParseHand(strings.Fields(s))
}

// MustParseHand parses a space separated hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	hand, err := ParseHandString(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return hand
}

// MustParseCards parses space separated card codes and panics on error (for tests)
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, len(fields))
	for i, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
		}
		cards[i] = c
	}
	return cards
}

// FormatCards returns the codes of cards joined by spaces
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	case '9':
		return Nine, nil
	case '8':
		return Eight, nil
	case '7':
		return Seven, nil
	case '6':
		return Six, nil
	case '5':
		return Five, nil
	case '4':
		return Four, nil
	case '3':
		return Three, nil
	case '2':
		return Two, nil
	default:
		return 0, fmt.Errorf("unknown rank '%c'", c)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'C', 'c':
		return Clubs, nil
	case 'S', 's':
		return Spades, nil
	case 'H', 'h':
		return Hearts, nil
	case 'D', 'd':
		return Diamonds, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
