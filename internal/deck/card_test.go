package deck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "AS", expected: Card{Rank: Ace, Suit: Spades}},
		{name: "ten of clubs", input: "TC", expected: Card{Rank: Ten, Suit: Clubs}},
		{name: "two of hearts", input: "2H", expected: Card{Rank: Two, Suit: Hearts}},
		{name: "case insensitive", input: "kd", expected: Card{Rank: King, Suit: Diamonds}},
		{name: "invalid rank", input: "XS", wantErr: true},
		{name: "invalid suit", input: "AX", wantErr: true},
		{name: "too long", input: "10C", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, strings.ToUpper(tt.input), got.String())
		})
	}
}

func TestParseToken(t *testing.T) {
	red, err := ParseToken("?R")
	require.NoError(t, err)
	assert.Equal(t, Joker{Color: Red}, red)

	black, err := ParseToken("?b")
	require.NoError(t, err)
	assert.Equal(t, Joker{Color: Black}, black)

	_, err = ParseToken("?G")
	assert.ErrorIs(t, err, ErrInvalidCard)

	card, err := ParseToken("9D")
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: Nine, Suit: Diamonds}, card)
}

func TestParseHand(t *testing.T) {
	t.Run("valid with jokers", func(t *testing.T) {
		hand, err := ParseHandString("TD TC 5H 5C 7C ?R ?B")
		require.NoError(t, err)
		require.Len(t, hand, HandSize)
		assert.Equal(t, Joker{Color: Red}, hand[5])
		assert.Len(t, hand.Cards(), 5)
		assert.Equal(t, "TD TC 5H 5C 7C ?R ?B", hand.String())
	})

	t.Run("two jokers of one color", func(t *testing.T) {
		_, err := ParseHandString("TD TC 5H 5C 7C ?B ?B")
		assert.NoError(t, err)
	})

	t.Run("wrong size", func(t *testing.T) {
		_, err := ParseHandString("TD TC 5H 5C 7C ?R")
		assert.ErrorIs(t, err, ErrHandSize)
	})

	t.Run("duplicate card", func(t *testing.T) {
		_, err := ParseHandString("TD TD 5H 5C 7C 2C 3C")
		assert.ErrorIs(t, err, ErrDuplicateCard)
	})

	t.Run("too many jokers", func(t *testing.T) {
		_, err := ParseHandString("TD TC 5H 5C ?R ?R ?B")
		assert.ErrorIs(t, err, ErrTooManyJokers)
	})

	t.Run("bad token", func(t *testing.T) {
		_, err := ParseHandString("TD TC 5H 5C 7C 1C 3C")
		require.ErrorIs(t, err, ErrInvalidCard)
		assert.Contains(t, err.Error(), "token 6")
	})
}

func TestMustParseHandPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseHand("AS KS") })
	assert.NotPanics(t, func() { MustParseHand("AS KS QS JS TS 9S 8S") })
}

func TestSuitColor(t *testing.T) {
	assert.Equal(t, Black, Clubs.Color())
	assert.Equal(t, Black, Spades.Color())
	assert.Equal(t, Red, Hearts.Color())
	assert.Equal(t, Red, Diamonds.Color())
	assert.Equal(t, [2]Suit{Hearts, Diamonds}, Red.Suits())
}

func TestRankString(t *testing.T) {
	assert.Equal(t, "T", Ten.String())
	assert.Equal(t, "A", Ace.String())
	assert.Equal(t, "A", LowAce.String())
	assert.Equal(t, "?", Rank(0).String())
}

func TestCardSymbol(t *testing.T) {
	assert.Equal(t, "A♠", NewCard(Ace, Spades).Symbol())
	assert.Equal(t, "7♦", NewCard(Seven, Diamonds).Symbol())
}

func TestFormatCards(t *testing.T) {
	assert.Equal(t, "7C 8C JC", FormatCards(MustParseCards("7C 8C JC")))
}
