package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniverse(t *testing.T) {
	cards := Universe()
	assert.Len(t, cards, 52)

	seen := make(map[Card]bool)
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

func TestOfColor(t *testing.T) {
	for _, color := range []Color{Red, Black} {
		cards := OfColor(color)
		assert.Len(t, cards, 26)
		for _, c := range cards {
			assert.Equal(t, color, c.Color(), "%s", c)
		}
	}
}

func TestCardSet(t *testing.T) {
	var s CardSet
	as := NewCard(Ace, Spades)
	two := NewCard(Two, Clubs)

	s.Add(as)
	assert.True(t, s.Contains(as))
	assert.False(t, s.Contains(two))

	s.Add(two)
	s.Remove(as)
	assert.False(t, s.Contains(as))
	assert.True(t, s.Contains(two))
}

func TestCardSetExcluding(t *testing.T) {
	used := NewCardSet(MustParseCards("TC 7C 2S"))
	free := used.Excluding(OfColor(Black))
	assert.Len(t, free, 23)
	for _, c := range free {
		assert.False(t, used.Contains(c))
	}
}
