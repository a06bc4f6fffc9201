package randutil

import (
	rand "math/rand/v2"

	"github.com/lox/wildhand/internal/deck"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64,
// so property tests and benchmarks replay the same hands on every run.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Deal returns n distinct cards drawn from a shuffled 52-card deck.
func Deal(rng *rand.Rand, n int) []deck.Card {
	cards := deck.Universe()
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	return cards[:min(n, len(cards))]
}

// Hand deals a seven-token hand holding the given number of jokers,
// each of a random color, after the natural cards.
func Hand(rng *rand.Rand, jokers int) deck.Hand {
	jokers = max(0, min(jokers, deck.MaxJokers))
	cards := Deal(rng, deck.HandSize-jokers)

	hand := make(deck.Hand, 0, deck.HandSize)
	for _, c := range cards {
		hand = append(hand, c)
	}
	for range jokers {
		hand = append(hand, deck.Joker{Color: deck.Color(rng.IntN(2))})
	}
	return hand
}
