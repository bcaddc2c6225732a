package deck

import (
	"math/rand"
	"time"
)

// Deck represents a deck of cards
type Deck []*Card

// New creates a standard 52 card deck
func New() Deck {
	cards, err := Build(StandardDefinition())
	if err != nil {
		panic(err)
	}
	return cards
}

// FromDefinition creates a deck from a declarative definition
func FromDefinition(def Definition) (Deck, error) {
	cards, err := Build(def)
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// NewRand returns a random source. A zero seed means seed from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle shuffles the deck of cards
func (d Deck) Shuffle(rng *rand.Rand) {
	Shuffle(d, rng)
}

// Shuffle permutes cards in place (Fisher-Yates). Every permutation is
// equally likely given a uniform rng.
func Shuffle(cards []*Card, rng *rand.Rand) {
	if rng == nil {
		rng = NewRand(0)
	}
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
