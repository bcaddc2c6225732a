package deck

import (
	"fmt"
	"strings"
)

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

const (
	Ace Rank = iota + 1
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
)

// Valid reports whether r is one of Ace through King.
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r-1]
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// ParseSuit accepts a suit name ("Hearts") or its initial ("H"), in any case.
func ParseSuit(name string) (Suit, error) {
	name = strings.TrimSpace(name)
	for i, n := range suitNames {
		if strings.EqualFold(name, n) || strings.EqualFold(name, n[:1]) {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown suit %q", name)
}

// State is where a card currently lives on the table.
type State int

const (
	InDrawPile State = iota
	InHand
	InDiscard
	IsTarget
	InTransit
)

var stateNames = []string{"InDrawPile", "InHand", "InDiscard", "IsTarget", "InTransit"}

func (s State) String() string {
	if s < InDrawPile || s > InTransit {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Card is a single physical card. Cards are handled by pointer: two cards
// may share a rank and suit and still be different cards.
type Card struct {
	rank Rank
	suit Suit

	State     State
	FaceUp    bool
	SortOrder int
}

// NewCard constructs a card. It panics if rank or suit is out of range.
func NewCard(rank Rank, suit Suit) *Card {
	if !rank.Valid() || !suit.Valid() {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return &Card{rank: rank, suit: suit}
}

// Rank returns a card's rank
func (c *Card) Rank() Rank {
	return c.rank
}

// Suit returns a card's suit
func (c *Card) Suit() Suit {
	return c.suit
}

func (c *Card) String() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}
