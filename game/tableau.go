package game

import (
	"math/rand"

	"github.com/minaorangina/bartok/deck"
)

// sortSpacing keeps display orders of neighbouring cards apart.
const sortSpacing = 4

// Tableau holds the cards on the table that are not in anyone's hand.
type Tableau struct {
	drawPile    []*deck.Card
	discardPile []*deck.Card
	target      *deck.Card
	rng         *rand.Rand
}

// NewTableau puts cards on the draw pile in the order given; index 0 is
// drawn first.
func NewTableau(cards []*deck.Card, rng *rand.Rand) *Tableau {
	if rng == nil {
		rng = deck.NewRand(0)
	}
	t := &Tableau{
		drawPile:    append([]*deck.Card{}, cards...),
		discardPile: []*deck.Card{},
		rng:         rng,
	}
	t.ArrangeDrawPile()
	return t
}

// ArrangeDrawPile turns every draw pile card face down and orders them back
// to front by index, so the card at index 0 sits on top.
func (t *Tableau) ArrangeDrawPile() {
	for i, c := range t.drawPile {
		c.FaceUp = false
		c.State = deck.InDrawPile
		c.SortOrder = -i * sortSpacing
	}
}

// Recycle shuffles the discard pile back into an empty draw pile and
// reports whether it did anything.
func (t *Tableau) Recycle() bool {
	if len(t.drawPile) > 0 || len(t.discardPile) == 0 {
		return false
	}

	cards := t.discardPile
	t.discardPile = []*deck.Card{}
	deck.Shuffle(cards, t.rng)
	t.drawPile = cards
	t.ArrangeDrawPile()
	return true
}

// Draw removes and returns the top of the draw pile, recycling the discard
// pile first if the draw pile is empty. The card is returned in transit.
func (t *Tableau) Draw() (*deck.Card, error) {
	t.Recycle()
	if len(t.drawPile) == 0 {
		return nil, ErrEmptyDeck
	}

	card := t.drawPile[0]
	t.drawPile = t.drawPile[1:]
	card.State = deck.InTransit
	return card, nil
}

// MoveToTarget makes card the target. Any previous target goes to the
// discard pile before card is installed, so there is never more than one
// target and never a gap between targets.
func (t *Tableau) MoveToTarget(card *deck.Card) *deck.Card {
	if t.target != nil {
		t.MoveToDiscard(t.target)
	}

	card.FaceUp = true
	card.State = deck.IsTarget
	t.target = card
	return card
}

// MoveToDiscard puts card on the discard pile.
func (t *Tableau) MoveToDiscard(card *deck.Card) *deck.Card {
	if card == t.target {
		t.target = nil
	}

	card.State = deck.InDiscard
	t.discardPile = append(t.discardPile, card)
	card.SortOrder = len(t.discardPile) * sortSpacing
	return card
}

func (t *Tableau) Target() *deck.Card {
	return t.target
}

func (t *Tableau) DrawPileLen() int {
	return len(t.drawPile)
}

func (t *Tableau) DiscardPileLen() int {
	return len(t.discardPile)
}

// DrawPile returns a copy of the draw pile, top first.
func (t *Tableau) DrawPile() []*deck.Card {
	return append([]*deck.Card{}, t.drawPile...)
}

// DiscardPile returns a copy of the discard pile.
func (t *Tableau) DiscardPile() []*deck.Card {
	return append([]*deck.Card{}, t.discardPile...)
}

// TotalCards counts every card on the table.
func (t *Tableau) TotalCards() int {
	n := len(t.drawPile) + len(t.discardPile)
	if t.target != nil {
		n++
	}
	return n
}

// collect empties the table and returns every card it held.
func (t *Tableau) collect() []*deck.Card {
	cards := append(t.drawPile, t.discardPile...)
	if t.target != nil {
		cards = append(cards, t.target)
	}
	t.drawPile, t.discardPile, t.target = nil, []*deck.Card{}, nil
	return cards
}

// reset replaces the draw pile with cards.
func (t *Tableau) reset(cards []*deck.Card) {
	t.collect()
	t.drawPile = cards
	t.ArrangeDrawPile()
}
