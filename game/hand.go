package game

import (
	"sort"

	"github.com/minaorangina/bartok/deck"
)

// Hand is a player's cards. Order is for display only.
type Hand struct {
	cards []*deck.Card
}

// Add puts card in the hand and returns it.
func (h *Hand) Add(card *deck.Card) *deck.Card {
	card.State = deck.InHand
	h.cards = append(h.cards, card)
	return card
}

// Remove takes the first matching card out of the hand. Removing a card
// that isn't there does nothing.
func (h *Hand) Remove(card *deck.Card) bool {
	for i, c := range h.cards {
		if c == card {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Contains(card *deck.Card) bool {
	for _, c := range h.cards {
		if c == card {
			return true
		}
	}
	return false
}

func (h *Hand) Len() int {
	return len(h.cards)
}

// At returns the card at display position i, or nil.
func (h *Hand) At(i int) *deck.Card {
	if i < 0 || i >= len(h.cards) {
		return nil
	}
	return h.cards[i]
}

// Cards returns a copy of the hand.
func (h *Hand) Cards() []*deck.Card {
	cards := make([]*deck.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

// Sort fans the hand out by suit, then rank.
func (h *Hand) Sort() {
	sort.SliceStable(h.cards, func(i, j int) bool {
		a, b := h.cards[i], h.cards[j]
		if a.Suit() != b.Suit() {
			return a.Suit() < b.Suit()
		}
		return a.Rank() < b.Rank()
	})
	for i, c := range h.cards {
		c.SortOrder = i * sortSpacing
	}
}

func (h *Hand) clear() []*deck.Card {
	cards := h.cards
	h.cards = nil
	return cards
}
