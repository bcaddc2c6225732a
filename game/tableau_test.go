package game

import (
	"testing"

	"github.com/minaorangina/bartok/deck"
	utils "github.com/minaorangina/bartok/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableauDraw(t *testing.T) {
	t.Run("draws from the front", func(t *testing.T) {
		cards := someCards(deck.Clubs, deck.Ace, deck.Two, deck.Three)
		tb := NewTableau(cards, deck.NewRand(1))

		c, err := tb.Draw()
		require.NoError(t, err)
		utils.AssertEqual(t, c, cards[0])
		utils.AssertEqual(t, c.State, deck.InTransit)
		utils.AssertEqual(t, tb.DrawPileLen(), 2)
		utils.AssertEqual(t, tb.DrawPile()[0], cards[1])
	})

	t.Run("recycles the discard pile when empty", func(t *testing.T) {
		tb := NewTableau(nil, deck.NewRand(1))
		discarded := someCards(deck.Hearts, deck.Four, deck.Five, deck.Six, deck.Seven, deck.Nine)
		for _, c := range discarded {
			tb.MoveToDiscard(c)
		}
		m := len(discarded)

		c, err := tb.Draw()
		require.NoError(t, err)

		utils.AssertEqual(t, tb.DrawPileLen(), m-1)
		utils.AssertEqual(t, tb.DiscardPileLen(), 0)
		utils.AssertTrue(t, containsCard(discarded, c))
		for _, rest := range tb.DrawPile() {
			utils.AssertTrue(t, containsCard(discarded, rest))
			assert.False(t, rest.FaceUp)
			assert.Equal(t, deck.InDrawPile, rest.State)
		}
	})

	t.Run("both piles empty", func(t *testing.T) {
		tb := NewTableau(nil, nil)
		_, err := tb.Draw()
		assert.Equal(t, ErrEmptyDeck, err)
	})

	t.Run("target is never recycled", func(t *testing.T) {
		tb := NewTableau(nil, deck.NewRand(3))
		target := tb.MoveToTarget(card(deck.Jack, deck.Spades))
		tb.MoveToDiscard(card(deck.Two, deck.Spades))

		_, err := tb.Draw()
		require.NoError(t, err)
		utils.AssertEqual(t, tb.Target(), target)
		_, err = tb.Draw()
		assert.Equal(t, ErrEmptyDeck, err)
	})
}

func TestTableauRecycle(t *testing.T) {
	t.Run("no-op while the draw pile has cards", func(t *testing.T) {
		tb := NewTableau(someCards(deck.Clubs, deck.Ace), nil)
		tb.MoveToDiscard(card(deck.Two, deck.Clubs))
		assert.False(t, tb.Recycle())
		utils.AssertEqual(t, tb.DiscardPileLen(), 1)
	})

	t.Run("no-op with nothing to recycle", func(t *testing.T) {
		tb := NewTableau(nil, nil)
		assert.False(t, tb.Recycle())
	})
}

func TestArrangeDrawPile(t *testing.T) {
	cards := someCards(deck.Diamonds, deck.Ace, deck.Two, deck.Three, deck.Four)
	for _, c := range cards {
		c.FaceUp = true
	}
	tb := NewTableau(cards, nil)

	for i, c := range tb.DrawPile() {
		assert.False(t, c.FaceUp)
		assert.Equal(t, deck.InDrawPile, c.State)
		assert.Equal(t, -i*sortSpacing, c.SortOrder)
		if i > 0 {
			assert.Less(t, c.SortOrder, tb.DrawPile()[i-1].SortOrder)
		}
	}
}

func TestMoveToTarget(t *testing.T) {
	tb := NewTableau(nil, nil)
	first, second := card(deck.Seven, deck.Hearts), card(deck.Seven, deck.Spades)

	tb.MoveToTarget(first)
	utils.AssertEqual(t, tb.Target(), first)
	utils.AssertEqual(t, tb.DiscardPileLen(), 0)
	assert.True(t, first.FaceUp)
	assert.Equal(t, deck.IsTarget, first.State)

	got := tb.MoveToTarget(second)
	utils.AssertEqual(t, got, second)
	utils.AssertEqual(t, tb.Target(), second)
	utils.AssertEqual(t, tb.DiscardPileLen(), 1)
	utils.AssertEqual(t, tb.DiscardPile()[0], first)
	assert.Equal(t, deck.InDiscard, first.State)
	utils.AssertEqual(t, tb.TotalCards(), 2)
}

func TestMoveToDiscard(t *testing.T) {
	tb := NewTableau(nil, nil)
	cards := someCards(deck.Clubs, deck.Ten, deck.Jack, deck.Queen)

	orders := map[int]bool{}
	for i, c := range cards {
		got := tb.MoveToDiscard(c)
		utils.AssertEqual(t, got, c)
		utils.AssertEqual(t, c.SortOrder, (i+1)*sortSpacing)
		orders[c.SortOrder] = true
	}
	utils.AssertEqual(t, len(orders), len(cards))
}
