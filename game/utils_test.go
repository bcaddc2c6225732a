package game

import (
	"testing"
	"time"

	"github.com/minaorangina/bartok/deck"
)

func card(rank deck.Rank, suit deck.Suit) *deck.Card {
	return deck.NewCard(rank, suit)
}

func someCards(suit deck.Suit, ranks ...deck.Rank) []*deck.Card {
	cards := []*deck.Card{}
	for _, r := range ranks {
		cards = append(cards, deck.NewCard(r, suit))
	}
	return cards
}

func combineCards(cards []*deck.Card, toAdd ...*deck.Card) []*deck.Card {
	return append(append([]*deck.Card{}, cards...), toAdd...)
}

func containsCard(s []*deck.Card, target *deck.Card) bool {
	for _, c := range s {
		if c == target {
			return true
		}
	}
	return false
}

func allHuman(n int) []*Player {
	ps := []*Player{}
	for i := 0; i < n; i++ {
		ps = append(ps, NewPlayer(i+1, Human()))
	}
	return ps
}

func allAutomated(n int) []*Player {
	return NewPlayers(n, -1, FirstMatch)
}

// recordingScheduler captures the deferred restart instead of running it.
type recordingScheduler struct {
	delays   []time.Duration
	restarts []func()
}

func (r *recordingScheduler) schedule(d time.Duration, fn func()) {
	r.delays = append(r.delays, d)
	r.restarts = append(r.restarts, fn)
}

// conservationObserver checks no card is lost or duplicated whenever a turn
// passes.
type conservationObserver struct {
	NopObserver
	t        *testing.T
	s        *Session
	passes   int
	recycles int
	winner   int
	moves    []MoveEvent
}

func (o *conservationObserver) TurnPassed(from, to int) {
	o.t.Helper()
	o.passes++
	if got, want := o.s.CardsInPlay(), o.s.TotalCards(); got != want {
		o.t.Errorf("turn %d: %d cards in play, want %d", o.passes, got, want)
	}
	if o.s.Target() == nil {
		o.t.Errorf("turn %d: no target", o.passes)
	}
}

func (o *conservationObserver) CardMoved(ev MoveEvent) {
	o.moves = append(o.moves, ev)
}

func (o *conservationObserver) Recycled(int) {
	o.recycles++
}

func (o *conservationObserver) GameOver(winner int) {
	o.winner = winner
}
