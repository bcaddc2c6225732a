package game

import "github.com/minaorangina/bartok/deck"

// MoveEvent is sent whenever a card changes place. PlayerID is the player
// who moved it, or 0 for the table itself (dealing, revealing).
type MoveEvent struct {
	Card     *deck.Card
	From     deck.State
	To       deck.State
	PlayerID int
}

// Observer receives notifications from a Session, in order, on the
// session's own goroutine. Implementations may query the session but must
// not submit actions to it.
type Observer interface {
	CardMoved(MoveEvent)
	TurnPassed(from, to int)
	Recycled(drawPileLen int)
	GameOver(winner int)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) CardMoved(MoveEvent)     {}
func (NopObserver) TurnPassed(from, to int) {}
func (NopObserver) Recycled(int)            {}
func (NopObserver) GameOver(int)            {}
