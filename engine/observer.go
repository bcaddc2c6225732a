package engine

import (
	"github.com/minaorangina/bartok/game"
	"github.com/minaorangina/bartok/protocol"
	"github.com/sirupsen/logrus"
)

// observer turns session notifications into protocol events.
type observer struct {
	ge *gameEngine
}

func (o *observer) CardMoved(ev game.MoveEvent) {
	o.ge.emit(protocol.Event{
		Type:     protocol.EventCardMoved,
		PlayerID: ev.PlayerID,
		Card:     ev.Card.String(),
		From:     ev.From.String(),
		To:       ev.To.String(),
	})
}

func (o *observer) TurnPassed(from, to int) {
	o.ge.emit(protocol.Event{Type: protocol.EventTurnStarted, PlayerID: to})
}

func (o *observer) Recycled(drawPileLen int) {
	o.ge.log.WithField("draw_pile", drawPileLen).Info("discard pile shuffled into draw pile")
	o.ge.emit(protocol.Event{Type: protocol.EventRecycled, Count: drawPileLen})
}

func (o *observer) GameOver(winner int) {
	state := o.ge.snapshot()
	o.ge.results = append(o.ge.results, state)
	o.ge.log.WithFields(logrus.Fields{"round": o.ge.round, "winner": winner, "turns": state.Turns}).Info("round over")
	o.ge.emit(protocol.Event{Type: protocol.EventGameOver, PlayerID: winner})
}
