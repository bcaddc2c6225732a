package protocol

// Cmd represents a command sent to a game engine
type Cmd int

const (
	Null Cmd = iota
	Start
	Play    // play the card at hand index Decision
	Draw    // take the top card of the draw pile
	Arrived // the card in flight has reached its destination
	Restart
)

var cmdNames = []string{
	"Null",
	"Start",
	"Play",
	"Draw",
	"Arrived",
	"Restart",
}

func (c Cmd) String() string {
	if c < Null || int(c) >= len(cmdNames) {
		return "Unknown"
	}
	return cmdNames[c]
}

// EventType names something that happened in a game
type EventType string

const (
	EventCardMoved   EventType = "card_moved"
	EventTurnStarted EventType = "turn_started"
	EventRecycled    EventType = "draw_pile_recycled"
	EventGameOver    EventType = "game_over"
	EventRestarted   EventType = "game_restarted"
)
