package protocol

// InboundMessage is a message from the presentation layer to a GameEngine
type InboundMessage struct {
	PlayerID int `json:"playerID"`
	Command  Cmd `json:"command"`
	Decision int `json:"decision"`
}

// Event is a message from a GameEngine to the presentation layer
type Event struct {
	Type     EventType `json:"type"`
	GameID   string    `json:"gameID"`
	Round    int       `json:"round"`
	PlayerID int       `json:"playerID,omitempty"`
	Card     string    `json:"card,omitempty"`
	From     string    `json:"from,omitempty"`
	To       string    `json:"to,omitempty"`
	Count    int       `json:"count,omitempty"`
}

// PlayerView is what everyone can see of a player
type PlayerView struct {
	PlayerID  int  `json:"playerID"`
	Human     bool `json:"human"`
	CardCount int  `json:"cardCount"`
}

// GameState is a snapshot of a game, safe to hand to other goroutines
type GameState struct {
	GameID        string       `json:"gameID"`
	Round         int          `json:"round"`
	Phase         string       `json:"phase"`
	CurrentPlayer int          `json:"currentPlayer"`
	Target        string       `json:"target"`
	DrawPile      int          `json:"drawPile"`
	DiscardPile   int          `json:"discardPile"`
	Players       []PlayerView `json:"players"`
	// Hand is the current player's hand, in display order.
	Hand   []string `json:"hand,omitempty"`
	Winner int      `json:"winner,omitempty"`
	Turns  int      `json:"turns"`
}
