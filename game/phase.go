package game

// Phase is the turn state machine's current state. It decides which
// actions a Session will accept.
//
//	Idle -> PreTurn -> WaitingOnCard -> PostTurn -> (PreTurn | GameOver)
//
// GameOver only leaves via RestartGame, back to Idle.
type Phase int

const (
	Idle Phase = iota
	PreTurn
	WaitingOnCard
	PostTurn
	GameOver
)

var phaseNames = []string{"Idle", "PreTurn", "WaitingOnCard", "PostTurn", "GameOver"}

func (p Phase) String() string {
	if p < Idle || p > GameOver {
		return "Unknown"
	}
	return phaseNames[p]
}
