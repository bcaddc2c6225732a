package game

import (
	"fmt"

	"github.com/minaorangina/bartok/deck"
)

// Strategy picks the card an automated player plays, or nil to draw.
type Strategy func(hand []*deck.Card, target *deck.Card, valid func(*deck.Card) bool) *deck.Card

// FirstMatch plays the first card in hand that is a valid play.
func FirstMatch(hand []*deck.Card, target *deck.Card, valid func(*deck.Card) bool) *deck.Card {
	for _, c := range hand {
		if valid(c) {
			return c
		}
	}
	return nil
}

// Kind says who is behind a seat. A Kind with a nil strategy is human.
type Kind struct {
	strategy Strategy
}

// Human waits for outside input to play or draw.
func Human() Kind {
	return Kind{}
}

// Automated plays by strategy. A nil strategy falls back to FirstMatch.
func Automated(strategy Strategy) Kind {
	if strategy == nil {
		strategy = FirstMatch
	}
	return Kind{strategy: strategy}
}

func (k Kind) IsHuman() bool {
	return k.strategy == nil
}

func (k Kind) String() string {
	if k.IsHuman() {
		return "human"
	}
	return "automated"
}

// Player is one seat at the table.
type Player struct {
	ID   int
	Kind Kind
	Hand Hand
}

// NewPlayer constructs a player with an empty hand.
func NewPlayer(id int, kind Kind) *Player {
	return &Player{ID: id, Kind: kind}
}

// NewPlayers seats n players with IDs 1..n. The seat at index human (if in
// range) is human and every other seat plays with strategy.
func NewPlayers(n, human int, strategy Strategy) []*Player {
	ps := []*Player{}
	for i := 0; i < n; i++ {
		kind := Automated(strategy)
		if i == human {
			kind = Human()
		}
		ps = append(ps, NewPlayer(i+1, kind))
	}
	return ps
}

func (p *Player) String() string {
	return fmt.Sprintf("player %d (%s)", p.ID, p.Kind)
}

// TakeTurn starts p's turn. A human does nothing until the session gets a
// play or draw; an automated player decides straight away.
func (p *Player) TakeTurn(s *Session) {
	if p.Kind.IsHuman() {
		return
	}

	card := p.Kind.strategy(p.Hand.Cards(), s.Target(), s.ValidPlay)
	if card != nil && s.SubmitPlay(card) {
		return
	}
	if s.SubmitDraw() || s.SkipTurn() {
		return
	}
	s.log.WithField("player", p.ID).Error("automated player could not move")
}
