package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minaorangina/bartok/deck"
	"github.com/minaorangina/bartok/game"
	"github.com/minaorangina/bartok/layout"
	"github.com/minaorangina/bartok/protocol"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

var ErrEngineStopped = errors.New("game engine has stopped")

const defaultEventBuffer = 1024

// GameEngine hosts games of Bartok one after another. Every command runs on
// the engine's own goroutine, started with Listen.
type GameEngine interface {
	ID() string
	Listen(ctx context.Context)
	Start(ctx context.Context) error
	Receive(ctx context.Context, msg protocol.InboundMessage) (bool, error)
	State(ctx context.Context) (protocol.GameState, error)
	Results(ctx context.Context) ([]protocol.GameState, error)
	Events() <-chan protocol.Event
}

// GameEngineOpts configures a GameEngine. The zero value plays a standard
// deck at a four seat table with the human in seat 0.
type GameEngineOpts struct {
	GameID           string
	Definition       deck.Definition
	Layout           layout.Layout
	NumStartingCards int
	Seed             int64
	Rules            game.Rules
	Strategy         game.Strategy
	RestartDelay     time.Duration
	// AutoSettle completes every card move at once. Without it the
	// presentation layer sends protocol.Arrived when a move finishes.
	AutoSettle  bool
	Logger      logrus.FieldLogger
	EventBuffer int
}

type request struct {
	fn   func()
	done chan struct{}
}

type gameEngine struct {
	id        string
	opts      GameEngineOpts
	log       logrus.FieldLogger
	session   *game.Session
	round     int
	results   []protocol.GameState
	inboundCh chan request
	events    chan protocol.Event
	stopped   chan struct{}
}

// NewGameEngine constructs a GameEngine and sets up its first game.
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.GameID == "" {
		opts.GameID = NewID()
	}
	if opts.Layout.NumPlayers() == 0 {
		opts.Layout = layout.Default(4, 0)
	}
	if err := opts.Layout.Validate(); err != nil {
		return nil, err
	}
	if len(opts.Definition.Ranks) == 0 && len(opts.Definition.Suits) == 0 && len(opts.Definition.Cards) == 0 {
		opts.Definition = deck.StandardDefinition()
	}
	if opts.EventBuffer <= 0 {
		opts.EventBuffer = defaultEventBuffer
	}

	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	ge := &gameEngine{
		id:        opts.GameID,
		opts:      opts,
		log:       logger.WithField("engine_id", opts.GameID),
		inboundCh: make(chan request),
		events:    make(chan protocol.Event, opts.EventBuffer),
		stopped:   make(chan struct{}),
	}

	if err := ge.reload(); err != nil {
		return nil, err
	}

	return ge, nil
}

// NewID constructs a game ID
func NewID() string {
	return uuid.NewV4().String()
}

func (ge *gameEngine) ID() string {
	return ge.id
}

func (ge *gameEngine) Events() <-chan protocol.Event {
	return ge.events
}

// Listen runs commands until ctx is cancelled.
func (ge *gameEngine) Listen(ctx context.Context) {
	defer close(ge.stopped)
	for {
		select {
		case <-ctx.Done():
			ge.log.Info("engine stopped")
			return
		case req := <-ge.inboundCh:
			req.fn()
			close(req.done)
		}
	}
}

// Start deals the current game.
func (ge *gameEngine) Start(ctx context.Context) error {
	var err error
	if doErr := ge.do(ctx, func() { err = ge.session.StartGame() }); doErr != nil {
		return doErr
	}
	return err
}

// Receive applies a command from the presentation layer. Plays and draws
// only count for the human whose turn it is; anything else is refused with
// false.
func (ge *gameEngine) Receive(ctx context.Context, msg protocol.InboundMessage) (bool, error) {
	var (
		ok  bool
		err error
	)
	doErr := ge.do(ctx, func() {
		ok, err = ge.handle(msg)
	})
	if doErr != nil {
		return false, doErr
	}
	return ok, err
}

func (ge *gameEngine) handle(msg protocol.InboundMessage) (bool, error) {
	s := ge.session
	log := ge.log.WithFields(logrus.Fields{"command": msg.Command.String(), "player": msg.PlayerID})

	switch msg.Command {
	case protocol.Start:
		if err := s.StartGame(); err != nil {
			return false, err
		}
		return true, nil

	case protocol.Play, protocol.Draw:
		current := s.Current()
		if current == nil || current.ID != msg.PlayerID {
			log.Debug("ignored: not this player's turn")
			return false, nil
		}

		var clicked *deck.Card
		if msg.Command == protocol.Play {
			clicked = current.Hand.At(msg.Decision)
		} else if pile := s.Tableau().DrawPile(); len(pile) > 0 {
			clicked = pile[0]
		}
		if clicked == nil && msg.Command == protocol.Draw {
			return s.SkipTurn(), nil
		}
		if clicked == nil {
			log.Debug("ignored: nothing to click")
			return false, nil
		}
		return s.CardClicked(clicked), nil

	case protocol.Arrived:
		s.CardArrived()
		return true, nil

	case protocol.Restart:
		s.RestartGame()
		return true, nil
	}

	return false, fmt.Errorf("unexpected command %s", msg.Command)
}

// State returns a snapshot of the current game.
func (ge *gameEngine) State(ctx context.Context) (protocol.GameState, error) {
	var state protocol.GameState
	err := ge.do(ctx, func() { state = ge.snapshot() })
	return state, err
}

// Results returns the final state of every finished game, oldest first.
func (ge *gameEngine) Results(ctx context.Context) ([]protocol.GameState, error) {
	var results []protocol.GameState
	err := ge.do(ctx, func() {
		results = append(results, ge.results...)
	})
	return results, err
}

func (ge *gameEngine) do(ctx context.Context, fn func()) error {
	req := request{fn: fn, done: make(chan struct{})}

	select {
	case ge.inboundCh <- req:
	case <-ge.stopped:
		return ErrEngineStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-req.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// reload replaces the session with a fresh game and, after the first
// round, deals it straight away.
func (ge *gameEngine) reload() error {
	cards, err := deck.FromDefinition(ge.opts.Definition)
	if err != nil {
		return err
	}

	l := ge.opts.Layout
	seat := l.HumanSlot()
	if seat < 0 {
		seat = 0
	}

	seed := ge.opts.Seed
	if seed != 0 {
		seed += int64(ge.round)
	}

	round := ge.round + 1
	var s *game.Session
	s, err = game.NewSession(game.SessionOpts{
		ID:               fmt.Sprintf("%s/%d", ge.id, round),
		Players:          game.NewPlayers(l.NumPlayers(), l.HumanSlot(), ge.opts.Strategy),
		Cards:            cards,
		HumanSeat:        seat,
		NumStartingCards: ge.opts.NumStartingCards,
		Seed:             seed,
		Rules:            ge.opts.Rules,
		Observer:         &observer{ge: ge},
		Logger:           ge.log,
		AutoSettle:       ge.opts.AutoSettle,
		RestartDelay:     ge.opts.RestartDelay,
		ScheduleRestart:  ge.scheduleRestart,
		OnRestart: func() {
			// a restart timer can outlive a manual restart
			if ge.session != s {
				return
			}
			if err := ge.reload(); err != nil {
				ge.log.WithError(err).Error("could not reload game")
			}
		},
	})
	if err != nil {
		return err
	}

	first := ge.session == nil
	ge.session = s
	ge.round = round
	ge.log.WithFields(logrus.Fields{"round": round, "game_id": s.ID()}).Info("game loaded")

	if first {
		return nil
	}

	ge.emit(protocol.Event{Type: protocol.EventRestarted})
	return s.StartGame()
}

// scheduleRestart fires restart once, on the engine goroutine, after delay.
func (ge *gameEngine) scheduleRestart(delay time.Duration, restart func()) {
	time.AfterFunc(delay, func() {
		if err := ge.do(context.Background(), restart); err != nil {
			ge.log.WithError(err).Debug("restart dropped")
		}
	})
}

func (ge *gameEngine) snapshot() protocol.GameState {
	s := ge.session
	state := protocol.GameState{
		GameID:        s.ID(),
		Round:         ge.round,
		Phase:         s.Phase().String(),
		CurrentPlayer: 0,
		DrawPile:      s.Tableau().DrawPileLen(),
		DiscardPile:   s.Tableau().DiscardPileLen(),
		Turns:         s.Turns(),
	}
	if target := s.Target(); target != nil {
		state.Target = target.String()
	}
	if w := s.Winner(); w != nil {
		state.Winner = w.ID
	}
	for _, p := range s.Players() {
		state.Players = append(state.Players, protocol.PlayerView{
			PlayerID:  p.ID,
			Human:     p.Kind.IsHuman(),
			CardCount: p.Hand.Len(),
		})
	}
	if current := s.Current(); current != nil {
		state.CurrentPlayer = current.ID
		if current.Kind.IsHuman() {
			for _, c := range current.Hand.Cards() {
				state.Hand = append(state.Hand, c.String())
			}
		}
	}
	return state
}

// emit sends ev without blocking; nobody listening is not an error.
func (ge *gameEngine) emit(ev protocol.Event) {
	ev.GameID = ge.id
	ev.Round = ge.round
	select {
	case ge.events <- ev:
	default:
		ge.log.WithField("event", ev.Type).Debug("event dropped")
	}
}
