package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/minaorangina/bartok/deck"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultStartingCards = 7
	defaultRestartDelay  = time.Second
)

// arrival is what the session is waiting on while in WaitingOnCard.
type arrival int

const (
	noArrival arrival = iota
	revealArrival
	turnArrival
)

// SessionOpts configures a Session. Only Players is required.
type SessionOpts struct {
	ID      string
	Players []*Player
	// Cards for the game; a standard deck if nil.
	Cards []*deck.Card
	// Stacked deals Cards in the order given instead of shuffling.
	Stacked bool
	// HumanSeat is the seat dealing and the first turn count from: both
	// start with the player to its left.
	HumanSeat        int
	NumStartingCards int
	Rand             *rand.Rand
	Seed             int64
	Rules            Rules
	Observer         Observer
	Logger           logrus.FieldLogger
	// AutoSettle raises CardArrived straight after every move, for hosts
	// with nothing to animate.
	AutoSettle   bool
	RestartDelay time.Duration
	// ScheduleRestart runs restart once after delay. Without it a finished
	// game stays in GameOver until RestartGame is called.
	ScheduleRestart func(delay time.Duration, restart func())
	// OnRestart is called at the end of RestartGame.
	OnRestart func()
}

// Session is one game of Bartok: the players, the table and the turn state
// machine. A Session is not safe for concurrent use.
type Session struct {
	id               string
	cards            []*deck.Card
	stacked          bool
	players          []*Player
	tableau          *Tableau
	rules            Rules
	rng              *rand.Rand
	humanSeat        int
	numStartingCards int

	phase   Phase
	current int
	pending arrival
	winner  *Player
	turns   int
	// skips counts turns passed in a row with nothing to draw.
	skips int

	autoSettle      bool
	restartDelay    time.Duration
	scheduleRestart func(time.Duration, func())
	onRestart       func()
	observer        Observer
	log             logrus.FieldLogger

	queue    []func()
	draining bool
}

// NewSession constructs a game of Bartok waiting to be started.
func NewSession(opts SessionOpts) (*Session, error) {
	if len(opts.Players) < 2 {
		return nil, ErrTooFewPlayers
	}
	if opts.NumStartingCards < 0 {
		return nil, deck.NewDefinitionError("negative number of starting cards")
	}

	s := &Session{
		id:               opts.ID,
		stacked:          opts.Stacked,
		players:          append([]*Player{}, opts.Players...),
		rules:            opts.Rules,
		rng:              opts.Rand,
		humanSeat:        opts.HumanSeat,
		numStartingCards: opts.NumStartingCards,
		current:          -1,
		autoSettle:       opts.AutoSettle,
		restartDelay:     opts.RestartDelay,
		scheduleRestart:  opts.ScheduleRestart,
		onRestart:        opts.OnRestart,
		observer:         opts.Observer,
	}

	if s.id == "" {
		s.id = uuid.NewV4().String()
	}
	if opts.Cards == nil {
		s.cards = deck.New()
	} else {
		s.cards = append([]*deck.Card{}, opts.Cards...)
	}
	if s.rng == nil {
		s.rng = deck.NewRand(opts.Seed)
	}
	if s.rules == nil {
		s.rules = DefaultRules()
	}
	if s.humanSeat < 0 || s.humanSeat >= len(s.players) {
		s.humanSeat = 0
	}
	if s.numStartingCards == 0 {
		s.numStartingCards = defaultStartingCards
	}
	if s.restartDelay == 0 {
		s.restartDelay = defaultRestartDelay
	}
	if s.observer == nil {
		s.observer = NopObserver{}
	}

	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	s.log = logger.WithField("game_id", s.id)

	if need := len(s.players)*s.numStartingCards + 1; need > len(s.cards) {
		return nil, deck.NewDefinitionError("dealing %d cards to %d players needs %d cards, deck has %d",
			s.numStartingCards, len(s.players), need, len(s.cards))
	}

	s.tableau = NewTableau(s.cards, s.rng)

	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Phase() Phase {
	return s.phase
}

// Current returns whose turn it is, or nil before the first turn.
func (s *Session) Current() *Player {
	if s.current < 0 {
		return nil
	}
	return s.players[s.current]
}

// CurrentIndex is the seat index of the current player, or -1.
func (s *Session) CurrentIndex() int {
	return s.current
}

// Players returns the seats in turn order.
func (s *Session) Players() []*Player {
	return append([]*Player{}, s.players...)
}

func (s *Session) Target() *deck.Card {
	return s.tableau.Target()
}

func (s *Session) Tableau() *Tableau {
	return s.tableau
}

// Winner is the player who emptied their hand, once the game is over.
func (s *Session) Winner() *Player {
	return s.winner
}

// Turns counts turns started since the game began.
func (s *Session) Turns() int {
	return s.turns
}

// TotalCards is the size of the deck this game is played with.
func (s *Session) TotalCards() int {
	return len(s.cards)
}

// CardsInPlay counts every card on the table and in every hand. It always
// equals TotalCards.
func (s *Session) CardsInPlay() int {
	n := s.tableau.TotalCards()
	for _, p := range s.players {
		n += p.Hand.Len()
	}
	return n
}

// StartGame shuffles, deals and reveals the first target. Dealing goes round
// the table starting left of the human seat. The first turn, also left of
// the human seat, begins once the target card has arrived.
func (s *Session) StartGame() error {
	if s.phase != Idle {
		return ErrAlreadyStarted
	}

	cards := append([]*deck.Card{}, s.cards...)
	if !s.stacked {
		deck.Shuffle(cards, s.rng)
	}
	s.tableau.reset(cards)

	n := len(s.players)
	for i := 0; i < s.numStartingCards; i++ {
		for j := 0; j < n; j++ {
			card, err := s.tableau.Draw()
			if err != nil {
				return err
			}
			p := s.players[(s.humanSeat+j+1)%n]
			p.Hand.Add(card)
			s.observer.CardMoved(MoveEvent{Card: card, From: deck.InDrawPile, To: deck.InHand, PlayerID: p.ID})
		}
	}

	card, err := s.tableau.Draw()
	if err != nil {
		return err
	}
	s.moveToTarget(card, deck.InDrawPile, 0)

	s.log.WithFields(logrus.Fields{
		"players":   n,
		"dealt":     s.numStartingCards,
		"draw_pile": s.tableau.DrawPileLen(),
		"target":    card.String(),
	}).Info("game started")

	s.await(revealArrival)
	return nil
}

// PassTurn moves the turn to the next player round the table.
func (s *Session) PassTurn() error {
	return s.passTurn(-1)
}

// PassTurnTo moves the turn to the player at seat index next.
func (s *Session) PassTurnTo(next int) error {
	if next < 0 || next >= len(s.players) {
		return ErrNoSuchPlayer
	}
	return s.passTurn(next)
}

func (s *Session) passTurn(next int) error {
	switch s.phase {
	case Idle:
		return ErrNotStarted
	case GameOver:
		s.log.Debug("turn pass ignored: game is over")
		return nil
	case WaitingOnCard:
		s.log.Debug("turn pass ignored: waiting on card")
		return nil
	}

	if next < 0 {
		if s.current < 0 {
			next = (s.humanSeat + 1) % len(s.players)
		} else {
			next = (s.current + 1) % len(s.players)
		}
	}

	lastID := 0
	if s.current >= 0 {
		lastID = s.players[s.current].ID
		if s.CheckGameOver() {
			return nil
		}
	}

	s.current = next
	s.phase = PreTurn
	s.turns++

	p := s.players[next]
	s.observer.TurnPassed(lastID, p.ID)
	s.log.WithFields(logrus.Fields{"old": lastID, "new": p.ID, "turn": s.turns}).Debug("turn passed")

	s.run(func() {
		if s.Current() == p && s.phase == PreTurn {
			p.TakeTurn(s)
		}
	})
	return nil
}

// CheckGameOver recycles the discard pile if the draw pile has run out, then
// ends the game if the current player has no cards left.
func (s *Session) CheckGameOver() bool {
	if s.phase == GameOver {
		return true
	}
	if s.current < 0 {
		return false
	}

	s.recycle()

	p := s.players[s.current]
	if p.Hand.Len() > 0 {
		return false
	}

	s.endGame(p)
	return true
}

// endGame finishes the game. A nil winner means nobody could move.
func (s *Session) endGame(winner *Player) {
	s.phase = GameOver
	s.winner = winner

	id := 0
	if winner != nil {
		id = winner.ID
		s.log.WithFields(logrus.Fields{"winner": id, "turns": s.turns}).Info("game over")
	} else {
		s.log.WithError(ErrEmptyDeck).WithField("turns", s.turns).Error("game over: no player can move")
	}
	s.observer.GameOver(id)

	if s.scheduleRestart != nil {
		s.scheduleRestart(s.restartDelay, s.RestartGame)
	}
}

// ValidPlay reports whether card may be played on the current target.
func (s *Session) ValidPlay(card *deck.Card) bool {
	return s.rules.Valid(card, s.tableau.Target())
}

// SubmitPlay plays card from the current player's hand onto the target.
// Plays out of turn, while a card is moving, or that don't match are
// ignored and false is returned.
func (s *Session) SubmitPlay(card *deck.Card) bool {
	if s.phase != PreTurn {
		s.log.WithField("phase", s.phase).Debug("play ignored: not accepting actions")
		return false
	}

	p := s.players[s.current]
	if card == nil || !p.Hand.Contains(card) {
		s.log.WithField("player", p.ID).Debug("play ignored: card not in hand")
		return false
	}

	fields := logrus.Fields{"player": p.ID, "card": card.String(), "target": s.tableau.Target().String()}
	if !s.ValidPlay(card) {
		s.log.WithFields(fields).Debug("play ignored: no match")
		return false
	}

	p.Hand.Remove(card)
	s.skips = 0
	s.moveToTarget(card, deck.InHand, p.ID)
	s.log.WithFields(fields).Debug("play")

	s.await(turnArrival)
	return true
}

// SubmitDraw gives the current player the top card of the draw pile. A draw
// ends the turn.
func (s *Session) SubmitDraw() bool {
	if s.phase != PreTurn {
		s.log.WithField("phase", s.phase).Debug("draw ignored: not accepting actions")
		return false
	}

	p := s.players[s.current]
	s.recycle()
	card, err := s.tableau.Draw()
	if err != nil {
		s.log.WithError(err).WithField("player", p.ID).Error("cannot draw")
		return false
	}

	p.Hand.Add(card)
	s.skips = 0
	s.observer.CardMoved(MoveEvent{Card: card, From: deck.InDrawPile, To: deck.InHand, PlayerID: p.ID})
	s.log.WithFields(logrus.Fields{"player": p.ID, "card": card.String()}).Debug("draw")

	s.await(turnArrival)
	return true
}

// SkipTurn passes the turn of a current player who has nothing to draw.
// The game ends with no winner once nobody at the table holds a valid play,
// or every seat has skipped in a row. Skips are refused outside PreTurn or
// while there are cards to draw.
func (s *Session) SkipTurn() bool {
	if s.phase != PreTurn {
		s.log.WithField("phase", s.phase).Debug("skip ignored: not accepting actions")
		return false
	}
	if s.tableau.DrawPileLen() > 0 || s.tableau.DiscardPileLen() > 0 {
		s.log.Debug("skip ignored: there are cards to draw")
		return false
	}

	s.skips++
	s.log.WithFields(logrus.Fields{"player": s.Current().ID, "skips": s.skips}).Info("nothing to draw, turn skipped")

	if s.skips >= len(s.players) || !s.anyValidPlay() {
		s.endGame(nil)
		return true
	}
	if err := s.passTurn(-1); err != nil {
		s.log.WithError(err).Error("could not pass turn")
		return false
	}
	return true
}

func (s *Session) anyValidPlay() bool {
	for _, p := range s.players {
		for _, c := range p.Hand.Cards() {
			if s.ValidPlay(c) {
				return true
			}
		}
	}
	return false
}

// CardClicked handles a click on card by the human player. Clicking the
// draw pile draws its top card, whichever card was clicked; clicking a card
// in hand tries to play it. Clicks are ignored on other players' turns and
// while a card is moving.
func (s *Session) CardClicked(card *deck.Card) bool {
	p := s.Current()
	if p == nil || card == nil || !p.Kind.IsHuman() || s.phase == WaitingOnCard {
		return false
	}

	switch card.State {
	case deck.InDrawPile:
		return s.SubmitDraw()
	case deck.InHand:
		return s.SubmitPlay(card)
	}
	return false
}

// CardArrived tells the session the card it is waiting on has reached its
// destination. The turn then passes.
func (s *Session) CardArrived() {
	if s.phase != WaitingOnCard {
		s.log.WithField("phase", s.phase).Debug("arrival ignored: nothing in flight")
		return
	}

	waited := s.pending
	s.pending = noArrival
	s.phase = PostTurn

	next := -1
	if waited == revealArrival {
		next = (s.humanSeat + 1) % len(s.players)
	}
	if err := s.passTurn(next); err != nil {
		s.log.WithError(err).Error("could not pass turn")
	}
}

// RestartGame throws away the current game: hands are emptied, every card
// goes back to the draw pile and the session returns to Idle, ready for
// StartGame. OnRestart is then told so the host can reload.
func (s *Session) RestartGame() {
	for _, p := range s.players {
		p.Hand.clear()
	}
	s.tableau.reset(append([]*deck.Card{}, s.cards...))

	s.current = -1
	s.pending = noArrival
	s.winner = nil
	s.turns = 0
	s.skips = 0
	s.queue = nil
	s.phase = Idle

	s.log.Info("game restarted")

	if s.onRestart != nil {
		s.onRestart()
	}
}

func (s *Session) moveToTarget(card *deck.Card, from deck.State, playerID int) {
	if old := s.tableau.Target(); old != nil {
		s.observer.CardMoved(MoveEvent{Card: old, From: deck.IsTarget, To: deck.InDiscard, PlayerID: playerID})
	}
	s.tableau.MoveToTarget(card)
	s.observer.CardMoved(MoveEvent{Card: card, From: from, To: deck.IsTarget, PlayerID: playerID})
}

func (s *Session) recycle() {
	if s.tableau.Recycle() {
		s.observer.Recycled(s.tableau.DrawPileLen())
		s.log.WithField("draw_pile", s.tableau.DrawPileLen()).Debug("discard pile recycled")
	}
}

// await suspends the turn until CardArrived.
func (s *Session) await(what arrival) {
	s.phase = WaitingOnCard
	s.pending = what
	if s.autoSettle {
		s.run(s.CardArrived)
	}
}

// run queues fn and, unless a caller further up is already doing so, runs
// the queue dry. Automated turns chain through here instead of recursing.
func (s *Session) run(fn func()) {
	s.queue = append(s.queue, fn)
	if s.draining {
		return
	}

	s.draining = true
	defer func() { s.draining = false }()
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		next()
	}
}
