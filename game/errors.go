package game

import "errors"

var (
	ErrTooFewPlayers  = errors.New("minimum of 2 players required")
	ErrNotStarted     = errors.New("game has not started")
	ErrAlreadyStarted = errors.New("game has already started")
	ErrEmptyDeck      = errors.New("draw pile and discard pile are both empty")
	ErrNoSuchPlayer   = errors.New("no such player")
)
