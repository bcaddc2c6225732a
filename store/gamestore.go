package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/minaorangina/bartok/engine"
)

var (
	ErrUnknownGameID = errors.New("unknown game ID")
	ErrFnGameExists  = func(gameID string) error {
		return fmt.Errorf("game with id \"%s\" already exists", gameID)
	}
)

type GameStore interface {
	FindGame(gameID string) engine.GameEngine
	AddGame(ge engine.GameEngine) error
	RemoveGame(gameID string) error
	GameIDs() []string
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	Games map[string]engine.GameEngine
	m     sync.RWMutex
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games: map[string]engine.GameEngine{},
	}
}

func (s *InMemoryGameStore) FindGame(ID string) engine.GameEngine {
	s.m.RLock()
	defer s.m.RUnlock()

	ge, ok := s.Games[ID]
	if !ok {
		return nil
	}
	return ge
}

func (s *InMemoryGameStore) AddGame(ge engine.GameEngine) error {
	s.m.Lock()
	defer s.m.Unlock()

	if _, exists := s.Games[ge.ID()]; exists {
		return ErrFnGameExists(ge.ID())
	}
	s.Games[ge.ID()] = ge
	return nil
}

func (s *InMemoryGameStore) RemoveGame(ID string) error {
	s.m.Lock()
	defer s.m.Unlock()

	if _, ok := s.Games[ID]; !ok {
		return ErrUnknownGameID
	}
	delete(s.Games, ID)
	return nil
}

// GameIDs lists every stored game, sorted.
func (s *InMemoryGameStore) GameIDs() []string {
	s.m.RLock()
	defer s.m.RUnlock()

	ids := make([]string, 0, len(s.Games))
	for id := range s.Games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
