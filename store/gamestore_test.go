package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/minaorangina/bartok/engine"
	utils "github.com/minaorangina/bartok/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, id string) engine.GameEngine {
	t.Helper()
	ge, err := engine.NewGameEngine(engine.GameEngineOpts{GameID: id})
	require.NoError(t, err)
	return ge
}

func TestInMemoryGameStore(t *testing.T) {
	t.Run("Constructor prevents nil struct members", func(t *testing.T) {
		str := NewInMemoryGameStore()
		if str.Games == nil {
			t.Error("Games was nil")
		}
	})

	t.Run("prevents duplicate game IDs", func(t *testing.T) {
		str := NewInMemoryGameStore()
		ge := newGame(t, "thisISAnID")

		err := str.AddGame(ge)
		utils.AssertNoError(t, err)

		err = str.AddGame(ge)
		utils.AssertErrored(t, err)
	})

	t.Run("Handles a non-existent game", func(t *testing.T) {
		str := NewInMemoryGameStore()
		assert.Nil(t, str.FindGame("fake-id"))

		err := str.RemoveGame("fake-id")
		assert.Equal(t, ErrUnknownGameID, err)
	})

	t.Run("Finds and removes games", func(t *testing.T) {
		str := NewInMemoryGameStore()
		ge := newGame(t, "some-game-id")
		require.NoError(t, str.AddGame(ge))

		found := str.FindGame("some-game-id")
		require.NotNil(t, found)
		utils.AssertEqual(t, found.ID(), "some-game-id")

		utils.AssertNoError(t, str.RemoveGame("some-game-id"))
		assert.Nil(t, str.FindGame("some-game-id"))
	})

	t.Run("Lists game IDs in order", func(t *testing.T) {
		str := NewInMemoryGameStore()
		for _, id := range []string{"c", "a", "b"} {
			require.NoError(t, str.AddGame(newGame(t, id)))
		}
		utils.AssertDeepEqual(t, str.GameIDs(), []string{"a", "b", "c"})
	})

	t.Run("Is safe for concurrent use", func(t *testing.T) {
		str := NewInMemoryGameStore()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				id := fmt.Sprintf("game-%d", i)
				ge, err := engine.NewGameEngine(engine.GameEngineOpts{GameID: id})
				if !assert.NoError(t, err) {
					return
				}
				assert.NoError(t, str.AddGame(ge))
				assert.NotNil(t, str.FindGame(id))
			}(i)
		}
		wg.Wait()
		utils.AssertEqual(t, len(str.GameIDs()), 20)
	})
}
