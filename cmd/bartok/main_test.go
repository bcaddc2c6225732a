package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/minaorangina/bartok/config"
	"github.com/minaorangina/bartok/deck"
	utils "github.com/minaorangina/bartok/internal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Players:       4,
		HumanSlot:     -1,
		StartingCards: 7,
		Seed:          3,
		RestartDelay:  5 * time.Millisecond,
		LogLevel:      "info",
		Rounds:        2,
	}
}

func TestRun(t *testing.T) {
	t.Run("plays automated rounds and logs each result", func(t *testing.T) {
		log, hook := test.NewNullLogger()

		utils.Within(t, 5*time.Second, func() {
			err := run(context.Background(), testConfig(), strings.NewReader(""), io.Discard, log)
			require.NoError(t, err)
		})

		results := 0
		for _, e := range hook.AllEntries() {
			if e.Message == "result" {
				results++
				assert.NotZero(t, e.Data["winner"])
			}
		}
		assert.GreaterOrEqual(t, results, 2)
	})

	t.Run("plays a human seat from input", func(t *testing.T) {
		cfg := testConfig()
		cfg.Players, cfg.HumanSlot, cfg.Rounds = 2, 0, 1
		log, _ := test.NewNullLogger()
		var out strings.Builder

		utils.Within(t, 10*time.Second, func() {
			err := run(context.Background(), cfg, strings.NewReader(tryEveryCard(150)), &out, log)
			require.NoError(t, err)
		})
		assert.Contains(t, out.String(), "Game over!")
	})
}

// tryEveryCard tries each hand position in turn before drawing.
func tryEveryCard(turns int) string {
	var b strings.Builder
	for i := 0; i < turns; i++ {
		for pos := 1; pos <= 52; pos++ {
			fmt.Fprintf(&b, "%d\n", pos)
		}
		b.WriteString("d\n")
	}
	return b.String()
}

func TestEngineOpts(t *testing.T) {
	log, _ := test.NewNullLogger()

	t.Run("defaults", func(t *testing.T) {
		opts, err := engineOpts(testConfig(), log)
		require.NoError(t, err)
		utils.AssertEqual(t, opts.Layout.NumPlayers(), 4)
		utils.AssertEqual(t, opts.Layout.HumanSlot(), -1)
		assert.True(t, opts.AutoSettle)
	})

	t.Run("deck and layout files", func(t *testing.T) {
		dir := t.TempDir()
		deckFile := filepath.Join(dir, "deck.yaml")
		layoutFile := filepath.Join(dir, "layout.yaml")
		require.NoError(t, os.WriteFile(deckFile, []byte("ranks: [1, 2, 3, 4, 5]\nsuits: [Hearts, Spades]\ncount: 10\n"), 0o600))
		require.NoError(t, os.WriteFile(layoutFile, []byte("slots:\n  - human: true\n  - {}\n"), 0o600))

		cfg := testConfig()
		cfg.DeckFile, cfg.LayoutFile = deckFile, layoutFile
		opts, err := engineOpts(cfg, log)
		require.NoError(t, err)

		utils.AssertEqual(t, opts.Definition.Count, 10)
		utils.AssertEqual(t, opts.Layout.NumPlayers(), 2)
		utils.AssertEqual(t, opts.Layout.HumanSlot(), 0)
	})

	t.Run("bad deck file", func(t *testing.T) {
		deckFile := filepath.Join(t.TempDir(), "deck.yaml")
		require.NoError(t, os.WriteFile(deckFile, []byte("ranks: [one]"), 0o600))

		cfg := testConfig()
		cfg.DeckFile = deckFile
		_, err := engineOpts(cfg, log)
		assert.True(t, errors.Is(err, deck.ErrDefinition))
	})

	t.Run("unknown house rule", func(t *testing.T) {
		cfg := testConfig()
		cfg.HouseRules = []string{"jokers-wild"}
		_, err := engineOpts(cfg, log)
		utils.AssertErrored(t, err)
	})
}
