package engine

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const gameEngineTestTimeout = 2 * time.Second

// listening starts ge's command loop for the length of the test.
func listening(t *testing.T, ge GameEngine) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	go ge.Listen(ctx)
	t.Cleanup(cancel)
	return ctx
}

func newEngine(t *testing.T, opts GameEngineOpts) *gameEngine {
	t.Helper()

	ge, err := NewGameEngine(opts)
	require.NoError(t, err)
	return ge
}

// eventually polls cond until it holds or the test timeout passes.
func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, gameEngineTestTimeout, 5*time.Millisecond)
}

// tryEveryCard scripts a terminal player who tries each hand position in
// turn and only draws once none of them can be played.
func tryEveryCard(turns int) string {
	var b strings.Builder
	for i := 0; i < turns; i++ {
		for pos := 1; pos <= 52; pos++ {
			b.WriteString(strconv.Itoa(pos) + "\n")
		}
		b.WriteString("d\n")
	}
	return b.String()
}
