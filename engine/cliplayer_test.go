package engine

import (
	"strings"
	"testing"
	"time"

	utils "github.com/minaorangina/bartok/internal"
	"github.com/minaorangina/bartok/layout"
	"github.com/minaorangina/bartok/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIPlayer(t *testing.T) {
	t.Run("plays a round", func(t *testing.T) {
		ge := newEngine(t, GameEngineOpts{Layout: layout.Default(2, 0), Seed: 6, AutoSettle: true})
		ctx := listening(t, ge)
		require.NoError(t, ge.Start(ctx))

		in := strings.NewReader("x\n99\n" + tryEveryCard(150))
		out := NewTestBuffer()
		p := &CLIPlayer{PlayerID: 1, In: in, Out: out, PollInterval: time.Millisecond}

		var err error
		utils.Within(t, 10*time.Second, func() {
			err = p.Play(ctx, ge, 1)
		})
		require.NoError(t, err)

		results, err := ge.Results(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		text := out.String()
		assert.Contains(t, text, "The target is the")
		assert.Contains(t, text, invalidText)
		assert.Contains(t, text, retryText)
		assert.Contains(t, text, buildGameOverText(results[0], 1))
	})

	t.Run("quits", func(t *testing.T) {
		ge := newEngine(t, GameEngineOpts{Layout: layout.Default(2, 0), Seed: 6, AutoSettle: true})
		ctx := listening(t, ge)
		require.NoError(t, ge.Start(ctx))

		p := &CLIPlayer{PlayerID: 1, In: strings.NewReader("q\n"), Out: NewTestBuffer()}
		utils.Within(t, gameEngineTestTimeout, func() {
			assert.NoError(t, p.Play(ctx, ge, 1))
		})
	})
}

func TestParseInput(t *testing.T) {
	cases := []struct {
		in    string
		cmd   protocol.Cmd
		idx   int
		quit  bool
		valid bool
	}{
		{"d", protocol.Draw, 0, false, true},
		{" Draw ", protocol.Draw, 0, false, true},
		{"3", protocol.Play, 2, false, true},
		{"q", protocol.Null, 0, true, true},
		{"0", protocol.Null, 0, false, false},
		{"seven", protocol.Null, 0, false, false},
	}

	for _, c := range cases {
		msg, quit, valid := parseInput(c.in, 1)
		utils.TableAssertEqual(t, c.in, valid, c.valid)
		utils.TableAssertEqual(t, c.in, quit, c.quit)
		if valid && !quit {
			utils.TableAssertEqual(t, c.in, msg.Command, c.cmd)
			utils.TableAssertEqual(t, c.in, msg.Decision, c.idx)
			utils.TableAssertEqual(t, c.in, msg.PlayerID, 1)
		}
	}
}
