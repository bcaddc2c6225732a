package engine

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/minaorangina/bartok/game"
	"github.com/minaorangina/bartok/protocol"
)

const defaultPollInterval = 50 * time.Millisecond

// CLIPlayer plays a human seat from a terminal.
type CLIPlayer struct {
	PlayerID     int
	In           io.Reader
	Out          io.Writer
	PollInterval time.Duration
}

// Play prompts for moves whenever it is this player's turn, until rounds
// games have finished, the input runs out or the player quits.
func (p *CLIPlayer) Play(ctx context.Context, ge GameEngine, rounds int) error {
	poll := p.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(p.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	lastRound, finished := 0, 0

	for {
		results, err := ge.Results(ctx)
		if err != nil {
			return err
		}
		for ; finished < len(results); finished++ {
			SendText(p.Out, buildGameOverText(results[finished], p.PlayerID))
		}
		if finished >= rounds {
			return nil
		}

		state, err := ge.State(ctx)
		if err != nil {
			return err
		}

		if state.Round != lastRound {
			if lastRound != 0 {
				SendText(p.Out, newRoundText, state.Round)
			}
			lastRound = state.Round
		}

		if state.Phase == game.PreTurn.String() && state.CurrentPlayer == p.PlayerID {
			SendText(p.Out, buildTableDisplayText(state, p.PlayerID))
			SendText(p.Out, promptText)

			var line string
			select {
			case <-ctx.Done():
				return ctx.Err()
			case l, ok := <-lines:
				if !ok {
					return nil
				}
				line = l
			}

			msg, quit, valid := parseInput(line, p.PlayerID)
			if quit {
				return nil
			}
			if !valid {
				SendText(p.Out, invalidText+"\n")
				continue
			}

			accepted, err := ge.Receive(ctx, msg)
			if err != nil {
				return err
			}
			if !accepted {
				SendText(p.Out, retryText+"\n")
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ge.Events():
		case <-time.After(poll):
		}
	}
}

func parseInput(line string, playerID int) (msg protocol.InboundMessage, quit, valid bool) {
	line = strings.ToLower(strings.TrimSpace(line))
	msg.PlayerID = playerID

	switch line {
	case "q", "quit":
		return msg, true, true
	case "d", "draw":
		msg.Command = protocol.Draw
		return msg, false, true
	}

	n, err := strconv.Atoi(line)
	if err != nil || n < 1 {
		return msg, false, false
	}
	msg.Command = protocol.Play
	msg.Decision = n - 1
	return msg, false, true
}
