package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/bartok/protocol"
)

const (
	promptText    = "\nPlay a card by number, or type \"d\" to draw: "
	retryText     = "You can't play that. Match the target's rank or suit, or draw."
	invalidText   = "Invalid entry. Please type a card number or \"d\"."
	gameOverText  = "\nGame over! Player %d wins.\n"
	youWinText    = "\nGame over! You win! 🎉\n"
	stalemateText = "\nGame over! Nobody can move, so nobody wins.\n"
	newRoundText  = "\nShuffling up for round %d...\n"
	drawPileText  = "Draw pile: %d cards. Discard pile: %d cards.\n"
	targetText    = "The target is the %s.\n"
	opponentText  = "- Player %d has %d cards\n"
	yourHandText  = "\nIn your hand you have:\n"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func buildTableDisplayText(state protocol.GameState, me int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, targetText, state.Target)
	fmt.Fprintf(&b, drawPileText, state.DrawPile, state.DiscardPile)
	for _, p := range state.Players {
		if p.PlayerID != me {
			fmt.Fprintf(&b, opponentText, p.PlayerID, p.CardCount)
		}
	}

	b.WriteString(yourHandText)
	for i, c := range state.Hand {
		fmt.Fprintf(&b, "%d - %s\n", i+1, c)
	}

	return b.String()
}

func buildGameOverText(state protocol.GameState, me int) string {
	if state.Winner == 0 {
		return stalemateText
	}
	if state.Winner == me {
		return youWinText
	}
	return fmt.Sprintf(gameOverText, state.Winner)
}
