package msg

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return fmt.Sprintf(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return fmt.Sprintf("First card is %s", card)
}

func (m MessageWriter) ComputerThinking(playerName string) string {
	return fmt.Sprintf("%s is thinking...", playerName)
}

func (m MessageWriter) HumanPlayerHasNoPlayableCards() string {
	return "No playable cards. Drawing a card..."
}

func (m MessageWriter) PlayableCards(positions string) string {
	return fmt.Sprintf("Playable cards: %s", positions)
}

func (m MessageWriter) HumanPlayerDrewCards() string {
	return "Drew:"
}

func (m MessageWriter) PlayerDrewCards(playerName string, amount int) string {
	if amount == 1 {
		return fmt.Sprintf("%s drew a card!", playerName)
	}
	return fmt.Sprintf("%s drew %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerDrawsPenalty(playerName string, amount int) string {
	return fmt.Sprintf("%s draws %d cards!", playerName, amount)
}

func (m MessageWriter) PlayerPlayedCard(playerName string) string {
	return fmt.Sprintf("%s plays:", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return fmt.Sprintf("%s chose color: %s", playerName, color)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return fmt.Sprintf("%s is skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return "Direction reversed!"
}

func (m MessageWriter) DeckReshuffled(deckSize int) string {
	return fmt.Sprintf("Discard pile shuffled into the deck, %d cards left.", deckSize)
}

func (m MessageWriter) IllegalPlay() string {
	return "Invalid choice. Please select a playable card or draw."
}

func (m MessageWriter) InvalidInput() string {
	return "Invalid input. Please try again."
}

func (m MessageWriter) CardPrompt(handSize int) string {
	return fmt.Sprintf("Choose a card to play (1-%d) or 'd' to draw: ", handSize)
}

func (m MessageWriter) ColorPrompt() []string {
	lines := []string{"Choose a color:"}
	for index, choice := range color.Chromatics {
		lines = append(lines, choice.Paintf("%d. %s", index+1, choice.Name()))
	}
	return lines
}

func (m MessageWriter) ColorChoicePrompt() string {
	return fmt.Sprintf("Enter choice (1-%d): ", len(color.Chromatics))
}

func (m MessageWriter) PressEnter() string {
	return "Press Enter to continue..."
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return fmt.Sprintf("%s wins!", playerName)
}

func (m MessageWriter) GameOver() string {
	return "Game Over! Thanks for playing!"
}

func (m MessageWriter) Interrupted() string {
	return "Game interrupted. Thanks for playing!"
}

func (m MessageWriter) SummaryLine(playerName string, played, drawn, penalty int) string {
	return fmt.Sprintf("%-10s played %3d  drew %3d  penalty %3d", playerName, played, drawn, penalty)
}
