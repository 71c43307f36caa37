package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

const (
	handRowSize = 4
	clearScreen = "\033[H\033[2J"
)

var labels = map[card.Kind]string{
	card.Skip:         "SKP",
	card.Reverse:      " ↻ ",
	card.DrawTwo:      "+2 ",
	card.Wild:         "WLD",
	card.WildDrawFour: "+4 ",
}

// CardLines returns the three lines of the glyph of c, each painted in its color.
func CardLines(c card.Card) []string {
	label, ok := labels[c.Kind()]
	if c.Kind() == card.Number {
		label, ok = fmt.Sprintf(" %d ", c.Number()), true
	}
	if !ok {
		label = "???"
	}
	return []string{
		c.Color().Paint("┌───┐"),
		c.Color().Paint("│" + label + "│"),
		c.Color().Paint("└───┘"),
	}
}

func Card(c card.Card) string {
	return strings.Join(CardLines(c), "\n")
}

// Cards lays glyphs side by side without labels.
func Cards(cards []card.Card) string {
	buf := bytes.Buffer{}
	writeRow(&buf, cards)
	return strings.TrimSuffix(buf.String(), "\n")
}

// Hand renders cards in rows of four, each glyph under its 1-based position.
func Hand(name string, cards []card.Card) string {
	if len(cards) == 0 {
		return fmt.Sprintf("%s's hand is empty!", name)
	}
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%s's hand (%d cards):\n", name, len(cards)))
	for start := 0; start < len(cards); start += handRowSize {
		end := start + handRowSize
		if end > len(cards) {
			end = len(cards)
		}
		positions := make([]string, 0, end-start)
		for position := start + 1; position <= end; position++ {
			positions = append(positions, fmt.Sprintf("%3d  ", position))
		}
		buf.WriteString(strings.TrimRight("  "+strings.Join(positions, " "), " ") + "\n")
		writeRow(&buf, cards[start:end])
		buf.WriteString("\n")
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func writeRow(buf *bytes.Buffer, cards []card.Card) {
	rows := make([][]string, 3)
	for _, c := range cards {
		for line, text := range CardLines(c) {
			rows[line] = append(rows[line], text)
		}
	}
	for _, row := range rows {
		buf.WriteString("  " + strings.Join(row, " ") + "\n")
	}
}

func Header() string {
	bar := strings.Repeat("═", 62)
	title := fmt.Sprintf("║%-24s%-38s║", "", "UNO GAME")
	return color.Blue.Paint(strings.Join([]string{"╔" + bar + "╗", title, "╚" + bar + "╝"}, "\n"))
}

// TurnOrder lists the seats with their hand sizes, joined by an arrow
// pointing in the direction of play. The current seat is highlighted.
func TurnOrder(names []string, counts []int, current int, direction int) string {
	parts := make([]string, 0, len(names))
	for index, name := range names {
		part := fmt.Sprintf("%s(%d)", name, counts[index])
		if index == current {
			part = color.Blue.Paint(part)
		}
		parts = append(parts, part)
	}
	separator := " → "
	if direction < 0 {
		separator = " ← "
	}
	return strings.Join(parts, separator)
}

// Board is the full screen shown at the start of every turn.
func Board(payload event.TurnStartedPayload) string {
	buf := bytes.Buffer{}
	buf.WriteString(clearScreen)
	buf.WriteString(Header() + "\n\n")
	buf.WriteString(fmt.Sprintf("%s's turn | %s\n\n",
		color.Yellow.Paint(payload.PlayerName),
		TurnOrder(payload.PlayerSequence, payload.PlayerHandCounts, payload.Seat, payload.Direction),
	))
	buf.WriteString("Top:\n")
	buf.WriteString(Card(payload.LastPlayedCard) + "\n")
	buf.WriteString(fmt.Sprintf("| Color: %s | Deck: %d cards |", payload.CurrentColor, payload.DeckSize))
	return buf.String()
}

// Positions formats 0-based hand indices as the 1-based positions a player types.
func Positions(indices []int) string {
	positions := make([]string, 0, len(indices))
	for _, index := range indices {
		positions = append(positions, fmt.Sprint(index+1))
	}
	return "[" + strings.Join(positions, ", ") + "]"
}
