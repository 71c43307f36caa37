package render_test

import (
	"strings"
	"testing"

	fatihcolor "github.com/fatih/color"
	"github.com/ratel-online/uno/render"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	fatihcolor.NoColor = true
}

func TestCardLines(t *testing.T) {
	tests := []struct {
		card  card.Card
		label string
	}{
		{card.NewNumberCard(color.Red, 7), "│ 7 │"},
		{card.NewSkipCard(color.Blue), "│SKP│"},
		{card.NewReverseCard(color.Green), "│ ↻ │"},
		{card.NewDrawTwoCard(color.Yellow), "│+2 │"},
		{card.NewWildCard(), "│WLD│"},
		{card.NewWildDrawFourCard(), "│+4 │"},
	}
	for _, test := range tests {
		t.Run(test.card.Kind().String(), func(t *testing.T) {
			assert.Equal(t, []string{"┌───┐", test.label, "└───┘"}, render.CardLines(test.card))
		})
	}
}

func TestHandRowsOfFour(t *testing.T) {
	cards := []card.Card{
		card.NewNumberCard(color.Red, 1),
		card.NewNumberCard(color.Red, 2),
		card.NewNumberCard(color.Red, 3),
		card.NewNumberCard(color.Red, 4),
		card.NewWildCard(),
	}

	lines := strings.Split(render.Hand("You", cards), "\n")

	require.Equal(t, "You's hand (5 cards):", lines[0])
	assert.Equal(t, "    1     2     3     4", lines[1])
	assert.Equal(t, "  ┌───┐ ┌───┐ ┌───┐ ┌───┐", lines[2])
	assert.Equal(t, "  │ 1 │ │ 2 │ │ 3 │ │ 4 │", lines[3])
	assert.Equal(t, "    5", lines[6])
	assert.Equal(t, "  │WLD│", lines[8])
	assert.Equal(t, "You's hand is empty!", render.Hand("You", nil))
}

func TestTurnOrder(t *testing.T) {
	names := []string{"You", "Alice", "Bob"}
	counts := []int{7, 6, 5}

	assert.Equal(t, "You(7) → Alice(6) → Bob(5)", render.TurnOrder(names, counts, 1, 1))
	assert.Equal(t, "You(7) ← Alice(6) ← Bob(5)", render.TurnOrder(names, counts, 0, -1))
}

func TestBoard(t *testing.T) {
	board := render.Board(event.TurnStartedPayload{
		Seat:             0,
		PlayerName:       "You",
		PlayerSequence:   []string{"You", "Alice"},
		PlayerHandCounts: []int{7, 7},
		Direction:        1,
		CurrentColor:     color.Green,
		LastPlayedCard:   card.NewNumberCard(color.Green, 4),
		DeckSize:         93,
	})

	assert.Contains(t, board, "UNO GAME")
	assert.Contains(t, board, "You's turn | You(7) → Alice(7)")
	assert.Contains(t, board, "│ 4 │")
	assert.Contains(t, board, "| Color: Green | Deck: 93 cards |")
}

func TestPositions(t *testing.T) {
	assert.Equal(t, "[1, 3, 4]", render.Positions([]int{0, 2, 3}))
	assert.Equal(t, "[]", render.Positions(nil))
}
