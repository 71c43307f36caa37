package card_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	require.Equal(t, card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Red, 5))
	require.NotEqual(t, card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Blue, 5))
	require.NotEqual(t, card.NewSkipCard(color.Red), card.NewReverseCard(color.Red))
	require.True(t, card.NewWildCard() == card.NewWildCard())
}

func TestWildCardsAreWildColored(t *testing.T) {
	require.Equal(t, color.Wild, card.NewWildCard().Color())
	require.Equal(t, color.Wild, card.NewWildDrawFourCard().Color())
	require.True(t, card.NewWildDrawFourCard().IsWild())
	require.False(t, card.NewDrawTwoCard(color.Green).IsWild())
	require.True(t, card.NewDrawTwoCard(color.Green).IsAction())
}

func TestConstructorsRejectInvalidCards(t *testing.T) {
	require.Panics(t, func() { card.NewNumberCard(color.Wild, 3) })
	require.Panics(t, func() { card.NewNumberCard(color.Red, 10) })
	require.Panics(t, func() { card.NewNumberCard(color.Red, -1) })
	require.Panics(t, func() { card.NewSkipCard(color.Wild) })
}

func TestActions(t *testing.T) {
	scenarios := []struct {
		description string
		card        card.Card
		expected    []action.Action
	}{
		{
			description: "number_card_has_no_actions",
			card:        card.NewNumberCard(color.Yellow, 4),
			expected:    []action.Action{},
		},
		{
			description: "skip_card_skips",
			card:        card.NewSkipCard(color.Yellow),
			expected:    []action.Action{action.NewSkipTurnAction()},
		},
		{
			description: "reverse_card_reverses",
			card:        card.NewReverseCard(color.Yellow),
			expected:    []action.Action{action.NewReverseTurnsAction()},
		},
		{
			description: "draw_two_card_draws_before_skipping",
			card:        card.NewDrawTwoCard(color.Yellow),
			expected: []action.Action{
				action.NewDrawCardsAction(2),
				action.NewSkipTurnAction(),
			},
		},
		{
			description: "wild_card_picks_color",
			card:        card.NewWildCard(),
			expected:    []action.Action{action.NewPickColorAction()},
		},
		{
			description: "wild_draw_four_card_draws_before_picking_color",
			card:        card.NewWildDrawFourCard(),
			expected: []action.Action{
				action.NewDrawCardsAction(4),
				action.NewSkipTurnAction(),
				action.NewPickColorAction(),
			},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.card.Actions())
		})
	}
}

func TestFace(t *testing.T) {
	require.Equal(t, "[7]", card.NewNumberCard(color.Blue, 7).Face())
	require.Equal(t, "+4!", card.NewWildDrawFourCard().Face())
	require.Contains(t, card.NewNumberCard(color.Blue, 7).String(), "(Blue)")
}
