package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// ChooseIndex picks the hand index a computer plays. Number cards are
// preferred over action cards and action cards over wild cards; within the
// preferred group the choice is uniform. It reports false when nothing in
// hand can be played.
func ChooseIndex(rng *rand.Rand, hand []card.Card, top card.Card, currentColor color.Color) (int, bool) {
	var numbers, actions, wilds []int
	for index, candidate := range hand {
		if !game.Playable(candidate, top, currentColor) {
			continue
		}
		switch {
		case candidate.IsWild():
			wilds = append(wilds, index)
		case candidate.IsAction():
			actions = append(actions, index)
		default:
			numbers = append(numbers, index)
		}
	}
	for _, tier := range [][]int{numbers, actions, wilds} {
		if len(tier) > 0 {
			return tier[rng.Intn(len(tier))], true
		}
	}
	return -1, false
}

type computer struct {
	rng *rand.Rand
}

func NewComputer(rng *rand.Rand) game.Player {
	return computer{rng: rng}
}

func (p computer) Play(playable []int, gameState game.State) (game.Move, error) {
	index, ok := ChooseIndex(p.rng, gameState.CurrentPlayerHand, gameState.LastPlayedCard, gameState.CurrentColor)
	if !ok {
		return game.DrawCard(), nil
	}
	return game.PlayCard(index), nil
}

func (p computer) PickColor(gameState game.State) (color.Color, error) {
	return color.Chromatics[p.rng.Intn(len(color.Chromatics))], nil
}
