package game

import (
	"github.com/ratel-online/uno/uno/card/color"
)

// Player decides for a seat. Humans and computer policies both implement it.
type Player interface {
	// Play picks a move; playable lists the hand indices that may be played.
	Play(playable []int, gameState State) (Move, error)
	// PickColor names the color in force after a wild card.
	PickColor(gameState State) (color.Color, error)
}

// Move is either a hand index to play or a draw.
type Move struct {
	index int
	draw  bool
}

func PlayCard(index int) Move {
	return Move{index: index}
}

func DrawCard() Move {
	return Move{index: -1, draw: true}
}

func (m Move) Index() int {
	return m.index
}

func (m Move) Draw() bool {
	return m.draw
}
