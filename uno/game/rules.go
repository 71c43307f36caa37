package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidate may be played on top while
// currentColor is the color in force.
func Playable(candidate card.Card, top card.Card, currentColor color.Color) bool {
	if candidate.IsWild() {
		return true
	}
	if candidate.Color() == currentColor {
		return true
	}
	// Only reachable when currentColor differs from the top card's color.
	if candidate.Kind() == top.Kind() && candidate.Color() == top.Color() {
		return true
	}
	return candidate.Kind() == card.Number &&
		top.Kind() == card.Number &&
		candidate.Number() == top.Number()
}
