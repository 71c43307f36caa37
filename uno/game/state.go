package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// State is a read-only snapshot handed to players and views.
type State struct {
	LastPlayedCard    card.Card
	CurrentColor      color.Color
	CurrentPlayer     int
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  []int
	Direction         Direction
	DeckSize          int
}
