package event

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type TurnStartedPayload struct {
	Seat             int
	PlayerName       string
	Computer         bool
	PlayerSequence   []string
	PlayerHandCounts []int
	Direction        int
	CurrentColor     color.Color
	LastPlayedCard   card.Card
	DeckSize         int
}

type TurnStartedListener interface {
	OnTurnStarted(TurnStartedPayload)
}

type TurnStartedEmitter struct {
	listeners []TurnStartedListener
}

func (e *TurnStartedEmitter) AddListener(listener TurnStartedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnStartedEmitter) Emit(payload TurnStartedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnStarted(payload)
	}
}
