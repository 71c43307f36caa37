package event

import "github.com/ratel-online/uno/uno/card"

type CardsDrawnPayload struct {
	Seat       int
	PlayerName string
	Computer   bool
	Cards      []card.Card
	// Penalty is set when the cards were dealt by a Draw Two or Wild Draw Four.
	Penalty bool
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type CardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *CardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *CardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}
