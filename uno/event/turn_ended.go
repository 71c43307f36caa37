package event

type TurnEndedPayload struct {
	Seat       int
	PlayerName string
	Computer   bool
}

type TurnEndedListener interface {
	OnTurnEnded(TurnEndedPayload)
}

type TurnEndedEmitter struct {
	listeners []TurnEndedListener
}

func (e *TurnEndedEmitter) AddListener(listener TurnEndedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnEndedEmitter) Emit(payload TurnEndedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnEnded(payload)
	}
}
