package event

type PlayerWonPayload struct {
	Seat       int
	PlayerName string
}

type PlayerWonListener interface {
	OnPlayerWon(PlayerWonPayload)
}

type PlayerWonEmitter struct {
	listeners []PlayerWonListener
}

func (e *PlayerWonEmitter) AddListener(listener PlayerWonListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *PlayerWonEmitter) Emit(payload PlayerWonPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerWon(payload)
	}
}
