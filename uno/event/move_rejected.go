package event

type MoveRejectedPayload struct {
	Seat       int
	PlayerName string
	Err        error
}

type MoveRejectedListener interface {
	OnMoveRejected(MoveRejectedPayload)
}

type MoveRejectedEmitter struct {
	listeners []MoveRejectedListener
}

func (e *MoveRejectedEmitter) AddListener(listener MoveRejectedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *MoveRejectedEmitter) Emit(payload MoveRejectedPayload) {
	for _, listener := range e.listeners {
		listener.OnMoveRejected(payload)
	}
}
