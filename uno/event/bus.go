package event

// Bus groups one emitter per event type. A game owns a single bus; views,
// tallies and tests subscribe to it.
type Bus struct {
	FirstCardPlayed   *FirstCardPlayedEmitter
	TurnStarted       *TurnStartedEmitter
	MoveRejected      *MoveRejectedEmitter
	CardPlayed        *CardPlayedEmitter
	CardsDrawn        *CardsDrawnEmitter
	DeckReshuffled    *DeckReshuffledEmitter
	ColorPicked       *ColorPickedEmitter
	TurnSkipped       *TurnSkippedEmitter
	TurnOrderReversed *TurnOrderReversedEmitter
	TurnEnded         *TurnEndedEmitter
	PlayerWon         *PlayerWonEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed:   &FirstCardPlayedEmitter{},
		TurnStarted:       &TurnStartedEmitter{},
		MoveRejected:      &MoveRejectedEmitter{},
		CardPlayed:        &CardPlayedEmitter{},
		CardsDrawn:        &CardsDrawnEmitter{},
		DeckReshuffled:    &DeckReshuffledEmitter{},
		ColorPicked:       &ColorPickedEmitter{},
		TurnSkipped:       &TurnSkippedEmitter{},
		TurnOrderReversed: &TurnOrderReversedEmitter{},
		TurnEnded:         &TurnEndedEmitter{},
		PlayerWon:         &PlayerWonEmitter{},
	}
}

// Subscribe adds listener to every emitter whose listener interface it implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(TurnStartedListener); ok {
		b.TurnStarted.AddListener(l)
	}
	if l, ok := listener.(MoveRejectedListener); ok {
		b.MoveRejected.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(DeckReshuffledListener); ok {
		b.DeckReshuffled.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		b.TurnSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		b.TurnOrderReversed.AddListener(l)
	}
	if l, ok := listener.(TurnEndedListener); ok {
		b.TurnEnded.AddListener(l)
	}
	if l, ok := listener.(PlayerWonListener); ok {
		b.PlayerWon.AddListener(l)
	}
}
