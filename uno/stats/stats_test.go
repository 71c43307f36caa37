package stats_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/stats"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	recorder := stats.NewRecorder([]string{"You", "Alice"})
	bus := event.NewBus()
	bus.Subscribe(recorder)

	bus.CardPlayed.Emit(event.CardPlayedPayload{Seat: 0, PlayerName: "You", Card: card.NewDrawTwoCard(color.Red)})
	bus.CardsDrawn.Emit(event.CardsDrawnPayload{Seat: 1, PlayerName: "Alice", Cards: make([]card.Card, 2), Penalty: true})
	bus.CardsDrawn.Emit(event.CardsDrawnPayload{Seat: 1, PlayerName: "Alice", Cards: make([]card.Card, 1)})
	bus.CardPlayed.Emit(event.CardPlayedPayload{Seat: 0, PlayerName: "You", Card: card.NewNumberCard(color.Red, 4)})

	assert.Equal(t, []stats.Tally{
		{Name: "You", Played: 2},
		{Name: "Alice", Drawn: 1, Penalty: 2},
	}, recorder.Tallies())
	assert.Equal(t, []string{
		"You        played   2  drew   0  penalty   0",
		"Alice      played   0  drew   1  penalty   2",
	}, recorder.Summary())
}
