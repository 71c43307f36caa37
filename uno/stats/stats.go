package stats

import (
	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// Tally counts what one seat did during a session.
type Tally struct {
	Name    string `json:"name"`
	Played  int    `json:"played"`
	Drawn   int    `json:"drawn"`
	Penalty int    `json:"penalty"`
}

// Recorder keeps a Tally per seat, keyed by seat index. It listens to
// CardPlayed and CardsDrawn.
type Recorder struct {
	names   []string
	tallies *hashmap.HashMap
}

func NewRecorder(names []string) *Recorder {
	r := &Recorder{
		names:   names,
		tallies: hashmap.New(),
	}
	for seat, name := range names {
		r.tallies.Set(int64(seat), &Tally{Name: name})
	}
	return r
}

func (r *Recorder) tally(seat int) *Tally {
	if v, ok := r.tallies.Get(int64(seat)); ok {
		return v.(*Tally)
	}
	t := &Tally{}
	r.tallies.Set(int64(seat), t)
	return t
}

func (r *Recorder) OnCardPlayed(payload event.CardPlayedPayload) {
	r.tally(payload.Seat).Played++
}

func (r *Recorder) OnCardsDrawn(payload event.CardsDrawnPayload) {
	t := r.tally(payload.Seat)
	if payload.Penalty {
		t.Penalty += len(payload.Cards)
		return
	}
	t.Drawn += len(payload.Cards)
}

// Tallies returns a copy of every seat's tally in seat order.
func (r *Recorder) Tallies() []Tally {
	tallies := make([]Tally, 0, len(r.names))
	for seat := range r.names {
		tallies = append(tallies, *r.tally(seat))
	}
	return tallies
}

func (r *Recorder) Summary() []string {
	lines := make([]string, 0, len(r.names))
	for _, t := range r.Tallies() {
		lines = append(lines, msg.Message.SummaryLine(t.Name, t.Played, t.Drawn, t.Penalty))
	}
	return lines
}
