package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

type Game struct {
	seats        []*Seat
	cycler       *Cycler
	deck         *Deck
	bus          *event.Bus
	rng          *rand.Rand
	currentColor color.Color
	winner       *Seat
}

type Option func(*Game)

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithDeck installs a prepared draw and discard pile instead of a fresh deck.
func WithDeck(deck *Deck) Option {
	return func(g *Game) {
		g.deck = deck
	}
}

func WithBus(bus *event.Bus) Option {
	return func(g *Game) {
		g.bus = bus
	}
}

// WithTurn makes the seat at index the one to play next.
func WithTurn(index int) Option {
	return func(g *Game) {
		g.cycler.current = index
	}
}

func WithDirection(direction Direction) Option {
	return func(g *Game) {
		g.cycler.direction = direction
	}
}

func WithColor(currentColor color.Color) Option {
	return func(g *Game) {
		g.currentColor = currentColor
	}
}

func New(seats []*Seat, opts ...Option) (*Game, error) {
	if len(seats) < consts.MinPlayers || len(seats) > consts.MaxPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	g := &Game{
		seats:        seats,
		cycler:       NewCycler(len(seats)),
		currentColor: color.Wild,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.deck == nil {
		g.deck = NewDeck(g.rng)
	}
	if g.bus == nil {
		g.bus = event.NewBus()
	}
	if g.cycler.current < 0 || g.cycler.current >= len(seats) {
		return nil, fmt.Errorf("%w: turn %d outside %d seats", consts.ErrorsInvariantViolation, g.cycler.current, len(seats))
	}
	if g.cycler.direction != Clockwise && g.cycler.direction != CounterClockwise {
		return nil, fmt.Errorf("%w: direction %d", consts.ErrorsInvariantViolation, g.cycler.direction)
	}
	if top, ok := g.deck.Top(); ok && g.currentColor == color.Wild {
		g.currentColor = top.Color()
	}
	return g, nil
}

func (g *Game) Seats() []*Seat {
	return g.seats
}

func (g *Game) Current() *Seat {
	return g.seats[g.cycler.Current()]
}

func (g *Game) CurrentIndex() int {
	return g.cycler.Current()
}

func (g *Game) Direction() Direction {
	return g.cycler.Direction()
}

func (g *Game) CurrentColor() color.Color {
	return g.currentColor
}

func (g *Game) Deck() *Deck {
	return g.deck
}

func (g *Game) Bus() *event.Bus {
	return g.bus
}

// Winner is nil until a seat has emptied its hand.
func (g *Game) Winner() *Seat {
	return g.winner
}

// Start shuffles, deals every seat its starting hand and turns up the first
// number card.
func (g *Game) Start() error {
	g.deck.Shuffle()
	hands := make([]*Hand, 0, len(g.seats))
	for _, seat := range g.seats {
		hands = append(hands, seat.Hand())
	}
	if err := g.deck.Deal(hands, consts.HandSize); err != nil {
		return err
	}
	firstCard, err := g.deck.FlipFirstCard()
	if err != nil {
		return err
	}
	g.currentColor = firstCard.Color()
	g.bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card:  firstCard,
		Color: g.currentColor,
	})
	return nil
}

// Run plays turns until a seat wins or an unrecoverable error occurs.
func (g *Game) Run() (*Seat, error) {
	for {
		finished, err := g.PlayTurn()
		if err != nil {
			return nil, err
		}
		if finished {
			return g.winner, nil
		}
	}
}

// PlayTurn plays one complete turn for the current seat and reports whether
// the session is over.
func (g *Game) PlayTurn() (bool, error) {
	if g.winner != nil {
		return true, nil
	}
	if err := g.checkInvariants(); err != nil {
		return false, err
	}

	index := g.cycler.Current()
	seat := g.seats[index]
	g.bus.TurnStarted.Emit(g.turnStartedPayload(index, seat))

	move, err := g.requestMove(index, seat)
	if err != nil {
		return false, err
	}

	skip := false
	if move.Draw() {
		if err := g.deal(index, 1, false); err != nil {
			return false, err
		}
	} else {
		playedCard, err := g.deck.Play(seat.Hand(), move.Index())
		if err != nil {
			return false, err
		}
		g.bus.CardPlayed.Emit(event.CardPlayedPayload{
			Seat:       index,
			PlayerName: seat.Name(),
			Card:       playedCard,
		})
		skip, err = g.PerformCardActions(index, playedCard)
		if err != nil {
			return false, err
		}
	}

	g.bus.TurnEnded.Emit(event.TurnEndedPayload{
		Seat:       index,
		PlayerName: seat.Name(),
		Computer:   seat.Computer(),
	})

	if seat.Hand().Empty() {
		g.winner = seat
		g.bus.PlayerWon.Emit(event.PlayerWonPayload{
			Seat:       index,
			PlayerName: seat.Name(),
		})
		return true, nil
	}

	g.advance(skip)
	return false, nil
}

func (g *Game) requestMove(index int, seat *Seat) (Move, error) {
	top, _ := g.deck.Top()
	playable := seat.Hand().PlayableIndices(top, g.currentColor)
	for {
		move, err := seat.Player().Play(playable, g.stateFor(index))
		if err != nil {
			if !seat.Computer() && consts.Recoverable(err) {
				g.rejectMove(index, seat, err)
				continue
			}
			return Move{}, err
		}
		if move.Draw() || contains(playable, move.Index()) {
			return move, nil
		}
		if seat.Computer() {
			return Move{}, fmt.Errorf("%w: %s chose unplayable card %d", consts.ErrorsInvariantViolation, seat.Name(), move.Index())
		}
		g.rejectMove(index, seat, consts.ErrorsIllegalPlay)
	}
}

func (g *Game) rejectMove(index int, seat *Seat, err error) {
	g.bus.MoveRejected.Emit(event.MoveRejectedPayload{
		Seat:       index,
		PlayerName: seat.Name(),
		Err:        err,
	})
}

// PerformCardActions resolves the effects of playedCard for the seat at
// index and reports whether the next seat is to be skipped.
func (g *Game) PerformCardActions(index int, playedCard card.Card) (skip bool, err error) {
	seat := g.seats[index]
	if playedCard.Color().Chromatic() {
		g.currentColor = playedCard.Color()
	}
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			if err := g.deal(g.cycler.Peek(), cardAction.Amount(), true); err != nil {
				return false, err
			}
		case action.SkipTurnAction:
			skip = true
		case action.PickColorAction:
			picked, err := g.pickColor(index, seat)
			if err != nil {
				return false, err
			}
			g.currentColor = picked
			g.bus.ColorPicked.Emit(event.ColorPickedPayload{
				Seat:       index,
				PlayerName: seat.Name(),
				Color:      picked,
			})
		case action.ReverseTurnsAction:
			g.cycler.Reverse()
			g.bus.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{
				Direction: int(g.cycler.Direction()),
			})
		}
	}
	return skip, nil
}

func (g *Game) pickColor(index int, seat *Seat) (color.Color, error) {
	for {
		picked, err := seat.Player().PickColor(g.stateFor(index))
		if err != nil {
			if !seat.Computer() && consts.Recoverable(err) {
				g.rejectMove(index, seat, err)
				continue
			}
			return color.Wild, err
		}
		if !picked.Chromatic() {
			return color.Wild, fmt.Errorf("%w: %s picked color %s", consts.ErrorsInvariantViolation, seat.Name(), picked.Name())
		}
		return picked, nil
	}
}

// deal draws amount cards into the hand of the seat at index.
func (g *Game) deal(index int, amount int, penalty bool) error {
	seat := g.seats[index]
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		refills := g.deck.Refills()
		drawn, err := g.deck.Draw(seat.Hand())
		if err != nil {
			return err
		}
		if g.deck.Refills() != refills {
			g.bus.DeckReshuffled.Emit(event.DeckReshuffledPayload{DeckSize: g.deck.Size()})
		}
		cards = append(cards, drawn)
	}
	g.bus.CardsDrawn.Emit(event.CardsDrawnPayload{
		Seat:       index,
		PlayerName: seat.Name(),
		Computer:   seat.Computer(),
		Cards:      cards,
		Penalty:    penalty,
	})
	return nil
}

func (g *Game) advance(skip bool) {
	next := g.cycler.Next()
	if skip {
		g.bus.TurnSkipped.Emit(event.TurnSkippedPayload{
			Seat:       next,
			PlayerName: g.seats[next].Name(),
		})
		g.cycler.Next()
	}
}

func (g *Game) checkInvariants() error {
	if !g.currentColor.Chromatic() {
		return fmt.Errorf("%w: current color is %s", consts.ErrorsInvariantViolation, g.currentColor.Name())
	}
	top, ok := g.deck.Top()
	if !ok {
		return fmt.Errorf("%w: discard pile is empty", consts.ErrorsInvariantViolation)
	}
	if !top.IsWild() && top.Color() != g.currentColor {
		return fmt.Errorf("%w: top card %s under current color %s", consts.ErrorsInvariantViolation, top.Face(), g.currentColor.Name())
	}
	return nil
}

// State returns the snapshot seen by the current seat.
func (g *Game) State() State {
	return g.stateFor(g.cycler.Current())
}

func (g *Game) stateFor(index int) State {
	top, _ := g.deck.Top()
	sequence := make([]string, 0, len(g.seats))
	counts := make([]int, 0, len(g.seats))
	for _, seat := range g.seats {
		sequence = append(sequence, seat.Name())
		counts = append(counts, seat.Hand().Size())
	}
	return State{
		LastPlayedCard:    top,
		CurrentColor:      g.currentColor,
		CurrentPlayer:     index,
		CurrentPlayerHand: g.seats[index].Hand().Cards(),
		PlayerSequence:    sequence,
		PlayerHandCounts:  counts,
		Direction:         g.cycler.Direction(),
		DeckSize:          g.deck.Size(),
	}
}

func (g *Game) turnStartedPayload(index int, seat *Seat) event.TurnStartedPayload {
	state := g.stateFor(index)
	return event.TurnStartedPayload{
		Seat:             index,
		PlayerName:       seat.Name(),
		Computer:         seat.Computer(),
		PlayerSequence:   state.PlayerSequence,
		PlayerHandCounts: state.PlayerHandCounts,
		Direction:        int(state.Direction),
		CurrentColor:     state.CurrentColor,
		LastPlayedCard:   state.LastPlayedCard,
		DeckSize:         state.DeckSize,
	}
}

func contains(indices []int, searched int) bool {
	for _, index := range indices {
		if index == searched {
			return true
		}
	}
	return false
}
