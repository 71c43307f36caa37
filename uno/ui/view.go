package ui

import (
	"errors"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/render"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// View prints the session as it unfolds. It listens to every game event.
type View struct {
	terminal *Terminal
}

func NewView(terminal *Terminal) *View {
	return &View{terminal: terminal}
}

func (v *View) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	v.terminal.Println(msg.Message.FirstCardPlayed(payload.Card))
	v.terminal.Println(render.Card(payload.Card))
}

func (v *View) OnTurnStarted(payload event.TurnStartedPayload) {
	v.terminal.Println(render.Board(payload))
	if payload.Computer {
		v.terminal.Println()
		v.terminal.Println(msg.Message.ComputerThinking(payload.PlayerName))
		v.terminal.Sleep(consts.ComputerThinkDelay)
	}
}

func (v *View) OnMoveRejected(payload event.MoveRejectedPayload) {
	if errors.Is(payload.Err, consts.ErrorsIllegalPlay) {
		v.terminal.Println(msg.Message.IllegalPlay())
		return
	}
	v.terminal.Println(msg.Message.InvalidInput())
}

func (v *View) OnCardPlayed(payload event.CardPlayedPayload) {
	v.terminal.Println(msg.Message.PlayerPlayedCard(payload.PlayerName))
	v.terminal.Println(render.Card(payload.Card))
}

func (v *View) OnCardsDrawn(payload event.CardsDrawnPayload) {
	switch {
	case payload.Penalty:
		v.terminal.Println(msg.Message.PlayerDrawsPenalty(payload.PlayerName, len(payload.Cards)))
	case payload.Computer:
		v.terminal.Println(msg.Message.PlayerDrewCards(payload.PlayerName, len(payload.Cards)))
	default:
		v.terminal.Println(msg.Message.HumanPlayerDrewCards())
		v.terminal.Println(render.Cards(payload.Cards))
	}
}

func (v *View) OnDeckReshuffled(payload event.DeckReshuffledPayload) {
	v.terminal.Println(msg.Message.DeckReshuffled(payload.DeckSize))
}

func (v *View) OnColorPicked(payload event.ColorPickedPayload) {
	v.terminal.Println(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (v *View) OnTurnSkipped(payload event.TurnSkippedPayload) {
	v.terminal.Println(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (v *View) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	v.terminal.Println(msg.Message.TurnOrderReversed())
}

func (v *View) OnTurnEnded(payload event.TurnEndedPayload) {
	if payload.Computer {
		v.terminal.Sleep(consts.ComputerMoveDelay)
		return
	}
	// Terminal.Closed carries a failed read to the human's next move.
	_ = v.terminal.PressEnter()
}

func (v *View) OnPlayerWon(payload event.PlayerWonPayload) {
	v.terminal.Println()
	v.terminal.Println(msg.Message.WinnerFound(payload.PlayerName))
}
