package player

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/render"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

type human struct {
	name     string
	terminal *ui.Terminal
}

func NewHuman(name string, terminal *ui.Terminal) game.Player {
	return human{name: name, terminal: terminal}
}

// Play shows the hand and reads a move. With nothing playable the draw is
// taken without asking, unless the input is already closed.
func (p human) Play(playable []int, gameState game.State) (game.Move, error) {
	if p.terminal.Closed() {
		return game.Move{}, consts.ErrorsInputClosed
	}
	p.terminal.Println()
	p.terminal.Println(render.Hand(p.name, gameState.CurrentPlayerHand))
	if len(playable) == 0 {
		p.terminal.Println(msg.Message.HumanPlayerHasNoPlayableCards())
		return game.DrawCard(), nil
	}
	p.terminal.Println(msg.Message.PlayableCards(render.Positions(playable)))
	index, draw, err := p.terminal.PromptMove(len(gameState.CurrentPlayerHand))
	if err != nil {
		return game.Move{}, err
	}
	if draw {
		return game.DrawCard(), nil
	}
	return game.PlayCard(index), nil
}

func (p human) PickColor(gameState game.State) (color.Color, error) {
	return p.terminal.PromptColor()
}
