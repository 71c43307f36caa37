package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var kindNames = map[Kind]string{
	Number:       "Number",
	Skip:         "Skip",
	Reverse:      "Reverse",
	DrawTwo:      "DrawTwo",
	Wild:         "Wild",
	WildDrawFour: "WildDrawFour",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Card is one of the 108 UNO cards. Cards are values: two cards with the
// same color, kind and number are interchangeable and compare equal.
type Card struct {
	color  color.Color
	kind   Kind
	number int
}

func NewNumberCard(c color.Color, number int) Card {
	if !c.Chromatic() {
		panic(fmt.Sprintf("number card with color %s", c.Name()))
	}
	if number < 0 || number > 9 {
		panic(fmt.Sprintf("number card with number %d", number))
	}
	return Card{color: c, kind: Number, number: number}
}

func NewSkipCard(c color.Color) Card {
	return newActionCard(c, Skip)
}

func NewReverseCard(c color.Color) Card {
	return newActionCard(c, Reverse)
}

func NewDrawTwoCard(c color.Color) Card {
	return newActionCard(c, DrawTwo)
}

func NewWildCard() Card {
	return Card{color: color.Wild, kind: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{color: color.Wild, kind: WildDrawFour}
}

func newActionCard(c color.Color, kind Kind) Card {
	if !c.Chromatic() {
		panic(fmt.Sprintf("%s card with color %s", kind, c.Name()))
	}
	return Card{color: c, kind: kind}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Kind() Kind {
	return c.kind
}

// Number is meaningful only for Number cards.
func (c Card) Number() int {
	return c.number
}

func (c Card) IsWild() bool {
	return c.kind == Wild || c.kind == WildDrawFour
}

func (c Card) IsAction() bool {
	return c.kind == Skip || c.kind == Reverse || c.kind == DrawTwo
}

// Actions returns the effects of playing c, in resolution order:
// penalty draws first, then the color pick, then skip and reverse.
func (c Card) Actions() []action.Action {
	switch c.kind {
	case Skip:
		return []action.Action{
			action.NewSkipTurnAction(),
		}
	case Reverse:
		return []action.Action{
			action.NewReverseTurnsAction(),
		}
	case DrawTwo:
		return []action.Action{
			action.NewDrawCardsAction(2),
			action.NewSkipTurnAction(),
		}
	case Wild:
		return []action.Action{
			action.NewPickColorAction(),
		}
	case WildDrawFour:
		return []action.Action{
			action.NewDrawCardsAction(4),
			action.NewSkipTurnAction(),
			action.NewPickColorAction(),
		}
	default:
		return []action.Action{}
	}
}

// Face is the short uncolored label of the card.
func (c Card) Face() string {
	switch c.kind {
	case Number:
		return fmt.Sprintf("[%d]", c.number)
	case Skip:
		return "(/)"
	case Reverse:
		return "<=>"
	case DrawTwo:
		return "+2!"
	case Wild:
		return "(*)"
	case WildDrawFour:
		return "+4!"
	default:
		return "???"
	}
}

func (c Card) String() string {
	if c.IsWild() {
		return c.color.Paint(c.Face())
	}
	return c.color.Paint(c.Face()) + fmt.Sprintf("(%s)", c.color.Name())
}
