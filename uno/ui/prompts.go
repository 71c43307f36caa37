package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
)

// PromptMove asks for a 1-based hand position or 'd' to draw and returns the
// 0-based index. Whether the card may be played is not checked here.
func (t *Terminal) PromptMove(handSize int) (index int, draw bool, err error) {
	t.Print(msg.Message.CardPrompt(handSize))
	input, err := t.ReadLine()
	if err != nil {
		return 0, false, err
	}
	if strings.EqualFold(input, "d") {
		return 0, true, nil
	}
	position, err := strconv.Atoi(input)
	if err != nil || position < 1 || position > handSize {
		return 0, false, fmt.Errorf("%w: %q", consts.ErrorsInputInvalid, input)
	}
	return position - 1, false, nil
}

func (t *Terminal) PromptColor() (color.Color, error) {
	t.Printlns(msg.Message.ColorPrompt())
	t.Print(msg.Message.ColorChoicePrompt())
	input, err := t.ReadLine()
	if err != nil {
		return color.Wild, err
	}
	choice, err := strconv.Atoi(input)
	if err != nil {
		return color.Wild, fmt.Errorf("%w: %q", consts.ErrorsInputInvalid, input)
	}
	picked, err := color.ByIndex(choice)
	if err != nil {
		return color.Wild, fmt.Errorf("%w: %v", consts.ErrorsInputInvalid, err)
	}
	return picked, nil
}

func (t *Terminal) PressEnter() error {
	t.Print(msg.Message.PressEnter())
	_, err := t.ReadLine()
	return err
}
