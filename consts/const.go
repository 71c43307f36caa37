package consts

import (
	"errors"
	"time"
)

const (
	HandSize   = 7
	MinPlayers = 2
	// MaxPlayers keeps 108 cards enough for the deal plus a starting flip.
	MaxPlayers = 10

	HumanName = "You"

	ComputerThinkDelay = 2 * time.Second
	ComputerMoveDelay  = 1 * time.Second
)

var ComputerNames = []string{"Alice", "Bob", "Charlie"}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInputInvalid       = NewErr(1, false, "Input invalid. ")
	ErrorsIllegalPlay        = NewErr(1, false, "Card cannot be played. ")
	ErrorsInputClosed        = NewErr(1, true, "Input closed. ")
	ErrorsGamePlayersInvalid = NewErr(1, true, "Game players invalid. ")
	ErrorsDeckExhausted      = NewErr(2, true, "Deck exhausted. ")
	ErrorsInvariantViolation = NewErr(3, true, "Internal invariant violation. ")
)

// Recoverable reports whether err is a consts.Error that does not end the session.
func Recoverable(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return !e.Exit
	}
	return false
}
