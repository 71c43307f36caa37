package action

// Action describes one effect of a played card. The turn controller
// resolves a card's actions in the order the card lists them.
type Action interface{}

// DrawCardsAction deals Amount penalty cards to the next seat.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

// SkipTurnAction marks the next seat to be skipped. Several marks in one
// turn still skip a single seat.
type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}
