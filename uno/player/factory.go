package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/ui"
)

// CreateSeats seats the human first, then one computer per name, in turn order.
func CreateSeats(humanName string, computerNames []string, terminal *ui.Terminal, rng *rand.Rand) []*game.Seat {
	seats := make([]*game.Seat, 0, len(computerNames)+1)
	seats = append(seats, game.NewSeat(humanName, false, NewHuman(humanName, terminal)))
	for _, computerName := range computerNames {
		seats = append(seats, game.NewSeat(computerName, true, NewComputer(rng)))
	}
	return seats
}
