package game

type Seat struct {
	name     string
	hand     *Hand
	computer bool
	player   Player
}

func NewSeat(name string, computer bool, player Player) *Seat {
	return &Seat{
		name:     name,
		hand:     NewHand(),
		computer: computer,
		player:   player,
	}
}

func (s *Seat) Name() string {
	return s.name
}

func (s *Seat) Hand() *Hand {
	return s.hand
}

func (s *Seat) Computer() bool {
	return s.computer
}

func (s *Seat) Player() Player {
	return s.player
}
