package game

type Direction int

const (
	CounterClockwise Direction = -1
	Clockwise        Direction = 1
)

func (d Direction) Reversed() Direction {
	switch d {
	case Clockwise:
		return CounterClockwise
	default:
		return Clockwise
	}
}

// Cycler walks seat indices around the table in the current direction.
type Cycler struct {
	size      int
	current   int
	direction Direction
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: Clockwise,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() Direction {
	return c.direction
}

// Peek returns the seat that Next would move to, without moving.
func (c *Cycler) Peek() int {
	return (c.current + int(c.direction) + c.size) % c.size
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

func (c *Cycler) Reverse() {
	c.direction = c.direction.Reversed()
}
