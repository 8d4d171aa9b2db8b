package aoc

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction, clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Delta returns the unit vector for d. Down is +Y.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

func (d Direction) Turn(right bool) Direction {
	if right {
		return d.TurnRight()
	}
	return d.TurnLeft()
}

func (d Direction) TurnRight() Direction {
	return (d + 1) & 3
}

func (d Direction) TurnLeft() Direction {
	return (d + 3) & 3
}

func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// ParseDirection decodes a direction from an arrow glyph (^ > v <), a
// compass letter (N E S W) or a U/D/L/R letter. Letters are accepted in
// either case. ok is false for anything else.
func ParseDirection(r rune) (d Direction, ok bool) {
	switch r {
	case '^', 'N', 'n', 'U', 'u':
		return Up, true
	case '>', 'E', 'e', 'R', 'r':
		return Right, true
	case 'v', 'S', 's', 'D', 'd':
		return Down, true
	case '<', 'W', 'w', 'L', 'l':
		return Left, true
	}
	return 0, false
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}
