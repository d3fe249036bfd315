package maze

// NumDirections is the number of cardinal directions, and therefore the
// number of wall slots on every room.
const NumDirections = 4

// Direction identifies one cardinal side of a room. The constant order is
// the wall-slot order: a room's wall array is indexed by Direction.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// Directions returns the four cardinal directions in wall-slot order.
func Directions() []Direction {
	return []Direction{North, South, West, East}
}

// Delta returns the row and column offsets of a single step in the direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case West:
		return 0, -1
	case East:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	case East:
		return West
	default:
		return d
	}
}

// IsValid returns true if d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= East
}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	default:
		return "Unknown"
	}
}
