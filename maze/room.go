package maze

// Position represents the position of a room in the maze grid.
type Position struct {
	Row int // Row index of the room
	Col int // Column index of the room
}

// Move represents a single step between two adjacent rooms.
type Move struct {
	From      Position  // Starting room
	To        Position  // Destination room
	Direction Direction // Direction of the step
}

// Wall is one wall slot of a room. The zero value is an unset slot; a set
// slot records the identifier of the wall placed there.
type Wall struct {
	id  int
	set bool
}

// Room represents a single cell of the maze grid. It carries its own
// coordinates, one wall slot per cardinal direction, and a visited marker
// for external traversal algorithms. Coordinates are fixed at
// initialization; walls and the visited flag are mutable.
type Room struct {
	row     int
	col     int
	walls   [NumDirections]Wall
	visited bool
}

// Row returns the row index of the room.
func (r *Room) Row() int {
	return r.row
}

// Col returns the column index of the room.
func (r *Room) Col() int {
	return r.col
}

// Position returns the room's coordinates as a Position.
func (r *Room) Position() Position {
	return Position{Row: r.row, Col: r.col}
}

// HasWall returns true if a wall has been placed on the given side.
func (r *Room) HasWall(d Direction) bool {
	return d.IsValid() && r.walls[d].set
}

// WallAt returns the identifier of the wall on the given side. The second
// return value is false when the slot is unset or the direction is not a
// cardinal direction.
func (r *Room) WallAt(d Direction) (int, bool) {
	if !d.IsValid() || !r.walls[d].set {
		return 0, false
	}
	return r.walls[d].id, true
}

// SetWall places a wall with the given identifier on the given side,
// replacing any wall already there. Invalid directions are ignored.
func (r *Room) SetWall(d Direction, id int) {
	if !d.IsValid() {
		return
	}
	r.walls[d] = Wall{id: id, set: true}
}

// ClearWall returns the wall slot on the given side to its unset state.
func (r *Room) ClearWall(d Direction) {
	if !d.IsValid() {
		return
	}
	r.walls[d] = Wall{}
}

// Visited returns true if the room has been marked visited.
func (r *Room) Visited() bool {
	return r.visited
}

// SetVisited sets the visited marker of the room.
func (r *Room) SetVisited(visited bool) {
	r.visited = visited
}
