/*
Package maze provides the grid primitives for rectangular mazes.

It defines the `Room` structure, addressed by (row, col) and holding four
directional wall slots and a visited marker, and the `Grid` container that
owns a rectangle of rooms.

The package covers bounds checking, directional neighbor lookup, and grid
initialization. Wall carving, traversal, and rendering belong to the
caller: the grid hands out rooms and the caller mutates their walls and
visited markers.
*/
package maze

import "errors"

var (
	// ErrInvalidDimensions is returned by New when either dimension is
	// not positive.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
)

// InRange returns true if (row, col) addresses a room inside a grid of
// rows x cols. Pure arithmetic, defined for any int inputs; no grid needs
// to exist.
func InRange(row, col, rows, cols int) bool {
	return row >= 0 && row < rows && col >= 0 && col < cols
}

// Grid is a rectangular collection of rooms addressed by (row, col).
// Rooms live in a single flat buffer in row-major order; dimensions are
// fixed at construction.
type Grid struct {
	rows  int    // Number of rows in the grid
	cols  int    // Number of columns in the grid
	rooms []Room // Flat row-major room buffer, len rows*cols
}

// New allocates a rows x cols grid and initializes every room: coordinates
// matching its slot in the grid, all four wall slots unset, and not
// visited.
func New(rows, cols int) (*Grid, error) {
	if min(rows, cols) <= 0 {
		return nil, ErrInvalidDimensions
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		rooms: make([]Room, rows*cols),
	}
	g.Reset()
	return g, nil
}

// Reset re-initializes every room in place, as if the grid were fresh from
// New. Rooms are filled row by row; callers may rely only on every room
// being initialized exactly once, not on the order.
func (g *Grid) Reset() {
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			g.rooms[i*g.cols+j] = Room{row: i, col: j}
		}
	}
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the total number of rooms in the grid.
func (g *Grid) Size() int {
	return g.rows * g.cols
}

// InRange returns true if (row, col) addresses a room in this grid.
func (g *Grid) InRange(row, col int) bool {
	return InRange(row, col, g.rows, g.cols)
}

// RoomAt returns the room at (row, col). The second return value is false
// when the coordinate falls outside the grid.
func (g *Grid) RoomAt(row, col int) (*Room, bool) {
	if !g.InRange(row, col) {
		return nil, false
	}
	return &g.rooms[row*g.cols+col], true
}

// Neighbor returns the room adjacent to the given room on the given side.
// The second return value is false when that side faces the grid border or
// the direction is not a cardinal direction. The room must belong to this
// grid; the lookup trusts its recorded coordinates.
func (g *Grid) Neighbor(room *Room, dir Direction) (*Room, bool) {
	if !dir.IsValid() {
		return nil, false
	}
	dRow, dCol := dir.Delta()
	return g.RoomAt(room.row+dRow, room.col+dCol)
}

// Neighbors returns the in-bounds single-step moves from pos, in wall-slot
// direction order. A border position yields fewer than four moves.
func (g *Grid) Neighbors(pos Position) []Move {
	var result []Move
	for _, dir := range Directions() {
		dRow, dCol := dir.Delta()
		to := Position{Row: pos.Row + dRow, Col: pos.Col + dCol}
		if g.InRange(to.Row, to.Col) {
			result = append(result, Move{From: pos, To: to, Direction: dir})
		}
	}
	return result
}
