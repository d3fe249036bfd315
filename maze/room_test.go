package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomWalls(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	room, ok := g.RoomAt(0, 1)
	require.True(t, ok)

	t.Run("fresh room has no walls", func(t *testing.T) {
		for _, dir := range Directions() {
			assert.False(t, room.HasWall(dir))

			_, set := room.WallAt(dir)
			assert.False(t, set)
		}
	})

	t.Run("set and read back a wall", func(t *testing.T) {
		room.SetWall(North, 7)

		assert.True(t, room.HasWall(North))
		id, set := room.WallAt(North)
		assert.True(t, set)
		assert.Equal(t, 7, id)

		// Other slots are untouched.
		assert.False(t, room.HasWall(South))
		assert.False(t, room.HasWall(West))
		assert.False(t, room.HasWall(East))
	})

	t.Run("wall id zero is a real wall", func(t *testing.T) {
		room.SetWall(East, 0)

		assert.True(t, room.HasWall(East))
		id, set := room.WallAt(East)
		assert.True(t, set)
		assert.Equal(t, 0, id)
	})

	t.Run("clear returns the slot to unset", func(t *testing.T) {
		room.ClearWall(North)

		assert.False(t, room.HasWall(North))
		_, set := room.WallAt(North)
		assert.False(t, set)
	})

	t.Run("invalid direction is ignored", func(t *testing.T) {
		room.SetWall(Direction(9), 3)
		room.ClearWall(Direction(-2))

		assert.False(t, room.HasWall(Direction(9)))
		_, set := room.WallAt(Direction(9))
		assert.False(t, set)
	})
}

func TestRoomVisited(t *testing.T) {
	g, err := New(1, 1)
	require.NoError(t, err)

	room, ok := g.RoomAt(0, 0)
	require.True(t, ok)

	assert.False(t, room.Visited())

	room.SetVisited(true)
	assert.True(t, room.Visited())

	room.SetVisited(false)
	assert.False(t, room.Visited())
}

func TestRoomPosition(t *testing.T) {
	g, err := New(3, 5)
	require.NoError(t, err)

	room, ok := g.RoomAt(2, 4)
	require.True(t, ok)

	assert.Equal(t, 2, room.Row())
	assert.Equal(t, 4, room.Col())
	assert.Equal(t, Position{Row: 2, Col: 4}, room.Position())
}
