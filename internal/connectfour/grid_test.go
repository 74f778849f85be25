package connectfour

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Run("Creates an empty grid", func(t *testing.T) {
		// When: creating a 7x6 grid
		grid, err := NewGrid(7, 6)
		require.NoError(t, err)

		// Then: every cell is empty
		assert.Equal(t, 7, grid.Width())
		assert.Equal(t, 6, grid.Height())
		for row := 0; row < 6; row++ {
			for col := 0; col < 7; col++ {
				assert.Equal(t, Empty, grid.At(Cell{Row: row, Col: col}))
			}
		}
		assert.False(t, grid.IsFull())
	})

	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 1}, {1, 0}, {-7, 6}} {
			grid, err := NewGrid(dims[0], dims[1])

			require.ErrorIs(t, err, ErrInvalidDimensions)
			assert.Nil(t, grid)
		}
	})
}

func TestGrid_At(t *testing.T) {
	// Given: a grid with one marker
	grid, err := NewGrid(4, 4)
	require.NoError(t, err)
	drop(t, grid, PlayerTwo, 1)

	// Then: the marker is readable and cells outside the grid read as empty
	assert.Equal(t, PlayerTwo, grid.At(Cell{Row: 0, Col: 1}))
	assert.Equal(t, Empty, grid.At(Cell{Row: -1, Col: 1}))
	assert.Equal(t, Empty, grid.At(Cell{Row: 0, Col: 4}))
	assert.False(t, grid.Contains(Cell{Row: 4, Col: 0}))
	assert.Equal(t, 0, grid.ColumnHeight(9))
}

func TestGrid_Reset(t *testing.T) {
	// Given: a grid with some markers
	grid, err := NewGrid(5, 4)
	require.NoError(t, err)
	drop(t, grid, PlayerOne, 0, 0, 3)

	// When: resetting it
	grid.Reset()

	// Then: it is empty with the same dimensions
	empty, err := NewGrid(5, 4)
	require.NoError(t, err)
	assert.Equal(t, empty, grid)
}

func TestGrid_Clone(t *testing.T) {
	// Given: a grid and its clone
	grid, err := NewGrid(4, 4)
	require.NoError(t, err)
	clone := grid.Clone()

	// When: the original is modified
	drop(t, grid, PlayerOne, 0)

	// Then: the clone is not
	assert.Equal(t, Empty, clone.At(Cell{Row: 0, Col: 0}))
}

func TestGrid_JSON(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		// Given: a grid with markers in several columns
		grid, err := NewGrid(4, 3)
		require.NoError(t, err)
		drop(t, grid, PlayerOne, 0, 0, 3)
		drop(t, grid, PlayerTwo, 0, 2)

		// When: marshalling and unmarshalling it
		data, err := json.Marshal(grid)
		require.NoError(t, err)

		var decoded Grid
		require.NoError(t, json.Unmarshal(data, &decoded))

		// Then: the layout is preserved
		assert.JSONEq(t, `{"width":4,"height":3,"cells":[[1,0,2,1],[1,0,0,0],[2,0,0,0]]}`, string(data))
		assert.Equal(t, grid, &decoded)
	})

	t.Run("Rejects a floating marker", func(t *testing.T) {
		var grid Grid
		err := json.Unmarshal([]byte(`{"width":2,"height":2,"cells":[[0,1],[1,0]]}`), &grid)

		require.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("Rejects an unknown owner", func(t *testing.T) {
		var grid Grid
		err := json.Unmarshal([]byte(`{"width":2,"height":1,"cells":[[0,3]]}`), &grid)

		require.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("Rejects mismatched rows", func(t *testing.T) {
		var grid Grid
		err := json.Unmarshal([]byte(`{"width":2,"height":2,"cells":[[0,0]]}`), &grid)

		require.ErrorIs(t, err, ErrInvalidGrid)
	})

	t.Run("Rejects bad dimensions", func(t *testing.T) {
		var grid Grid
		err := json.Unmarshal([]byte(`{"width":0,"height":2,"cells":[]}`), &grid)

		require.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestOwner(t *testing.T) {
	assert.Equal(t, PlayerTwo, PlayerOne.Opponent())
	assert.Equal(t, PlayerOne, PlayerTwo.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
	assert.True(t, PlayerOne.IsPlayer())
	assert.False(t, Empty.IsPlayer())
	assert.Equal(t, "player one", PlayerOne.String())
	assert.Equal(t, "unknown", Owner(7).String())
}
