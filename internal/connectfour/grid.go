package connectfour

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	DefaultWidth  = 7
	DefaultHeight = 6
)

var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidGrid       = errors.New("invalid grid contents")
)

// Grid is a rectangular playing field. Cells are stored row-major, row 0 at the bottom.
type Grid struct {
	width  int
	height int
	cells  []Owner
}

// ValidateDimensions - checks that both dimensions are positive.
func ValidateDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	return nil
}

// NewGrid - creates an empty grid of the given size.
func NewGrid(width, height int) (*Grid, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Owner, width*height),
	}, nil
}

func (that *Grid) Width() int {
	return that.width
}

func (that *Grid) Height() int {
	return that.height
}

// Contains reports whether the cell lies inside the grid.
func (that *Grid) Contains(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < that.height && cell.Col >= 0 && cell.Col < that.width
}

// At returns the owner of a cell, or Empty for a cell outside the grid.
func (that *Grid) At(cell Cell) Owner {
	if !that.Contains(cell) {
		return Empty
	}

	return that.cells[that.index(cell)]
}

// ColumnHeight returns the number of markers stacked in a column.
func (that *Grid) ColumnHeight(col int) int {
	if col < 0 || col >= that.width {
		return 0
	}

	for row := 0; row < that.height; row++ {
		if that.At(Cell{Row: row, Col: col}) == Empty {
			return row
		}
	}

	return that.height
}

// IsFull reports whether no column has room left.
func (that *Grid) IsFull() bool {
	top := that.height - 1
	for col := 0; col < that.width; col++ {
		if that.At(Cell{Row: top, Col: col}) == Empty {
			return false
		}
	}

	return true
}

// Reset - empties every cell, keeping the dimensions.
func (that *Grid) Reset() {
	for i := range that.cells {
		that.cells[i] = Empty
	}
}

func (that *Grid) Clone() *Grid {
	cells := make([]Owner, len(that.cells))
	copy(cells, that.cells)

	return &Grid{
		width:  that.width,
		height: that.height,
		cells:  cells,
	}
}

func (that *Grid) index(cell Cell) int {
	return cell.Row*that.width + cell.Col
}

func (that *Grid) set(cell Cell, owner Owner) {
	that.cells[that.index(cell)] = owner
}

type gridJSON struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Cells  [][]Owner `json:"cells"`
}

func (that *Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]Owner, that.height)
	for row := range rows {
		rows[row] = that.cells[row*that.width : (row+1)*that.width]
	}

	data, err := json.Marshal(gridJSON{Width: that.width, Height: that.height, Cells: rows})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal grid: %w", err)
	}

	return data, nil
}

// UnmarshalJSON rejects grids with bad dimensions, unknown owners or floating markers.
func (that *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal grid: %w", err)
	}

	grid, err := NewGrid(raw.Width, raw.Height)
	if err != nil {
		return err
	}

	if len(raw.Cells) != raw.Height {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidGrid, raw.Height, len(raw.Cells))
	}

	for row, owners := range raw.Cells {
		if len(owners) != raw.Width {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidGrid, row, len(owners), raw.Width)
		}

		for col, owner := range owners {
			if owner != Empty && !owner.IsPlayer() {
				return fmt.Errorf("%w: unknown owner %d at (%d,%d)", ErrInvalidGrid, owner, row, col)
			}

			below := Cell{Row: row - 1, Col: col}
			if owner != Empty && row > 0 && grid.At(below) == Empty {
				return fmt.Errorf("%w: marker at (%d,%d) has an empty cell below it", ErrInvalidGrid, row, col)
			}

			grid.set(Cell{Row: row, Col: col}, owner)
		}
	}

	*that = *grid

	return nil
}
