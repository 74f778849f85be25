package connectfour

import (
	"errors"
	"fmt"
)

var (
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrInvalidOwner     = errors.New("owner is not a player")
)

// ApplyMove - drops the owner's marker into the lowest empty cell of the column.
// On error the grid is left unchanged.
func ApplyMove(grid *Grid, column int, owner Owner) (Cell, error) {
	if grid == nil {
		return Cell{}, fmt.Errorf("%w: no grid", ErrInvalidDimensions)
	}

	if column < 0 || column >= grid.Width() {
		return Cell{}, fmt.Errorf("%w: column %d, grid has %d", ErrColumnOutOfRange, column, grid.Width())
	}

	if !owner.IsPlayer() {
		return Cell{}, fmt.Errorf("%w: %s", ErrInvalidOwner, owner)
	}

	row := grid.ColumnHeight(column)
	if row == grid.Height() {
		return Cell{}, fmt.Errorf("%w: column %d", ErrColumnFull, column)
	}

	cell := Cell{Row: row, Col: column}
	grid.set(cell, owner)

	return cell, nil
}
