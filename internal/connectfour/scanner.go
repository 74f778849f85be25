package connectfour

import (
	"errors"
	"fmt"
)

var ErrDimensionMismatch = errors.New("path catalog does not match grid dimensions")

// Status is the state of a game as derived from its grid.
type Status int

const (
	InProgress Status = iota
	Draw
	Won
)

func (that Status) String() string {
	switch that {
	case InProgress:
		return "in progress"
	case Draw:
		return "draw"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Outcome is the result of scanning a grid. Winner and Streak are set only when Status is Won.
type Outcome struct {
	Status Status `json:"status"`
	Winner Owner  `json:"winner"`
	Streak []Cell `json:"streak,omitempty"`
}

func (that Outcome) IsOver() bool {
	return that.Status != InProgress
}

func (that Outcome) String() string {
	if that.Status == Won {
		return fmt.Sprintf("won by %s", that.Winner)
	}

	return that.Status.String()
}

// Scan - evaluates the grid against the catalog. It never modifies the grid.
func Scan(grid *Grid, catalog *PathCatalog) (Outcome, error) {
	if catalog == nil || !catalog.Matches(grid) {
		return Outcome{}, ErrDimensionMismatch
	}

	for _, path := range catalog.flat {
		if outcome, ok := scanPath(grid, path); ok {
			return outcome, nil
		}
	}

	if grid.IsFull() {
		return Outcome{Status: Draw}, nil
	}

	return Outcome{Status: InProgress}, nil
}

// scanPath walks a path counting the current run; ownership changes reset the owner and the count together.
func scanPath(grid *Grid, path Path) (Outcome, bool) {
	current := Empty
	run := 0

	for i, cell := range path {
		owner := grid.At(cell)

		switch {
		case owner != Empty && owner == current:
			run++
		case owner != Empty:
			current = owner
			run = 1
		default:
			current = Empty
			run = 0
		}

		if run == StreakLength {
			streak := make([]Cell, StreakLength)
			copy(streak, path[i-StreakLength+1:i+1])

			return Outcome{Status: Won, Winner: current, Streak: streak}, true
		}
	}

	return Outcome{}, false
}
