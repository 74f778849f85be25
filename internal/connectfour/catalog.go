package connectfour

import "fmt"

// StreakLength is the number of aligned markers that wins the game.
const StreakLength = 4

// Path is an ordered line of cells along which a streak is counted.
type Path []Cell

// Orientation groups the paths of a catalog by the direction they run in.
type Orientation int

const (
	Columns Orientation = iota
	Rows
	NegativeDiagonals
	PositiveDiagonals
)

var orientations = [...]Orientation{Columns, Rows, NegativeDiagonals, PositiveDiagonals}

func (that Orientation) String() string {
	switch that {
	case Columns:
		return "columns"
	case Rows:
		return "rows"
	case NegativeDiagonals:
		return "negative diagonals"
	case PositiveDiagonals:
		return "positive diagonals"
	default:
		return "unknown"
	}
}

// PathCatalog holds every line of a grid on which four in a row can occur.
// It depends only on the grid dimensions and is never modified after BuildPathCatalog.
type PathCatalog struct {
	width  int
	height int
	groups [len(orientations)][]Path
	flat   []Path
}

// BuildPathCatalog - generates the paths for a width x height grid.
func BuildPathCatalog(width, height int) (*PathCatalog, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, fmt.Errorf("failed to build path catalog: %w", err)
	}

	catalog := &PathCatalog{width: width, height: height}
	catalog.groups[Columns] = columnPaths(width, height)
	catalog.groups[Rows] = rowPaths(width, height)
	catalog.groups[NegativeDiagonals] = negativeDiagonalPaths(width, height)
	catalog.groups[PositiveDiagonals] = positiveDiagonalPaths(width, height)

	for _, group := range catalog.groups {
		catalog.flat = append(catalog.flat, group...)
	}

	return catalog, nil
}

func (that *PathCatalog) Width() int {
	return that.width
}

func (that *PathCatalog) Height() int {
	return that.height
}

// Len returns the total number of paths.
func (that *PathCatalog) Len() int {
	return len(that.flat)
}

// Group returns a copy of the paths of one orientation.
func (that *PathCatalog) Group(orientation Orientation) []Path {
	if orientation < 0 || int(orientation) >= len(that.groups) {
		return nil
	}

	return clonePaths(that.groups[orientation])
}

// Paths returns a copy of all paths as one flat list.
func (that *PathCatalog) Paths() []Path {
	return clonePaths(that.flat)
}

// Matches reports whether the catalog was built for the grid's dimensions.
func (that *PathCatalog) Matches(grid *Grid) bool {
	return grid != nil && grid.Width() == that.width && grid.Height() == that.height
}

// columnPaths runs bottom to top, one path per column.
func columnPaths(width, height int) []Path {
	paths := make([]Path, 0, width)
	for col := 0; col < width; col++ {
		path := make(Path, 0, height)
		for row := 0; row < height; row++ {
			path = append(path, Cell{Row: row, Col: col})
		}
		paths = append(paths, path)
	}

	return paths
}

// rowPaths runs left to right, one path per row.
func rowPaths(width, height int) []Path {
	paths := make([]Path, 0, height)
	for row := 0; row < height; row++ {
		path := make(Path, 0, width)
		for col := 0; col < width; col++ {
			path = append(path, Cell{Row: row, Col: col})
		}
		paths = append(paths, path)
	}

	return paths
}

// negativeDiagonalPaths runs down and to the right. Starts sit on the left edge, then on the top edge.
func negativeDiagonalPaths(width, height int) []Path {
	var starts []Cell
	for row := StreakLength - 1; row < height; row++ {
		starts = append(starts, Cell{Row: row, Col: 0})
	}
	for col := 1; col <= width-StreakLength; col++ {
		starts = append(starts, Cell{Row: height - 1, Col: col})
	}

	return diagonalPaths(width, height, starts, -1)
}

// positiveDiagonalPaths runs up and to the right. Starts sit on the left edge, then on the bottom edge.
func positiveDiagonalPaths(width, height int) []Path {
	var starts []Cell
	for row := height - StreakLength; row >= 0; row-- {
		starts = append(starts, Cell{Row: row, Col: 0})
	}
	for col := 1; col <= width-StreakLength; col++ {
		starts = append(starts, Cell{Row: 0, Col: col})
	}

	return diagonalPaths(width, height, starts, 1)
}

// diagonalPaths walks from each start, one column right and rowStep rows per step,
// keeping only runs long enough to hold a streak.
func diagonalPaths(width, height int, starts []Cell, rowStep int) []Path {
	paths := make([]Path, 0, len(starts))
	for _, start := range starts {
		length := diagonalLength(width, height, start, rowStep)
		if length < StreakLength {
			continue
		}

		path := make(Path, 0, length)
		for step := 0; step < length; step++ {
			path = append(path, Cell{Row: start.Row + step*rowStep, Col: start.Col + step})
		}
		paths = append(paths, path)
	}

	return paths
}

func diagonalLength(width, height int, start Cell, rowStep int) int {
	colRoom := width - start.Col
	rowRoom := height - start.Row
	if rowStep < 0 {
		rowRoom = start.Row + 1
	}

	return min(colRoom, rowRoom)
}

func clonePaths(paths []Path) []Path {
	out := make([]Path, len(paths))
	for i, path := range paths {
		out[i] = append(Path(nil), path...)
	}

	return out
}
