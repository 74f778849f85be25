package connectfour

// Owner is the holder of a grid cell.
type Owner int

const (
	Empty Owner = iota
	PlayerOne
	PlayerTwo
)

// IsPlayer reports whether the owner is one of the two players.
func (that Owner) IsPlayer() bool {
	return that == PlayerOne || that == PlayerTwo
}

// Opponent returns the other player. Empty has no opponent and stays Empty.
func (that Owner) Opponent() Owner {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return Empty
	}
}

func (that Owner) String() string {
	switch that {
	case Empty:
		return "empty"
	case PlayerOne:
		return "player one"
	case PlayerTwo:
		return "player two"
	default:
		return "unknown"
	}
}

// Cell is a (row, column) coordinate. Row 0 is the bottom row, column 0 the leftmost column.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
