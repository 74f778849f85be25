package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
)

// Game is a stored game session. It keeps no winner: the outcome is always recomputed from Grid.
type Game struct {
	ID    string            `json:"id"`
	Grid  *connectfour.Grid `json:"grid"`
	Turn  connectfour.Owner `json:"turn"`
	Moves []int             `json:"moves"`
}

func NewGame(id string, grid *connectfour.Grid) *Game {
	return &Game{
		ID:    id,
		Grid:  grid,
		Turn:  connectfour.PlayerOne,
		Moves: []int{},
	}
}

// ConfirmTurn - checks that it is the owner's move.
func (that *Game) ConfirmTurn(owner connectfour.Owner) error {
	if that.Turn != owner {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.Turn)
	}

	return nil
}

// RecordMove - appends the column to the history and passes the turn.
func (that *Game) RecordMove(column int) {
	that.Moves = append(that.Moves, column)
	that.Turn = that.Turn.Opponent()
}

// Rematch - returns a fresh game with the same grid dimensions.
func (that *Game) Rematch(id string) (*Game, error) {
	if that.Grid == nil {
		return nil, fmt.Errorf("%w: game %s has no grid", connectfour.ErrInvalidDimensions, that.ID)
	}

	grid := that.Grid.Clone()
	grid.Reset()

	return NewGame(id, grid), nil
}

func (that *Game) Clone() *Game {
	clone := *that
	clone.Grid = that.Grid.Clone()
	clone.Moves = append([]int{}, that.Moves...)

	return &clone
}

// UnmarshalJSON rejects a stored game without a grid or with a turn that belongs to nobody.
func (that *Game) UnmarshalJSON(data []byte) error {
	type storedGame Game

	var raw storedGame
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if raw.Grid == nil {
		return fmt.Errorf("%w: game %s has no grid", connectfour.ErrInvalidGrid, raw.ID)
	}

	if !raw.Turn.IsPlayer() {
		return fmt.Errorf("%w: game %s has turn %d", connectfour.ErrInvalidGrid, raw.ID, raw.Turn)
	}

	*that = Game(raw)

	return nil
}
