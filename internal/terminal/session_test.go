package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSession(t *testing.T, ctx context.Context, input string, width, height int) (string, error) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, repository.NewMemoryGameRepository())

	var out bytes.Buffer
	err := New(logger, manager, strings.NewReader(input), &out).Run(ctx, width, height)

	return out.String(), err
}

func TestSession_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Vertical win", func(t *testing.T) {
		// Given: player one stacks column 1 while player two plays column 2
		input := "y\n1\n2\n1\n2\n1\n2\n1\nn\n"

		// When: running the session
		out, err := runSession(t, ctx, input, 7, 6)

		// Then: player one is announced as the winner
		require.NoError(t, err)
		assert.Contains(t, out, "Player 1 is the winner!")
		assert.True(t, strings.HasSuffix(out, "Exiting the game.\n"))
	})

	t.Run("Invalid input and full column re-prompt", func(t *testing.T) {
		// Given: bad input, a column filled to the top of a 4x4 grid, then quit
		input := "yes\nabc\n9\n0\n1\n1\n1\n1\n1\nquit\n"

		// When: running the session
		out, err := runSession(t, ctx, input, 4, 4)

		// Then: each mistake is reported and the session ends cleanly
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out, "Invalid input."))
		assert.Contains(t, out, "That column is full.")
		assert.NotContains(t, out, "winner")
	})

	t.Run("Rendering", func(t *testing.T) {
		// Given: one move by each player on a 4x4 grid
		input := "y\n2\n2\nquit\n"

		// When: running the session
		out, err := runSession(t, ctx, input, 4, 4)

		// Then: the grid is drawn top row first with column numbers underneath
		require.NoError(t, err)
		assert.Contains(t, out, "  . . . .\n  . . . .\n  . O . .\n  . X . .\n  1 2 3 4\n")
		assert.Contains(t, out, "Player 2 (O), which column? ")
	})

	t.Run("Draw then rematch", func(t *testing.T) {
		// Given: a 4x1 grid filled without a streak, then a rematch that is left immediately
		input := "y\n1\n2\n3\n4\ny\nquit\n"

		// When: running the session
		out, err := runSession(t, ctx, input, 4, 1)

		// Then: the stalemate is announced and a fresh grid is shown for the rematch
		require.NoError(t, err)
		assert.Contains(t, out, "Stalemate!")
		assert.Contains(t, out, "  X O X O\n")
		assert.Equal(t, 2, strings.Count(out, "Would you like to play a new game?"))
		assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Exiting the game."))
	})

	t.Run("Unrecognised answer counts as no", func(t *testing.T) {
		out, err := runSession(t, ctx, "maybe\n", 7, 6)

		require.NoError(t, err)
		assert.Contains(t, out, "We'll take that as a no.")
	})

	t.Run("End of input", func(t *testing.T) {
		out, err := runSession(t, ctx, "y\n1\n", 7, 6)

		require.NoError(t, err)
		assert.Contains(t, out, "Exiting the game.")
	})

	t.Run("Canceled context", func(t *testing.T) {
		// Given: a canceled context
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		// When: running the session
		_, err := runSession(t, canceled, "y\n", 7, 6)

		// Then: the context error is returned
		require.ErrorIs(t, err, context.Canceled)
	})
}
