package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const quitCommand = "quit"

var errQuit = errors.New("player quit")

type gameManager interface {
	StartGame(ctx context.Context, width, height int) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, owner connectfour.Owner, column int) (*entity.Game, connectfour.Outcome, error)
	Rematch(ctx context.Context, previous *entity.Game) (*entity.Game, error)
	AbandonGame(ctx context.Context, gameID string) error
}

// Session is an interactive hot-seat game loop over a text stream.
type Session struct {
	logger      *slog.Logger
	gameManager gameManager

	in  *bufio.Scanner
	out io.Writer
}

func New(logger *slog.Logger, gameManager gameManager, in io.Reader, out io.Writer) *Session {
	return &Session{
		logger:      logger.With("component", "terminal"),
		gameManager: gameManager,
		in:          bufio.NewScanner(in),
		out:         out,
	}
}

// Run - plays games of the given size until the players decline a new one, quit, or ctx is done.
func (that *Session) Run(ctx context.Context, width, height int) error {
	that.printf("\nThis is Connect Four.\n")
	that.printf("Two players take turns dropping markers into the columns of a %dx%d grid.\n", width, height)
	that.printf("The first to line up four markers in a row, column or diagonal wins.\n")

	var previous *entity.Game

	for {
		again, err := that.askNewGame(ctx)
		if err != nil || !again {
			that.printf("\nExiting the game.\n")
			return ignoreQuit(err)
		}

		var game *entity.Game
		if previous == nil {
			game, err = that.gameManager.StartGame(ctx, width, height)
		} else {
			game, err = that.gameManager.Rematch(ctx, previous)
		}
		if err != nil {
			return fmt.Errorf("failed to start game: %w", err)
		}

		if previous, err = that.playGame(ctx, game); err != nil {
			that.printf("\nExiting the game.\n")
			return ignoreQuit(err)
		}
	}
}

// playGame runs turns until the game is over and returns the final game.
func (that *Session) playGame(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	log := that.logger.With("method", "playGame", "gameID", game.ID)

	for {
		that.render(game.Grid)

		column, err := that.askColumn(ctx, game)
		if err != nil {
			if abandonErr := that.gameManager.AbandonGame(context.WithoutCancel(ctx), game.ID); abandonErr != nil {
				log.Warn("failed to abandon game", "error", abandonErr)
			}
			return nil, err
		}

		updated, outcome, err := that.gameManager.MakeTurn(ctx, game.ID, game.Turn, column)
		switch {
		case errors.Is(err, connectfour.ErrColumnFull):
			that.printf("That column is full. Please pick a different column.\n")
			continue
		case err != nil:
			return nil, fmt.Errorf("failed to make turn: %w", err)
		}

		game = updated

		if outcome.IsOver() {
			that.render(game.Grid)
			that.announce(outcome)

			return game, nil
		}
	}
}

// askColumn prompts until a column inside the grid is entered and returns it zero-based.
func (that *Session) askColumn(ctx context.Context, game *entity.Game) (int, error) {
	width := game.Grid.Width()
	that.printf("\nEnter a column number (1 to %d) to drop your marker, or %q to leave.\n", width, quitCommand)

	for {
		line, err := that.readLine(ctx, fmt.Sprintf("Player %s (%s), which column? ", playerLabel(game.Turn), symbol(game.Turn)))
		if err != nil {
			return 0, err
		}

		if strings.EqualFold(line, quitCommand) {
			return 0, errQuit
		}

		column, err := strconv.Atoi(line)
		if err != nil || column < 1 || column > width {
			that.printf("Invalid input. Please enter a number from 1 to %d.\n", width)
			continue
		}

		return column - 1, nil
	}
}

func (that *Session) askNewGame(ctx context.Context) (bool, error) {
	answer, err := that.readLine(ctx, "\nWould you like to play a new game? (y/n) ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "ye", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		that.printf("We'll take that as a no.\n")
		return false, nil
	}
}

// readLine returns errQuit when the input ends.
func (that *Session) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	that.printf("%s", prompt)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errQuit
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *Session) announce(outcome connectfour.Outcome) {
	switch outcome.Status {
	case connectfour.Won:
		that.printf("\n~~ Connect Four! ~~  Player %s is the winner!\n", playerLabel(outcome.Winner))
	case connectfour.Draw:
		that.printf("\n~~ Stalemate! ~~  The grid is full and nobody connected four.\n")
	case connectfour.InProgress:
	}
}

func (that *Session) render(grid *connectfour.Grid) {
	var sb strings.Builder

	sb.WriteString("\n")
	for row := grid.Height() - 1; row >= 0; row-- {
		sb.WriteString(" ")
		for col := 0; col < grid.Width(); col++ {
			sb.WriteString(" ")
			sb.WriteString(symbol(grid.At(connectfour.Cell{Row: row, Col: col})))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(" ")
	for col := 1; col <= grid.Width(); col++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(col % 10))
	}
	sb.WriteString("\n")

	that.printf("%s", sb.String())
}

func (that *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func symbol(owner connectfour.Owner) string {
	switch owner {
	case connectfour.PlayerOne:
		return "X"
	case connectfour.PlayerTwo:
		return "O"
	default:
		return "."
	}
}

func playerLabel(owner connectfour.Owner) string {
	switch owner {
	case connectfour.PlayerOne:
		return "1"
	case connectfour.PlayerTwo:
		return "2"
	default:
		return "?"
	}
}

func ignoreQuit(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}

	return err
}
