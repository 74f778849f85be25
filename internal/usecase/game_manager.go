package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dimensions struct {
	width  int
	height int
}

// GameManager runs game sessions. It builds one path catalog per grid size and reuses it for every game of that size.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	catalogsMutex sync.Mutex
	catalogs      map[dimensions]*connectfour.PathCatalog
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,

		catalogs: make(map[dimensions]*connectfour.PathCatalog),
	}
}

// StartGame - creates and stores an empty game of the given size.
func (that *GameManager) StartGame(ctx context.Context, width, height int) (*entity.Game, error) {
	if _, err := that.Catalog(width, height); err != nil {
		return nil, err
	}

	grid, err := connectfour.NewGrid(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	game := entity.NewGame(pkg.GenerateGameID(), grid)
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "gameID", game.ID, "width", width, "height", height)

	return game, nil
}

// MakeTurn - drops the owner's marker into the column and evaluates the grid.
// A finished game is removed from the store; the returned game still holds the final grid.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, owner connectfour.Owner, column int) (*entity.Game, connectfour.Outcome, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, outcome, err := that.GetGame(ctx, gameID)
	if err != nil {
		return nil, connectfour.Outcome{}, err
	}

	if outcome.IsOver() {
		return game, outcome, apperror.ErrGameFinished
	}

	if err = game.ConfirmTurn(owner); err != nil {
		return game, outcome, err
	}

	cell, err := connectfour.ApplyMove(game.Grid, column, owner)
	if err != nil {
		return game, outcome, fmt.Errorf("failed make turn: %w", err)
	}

	game.RecordMove(column)

	outcome, err = that.scan(game)
	if err != nil {
		return nil, connectfour.Outcome{}, err
	}

	log.Debug("marker placed", "owner", owner.String(), "row", cell.Row, "col", cell.Col, "outcome", outcome.String())

	if outcome.IsOver() {
		that.deleteGame(ctx, game)
		log.Info("game finished", "outcome", outcome.String(), "moves", len(game.Moves))

		return game, outcome, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, connectfour.Outcome{}, fmt.Errorf("failed update game: %w", err)
	}

	return game, outcome, nil
}

// GetGame - loads a game and computes its outcome.
func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, connectfour.Outcome, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, connectfour.Outcome{}, fmt.Errorf("failed to get game: %w", err)
	}

	outcome, err := that.scan(game)
	if err != nil {
		return nil, connectfour.Outcome{}, err
	}

	return game, outcome, nil
}

// Rematch - starts a new game with the dimensions of an earlier one. The earlier game may already be finished.
func (that *GameManager) Rematch(ctx context.Context, previous *entity.Game) (*entity.Game, error) {
	game, err := previous.Rematch(pkg.GenerateGameID())
	if err != nil {
		return nil, fmt.Errorf("failed to start rematch: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("rematch started", "gameID", game.ID, "previousGameID", previous.ID)

	return game, nil
}

// AbandonGame - removes an unfinished game from the store.
func (that *GameManager) AbandonGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game abandoned", "gameID", gameID)

	return nil
}

func (that *GameManager) scan(game *entity.Game) (connectfour.Outcome, error) {
	if game.Grid == nil {
		return connectfour.Outcome{}, fmt.Errorf("%w: game %s has no grid", connectfour.ErrInvalidGrid, game.ID)
	}

	catalog, err := that.Catalog(game.Grid.Width(), game.Grid.Height())
	if err != nil {
		return connectfour.Outcome{}, err
	}

	outcome, err := connectfour.Scan(game.Grid, catalog)
	if err != nil {
		return connectfour.Outcome{}, fmt.Errorf("failed to scan game %s: %w", game.ID, err)
	}

	return outcome, nil
}

// Catalog - returns the path catalog for a grid size, building it on first use.
func (that *GameManager) Catalog(width, height int) (*connectfour.PathCatalog, error) {
	that.catalogsMutex.Lock()
	defer that.catalogsMutex.Unlock()

	key := dimensions{width: width, height: height}
	if catalog, ok := that.catalogs[key]; ok {
		return catalog, nil
	}

	catalog, err := connectfour.BuildPathCatalog(width, height)
	if err != nil {
		return nil, err
	}

	that.catalogs[key] = catalog
	that.logger.Debug("path catalog built", "width", width, "height", height, "paths", catalog.Len())

	return catalog, nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "deleteGame")

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("failed to delete game", "gameID", game.ID, "error", err)
	}
}
