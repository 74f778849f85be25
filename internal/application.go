package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour-backend/internal/config"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour-backend/internal/terminal"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeRepo, err := newGameRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	width, height := gridDimensions(log, conf.Grid)

	gameManager := usecase.NewGameManager(logger, gameRepo)
	session := terminal.New(logger, gameManager, in, out)

	if err = session.Run(ctx, width, height); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("terminal session failed: %w", err)
	}

	log.Info("Session finished, shutting down")

	return nil
}

// gridDimensions falls back to the standard grid when the configured one is invalid.
func gridDimensions(log *slog.Logger, grid config.Grid) (int, int) {
	if err := connectfour.ValidateDimensions(grid.Width, grid.Height); err != nil {
		log.Warn("invalid grid dimensions, using defaults", "error", err,
			"width", connectfour.DefaultWidth, "height", connectfour.DefaultHeight)

		return connectfour.DefaultWidth, connectfour.DefaultHeight
	}

	return grid.Width, grid.Height
}

func newGameRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func(), error) {
	if conf.Storage.Driver != config.StorageRedis {
		return repository.NewMemoryGameRepository(), func() {}, nil
	}

	if conf.Redis.Host == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeRepo := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewGameRepository(redisStorage, conf.Redis.GameTTL), closeRepo, nil
}
