package application

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/player"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/console"
)

const (
	PlayerBot   = "bot"
	PlayerHuman = "human"
)

var ErrUnknownPlayerKind = errors.New("unknown player kind")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var positions repository.PositionRepository

	if conf.Redis.Enabled {
		redisAddr := conf.Redis.GetRedisAddr()

		redisStorage, err := storage.NewRedis(ctx, redisAddr)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		positions = repository.NewPositionRepository(redisStorage, conf.Redis.TTL)
		log.Info("solved-position cache enabled", "addr", redisAddr, "ttl", conf.Redis.TTL)
	}

	return runGame(ctx, logger, conf, positions, os.Stdin, os.Stdout)
}

// runGame plays one game between the configured seats.
func runGame(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	positions repository.PositionRepository,
	in io.Reader,
	out io.Writer,
) error {
	log := logger.With("component", "app")

	keyboard := bufio.NewScanner(in)

	playerX, err := newPlayer(logger, conf.Players.X, entity.X, positions, keyboard, out)
	if err != nil {
		return fmt.Errorf("failed to seat X: %w", err)
	}

	playerO, err := newPlayer(logger, conf.Players.O, entity.O, positions, keyboard, out)
	if err != nil {
		return fmt.Errorf("failed to seat O: %w", err)
	}

	screen := out
	if !conf.PrintGame {
		screen = io.Discard
	}

	gameUseCase := usecase.NewGameUseCase(logger, console.New(logger, screen))

	resultCh := make(chan error, 1)
	go func() {
		_, playErr := gameUseCase.Play(ctx, playerX, playerO)
		resultCh <- playErr
	}()

	select {
	case err = <-resultCh:
		switch {
		case errors.Is(err, apperror.ErrInputClosed):
			log.Info("Input closed, leaving the game")
			return nil
		case errors.Is(err, context.Canceled):
			log.Info("Game interrupted")
			return nil
		case err != nil:
			return fmt.Errorf("game failed: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newPlayer(
	logger *slog.Logger,
	kind string,
	mark entity.Mark,
	positions repository.PositionRepository,
	keyboard *bufio.Scanner,
	out io.Writer,
) (usecase.Player, error) {
	switch kind {
	case PlayerBot:
		return player.NewAutomated(logger, mark, positions), nil
	case PlayerHuman:
		return player.NewInteractive(logger, mark, keyboard, out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayerKind, kind)
	}
}
