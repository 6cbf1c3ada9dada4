package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrPlayerMarkMismatch = errors.New("player mark does not match its seat")

// Player is anything that can choose a cell for its mark.
// The returned cell should be one of board.AvailableMoves(); anything else is re-requested.
type Player interface {
	Mark() entity.Mark
	GetMove(ctx context.Context, board entity.Board) (int, error)
}

type renderer interface {
	GameStarted(game *entity.Game)
	TurnMade(game *entity.Game, move entity.Move)
	GameFinished(game *entity.Game)
}

type GameUseCase interface {
	Play(ctx context.Context, playerX, playerO Player) (*entity.Game, error)
}

type gameUseCase struct {
	logger   *slog.Logger
	renderer renderer
}

func NewGameUseCase(logger *slog.Logger, renderer renderer) GameUseCase {
	return &gameUseCase{
		logger:   logger,
		renderer: renderer,
	}
}

// Play runs one game to completion, X moving first.
// The finished game is returned; on error the partially played game is returned with it.
func (that *gameUseCase) Play(ctx context.Context, playerX, playerO Player) (*entity.Game, error) {
	if playerX.Mark() != entity.X || playerO.Mark() != entity.O {
		return nil, fmt.Errorf("%w: got %q for X and %q for O", ErrPlayerMarkMismatch, playerX.Mark(), playerO.Mark())
	}

	game := entity.NewGame(uuid.NewString())
	log := that.logger.With("method", "Play", "gameID", game.ID)

	players := map[entity.Mark]Player{
		entity.X: playerX,
		entity.O: playerO,
	}

	log.Info("game started")
	that.renderer.GameStarted(game)

	for !game.IsFinished() {
		if err := that.playTurn(ctx, log, game, players[game.Turn]); err != nil {
			return game, err
		}
	}

	that.renderer.GameFinished(game)
	log.Info("game finished", "status", game.Status, "winner", string(game.Winner), "moves", len(game.Moves))

	return game, nil
}

// playTurn asks player for a move until one is accepted.
func (that *gameUseCase) playTurn(ctx context.Context, log *slog.Logger, game *entity.Game, player Player) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("failed to play turn: %w", err)
		}

		cell, err := player.GetMove(ctx, game.Board)
		if err != nil {
			return fmt.Errorf("failed to get move for %s: %w", player.Mark(), err)
		}

		err = game.MakeTurn(player.Mark(), cell)
		if errors.Is(err, apperror.ErrInvalidMove) {
			log.Warn("rejected move", "mark", string(player.Mark()), "cell", cell, "error", err)
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		move, _ := game.LastMove()
		log.Debug("turn made", "mark", string(move.Mark), "cell", move.Cell)
		that.renderer.TurnMade(game, move)

		return nil
	}
}
