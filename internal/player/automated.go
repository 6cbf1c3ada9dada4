package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type positionRepo interface {
	Save(ctx context.Context, board entity.Board, mark entity.Mark, result minimax.Result) error
	GetByBoard(ctx context.Context, board entity.Board, mark entity.Mark) (minimax.Result, error)
}

// Automated plays the optimal move found by minimax search.
type Automated struct {
	logger *slog.Logger
	mark   entity.Mark

	positions positionRepo
}

// NewAutomated returns a search-driven player. positions may be nil to disable caching.
func NewAutomated(logger *slog.Logger, mark entity.Mark, positions positionRepo) *Automated {
	return &Automated{
		logger:    logger.With("component", "automated-player", "mark", string(mark)),
		mark:      mark,
		positions: positions,
	}
}

func (that *Automated) Mark() entity.Mark {
	return that.mark
}

// GetMove opens in the center and otherwise searches its own copy of board.
func (that *Automated) GetMove(ctx context.Context, board entity.Board) (int, error) {
	log := that.logger.With("method", "GetMove")

	if board.IsEmpty() {
		log.Debug("opening in the center", "cell", entity.CenterCell)
		return entity.CenterCell, nil
	}

	if cached, ok := that.lookup(ctx, board); ok {
		log.Debug("move chosen", "cell", cached.Position, "score", cached.Score, "cached", true)
		return cached.Position, nil
	}

	result := minimax.BestMove(&board, that.mark)
	if !result.HasPosition() {
		return minimax.NoPosition, fmt.Errorf("%w: board %s", ErrNoAvailableMoves, board.Key())
	}

	log.Debug("move chosen", "cell", result.Position, "score", result.Score, "cached", false)

	that.store(ctx, board, result)

	return result.Position, nil
}

// lookup is best-effort: any cache failure falls back to searching.
func (that *Automated) lookup(ctx context.Context, board entity.Board) (minimax.Result, bool) {
	if that.positions == nil {
		return minimax.Result{}, false
	}

	result, err := that.positions.GetByBoard(ctx, board, that.mark)
	if errors.Is(err, repository.ErrPositionNotFound) {
		return minimax.Result{}, false
	}

	if err != nil {
		that.logger.Warn("failed to read cached position", "board", board.Key(), "error", err)
		return minimax.Result{}, false
	}

	if board.ValidateMove(result.Position) != nil {
		that.logger.Warn("ignoring cached position with unplayable cell", "board", board.Key(), "cell", result.Position)
		return minimax.Result{}, false
	}

	return result, true
}

func (that *Automated) store(ctx context.Context, board entity.Board, result minimax.Result) {
	if that.positions == nil {
		return
	}

	if err := that.positions.Save(ctx, board, that.mark, result); err != nil {
		that.logger.Warn("failed to cache position", "board", board.Key(), "error", err)
	}
}
