package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusDraw       = "draw"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Move is a mark placed on a cell.
type Move struct {
	Cell int  `json:"cell"`
	Mark Mark `json:"mark"`
}

// Game tracks one match: X moves first, the game ends in a win or a draw.
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Mark   `json:"turn"`
	Winner Mark   `json:"winner,omitempty"`
	Status string `json:"status"`
	Moves  []Move `json:"moves,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Turn:   X,
		Status: StatusInProgress,
		Moves:  make([]Move, 0, CellCount),
	}
}

// MakeTurn applies a move for mark and advances the game state.
// On error the game is left unchanged.
func (that *Game) MakeTurn(mark Mark, cell int) error {
	if err := that.ConfirmInProgress(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.ValidateMove(cell); err != nil {
		return fmt.Errorf("cell %d: %w", cell, err)
	}

	that.Board.ApplyMove(cell, mark)
	that.Moves = append(that.Moves, Move{Cell: cell, Mark: mark})

	that.updateGameState()

	return nil
}

func (that *Game) updateGameState() {
	switch {
	// the last move completed a line
	case that.Board.LastWinner != Empty:
		that.Winner = that.Board.LastWinner
		that.Status = StatusWon
		that.Turn = Empty
	// no cells left
	case !that.Board.HasEmptySquares():
		that.Status = StatusDraw
		that.Turn = Empty
	default:
		that.Turn = that.Turn.Opponent()
	}
}

func (that *Game) LastMove() (Move, bool) {
	if len(that.Moves) == 0 {
		return Move{}, false
	}

	return that.Moves[len(that.Moves)-1], true
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsWon() bool {
	return that.Status == StatusWon
}

func (that *Game) IsDraw() bool {
	return that.Status == StatusDraw
}

// ConfirmInProgress returns the reason the game cannot accept a move, if any.
func (that *Game) ConfirmInProgress() error {
	switch that.Status {
	case StatusInProgress:
		return nil
	case StatusWon, StatusDraw:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
