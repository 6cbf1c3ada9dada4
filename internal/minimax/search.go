// Package minimax picks optimal tic-tac-toe moves with alpha-beta pruned minimax.
//
// The search mutates the board it is given in place and undoes every simulated
// move before returning, so the board is observably unchanged after a call.
// Callers must not touch the board while a search is running.
package minimax

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// NoPosition marks a result computed at a terminal position.
const NoPosition = -1

const (
	minusInfinity = math.MinInt
	plusInfinity  = math.MaxInt
)

// Result is the value of a position for the maximizing mark and the move that achieves it.
type Result struct {
	Position int `json:"position"`
	Score    int `json:"score"`
}

func (that Result) HasPosition() bool {
	return that.Position != NoPosition
}

// BestMove searches the whole game tree for mark to play and maximize.
func BestMove(board *entity.Board, mark entity.Mark) Result {
	return Search(board, mark, mark, minusInfinity, plusInfinity)
}

// Search returns the minimax value of board with toMove to play, scored for maximizing.
//
// A win scores emptySquares+1 so faster wins and slower losses are preferred.
// Candidates are tried in ascending cell order and only a strictly better score
// replaces the current best, which makes ties resolve to the lowest cell.
func Search(board *entity.Board, toMove, maximizing entity.Mark, alpha, beta int) Result {
	// a terminal position can only have been produced by the previous mover
	previous := toMove.Opponent()
	if board.LastWinner != entity.Empty && board.LastWinner == previous {
		score := board.EmptySquareCount() + 1
		if previous != maximizing {
			score = -score
		}

		return Result{Position: NoPosition, Score: score}
	}

	if !board.HasEmptySquares() {
		return Result{Position: NoPosition, Score: 0}
	}

	maximize := toMove == maximizing

	best := Result{Position: NoPosition, Score: plusInfinity}
	if maximize {
		best.Score = minusInfinity
	}

	for _, cell := range board.AvailableMoves() {
		board.ApplyMove(cell, toMove)
		child := Search(board, previous, maximizing, alpha, beta)
		board.RevertMove(cell)

		child.Position = cell

		if maximize {
			if child.Score > best.Score {
				best = child
			}
			alpha = max(alpha, best.Score)
		} else {
			if child.Score < best.Score {
				best = child
			}
			beta = min(beta, best.Score)
		}

		if beta <= alpha {
			break
		}
	}

	return best
}
