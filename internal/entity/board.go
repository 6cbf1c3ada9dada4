package entity

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	BoardSide  = 3
	CellCount  = BoardSide * BoardSide
	CenterCell = 4
)

var (
	mainDiagonal = [BoardSide]int{0, 4, 8}
	antiDiagonal = [BoardSide]int{2, 4, 6}
)

// Board is the 3x3 grid in row-major order: cell i sits at row i/3, column i%3.
// LastWinner is set only by a move that completed a line and is cleared by RevertMove.
type Board struct {
	Cells      [CellCount]Mark `json:"cells"`
	LastWinner Mark            `json:"last_winner,omitempty"`
}

func NewBoard() *Board {
	return &Board{}
}

func (that *Board) Cell(cell int) Mark {
	return that.Cells[cell]
}

// AvailableMoves returns the empty cells in ascending order.
func (that *Board) AvailableMoves() []int {
	moves := make([]int, 0, CellCount)
	for i, mark := range that.Cells {
		if mark == Empty {
			moves = append(moves, i)
		}
	}

	return moves
}

func (that *Board) HasEmptySquares() bool {
	for _, mark := range that.Cells {
		if mark == Empty {
			return true
		}
	}

	return false
}

func (that *Board) EmptySquareCount() int {
	count := 0
	for _, mark := range that.Cells {
		if mark == Empty {
			count++
		}
	}

	return count
}

func (that *Board) IsEmpty() bool {
	return that.EmptySquareCount() == CellCount
}

// ValidateMove reports why a mark cannot be placed at cell, or nil if it can.
func (that *Board) ValidateMove(cell int) error {
	if cell < 0 || cell >= CellCount {
		return apperror.ErrInvalidCell
	}

	if that.Cells[cell] != Empty {
		return apperror.ErrCellOccupied
	}

	return nil
}

// ApplyMove places mark at cell and records a win if the move completed a line.
// The board is left untouched when the move is not valid.
func (that *Board) ApplyMove(cell int, mark Mark) bool {
	if !mark.IsValid() || that.ValidateMove(cell) != nil {
		return false
	}

	that.Cells[cell] = mark
	if that.completesLine(cell, mark) {
		that.LastWinner = mark
	}

	return true
}

// RevertMove empties cell and clears LastWinner.
func (that *Board) RevertMove(cell int) {
	that.Cells[cell] = Empty
	that.LastWinner = Empty
}

// Key encodes the cells as a 9-char string, '-' standing for an empty cell.
func (that *Board) Key() string {
	var key strings.Builder
	key.Grow(CellCount)

	for _, mark := range that.Cells {
		if mark == Empty {
			key.WriteByte('-')
			continue
		}
		key.WriteString(string(mark))
	}

	return key.String()
}

// completesLine checks only the lines through cell: its row, its column and,
// for even cells, the diagonal(s) it lies on. The center lies on both.
func (that *Board) completesLine(cell int, mark Mark) bool {
	row := cell / BoardSide
	if that.lineIs(mark, [BoardSide]int{row * BoardSide, row*BoardSide + 1, row*BoardSide + 2}) {
		return true
	}

	col := cell % BoardSide
	if that.lineIs(mark, [BoardSide]int{col, col + BoardSide, col + 2*BoardSide}) {
		return true
	}

	if cell%2 != 0 {
		return false
	}

	for _, diagonal := range [...][BoardSide]int{mainDiagonal, antiDiagonal} {
		if onLine(cell, diagonal) && that.lineIs(mark, diagonal) {
			return true
		}
	}

	return false
}

func onLine(cell int, line [BoardSide]int) bool {
	for _, c := range line {
		if c == cell {
			return true
		}
	}

	return false
}

func (that *Board) lineIs(mark Mark, line [BoardSide]int) bool {
	for _, cell := range line {
		if that.Cells[cell] != mark {
			return false
		}
	}

	return true
}
