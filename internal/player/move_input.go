package player

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// ParseMove turns typed text into a playable cell of board.
// It fails with apperror.ErrMalformedInput for non-integers and with an
// apperror.ErrInvalidMove for out of range or occupied cells.
func ParseMove(text string, board entity.Board) (int, error) {
	text = strings.TrimSpace(text)

	cell, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, text)
	}

	if err = board.ValidateMove(cell); err != nil {
		return 0, fmt.Errorf("cell %d: %w", cell, err)
	}

	return cell, nil
}
