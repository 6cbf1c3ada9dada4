package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const invalidSquareMessage = "Invalid square. Try again."

// Interactive reads moves typed by a person, one per line.
type Interactive struct {
	logger *slog.Logger
	mark   entity.Mark

	in  *bufio.Scanner
	out io.Writer
}

// NewInteractive reads lines from in. Two players at one keyboard must share the scanner.
func NewInteractive(logger *slog.Logger, mark entity.Mark, in *bufio.Scanner, out io.Writer) *Interactive {
	return &Interactive{
		logger: logger.With("component", "interactive-player", "mark", string(mark)),
		mark:   mark,
		in:     in,
		out:    out,
	}
}

func (that *Interactive) Mark() entity.Mark {
	return that.mark
}

// GetMove prompts until a playable cell is typed. Reading blocks and cannot be
// interrupted; the context is checked before every prompt.
func (that *Interactive) GetMove(ctx context.Context, board entity.Board) (int, error) {
	log := that.logger.With("method", "GetMove")

	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("failed to read move: %w", err)
		}

		if _, err := fmt.Fprintf(that.out, "%s's turn. Input move (0-8): ", that.mark); err != nil {
			return 0, fmt.Errorf("failed to write prompt: %w", err)
		}

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read move: %w", err)
			}

			return 0, apperror.ErrInputClosed
		}

		cell, err := ParseMove(that.in.Text(), board)
		if err != nil {
			log.Debug("rejected input", "input", that.in.Text(), "error", err)

			if _, err = fmt.Fprintln(that.out, invalidSquareMessage); err != nil {
				return 0, fmt.Errorf("failed to write prompt: %w", err)
			}

			continue
		}

		return cell, nil
	}
}
