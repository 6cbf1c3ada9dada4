package console

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const welcomeMessage = "Welcome to Tic Tac Toe!"

// Renderer prints the progress of a game as plain text.
type Renderer struct {
	logger *slog.Logger
	out    io.Writer
}

// New returns a Renderer writing to out. Pass io.Discard to play silently.
func New(logger *slog.Logger, out io.Writer) *Renderer {
	return &Renderer{
		logger: logger.With("component", "console-renderer"),
		out:    out,
	}
}

// GameStarted prints the cell numbers players type to move.
func (that *Renderer) GameStarted(_ *entity.Game) {
	var sb strings.Builder

	sb.WriteString(welcomeMessage + "\n")
	writeBoard(&sb, func(cell int) string {
		return strconv.Itoa(cell)
	})

	that.write(sb.String())
}

func (that *Renderer) TurnMade(game *entity.Game, move entity.Move) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s makes a move to square %d\n", move.Mark, move.Cell)
	writeBoard(&sb, func(cell int) string {
		if mark := game.Board.Cell(cell); mark != entity.Empty {
			return string(mark)
		}

		return " "
	})
	sb.WriteString("\n")

	that.write(sb.String())
}

func (that *Renderer) GameFinished(game *entity.Game) {
	switch {
	case game.IsWon():
		that.write(fmt.Sprintf("%s wins!\n", game.Winner))
	case game.IsDraw():
		that.write("It's a tie!\n")
	}
}

func (that *Renderer) write(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Warn("failed to write to console", "error", err)
	}
}

// writeBoard writes one "| a | b | c |" line per row.
func writeBoard(sb *strings.Builder, label func(cell int) string) {
	for row := range entity.BoardSide {
		labels := make([]string, 0, entity.BoardSide)
		for col := range entity.BoardSide {
			labels = append(labels, label(row*entity.BoardSide+col))
		}

		sb.WriteString("| " + strings.Join(labels, " | ") + " |\n")
	}
}
