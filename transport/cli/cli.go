package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	commandNew  = "new"
	commandQuit = "quit"

	colorX = "#E06C75"
	colorO = "#61AFEF"
)

var errBadInput = errors.New(`enter "row col" with values 0-2, "new" or "quit"`)

// CLI is a hot-seat terminal game: both players type their moves on the same input.
type CLI struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    *termenv.Output
}

func New(logger *slog.Logger, in io.Reader, out *termenv.Output) *CLI {
	return &CLI{
		logger: logger.With("component", "cli"),
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run plays games until the input ends, "quit" is entered or ctx is canceled.
func (that *CLI) Run(ctx context.Context) error {
	game := tictactoe.NewGame()
	that.render(game)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		that.prompt(game)

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		input := strings.TrimSpace(that.in.Text())
		switch input {
		case "":
			continue
		case commandQuit:
			return nil
		case commandNew:
			game = tictactoe.NewGame()
			that.render(game)
			continue
		}

		pos, err := parsePosition(input)
		if err != nil {
			that.println(err.Error())
			continue
		}

		next, err := game.SubmitMove(pos)
		if err != nil {
			that.logger.Debug("move rejected", "position", pos, "error", err)
			that.println(describe(err))
			continue
		}

		game = next
		that.render(game)

		if game.IsFinished() {
			that.println(that.outcome(game))
		}
	}
}

func (that *CLI) prompt(game tictactoe.Game) {
	if game.IsFinished() {
		that.print(fmt.Sprintf("%q or %q: ", commandNew, commandQuit))
		return
	}

	that.print(fmt.Sprintf("%s move (row col): ", that.styled(game.CurrentPlayer().Mark())))
}

func (that *CLI) render(game tictactoe.Game) {
	var sb strings.Builder

	sb.WriteString("\n    0   1   2\n")
	for row, cells := range game.Board().Cells() {
		if row > 0 {
			sb.WriteString("   ---+---+---\n")
		}

		sb.WriteString(strconv.Itoa(row) + "  ")
		for col, cell := range cells {
			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" " + that.styled(cell) + " ")
		}
		sb.WriteString("\n")
	}

	that.println(sb.String())
}

func (that *CLI) outcome(game tictactoe.Game) string {
	if winner, won := game.Winner(); won {
		return that.out.String(winner.String() + " wins!").Bold().String()
	}

	return that.out.String("Draw.").Bold().String()
}

func (that *CLI) styled(cell entity.Cell) string {
	switch cell {
	case entity.MarkX:
		return that.out.String("X").Foreground(that.out.Color(colorX)).Bold().String()
	case entity.MarkO:
		return that.out.String("O").Foreground(that.out.Color(colorO)).Bold().String()
	default:
		return " "
	}
}

func (that *CLI) print(s string) {
	_, _ = fmt.Fprint(that.out, s)
}

func (that *CLI) println(s string) {
	_, _ = fmt.Fprintln(that.out, s)
}

func parsePosition(input string) (entity.Position, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return entity.Position{}, errBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Position{}, errBadInput
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Position{}, errBadInput
	}

	return entity.Position{Row: row, Col: col}, nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "That square is off the board, use 0-2."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That square is taken."
	case errors.Is(err, apperror.ErrGameAlreadyWon), errors.Is(err, apperror.ErrGameAlreadyDrawn):
		return "The game is over."
	default:
		return err.Error()
	}
}
