package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 3

// Position is a (row, col) pair. It is validated only when used against a Board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is an immutable 3x3 grid. The zero value is an empty board.
// Every write returns a new Board; the receiver is never changed.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

func NewBoard() Board {
	return Board{}
}

// NewBoardFrom copies a caller supplied grid into a new Board.
func NewBoardFrom(grid [][]Cell) (Board, error) {
	if len(grid) != BoardSize {
		return Board{}, fmt.Errorf("%w: got %d rows", apperror.ErrInvalidDimensions, len(grid))
	}

	var board Board
	for row := range grid {
		if len(grid[row]) != BoardSize {
			return Board{}, fmt.Errorf("%w: row %d has %d columns", apperror.ErrInvalidDimensions, row, len(grid[row]))
		}

		for col, cell := range grid[row] {
			if !cell.IsValid() {
				return Board{}, fmt.Errorf("%w at %s", apperror.ErrInvalidCell, Position{Row: row, Col: col})
			}

			board.cells[row][col] = cell
		}
	}

	return board, nil
}

func (that Board) Get(pos Position) (Cell, error) {
	if err := validatePosition(pos); err != nil {
		return Empty, err
	}

	return that.cells[pos.Row][pos.Col], nil
}

// WithCellSet returns a copy of the board with cell written at pos.
// Writing a mark over a mark fails; erasing with Empty is always allowed.
func (that Board) WithCellSet(pos Position, cell Cell) (Board, error) {
	if err := validatePosition(pos); err != nil {
		return Board{}, err
	}

	if !cell.IsValid() {
		return Board{}, fmt.Errorf("%w: %d", apperror.ErrInvalidCell, uint8(cell))
	}

	if cell != Empty && that.cells[pos.Row][pos.Col] != Empty {
		return Board{}, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	next := that
	next.cells[pos.Row][pos.Col] = cell

	return next, nil
}

func (that Board) IsEmptyAt(pos Position) (bool, error) {
	cell, err := that.Get(pos)
	if err != nil {
		return false, err
	}

	return cell == Empty, nil
}

// Snapshot returns a fresh grid the caller may modify freely.
func (that Board) Snapshot() [][]Cell {
	grid := make([][]Cell, BoardSize)
	for row := range that.cells {
		grid[row] = make([]Cell, BoardSize)
		copy(grid[row], that.cells[row][:])
	}

	return grid
}

// Cells returns the grid by value.
func (that Board) Cells() [BoardSize][BoardSize]Cell {
	return that.cells
}

// String renders the board as "XO./.X./..O".
func (that Board) String() string {
	rows := make([]string, 0, BoardSize)
	for _, line := range that.cells {
		var sb strings.Builder
		for _, cell := range line {
			switch cell {
			case MarkX:
				sb.WriteString(markXText)
			case MarkO:
				sb.WriteString(markOText)
			default:
				sb.WriteByte('.')
			}
		}
		rows = append(rows, sb.String())
	}

	return strings.Join(rows, "/")
}

func validatePosition(pos Position) error {
	if pos.Row < 0 || pos.Row >= BoardSize || pos.Col < 0 || pos.Col >= BoardSize {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, pos)
	}

	return nil
}
