package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Cell is the content of one board position.
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

const (
	emptyCellText = "empty"
	markXText     = "X"
	markOText     = "O"
)

func (that Cell) IsValid() bool {
	switch that {
	case Empty, MarkX, MarkO:
		return true
	default:
		return false
	}
}

// Player returns the player owning the mark, or false for an empty cell.
func (that Cell) Player() (Player, bool) {
	switch that {
	case MarkX:
		return PlayerX, true
	case MarkO:
		return PlayerO, true
	default:
		return noPlayer, false
	}
}

func (that Cell) String() string {
	switch that {
	case Empty:
		return emptyCellText
	case MarkX:
		return markXText
	case MarkO:
		return markOText
	default:
		return fmt.Sprintf("Cell(%d)", uint8(that))
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	if !that.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidCell, uint8(that))
	}

	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case emptyCellText:
		*that = Empty
	case markXText:
		*that = MarkX
	case markOText:
		*that = MarkO
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidCell, text)
	}

	return nil
}
