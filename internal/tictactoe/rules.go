package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Line is three positions that win when uniformly marked.
type Line [entity.BoardSize]entity.Position

// WinLines lists every winning line: rows, then columns, then the main diagonal
// and the anti-diagonal.
var WinLines = []Line{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// DetectWinner returns the owner of the first fully marked line.
func DetectWinner(board entity.Board) (entity.Player, bool) {
	cells := board.Cells()

	for _, ln := range WinLines {
		a := cells[ln[0].Row][ln[0].Col]
		b := cells[ln[1].Row][ln[1].Col]
		c := cells[ln[2].Row][ln[2].Col]

		if a != entity.Empty && a == b && b == c {
			return a.Player()
		}
	}

	return 0, false
}

// IsDraw reports a full board without a winner.
func IsDraw(board entity.Board) bool {
	if _, won := DetectWinner(board); won {
		return false
	}

	for _, row := range board.Cells() {
		for _, cell := range row {
			if cell == entity.Empty {
				return false
			}
		}
	}

	return true
}

func DeriveState(board entity.Board) entity.GameState {
	switch {
	case hasWinner(board):
		return entity.Won
	case IsDraw(board):
		return entity.Draw
	default:
		return entity.Playing
	}
}

// ApplyMove writes the player's mark at pos. Terminal states are checked
// before occupancy, so a move on a won board always reports ErrGameAlreadyWon.
func ApplyMove(board entity.Board, pos entity.Position, player entity.Player) (entity.Board, error) {
	if !player.IsValid() {
		return entity.Board{}, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, uint8(player))
	}

	switch DeriveState(board) {
	case entity.Won:
		return entity.Board{}, apperror.ErrGameAlreadyWon
	case entity.Draw:
		return entity.Board{}, apperror.ErrGameAlreadyDrawn
	case entity.Playing:
	}

	empty, err := board.IsEmptyAt(pos)
	if err != nil {
		return entity.Board{}, fmt.Errorf("invalid move: %w", err)
	}

	if !empty {
		return entity.Board{}, fmt.Errorf("invalid move: %w: %s", apperror.ErrCellOccupied, pos)
	}

	next, err := board.WithCellSet(pos, player.Mark())
	if err != nil {
		return entity.Board{}, fmt.Errorf("invalid move: %w", err)
	}

	return next, nil
}

func hasWinner(board entity.Board) bool {
	_, won := DetectWinner(board)
	return won
}
