package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Player is one of the two sides. The zero value is not a player.
type Player uint8

const (
	noPlayer Player = iota
	PlayerX
	PlayerO
)

func (that Player) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

// Mark returns the cell value this player writes on the board.
func (that Player) Mark() Cell {
	switch that {
	case PlayerX:
		return MarkX
	case PlayerO:
		return MarkO
	default:
		return Empty
	}
}

// Opponent toggles X and O.
func (that Player) Opponent() Player {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return noPlayer
	}
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return markXText
	case PlayerO:
		return markOText
	default:
		return ""
	}
}

func (that Player) MarshalText() ([]byte, error) {
	if !that.IsValid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, uint8(that))
	}

	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	player, err := ParsePlayer(string(text))
	if err != nil {
		return err
	}

	*that = player

	return nil
}

// ParsePlayer accepts "X" or "O".
func ParsePlayer(s string) (Player, error) {
	switch s {
	case markXText:
		return PlayerX, nil
	case markOText:
		return PlayerO, nil
	default:
		return noPlayer, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, s)
	}
}
