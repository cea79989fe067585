package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownGameState = errors.New("unknown game state")

// GameState is derived from a board; it is never set independently.
type GameState uint8

const (
	Playing GameState = iota
	Won
	Draw
)

const (
	statePlaying = "playing"
	stateWon     = "won"
	stateDraw    = "draw"
)

func (that GameState) IsFinished() bool {
	return that == Won || that == Draw
}

func (that GameState) String() string {
	switch that {
	case Playing:
		return statePlaying
	case Won:
		return stateWon
	case Draw:
		return stateDraw
	default:
		return fmt.Sprintf("GameState(%d)", uint8(that))
	}
}

func (that GameState) MarshalText() ([]byte, error) {
	switch that {
	case Playing, Won, Draw:
		return []byte(that.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownGameState, uint8(that))
	}
}

func (that *GameState) UnmarshalText(text []byte) error {
	switch string(text) {
	case statePlaying:
		*that = Playing
	case stateWon:
		*that = Won
	case stateDraw:
		*that = Draw
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGameState, text)
	}

	return nil
}
