package apperror

import "errors"

var (
	ErrInvalidDimensions = errors.New("board must be exactly 3x3")
	ErrOutOfBounds       = errors.New("position is out of bounds")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameAlreadyWon    = errors.New("game is already won")
	ErrGameAlreadyDrawn  = errors.New("game is already drawn")

	ErrInvalidCell   = errors.New("invalid cell value")
	ErrInvalidPlayer = errors.New("invalid player")

	ErrGameNotFound = errors.New("game not found")
)
