package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e = Empty
	x = MarkX
	o = MarkO
)

var outOfBoundsPositions = []Position{
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 3, Col: 0},
	{Row: 0, Col: 3},
	{Row: 3, Col: 3},
	{Row: -5, Col: 10},
}

func allPositions() []Position {
	positions := make([]Position, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			positions = append(positions, Position{Row: row, Col: col})
		}
	}

	return positions
}

func mustBoard(t *testing.T, grid [][]Cell) Board {
	t.Helper()

	board, err := NewBoardFrom(grid)
	require.NoError(t, err)

	return board
}

func TestNewBoard(t *testing.T) {
	// When: an empty board is created
	board := NewBoard()

	// Then: every cell is empty
	for _, pos := range allPositions() {
		cell, err := board.Get(pos)
		require.NoError(t, err)
		assert.Equal(t, Empty, cell, "position %s", pos)
	}

	// Then: the zero value is the same board
	assert.Equal(t, Board{}, board)
}

func TestNewBoardFrom(t *testing.T) {
	t.Run("Copies a valid grid", func(t *testing.T) {
		// Given: a 3x3 grid
		grid := [][]Cell{
			{x, o, e},
			{e, x, e},
			{e, e, o},
		}

		// When: a board is built from it
		board, err := NewBoardFrom(grid)
		require.NoError(t, err)

		// Then: the board holds the same cells
		assert.Equal(t, grid, board.Snapshot())

		// And: later changes to the grid do not leak into the board
		grid[0][2] = o
		cell, err := board.Get(Position{Row: 0, Col: 2})
		require.NoError(t, err)
		assert.Equal(t, Empty, cell)
	})

	t.Run("Rejects wrong dimensions", func(t *testing.T) {
		grids := map[string][][]Cell{
			"nil":        nil,
			"two rows":   {{e, e, e}, {e, e, e}},
			"four rows":  {{e, e, e}, {e, e, e}, {e, e, e}, {e, e, e}},
			"short row":  {{e, e, e}, {e, e}, {e, e, e}},
			"long row":   {{e, e, e}, {e, e, e}, {e, e, e, e}},
			"empty rows": {{}, {}, {}},
		}

		for name, grid := range grids {
			t.Run(name, func(t *testing.T) {
				// When: a board is built from a malformed grid
				_, err := NewBoardFrom(grid)

				// Then: ErrInvalidDimensions is returned
				require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
			})
		}
	})

	t.Run("Rejects unknown cell values", func(t *testing.T) {
		// Given: a grid containing a value outside the Cell enum
		grid := [][]Cell{{e, e, e}, {e, Cell(9), e}, {e, e, e}}

		// When: a board is built from it
		_, err := NewBoardFrom(grid)

		// Then: ErrInvalidCell is returned
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})
}

func TestBoard_OutOfBounds(t *testing.T) {
	boards := map[string]Board{
		"empty": NewBoard(),
		"full": mustBoard(t, [][]Cell{
			{x, o, x},
			{o, x, o},
			{o, x, o},
		}),
	}

	for name, board := range boards {
		for _, pos := range outOfBoundsPositions {
			t.Run(name+" "+pos.String(), func(t *testing.T) {
				_, err := board.Get(pos)
				require.ErrorIs(t, err, apperror.ErrOutOfBounds)

				_, err = board.IsEmptyAt(pos)
				require.ErrorIs(t, err, apperror.ErrOutOfBounds)

				for _, cell := range []Cell{Empty, MarkX, MarkO} {
					_, err = board.WithCellSet(pos, cell)
					require.ErrorIs(t, err, apperror.ErrOutOfBounds)
				}
			})
		}
	}
}

func TestBoard_WithCellSet(t *testing.T) {
	t.Run("Returns a new board and keeps the receiver", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()
		pos := Position{Row: 1, Col: 2}

		// When: X is written at (1, 2)
		next, err := board.WithCellSet(pos, MarkX)
		require.NoError(t, err)

		// Then: the new board holds X
		cell, err := next.Get(pos)
		require.NoError(t, err)
		assert.Equal(t, MarkX, cell)

		// And: the original board is unchanged
		empty, err := board.IsEmptyAt(pos)
		require.NoError(t, err)
		assert.True(t, empty)
	})

	t.Run("Rejects a mark over any occupied cell", func(t *testing.T) {
		// Given: a board where every cell is marked
		board := mustBoard(t, [][]Cell{
			{x, o, x},
			{o, x, o},
			{o, x, o},
		})

		for _, pos := range allPositions() {
			// When: X or O is written over an occupied cell
			_, errX := board.WithCellSet(pos, MarkX)
			_, errO := board.WithCellSet(pos, MarkO)

			// Then: ErrCellOccupied is returned for both
			require.ErrorIs(t, errX, apperror.ErrCellOccupied, "position %s", pos)
			require.ErrorIs(t, errO, apperror.ErrCellOccupied, "position %s", pos)

			// And: erasing is allowed
			erased, err := board.WithCellSet(pos, Empty)
			require.NoError(t, err)
			empty, err := erased.IsEmptyAt(pos)
			require.NoError(t, err)
			assert.True(t, empty)
		}
	})

	t.Run("Erasing an empty cell twice succeeds", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()
		pos := Position{Row: 0, Col: 0}

		// When: Empty is written twice
		once, err := board.WithCellSet(pos, Empty)
		require.NoError(t, err)
		twice, err := once.WithCellSet(pos, Empty)

		// Then: both writes succeed
		require.NoError(t, err)
		assert.Equal(t, board, twice)
	})

	t.Run("Rejects unknown cell values", func(t *testing.T) {
		_, err := NewBoard().WithCellSet(Position{Row: 0, Col: 0}, Cell(42))

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})
}

func TestBoard_Snapshot(t *testing.T) {
	// Given: a board with X in the center
	board, err := NewBoard().WithCellSet(Position{Row: 1, Col: 1}, MarkX)
	require.NoError(t, err)

	// When: the caller mutates a snapshot
	snapshot := board.Snapshot()
	snapshot[1][1] = MarkO
	snapshot[0][0] = MarkX

	// Then: the board is unaffected
	assert.Equal(t, [][]Cell{{e, e, e}, {e, x, e}, {e, e, e}}, board.Snapshot())
}

func TestBoard_String(t *testing.T) {
	board := mustBoard(t, [][]Cell{
		{x, o, e},
		{e, x, e},
		{e, e, o},
	})

	assert.Equal(t, "XO./.X./..O", board.String())
	assert.Equal(t, ".../.../...", NewBoard().String())
}
