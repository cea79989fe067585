package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Game is an immutable session snapshot. SubmitMove returns a new Game and
// leaves the receiver untouched.
type Game struct {
	board         entity.Board
	currentPlayer entity.Player
	state         entity.GameState
	winner        entity.Player
}

// NewGame returns an empty board with X to move.
func NewGame() Game {
	return Game{
		board:         entity.NewBoard(),
		currentPlayer: entity.PlayerX,
		state:         entity.Playing,
	}
}

// RestoreGame rebuilds a session from a stored board and the player that was
// to move (or that made the final move). State and winner come from the board.
func RestoreGame(board entity.Board, currentPlayer entity.Player) (Game, error) {
	if !currentPlayer.IsValid() {
		return Game{}, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, uint8(currentPlayer))
	}

	winner, _ := DetectWinner(board)

	return Game{
		board:         board,
		currentPlayer: currentPlayer,
		state:         DeriveState(board),
		winner:        winner,
	}, nil
}

func (that Game) SubmitMove(pos entity.Position) (Game, error) {
	mover := that.currentPlayer

	board, err := ApplyMove(that.board, pos, mover)
	if err != nil {
		return Game{}, err
	}

	state := DeriveState(board)
	winner, _ := DetectWinner(board)

	next := mover
	if state == entity.Playing {
		next = mover.Opponent()
	}

	return Game{
		board:         board,
		currentPlayer: next,
		state:         state,
		winner:        winner,
	}, nil
}

// CurrentPlayer is the player to move while playing, and the last mover once
// the game is finished.
func (that Game) CurrentPlayer() entity.Player {
	return that.currentPlayer
}

func (that Game) State() entity.GameState {
	return that.state
}

func (that Game) Winner() (entity.Player, bool) {
	return that.winner, that.state == entity.Won
}

func (that Game) Board() entity.Board {
	return that.board
}

func (that Game) IsFinished() bool {
	return that.state.IsFinished()
}
