package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrCorruptedGame = errors.New("stored game is inconsistent")

const gameKeyPrefix = "game:"

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, id string, game tictactoe.Game) error
	GetByID(ctx context.Context, id string) (tictactoe.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// gameRecord is the stored form of a session: board, mover, state and winner.
type gameRecord struct {
	Board         [][]entity.Cell  `json:"board"`
	CurrentPlayer entity.Player    `json:"current_player"`
	State         entity.GameState `json:"state"`
	Winner        *entity.Player   `json:"winner,omitempty"`
}

type dbGame struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGameRepository stores games under "game:<id>". A zero ttl keeps them forever.
func NewGameRepository(client *redis.Client, ttl time.Duration) GameRepository {
	return &dbGame{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, id string, game tictactoe.Game) error {
	gameJSON, err := json.Marshal(newGameRecord(game))
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKeyPrefix+id, gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (tictactoe.Game, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return tictactoe.Game{}, apperror.ErrGameNotFound
	}

	if err != nil {
		return tictactoe.Game{}, fmt.Errorf("failed to get game by id: %w", err)
	}

	var record gameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return tictactoe.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	game, err := record.toGame()
	if err != nil {
		return tictactoe.Game{}, fmt.Errorf("game %s: %w", id, err)
	}

	return game, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

func newGameRecord(game tictactoe.Game) gameRecord {
	record := gameRecord{
		Board:         game.Board().Snapshot(),
		CurrentPlayer: game.CurrentPlayer(),
		State:         game.State(),
	}

	if winner, won := game.Winner(); won {
		record.Winner = &winner
	}

	return record
}

func (that gameRecord) toGame() (tictactoe.Game, error) {
	board, err := entity.NewBoardFrom(that.Board)
	if err != nil {
		return tictactoe.Game{}, fmt.Errorf("%w: %w", ErrCorruptedGame, err)
	}

	game, err := tictactoe.RestoreGame(board, that.CurrentPlayer)
	if err != nil {
		return tictactoe.Game{}, fmt.Errorf("%w: %w", ErrCorruptedGame, err)
	}

	if game.State() != that.State {
		return tictactoe.Game{}, fmt.Errorf("%w: state %s, board says %s", ErrCorruptedGame, that.State, game.State())
	}

	winner, won := game.Winner()
	if won != (that.Winner != nil) || (won && winner != *that.Winner) {
		return tictactoe.Game{}, fmt.Errorf("%w: winner does not match board", ErrCorruptedGame)
	}

	return game, nil
}
