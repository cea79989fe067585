package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, id string, game tictactoe.Game) error
	GetByID(ctx context.Context, id string) (tictactoe.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager keeps stored sessions moving through the rules engine.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	newID    func() string
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		newID:    uuid.NewString,
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (string, tictactoe.Game, error) {
	id := that.newID()
	game := tictactoe.NewGame()

	if err := that.gameRepo.CreateOrUpdate(ctx, id, game); err != nil {
		return "", tictactoe.Game{}, fmt.Errorf("failed create game: %w", err)
	}

	that.logger.Info("game created", "gameID", id)

	return id, game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (tictactoe.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return tictactoe.Game{}, fmt.Errorf("failed get game by id: %w", err)
	}

	return game, nil
}

// MakeMove submits a move for whoever is to play. Finished games are kept so
// later moves keep reporting the terminal state.
func (that *GameManager) MakeMove(ctx context.Context, id string, pos entity.Position) (tictactoe.Game, error) {
	log := that.logger.With("method", "MakeMove", "gameID", id)

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return tictactoe.Game{}, fmt.Errorf("failed get game by id: %w", err)
	}

	mover := game.CurrentPlayer()

	next, err := game.SubmitMove(pos)
	if err != nil {
		log.Debug("move rejected", "player", mover, "position", pos, "error", err)
		return tictactoe.Game{}, fmt.Errorf("failed make move: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, id, next); err != nil {
		return tictactoe.Game{}, fmt.Errorf("failed update game: %w", err)
	}

	log.Debug("move accepted", "player", mover, "position", pos, "board", next.Board().String())

	if next.IsFinished() {
		winner, _ := next.Winner()
		log.Info("game finished", "state", next.State(), "winner", winner.String())
	}

	return next, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}
