package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type gameManager interface {
	CreateGame(ctx context.Context) (string, tictactoe.Game, error)
	GetGame(ctx context.Context, id string) (tictactoe.Game, error)
	MakeMove(ctx context.Context, id string, pos entity.Position) (tictactoe.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type GameHandlers interface {
	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	MakeMove(w http.ResponseWriter, r *http.Request)
	DeleteGame(w http.ResponseWriter, r *http.Request)
}

type gameView struct {
	ID            string           `json:"id"`
	Board         [][]entity.Cell  `json:"board"`
	CurrentPlayer *entity.Player   `json:"current_player,omitempty"`
	State         entity.GameState `json:"state"`
	Winner        *entity.Player   `json:"winner,omitempty"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errInvalidMoveRequest = errors.New("request body must be {\"row\": int, \"col\": int}")

type gameHandlers struct {
	logger      *slog.Logger
	gameManager gameManager
}

func NewGameHandlers(logger *slog.Logger, gameManager gameManager) GameHandlers {
	return &gameHandlers{
		logger:      logger.With("component", "rest"),
		gameManager: gameManager,
	}
}

func (that *gameHandlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	id, game, err := that.gameManager.CreateGame(r.Context())
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, newGameView(id, game))
}

func (that *gameHandlers) GetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	game, err := that.gameManager.GetGame(r.Context(), id)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameView(id, game))
}

func (that *gameHandlers) MakeMove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		that.writeError(w, r, errInvalidMoveRequest)
		return
	}

	game, err := that.gameManager.MakeMove(r.Context(), id, entity.Position{Row: *req.Row, Col: *req.Col})
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameView(id, game))
}

func (that *gameHandlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gameManager.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func newGameView(id string, game tictactoe.Game) gameView {
	view := gameView{
		ID:    id,
		Board: game.Board().Snapshot(),
		State: game.State(),
	}

	if !game.IsFinished() {
		player := game.CurrentPlayer()
		view.CurrentPlayer = &player
	}

	if winner, won := game.Winner(); won {
		view.Winner = &winner
	}

	return view
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidMoveRequest), errors.Is(err, apperror.ErrOutOfBounds):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameAlreadyWon),
		errors.Is(err, apperror.ErrGameAlreadyDrawn):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *gameHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *gameHandlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
