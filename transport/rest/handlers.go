package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type gameService interface {
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	Render(ctx context.Context, gameID string) (string, error)
	Moves(ctx context.Context, gameID string) ([]entity.Move, error)
}

type handlers struct {
	logger      *slog.Logger
	gameService gameService
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameService.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "getGame", err)
		return
	}

	that.writeJSON(w, game)
}

// getBoard - plain text rendering, top row first.
func (that *handlers) getBoard(w http.ResponseWriter, r *http.Request) {
	text, err := that.gameService.Render(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "getBoard", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err = w.Write([]byte(text)); err != nil {
		that.logger.Error("failed to write board", "error", err)
	}
}

func (that *handlers) getMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := that.gameService.Moves(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "getMoves", err)
		return
	}

	that.writeJSON(w, moves)
}

func (that *handlers) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	if errors.Is(err, apperror.ErrGameNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	that.logger.Error("request failed", "method", method, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
