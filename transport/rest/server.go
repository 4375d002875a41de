package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Handler - routes /ping and the read-only game endpoints.
func Handler(logger *slog.Logger, gameService gameService) http.Handler {
	h := &handlers{
		logger:      logger.With("component", "rest"),
		gameService: gameService,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", pingHandler)
	mux.HandleFunc("GET /games/{id}", h.getGame)
	mux.HandleFunc("GET /games/{id}/board", h.getBoard)
	mux.HandleFunc("GET /games/{id}/moves", h.getMoves)

	return mux
}

// Start - serves Handler on port until ctx is done.
func Start(ctx context.Context, port string, logger *slog.Logger, gameService gameService) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      Handler(logger, gameService),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
