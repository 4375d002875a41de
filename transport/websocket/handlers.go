package websocket

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

func (that *Server) handleNewGame(ctx context.Context, c *client, _ Payload) error {
	game, err := that.uGame.CreateGame(ctx)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.watch(ctx, c, game.ID); err != nil {
		return err
	}

	that.send(c, actionGameNew, Payload{GameID: game.ID, Game: game})

	that.logger.Info("game created", "clientID", c.id, "gameID", game.ID)

	return nil
}

// handleJoinGame - starts streaming game:move messages for the game and replies with its state.
func (that *Server) handleJoinGame(ctx context.Context, c *client, payload Payload) error {
	if payload.GameID == "" {
		return fmt.Errorf("%w: game_id is required", apperror.ErrInvalidPayload)
	}

	game, err := that.uGame.GetGame(ctx, payload.GameID)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	if !c.watching(game.ID) {
		if err = that.watch(ctx, c, game.ID); err != nil {
			return err
		}
	}

	that.send(c, actionGameJoin, Payload{GameID: game.ID, Game: game})

	return nil
}

func (that *Server) handleLeaveGame(_ context.Context, c *client, payload Payload) error {
	if payload.GameID == "" {
		return fmt.Errorf("%w: game_id is required", apperror.ErrInvalidPayload)
	}

	c.removeWatch(payload.GameID)
	that.send(c, actionGameLeave, Payload{GameID: payload.GameID})

	return nil
}

// handleGameTurn - moves are broadcast through the watch; the sender only gets the new state.
func (that *Server) handleGameTurn(ctx context.Context, c *client, payload Payload) error {
	if payload.GameID == "" || payload.Color == nil || payload.Row == nil || payload.Column == nil {
		return fmt.Errorf("%w: game_id, color, row and column are required", apperror.ErrInvalidPayload)
	}

	game, err := that.uGame.MakeTurn(ctx, payload.GameID, *payload.Color, *payload.Row, *payload.Column)
	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.send(c, actionGameTurn, Payload{GameID: game.ID, Game: game})

	return nil
}

func (that *Server) handleGameReset(ctx context.Context, c *client, payload Payload) error {
	if payload.GameID == "" {
		return fmt.Errorf("%w: game_id is required", apperror.ErrInvalidPayload)
	}

	game, err := that.uGame.ResetGame(ctx, payload.GameID)
	if err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}

	that.send(c, actionGameReset, Payload{GameID: game.ID, Game: game})

	return nil
}

func (that *Server) handleGameState(ctx context.Context, c *client, payload Payload) error {
	if payload.GameID == "" {
		return fmt.Errorf("%w: game_id is required", apperror.ErrInvalidPayload)
	}

	game, err := that.uGame.GetGame(ctx, payload.GameID)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	that.send(c, actionGameState, Payload{GameID: game.ID, Game: game})

	return nil
}

// watch - subscribes the client to the game. The observer runs under the game lock, so it only enqueues.
func (that *Server) watch(ctx context.Context, c *client, gameID string) error {
	stop, err := that.uGame.Watch(ctx, gameID, func(move entity.Move) {
		that.send(c, actionGameMove, Payload{GameID: gameID, Move: &move})
	})
	if err != nil {
		return fmt.Errorf("failed to watch game: %w", err)
	}

	c.addWatch(gameID, stop)

	return nil
}
