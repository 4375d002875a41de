package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const movesKeyPrefix = "moves:"

// MoveRepository keeps the ordered log of accepted moves per game.
type MoveRepository interface {
	Append(ctx context.Context, gameID string, moves ...entity.Move) error
	List(ctx context.Context, gameID string) ([]entity.Move, error)
	DeleteByGameID(ctx context.Context, gameID string) error
}

type dbMove struct {
	client *redis.Client
}

func NewMoveRepository(client *redis.Client) MoveRepository {
	return &dbMove{
		client: client,
	}
}

func (that *dbMove) Append(ctx context.Context, gameID string, moves ...entity.Move) error {
	if len(moves) == 0 {
		return nil
	}

	values := make([]any, 0, len(moves))
	for _, move := range moves {
		moveJSON, err := json.Marshal(move)
		if err != nil {
			return fmt.Errorf("could not marshal move: %w", err)
		}
		values = append(values, moveJSON)
	}

	if err := that.client.RPush(ctx, movesKeyPrefix+gameID, values...).Err(); err != nil {
		return fmt.Errorf("failed to append moves: %w", err)
	}

	return nil
}

func (that *dbMove) List(ctx context.Context, gameID string) ([]entity.Move, error) {
	response, err := that.client.LRange(ctx, movesKeyPrefix+gameID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	moves := make([]entity.Move, 0, len(response))
	for _, raw := range response {
		var move entity.Move
		if err = json.Unmarshal([]byte(raw), &move); err != nil {
			return nil, fmt.Errorf("failed to unmarshal move: %w", err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

func (that *dbMove) DeleteByGameID(ctx context.Context, gameID string) error {
	if err := that.client.Del(ctx, movesKeyPrefix+gameID).Err(); err != nil {
		return fmt.Errorf("failed to delete moves: %w", err)
	}

	return nil
}
