package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

type mockMoveRepo struct {
	mock.Mock
}

func (that *mockMoveRepo) Append(ctx context.Context, gameID string, moves ...entity.Move) error {
	args := that.Called(ctx, gameID, moves)
	return args.Error(0)
}

func (that *mockMoveRepo) List(ctx context.Context, gameID string) ([]entity.Move, error) {
	args := that.Called(ctx, gameID)
	moves, _ := args.Get(0).([]entity.Move)
	return moves, args.Error(1)
}

func (that *mockMoveRepo) DeleteByGameID(ctx context.Context, gameID string) error {
	args := that.Called(ctx, gameID)
	return args.Error(0)
}
