package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/config"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/pkg"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type moveRepo interface {
	Append(ctx context.Context, gameID string, moves ...entity.Move) error
	List(ctx context.Context, gameID string) ([]entity.Move, error)
	DeleteByGameID(ctx context.Context, gameID string) error
}

// RandomColor - a fair coin flip between the two players.
func RandomColor() entity.Color {
	if rand.Intn(2) == 0 { //nolint: gosec // not security sensitive
		return entity.Black
	}
	return entity.Red
}

// session is one live engine. mu guards every call into engine, observers included.
type session struct {
	mu      sync.Mutex
	id      string
	engine  *connectfour.Game
	pending []entity.Move
}

func (that *session) snapshot() *entity.Game {
	return &entity.Game{
		ID:        that.id,
		Rows:      that.engine.Rows(),
		Columns:   that.engine.Columns(),
		WinLength: that.engine.WinLength(),
		Board:     that.engine.Board().Cells(),
		Turn:      that.engine.Turn(),
		Outcome:   that.engine.Outcome(),
		Marks:     that.engine.Marks(),
	}
}

// GameManager hosts engines by id, serializes access to each of them and persists every accepted move.
type GameManager struct {
	logger   *slog.Logger
	board    config.Board
	gameRepo gameRepo
	moveRepo moveRepo
	coin     func() entity.Color

	mu       sync.Mutex
	sessions map[string]*session
}

// NewGameManager - coin picks the first player of each new or reset game; nil means RandomColor.
func NewGameManager(logger *slog.Logger, board config.Board, gameRepo gameRepo, moveRepo moveRepo, coin func() entity.Color) *GameManager {
	if coin == nil {
		coin = RandomColor
	}

	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		board:    board,
		gameRepo: gameRepo,
		moveRepo: moveRepo,
		coin:     coin,
		sessions: make(map[string]*session),
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	engine, err := connectfour.New(that.board.Rows, that.board.Columns, that.board.WinLength, that.coin())
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	sess := that.newSession(pkg.GenerateGameID(), engine)

	game := sess.snapshot()
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.mu.Lock()
	that.sessions[sess.id] = sess
	that.mu.Unlock()

	that.logger.Info("game created", "gameID", game.ID, "first", game.Turn)

	return game, nil
}

// MakeTurn - drops color's checker at (row, column) in the game and persists the result.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, color entity.Color, row, column int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	sess, err := that.getSession(ctx, gameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err = sess.snapshot().ConfirmTurn(color); err != nil {
		return nil, err
	}

	outcome, err := sess.engine.TakeTurn(row, column)
	if err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	// the move stays on the board; an unrecorded one is retried on the next call
	if err = that.flush(ctx, sess); err != nil {
		return nil, err
	}

	game := sess.snapshot()
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	if outcome.IsFinished() {
		log.Info("game finished", "outcome", outcome, "marks", game.Marks)
	}

	return game, nil
}

// ResetGame - clears the board, flips a coin for the first player and drops the move log.
func (that *GameManager) ResetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	sess, err := that.getSession(ctx, gameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.engine.Reset(that.coin())
	sess.pending = nil

	if err = that.moveRepo.DeleteByGameID(ctx, gameID); err != nil {
		return nil, fmt.Errorf("failed to clear moves: %w", err)
	}

	game := sess.snapshot()
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	that.logger.Info("game reset", "gameID", gameID, "first", game.Turn)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	sess, err := that.getSession(ctx, gameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.snapshot(), nil
}

// Render - returns the text form of the board, top row first.
func (that *GameManager) Render(ctx context.Context, gameID string) (string, error) {
	sess, err := that.getSession(ctx, gameID)
	if err != nil {
		return "", err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.engine.String(), nil
}

func (that *GameManager) Moves(ctx context.Context, gameID string) ([]entity.Move, error) {
	sess, err := that.getSession(ctx, gameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err = that.flush(ctx, sess); err != nil {
		return nil, err
	}

	moves, err := that.moveRepo.List(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	return moves, nil
}

// Watch - subscribes observer to the game's moves. The observer runs while the game is locked,
// so it must hand work off instead of calling back into the manager.
func (that *GameManager) Watch(ctx context.Context, gameID string, observer connectfour.Observer) (func(), error) {
	sess, err := that.getSession(ctx, gameID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sub := sess.engine.Subscribe(observer)
	sess.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sess.mu.Lock()
			sub.Unsubscribe()
			sess.mu.Unlock()
		})
	}, nil
}

// EndGame - forgets the game and deletes its stored state.
func (that *GameManager) EndGame(ctx context.Context, gameID string) error {
	log := that.logger.With("method", "EndGame", "gameID", gameID)

	that.mu.Lock()
	delete(that.sessions, gameID)
	that.mu.Unlock()

	if err := that.moveRepo.DeleteByGameID(ctx, gameID); err != nil {
		log.Error("failed to delete moves", "error", err)
	}

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted")

	return nil
}

func (that *GameManager) newSession(id string, engine *connectfour.Game) *session {
	sess := &session{id: id, engine: engine}
	engine.Subscribe(func(move entity.Move) {
		sess.pending = append(sess.pending, move)
	})

	return sess
}

// flush - appends the moves not yet in the log. They stay pending when the append fails. Caller holds sess.mu.
func (that *GameManager) flush(ctx context.Context, sess *session) error {
	if len(sess.pending) == 0 {
		return nil
	}

	if err := that.moveRepo.Append(ctx, sess.id, sess.pending...); err != nil {
		that.logger.Error("failed to record moves", "gameID", sess.id, "pending", len(sess.pending), "error", err)
		return fmt.Errorf("failed to record move: %w", err)
	}

	sess.pending = nil

	return nil
}

// getSession - returns the live session, restoring it from storage if this process has not seen it yet.
func (that *GameManager) getSession(ctx context.Context, gameID string) (*session, error) {
	that.mu.Lock()
	sess, ok := that.sessions[gameID]
	that.mu.Unlock()

	if ok {
		return sess, nil
	}

	restored, err := that.restore(ctx, gameID)
	if err != nil {
		return nil, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	// another caller may have restored the same game meanwhile
	if sess, ok = that.sessions[gameID]; ok {
		return sess, nil
	}

	that.sessions[gameID] = restored

	return restored, nil
}

// restore - rebuilds an engine by replaying the stored move log through the rules.
func (that *GameManager) restore(ctx context.Context, gameID string) (*session, error) {
	stored, err := that.gameRepo.GetByID(ctx, gameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, gameID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	moves, err := that.moveRepo.List(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	first := stored.Turn
	if len(moves) > 0 {
		first = moves[0].Color
	}

	engine, err := connectfour.New(stored.Rows, stored.Columns, stored.WinLength, first)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild game %s: %w", gameID, err)
	}

	for i, move := range moves {
		if engine.Turn() != move.Color {
			return nil, fmt.Errorf("failed to replay move %d of game %s: %w", i, gameID, apperror.ErrNotYourTurn)
		}

		if _, err = engine.TakeTurn(move.Row, move.Column); err != nil {
			return nil, fmt.Errorf("failed to replay move %d of game %s: %w", i, gameID, err)
		}
	}

	that.logger.Info("game restored", "gameID", gameID, "moves", len(moves))

	return that.newSession(gameID, engine), nil
}
