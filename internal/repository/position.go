package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

var ErrPositionNotFound = errors.New("position not found")

// PositionRepository memoises search results per board and mark to move.
type PositionRepository interface {
	Save(ctx context.Context, board entity.Board, mark entity.Mark, result minimax.Result) error
	GetByBoard(ctx context.Context, board entity.Board, mark entity.Mark) (minimax.Result, error)
}

type dbPosition struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPositionRepository stores entries for ttl; zero keeps them forever.
func NewPositionRepository(client *redis.Client, ttl time.Duration) PositionRepository {
	return &dbPosition{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbPosition) Save(ctx context.Context, board entity.Board, mark entity.Mark, result minimax.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal position: %w", err)
	}

	if err = that.client.Set(ctx, positionKey(board, mark), resultJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set position: %w", err)
	}

	return nil
}

func (that *dbPosition) GetByBoard(ctx context.Context, board entity.Board, mark entity.Mark) (minimax.Result, error) {
	response, err := that.client.Get(ctx, positionKey(board, mark)).Result()

	if errors.Is(err, redis.Nil) {
		return minimax.Result{}, ErrPositionNotFound
	}

	if err != nil {
		return minimax.Result{}, fmt.Errorf("failed to get position: %w", err)
	}

	var result minimax.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return minimax.Result{}, fmt.Errorf("failed to unmarshal position: %w", err)
	}

	return result, nil
}

func positionKey(board entity.Board, mark entity.Mark) string {
	return "position:" + board.Key() + ":" + string(mark)
}
