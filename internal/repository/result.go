package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	resultKeyPrefix = "result:"
	scoreboardKey   = "scoreboard"
)

var ErrResultNotFound = errors.New("result not found")

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save - stores the result and bumps the scoreboard counter of its outcome in one transaction.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
		pipe.HIncrBy(ctx, scoreboardKey, result.Outcome.String(), 1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Result{}, ErrResultNotFound
	}

	if err != nil {
		return &entity.Result{}, fmt.Errorf("failed to get result by id: %w", err)
	}

	var existingResult entity.Result
	if err = json.Unmarshal([]byte(response), &existingResult); err != nil {
		return &entity.Result{}, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &existingResult, nil
}

func (that *dbResult) Scoreboard(ctx context.Context) (*entity.Scoreboard, error) {
	counters, err := that.client.HGetAll(ctx, scoreboardKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	scoreboard := &entity.Scoreboard{}
	for field, value := range counters {
		outcome, err := entity.ParseOutcome(field)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scoreboard field: %w", err)
		}

		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scoreboard counter %q: %w", field, err)
		}

		scoreboard.Add(outcome, count)
	}

	return scoreboard, nil
}
