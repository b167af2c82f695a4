package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const saveTimeout = 5 * time.Second

var ErrResultsDisabled = errors.New("results log is disabled")

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

type gameRunner interface {
	Run() (entity.Outcome, error)
	Moves() int
}

// Session plays games and records them in the results log, when one is configured.
type Session struct {
	logger  *slog.Logger
	results resultRepo
}

// NewSession - results may be nil, in which case nothing is recorded.
func NewSession(logger *slog.Logger, results resultRepo) *Session {
	return &Session{
		logger:  logger.With("component", "session"),
		results: results,
	}
}

// Play - runs game to the end and records its result. Failing to record does not fail the game.
func (that *Session) Play(ctx context.Context, game gameRunner, width int, rules string) (*entity.Result, error) {
	log := that.logger.With("method", "Play")

	outcome, err := game.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run game: %w", err)
	}

	result := &entity.Result{
		ID:         uuid.NewString(),
		Width:      width,
		Rules:      rules,
		Outcome:    outcome,
		Moves:      game.Moves(),
		FinishedAt: time.Now().UTC(),
	}

	if that.results == nil {
		return result, nil
	}

	saveCtx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	if err = that.results.Save(saveCtx, result); err != nil {
		log.Error("failed to save result", "resultID", result.ID, "error", err)
		return result, nil
	}

	log.Info("result saved", "resultID", result.ID, "outcome", outcome.String())

	return result, nil
}

func (that *Session) Scoreboard(ctx context.Context) (*entity.Scoreboard, error) {
	if that.results == nil {
		return nil, ErrResultsDisabled
	}

	scoreboard, err := that.results.Scoreboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return scoreboard, nil
}
