package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

const resultsTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - plays one game on in/out. A game that cannot finish because input ended is not an error.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	rules, err := tictactoe.NewRuleEngine(conf.Rules)
	if err != nil {
		return fmt.Errorf("could not select rules: %w", err)
	}

	board, err := entity.NewBoard(conf.BoardWidth)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	results, closeResults, err := openResults(conf)
	if err != nil {
		return fmt.Errorf("could not open results log: %w", err)
	}

	defer func() {
		if err := closeResults(); err != nil {
			log.Error("could not close results log", "error", err)
		}
	}()

	cons := console.New(in, out)
	game := tictactoe.NewGame(logger, board, rules, cons)
	session := usecase.NewSession(logger, results)

	log.Debug("starting game", "width", conf.BoardWidth, "rules", conf.Rules, "results", conf.Results.Driver)

	result, err := session.Play(context.Background(), game, conf.BoardWidth, conf.Rules)
	if errors.Is(err, apperror.ErrInputClosed) {
		log.Warn("input closed before the game finished", "moves", game.Moves())
		cons.ReportOutcome(entity.OutcomeUndecided)

		return nil
	}

	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	cons.ReportOutcome(result.Outcome)

	if results == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), resultsTimeout)
	defer cancel()

	scoreboard, err := session.Scoreboard(ctx)
	if err != nil {
		log.Error("could not read scoreboard", "error", err)
		return nil
	}

	cons.ReportScoreboard(scoreboard)

	return nil
}

// openResults - connects the results log selected in config. The returned close func is never nil.
func openResults(conf *config.Config) (repository.ResultRepository, func() error, error) {
	noop := func() error { return nil }

	ctx, cancel := context.WithTimeout(context.Background(), resultsTimeout)
	defer cancel()

	switch conf.Results.Driver {
	case config.ResultsDriverRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if conf.Redis.Host == "" {
			return nil, noop, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, noop, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewResultRepository(redisStorage.Connection), redisStorage.Close, nil
	case config.ResultsDriverSQLite:
		sqliteStorage, err := storage.NewSQLiteStorage(ctx, conf.Results.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, noop, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteResultRepository(sqliteStorage.Connection), sqliteStorage.Close, nil
	default:
		return nil, noop, nil
	}
}
