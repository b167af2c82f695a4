package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Board is the board a Game plays on.
type Board interface {
	entity.BoardReader
	SetCell(index int, cell entity.Cell) error
}

type terminal interface {
	RenderBoard(board entity.BoardReader)
	ReadMove(player entity.Cell) (int, error)
	InvalidMove()
	MalformedInput()
}

// Game runs the turn loop on a borrowed board and rule engine.
// The caller owns both and must keep them alive for as long as the Game is used.
type Game struct {
	logger  *slog.Logger
	board   Board
	rules   RuleEngine
	console terminal

	turn  entity.Cell
	moves int
}

func NewGame(logger *slog.Logger, board Board, rules RuleEngine, term terminal) *Game {
	return &Game{
		logger:  logger.With("component", "game"),
		board:   board,
		rules:   rules,
		console: term,
		turn:    entity.FirstPlayer,
	}
}

// Run - plays until the rule engine reports a finished outcome and returns it.
// Invalid and malformed moves are reported to the console and the same player is asked again.
func (that *Game) Run() (entity.Outcome, error) {
	log := that.logger.With("method", "Run")

	for {
		outcome := that.Outcome()
		if outcome.IsFinished() {
			that.console.RenderBoard(that.board)
			log.Info("game finished", "outcome", outcome.String(), "moves", that.moves)

			return outcome, nil
		}

		that.console.RenderBoard(that.board)

		position, err := that.console.ReadMove(that.turn)
		if errors.Is(err, apperror.ErrMalformedInput) {
			log.Debug("malformed input", "player", that.turn.String(), "error", err)
			that.console.MalformedInput()
			continue
		}

		if err != nil {
			return entity.OutcomeUndecided, fmt.Errorf("failed to read move: %w", err)
		}

		if err = that.PlaceMarker(position - 1); err != nil {
			if errors.Is(err, apperror.ErrInvalidMove) {
				log.Debug("move rejected", "player", that.turn.String(), "position", position, "error", err)
				that.console.InvalidMove()
				continue
			}

			return entity.OutcomeUndecided, fmt.Errorf("failed to place marker: %w", err)
		}
	}
}

// PlaceMarker - validates and applies a move of the current player at a 0-based index, then passes the turn.
func (that *Game) PlaceMarker(index int) error {
	if that.Finished() {
		return apperror.ErrGameFinished
	}

	if err := that.validateMove(index); err != nil {
		return err
	}

	if err := that.board.SetCell(index, that.turn); err != nil {
		return fmt.Errorf("failed to set cell: %w", err)
	}

	that.logger.Debug("marker placed", "player", that.turn.String(), "index", index)

	that.turn = entity.NextPlayer(that.turn)
	that.moves++

	return nil
}

// validateMove - checks that index is on the board and free.
func (that *Game) validateMove(index int) error {
	if index < 0 || index >= that.board.TotalCells() {
		return fmt.Errorf("%w: position %d is off the board", apperror.ErrInvalidMove, index+1)
	}

	cell, err := that.board.Cell(index)
	if err != nil {
		return fmt.Errorf("failed to get cell: %w", err)
	}

	if cell != entity.CellEmpty {
		return fmt.Errorf("%w: position %d: %w", apperror.ErrInvalidMove, index+1, apperror.ErrCellOccupied)
	}

	return nil
}

// Outcome - evaluates the board as it is now.
func (that *Game) Outcome() entity.Outcome {
	return that.rules.Evaluate(that.board)
}

func (that *Game) Finished() bool {
	return that.Outcome().IsFinished()
}

// Turn - returns the marker of the player to move.
func (that *Game) Turn() entity.Cell {
	return that.turn
}

func (that *Game) Moves() int {
	return that.moves
}
