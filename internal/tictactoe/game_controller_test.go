package tictactoe

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const promptPrefix = ", enter a position: "

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// spyBoard records every SetCell call that would break the move rules.
type spyBoard struct {
	*entity.Board

	writes     []int
	violations []int
}

func (that *spyBoard) SetCell(index int, cell entity.Cell) error {
	current, err := that.Board.Cell(index)
	if err != nil || current != entity.CellEmpty {
		that.violations = append(that.violations, index)
	}

	that.writes = append(that.writes, index)

	return that.Board.SetCell(index, cell)
}

func newTestGame(t *testing.T, width int, input string) (*Game, *spyBoard, *bytes.Buffer) {
	t.Helper()

	board, err := entity.NewBoard(width)
	require.NoError(t, err)

	spy := &spyBoard{Board: board}
	out := &bytes.Buffer{}

	game := NewGame(newTestLogger(), spy, StandardRuleEngine{}, console.New(strings.NewReader(input), out))

	return game, spy, out
}

func cellAt(t *testing.T, board entity.BoardReader, index int) entity.Cell {
	t.Helper()

	cell, err := board.Cell(index)
	require.NoError(t, err)

	return cell
}

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game, _, _ := newTestGame(t, 3, "")

	// Then: X moves first on an undecided board
	assert.Equal(t, entity.CellX, game.Turn())
	assert.Equal(t, 0, game.Moves())
	assert.Equal(t, entity.OutcomeUndecided, game.Outcome())
	assert.False(t, game.Finished())
}

func TestGame_PlaceMarker(t *testing.T) {
	t.Run("PlaceMarker", func(t *testing.T) {
		// Given: a new game
		game, board, _ := newTestGame(t, 3, "")

		// When: X places a marker in the first cell
		err := game.PlaceMarker(0)
		require.NoError(t, err)

		// Then: the cell holds X and it is O's turn
		assert.Equal(t, entity.CellX, cellAt(t, board, 0))
		assert.Equal(t, entity.CellO, game.Turn())
		assert.Equal(t, 1, game.Moves())
	})

	t.Run("Turns alternate", func(t *testing.T) {
		// Given: a new game
		game, board, _ := newTestGame(t, 3, "")

		// When: four moves are made
		for _, index := range []int{0, 1, 2, 4} {
			require.NoError(t, game.PlaceMarker(index))
		}

		// Then: markers alternate starting with X
		assert.Equal(t, entity.CellX, cellAt(t, board, 0))
		assert.Equal(t, entity.CellO, cellAt(t, board, 1))
		assert.Equal(t, entity.CellX, cellAt(t, board, 2))
		assert.Equal(t, entity.CellO, cellAt(t, board, 4))
		assert.Equal(t, entity.CellX, game.Turn())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X holds cell 0
		game, board, _ := newTestGame(t, 3, "")
		require.NoError(t, game.PlaceMarker(0))

		// When: O tries the same cell
		err := game.PlaceMarker(0)

		// Then: the move is rejected as occupied
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the board and the turn are unchanged
		assert.Equal(t, entity.CellX, cellAt(t, board, 0))
		assert.Equal(t, entity.CellO, game.Turn())
		assert.Equal(t, 1, game.Moves())
		assert.Equal(t, []int{0}, board.writes)
	})

	t.Run("Error on index outside the board", func(t *testing.T) {
		// Given: a new game
		game, board, _ := newTestGame(t, 3, "")

		for _, index := range []int{-1, 9, 20} {
			// When: a move outside the board is made
			err := game.PlaceMarker(index)

			// Then: ErrInvalidMove is returned and nothing is written
			require.ErrorIs(t, err, apperror.ErrInvalidMove)
		}

		assert.Empty(t, board.writes)
		assert.Equal(t, entity.CellX, game.Turn())
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: X has completed the top row
		game, _, _ := newTestGame(t, 3, "")
		for _, index := range []int{0, 3, 1, 4, 2} {
			require.NoError(t, game.PlaceMarker(index))
		}
		require.True(t, game.Finished())

		// When: O tries to move
		err := game.PlaceMarker(5)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.OutcomeWinnerX, game.Outcome())
	})
}

func TestGame_Run(t *testing.T) {
	t.Run("X wins with the top row", func(t *testing.T) {
		// Given: moves 1, 4, 2, 5, 3 and one more line that must never be read
		game, board, out := newTestGame(t, 3, "1\n4\n2\n5\n3\n9\n")

		// When: the game is run
		outcome, err := game.Run()

		// Then: X wins right after the fifth move without another prompt
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWinnerX, outcome)
		assert.Equal(t, 5, strings.Count(out.String(), promptPrefix))
		assert.Equal(t, 5, game.Moves())
		assert.Equal(t, entity.CellEmpty, cellAt(t, board, 8))

		// Then: the final board is rendered
		assert.True(t, strings.HasSuffix(out.String(), "X X X\nO O 6\n7 8 9\n\n"))
	})

	t.Run("O wins with the middle row", func(t *testing.T) {
		game, _, _ := newTestGame(t, 3, "1\n4\n2\n5\n9\n6\n")

		outcome, err := game.Run()

		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWinnerO, outcome)
	})

	t.Run("Full board without a line is a stalemate", func(t *testing.T) {
		// Given: moves that end in X O X / X O O / O X X
		game, board, _ := newTestGame(t, 3, "1\n2\n3\n5\n4\n6\n8\n7\n9\n")

		// When: the game is run
		outcome, err := game.Run()

		// Then: the game ends in a stalemate
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeStalemate, outcome)
		assert.False(t, board.HasEmptyCell())
		assert.Equal(t, 9, game.Moves())
	})

	t.Run("Rejected moves do not change the turn", func(t *testing.T) {
		// Given: X takes 5, then O tries 5 again, a word, a zero, a position off the board and finally 1
		game, board, out := newTestGame(t, 3, "5\n5\nfive\n0\n10\n1\n")

		// When: the game runs until input ends
		outcome, err := game.Run()

		// Then: the game stops undecided because input closed
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Equal(t, entity.OutcomeUndecided, outcome)

		// Then: only the two valid moves were applied, O's on its own turn
		assert.Equal(t, entity.CellX, cellAt(t, board, 4))
		assert.Equal(t, entity.CellO, cellAt(t, board, 0))
		assert.Equal(t, []int{4, 0}, board.writes)
		assert.Empty(t, board.violations)
		assert.Equal(t, entity.CellX, game.Turn())

		// Then: each rejection was reported
		assert.Equal(t, 3, strings.Count(out.String(), "Invalid move"))
		assert.Equal(t, 1, strings.Count(out.String(), "Please enter a position number"))
		assert.Equal(t, 5, strings.Count(out.String(), "Player O"+promptPrefix))
	})

	t.Run("Very long line is re-prompted", func(t *testing.T) {
		// Given: a 70000 character line before moves where X fills the top row
		game, board, out := newTestGame(t, 3, strings.Repeat("a", 70000)+"\n1\n4\n2\n5\n3\n")

		// When: the game is run
		outcome, err := game.Run()

		// Then: X is asked again and still wins
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWinnerX, outcome)
		assert.Equal(t, 5, game.Moves())
		assert.Empty(t, board.violations)
		assert.Equal(t, 1, strings.Count(out.String(), "Please enter a position number"))
		assert.Equal(t, 6, strings.Count(out.String(), promptPrefix))
	})

	t.Run("Finished board is reported without prompting", func(t *testing.T) {
		// Given: a board that is already won
		board := boardFrom(t, "OOO/XX./X..")
		out := &bytes.Buffer{}
		game := NewGame(newTestLogger(), board, StandardRuleEngine{}, console.New(strings.NewReader("7\n"), out))

		// When: the game is run
		outcome, err := game.Run()

		// Then: the outcome is returned immediately
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWinnerO, outcome)
		assert.NotContains(t, out.String(), promptPrefix)
	})

	t.Run("Rows rules play on after a column", func(t *testing.T) {
		// Given: the rows-only rules and X completing the first column on move five
		board, err := entity.NewBoard(3)
		require.NoError(t, err)
		game := NewGame(newTestLogger(), board, RowRuleEngine{}, console.New(strings.NewReader("1\n2\n4\n3\n7\n5\n8\n6\n9\n"), &bytes.Buffer{}))

		// When: the game is run
		outcome, err := game.Run()

		// Then: the column is ignored and X later wins the bottom row
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeWinnerX, outcome)
		assert.Equal(t, 9, game.Moves())
	})
}
