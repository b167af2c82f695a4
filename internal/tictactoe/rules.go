package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	RulesStandard = "standard"
	RulesRows     = "rows"
)

// RuleEngine evaluates a board and reports its outcome. Implementations are stateless.
type RuleEngine interface {
	Evaluate(board entity.BoardReader) entity.Outcome
}

// NewRuleEngine - returns the rule engine registered under name.
func NewRuleEngine(name string) (RuleEngine, error) {
	switch name {
	case RulesStandard:
		return StandardRuleEngine{}, nil
	case RulesRows:
		return RowRuleEngine{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownRules, name)
	}
}

// StandardRuleEngine detects a full row, column or diagonal of one marker.
type StandardRuleEngine struct{}

func (StandardRuleEngine) Evaluate(board entity.BoardReader) entity.Outcome {
	for _, line := range WinLines(board.Width()) {
		if winner := lineWinner(board, line); winner != entity.CellEmpty {
			return entity.WinnerOf(winner)
		}
	}

	return stalemateOrUndecided(board)
}

// RowRuleEngine only looks at rows. A full column or diagonal is not a win under these rules.
type RowRuleEngine struct{}

func (RowRuleEngine) Evaluate(board entity.BoardReader) entity.Outcome {
	width := board.Width()

	for row := 0; row < width; row++ {
		candidate := mustCell(board, row*width)
		if !entity.IsPlayer(candidate) {
			continue
		}

		won := true
		for column := 1; column < width; column++ {
			if mustCell(board, row*width+column) != candidate {
				won = false
				break
			}
		}

		if won {
			return entity.WinnerOf(candidate)
		}
	}

	return stalemateOrUndecided(board)
}

// WinLines - returns the cell indexes of every line on a width x width board, in evaluation order:
// rows top to bottom, columns left to right, the main diagonal, then the anti-diagonal.
func WinLines(width int) [][]int {
	if width <= 0 {
		return nil
	}

	lines := make([][]int, 0, 2*width+2)

	for row := 0; row < width; row++ {
		line := make([]int, width)
		for column := range line {
			line[column] = row*width + column
		}
		lines = append(lines, line)
	}

	for column := 0; column < width; column++ {
		line := make([]int, width)
		for row := range line {
			line[row] = row*width + column
		}
		lines = append(lines, line)
	}

	diagonal := make([]int, width)
	antiDiagonal := make([]int, width)
	for i := 0; i < width; i++ {
		diagonal[i] = i*width + i
		antiDiagonal[i] = i*width + (width - 1 - i)
	}

	return append(lines, diagonal, antiDiagonal)
}

// lineWinner - returns the player marker filling the whole line, or CellEmpty.
func lineWinner(board entity.BoardReader, line []int) entity.Cell {
	first := mustCell(board, line[0])
	if !entity.IsPlayer(first) {
		return entity.CellEmpty
	}

	for _, index := range line[1:] {
		if mustCell(board, index) != first {
			return entity.CellEmpty
		}
	}

	return first
}

// stalemateOrUndecided - a board without a winner is a stalemate once no cell is empty.
func stalemateOrUndecided(board entity.BoardReader) entity.Outcome {
	for i := 0; i < board.TotalCells(); i++ {
		if mustCell(board, i) == entity.CellEmpty {
			return entity.OutcomeUndecided
		}
	}

	return entity.OutcomeStalemate
}

// mustCell panics on an out of range read: engines only compute indexes from the board width.
func mustCell(board entity.BoardReader, index int) entity.Cell {
	cell, err := board.Cell(index)
	if err != nil {
		panic(fmt.Errorf("rule engine read outside the board: %w", err))
	}

	return cell
}
