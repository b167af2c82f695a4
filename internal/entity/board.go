package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Cell is the state of one board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

func (that Cell) String() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	case CellEmpty:
		return ""
	default:
		return "?"
	}
}

// Board is a square grid of cells stored row-major: index = row*width + column.
type Board struct {
	width int
	cells []Cell
}

// NewBoard - creates a width x width board with every cell empty.
func NewBoard(width int) (*Board, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidWidth, width)
	}

	return &Board{
		width: width,
		cells: make([]Cell, width*width),
	}, nil
}

func (that *Board) Width() int {
	return that.width
}

func (that *Board) TotalCells() int {
	return len(that.cells)
}

// Cell - returns the state of the cell at index.
func (that *Board) Cell(index int) (Cell, error) {
	if err := that.checkIndex(index); err != nil {
		return CellEmpty, err
	}

	return that.cells[index], nil
}

// SetCell - overwrites the cell at index. It is the only way to mutate a board.
func (that *Board) SetCell(index int, cell Cell) error {
	if err := that.checkIndex(index); err != nil {
		return err
	}

	that.cells[index] = cell

	return nil
}

func (that *Board) HasEmptyCell() bool {
	for _, cell := range that.cells {
		if cell == CellEmpty {
			return true
		}
	}

	return false
}

func (that *Board) checkIndex(index int) error {
	if index < 0 || index >= len(that.cells) {
		return fmt.Errorf("%w: index %d, board has %d cells", apperror.ErrInvalidIndex, index, len(that.cells))
	}

	return nil
}

// BoardReader is the read-only view of a board handed to rule engines and renderers.
type BoardReader interface {
	Width() int
	TotalCells() int
	Cell(index int) (Cell, error)
}
