package apperror

import "errors"

var (
	ErrInvalidWidth   = errors.New("board width must be positive")
	ErrInvalidIndex   = errors.New("cell index out of range")
	ErrInvalidMove    = errors.New("invalid move")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrMalformedInput = errors.New("input is not a number")
	ErrInputClosed    = errors.New("input closed")
	ErrUnknownRules   = errors.New("unknown rules")
	ErrGameFinished   = errors.New("game is already finished")
	ErrUnknownOutcome = errors.New("unknown outcome")
)
