package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Outcome is the result of evaluating a board. It is computed on demand and never stored on the board.
type Outcome uint8

const (
	OutcomeUndecided Outcome = iota
	OutcomeWinnerX
	OutcomeWinnerO
	OutcomeStalemate
)

const (
	outcomeUndecidedText = "undecided"
	outcomeWinnerXText   = "x"
	outcomeWinnerOText   = "o"
	outcomeStalemateText = "tie"
)

// WinnerOf - maps a player marker to the outcome where that player wins.
func WinnerOf(player Cell) Outcome {
	switch player {
	case CellX:
		return OutcomeWinnerX
	case CellO:
		return OutcomeWinnerO
	case CellEmpty:
		return OutcomeUndecided
	default:
		return OutcomeUndecided
	}
}

// IsFinished reports whether no further moves are possible.
func (that Outcome) IsFinished() bool {
	return that == OutcomeWinnerX || that == OutcomeWinnerO || that == OutcomeStalemate
}

func (that Outcome) String() string {
	switch that {
	case OutcomeWinnerX:
		return outcomeWinnerXText
	case OutcomeWinnerO:
		return outcomeWinnerOText
	case OutcomeStalemate:
		return outcomeStalemateText
	case OutcomeUndecided:
		return outcomeUndecidedText
	default:
		return outcomeUndecidedText
	}
}

func (that Outcome) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Outcome) UnmarshalText(text []byte) error {
	outcome, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}

	*that = outcome

	return nil
}

// ParseOutcome - converts the text form used by the results log back into an Outcome.
func ParseOutcome(text string) (Outcome, error) {
	switch text {
	case outcomeUndecidedText:
		return OutcomeUndecided, nil
	case outcomeWinnerXText:
		return OutcomeWinnerX, nil
	case outcomeWinnerOText:
		return OutcomeWinnerO, nil
	case outcomeStalemateText:
		return OutcomeStalemate, nil
	default:
		return OutcomeUndecided, fmt.Errorf("%w: %q", apperror.ErrUnknownOutcome, text)
	}
}
