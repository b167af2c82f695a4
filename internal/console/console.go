// Package console is the text front end of the game: it draws the board, asks players for
// positions and prints the result.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	msgTie            = "Its a tie!"
	msgWinnerFormat   = "Congratulations player %s, you have won!"
	msgUnexpected     = "Unexpected game outcome"
	msgInvalidMove    = "Invalid move, try again."
	msgMalformedInput = "Please enter a position number."
	msgPromptFormat   = "Player %s, enter a position: "
)

// maxEchoedInput caps how much of a rejected line ends up in error messages.
const maxEchoedInput = 32

type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// RenderBoard - prints the board row by row. Empty cells show their 1-based position, taken cells their marker.
func (that *Console) RenderBoard(board entity.BoardReader) {
	total := board.TotalCells()
	width := board.Width()
	pad := len(strconv.Itoa(total))

	var sb strings.Builder
	for i := 0; i < total; i++ {
		cell, err := board.Cell(i)
		if err != nil {
			cell = entity.CellEmpty
		}

		fmt.Fprintf(&sb, "%*s", pad, cellLabel(cell, i+1))

		if (i+1)%width == 0 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("\n")

	that.print(sb.String())
}

// ReadMove - prompts player and reads one line holding a 1-based position.
// The whole line is consumed whatever its length, so a bad token is never read twice.
// A last line without a trailing newline still counts as a move.
func (that *Console) ReadMove(player entity.Cell) (int, error) {
	that.print(fmt.Sprintf(msgPromptFormat, player))

	line, err := that.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
		}

		if line == "" {
			return 0, apperror.ErrInputClosed
		}
	}

	line = strings.TrimSpace(line)

	position, err := strconv.Atoi(line)
	if err != nil {
		if len(line) > maxEchoedInput {
			line = line[:maxEchoedInput] + "..."
		}

		return 0, fmt.Errorf("%w: %q", apperror.ErrMalformedInput, line)
	}

	return position, nil
}

func (that *Console) InvalidMove() {
	that.println(msgInvalidMove)
}

func (that *Console) MalformedInput() {
	that.println(msgMalformedInput)
}

// ReportOutcome - prints the final message of a game.
func (that *Console) ReportOutcome(outcome entity.Outcome) {
	switch outcome {
	case entity.OutcomeStalemate:
		that.println(msgTie)
	case entity.OutcomeWinnerO:
		that.println(fmt.Sprintf(msgWinnerFormat, entity.CellO))
	case entity.OutcomeWinnerX:
		that.println(fmt.Sprintf(msgWinnerFormat, entity.CellX))
	case entity.OutcomeUndecided:
		that.println(msgUnexpected)
	default:
		that.println(msgUnexpected)
	}
}

func (that *Console) ReportScoreboard(scoreboard *entity.Scoreboard) {
	that.println(fmt.Sprintf("Games played: %d (X won %d, O won %d, ties %d)",
		scoreboard.Total(), scoreboard.WinsX, scoreboard.WinsO, scoreboard.Ties))
}

// cellLabel - returns what a cell shows on screen.
func cellLabel(cell entity.Cell, position int) string {
	switch cell {
	case entity.CellX, entity.CellO:
		return cell.String()
	case entity.CellEmpty:
		return strconv.Itoa(position)
	default:
		return " "
	}
}

func (that *Console) print(text string) {
	_, _ = io.WriteString(that.out, text)
}

func (that *Console) println(text string) {
	that.print(text + "\n")
}
