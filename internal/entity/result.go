package entity

import "time"

// Result is the record of one finished game kept in the results log.
type Result struct {
	ID         string    `json:"id"`
	Width      int       `json:"width"`
	Rules      string    `json:"rules"`
	Outcome    Outcome   `json:"outcome"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

type Scoreboard struct {
	WinsX int `json:"wins_x"`
	WinsO int `json:"wins_o"`
	Ties  int `json:"ties"`
}

// Add - adds count games with the given outcome.
func (that *Scoreboard) Add(outcome Outcome, count int) {
	switch outcome {
	case OutcomeWinnerX:
		that.WinsX += count
	case OutcomeWinnerO:
		that.WinsO += count
	case OutcomeStalemate:
		that.Ties += count
	case OutcomeUndecided:
	}
}

func (that *Scoreboard) Total() int {
	return that.WinsX + that.WinsO + that.Ties
}
