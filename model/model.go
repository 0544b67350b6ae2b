package model

import "fmt"

const (
	Columns   = 6
	Rows      = 15
	CellCount = Rows * Columns

	// VictoryThreshold is the number of safe reveals that wins a session.
	VictoryThreshold = 10

	// a cell is a mine when a draw from [0, mineDraws) is above mineAbove
	mineDraws = 10
	mineAbove = 8
)

type Phase int

const (
	PLAYING Phase = iota + 1
	VICTORY
	DEFEAT
)

func (p Phase) Name() string {
	switch p {
	case PLAYING:
		return "PLAYING"
	case VICTORY:
		return "VICTORY"
	case DEFEAT:
		return "DEFEAT"
	default:
		return fmt.Sprintf("N/A(%d)", p)
	}
}

// Terminal reports whether reveals are frozen until the next reset.
func (p Phase) Terminal() bool {
	return p == VICTORY || p == DEFEAT
}

type Cell struct {
	Covered bool
	Mine    bool
}

// Source draws the mine placement. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// GameState is owned by exactly one screen session. It is not safe for
// concurrent use.
type GameState struct {
	cells        []Cell
	revealedSafe int
	phase        Phase
	source       Source
}
