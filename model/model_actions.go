package model

import (
	"math/rand"
	"time"
)

// NewGameState creates a session with freshly drawn mines.
// A nil source falls back to a time seeded one.
func NewGameState(source Source) *GameState {
	if source == nil {
		source = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	gs := &GameState{
		cells:  make([]Cell, CellCount),
		source: source,
	}
	gs.Reset()
	return gs
}

// NewGameStateWithMines starts the first session on a fixed layout.
// Later resets draw from source as usual.
func NewGameStateWithMines(mines []bool, source Source) *GameState {
	gs := NewGameState(source)
	for i := range gs.cells {
		gs.cells[i].Mine = i < len(mines) && mines[i]
	}
	return gs
}

// Reveal uncovers the cell at index and advances the phase.
// It returns false and changes nothing when the index is out of range,
// the cell is already uncovered or the session is over.
func (gs *GameState) Reveal(index int) bool {
	if index < 0 || index >= len(gs.cells) {
		return false
	}
	if gs.phase != PLAYING {
		return false
	}
	cell := &gs.cells[index]
	if !cell.Covered {
		return false
	}

	cell.Covered = false
	if cell.Mine {
		gs.phase = DEFEAT
		return true
	}
	gs.revealedSafe++
	if gs.revealedSafe >= VictoryThreshold {
		gs.phase = VICTORY
	}
	return true
}

// Reset starts a new session from any phase.
func (gs *GameState) Reset() {
	for i := range gs.cells {
		gs.cells[i] = Cell{
			Covered: true,
			Mine:    gs.source.Intn(mineDraws) > mineAbove,
		}
	}
	gs.revealedSafe = 0
	gs.phase = PLAYING
}

func (gs *GameState) Phase() Phase {
	return gs.phase
}

func (gs *GameState) RevealedSafe() int {
	return gs.revealedSafe
}

// Cell returns the cell at index; ok is false for an out of range index.
func (gs *GameState) Cell(index int) (c Cell, ok bool) {
	if index < 0 || index >= len(gs.cells) {
		return
	}
	return gs.cells[index], true
}

// Cells returns a copy of the grid in row major order.
func (gs *GameState) Cells() []Cell {
	cells := make([]Cell, len(gs.cells))
	copy(cells, gs.cells)
	return cells
}

func (gs *GameState) MineCount() int {
	count := 0
	for _, c := range gs.cells {
		if c.Mine {
			count++
		}
	}
	return count
}

// Index maps a grid position to a cell index, -1 when outside the grid.
func Index(row, col int) int {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return -1
	}
	return row*Columns + col
}

// Position is the inverse of Index.
func Position(index int) (row, col int) {
	return index / Columns, index % Columns
}
