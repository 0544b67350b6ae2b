package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSource always draws the same value.
type constSource int

func (c constSource) Intn(n int) int { return int(c) % n }

func minesAt(indexes ...int) []bool {
	mines := make([]bool, CellCount)
	for _, i := range indexes {
		mines[i] = true
	}
	return mines
}

func TestNewGameStateStartsCovered(t *testing.T) {
	gs := NewGameState(rand.New(rand.NewSource(7)))

	assert.Equal(t, PLAYING, gs.Phase())
	assert.Equal(t, 0, gs.RevealedSafe())
	cells := gs.Cells()
	require.Len(t, cells, CellCount)
	for i, c := range cells {
		assert.True(t, c.Covered, "cell %d", i)
	}
}

func TestMineDraw(t *testing.T) {
	assert.Equal(t, CellCount, NewGameState(constSource(9)).MineCount())
	assert.Equal(t, 0, NewGameState(constSource(8)).MineCount())
	assert.Equal(t, 0, NewGameState(constSource(0)).MineCount())
}

func TestRevealSafeCountsOnce(t *testing.T) {
	gs := NewGameStateWithMines(minesAt(), constSource(0))

	require.True(t, gs.Reveal(3))
	assert.Equal(t, 1, gs.RevealedSafe())

	assert.False(t, gs.Reveal(3))
	assert.Equal(t, 1, gs.RevealedSafe())
	assert.Equal(t, PLAYING, gs.Phase())

	c, ok := gs.Cell(3)
	require.True(t, ok)
	assert.False(t, c.Covered)
	assert.False(t, c.Mine)
}

func TestRevealMineIsDefeat(t *testing.T) {
	gs := NewGameStateWithMines(minesAt(5), constSource(0))

	require.True(t, gs.Reveal(5))
	assert.Equal(t, DEFEAT, gs.Phase())
	assert.Equal(t, 0, gs.RevealedSafe())

	assert.False(t, gs.Reveal(5))
	assert.Equal(t, DEFEAT, gs.Phase())
}

func TestTenSafeRevealsWin(t *testing.T) {
	gs := NewGameStateWithMines(minesAt(), constSource(0))

	for i := 0; i < 9; i++ {
		require.True(t, gs.Reveal(i))
		require.Equal(t, PLAYING, gs.Phase(), "after reveal %d", i)
	}
	require.True(t, gs.Reveal(9))
	assert.Equal(t, VICTORY, gs.Phase())
	assert.Equal(t, VictoryThreshold, gs.RevealedSafe())
}

func TestRevealFrozenAfterGameOver(t *testing.T) {
	cases := []struct {
		name  string
		mines []bool
		moves []int
		want  Phase
	}{
		{"defeat", minesAt(0), []int{0}, DEFEAT},
		{"victory", minesAt(), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, VICTORY},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gs := NewGameStateWithMines(tc.mines, constSource(0))
			for _, m := range tc.moves {
				gs.Reveal(m)
			}
			require.Equal(t, tc.want, gs.Phase())

			before := gs.Cells()
			count := gs.RevealedSafe()
			for i := 0; i < CellCount; i++ {
				assert.False(t, gs.Reveal(i))
			}
			assert.Equal(t, before, gs.Cells())
			assert.Equal(t, count, gs.RevealedSafe())
			assert.Equal(t, tc.want, gs.Phase())
		})
	}
}

func TestRevealOutOfRange(t *testing.T) {
	gs := NewGameStateWithMines(minesAt(), constSource(0))
	before := gs.Cells()

	for _, i := range []int{-1, CellCount, CellCount + 100} {
		assert.False(t, gs.Reveal(i))
	}
	assert.Equal(t, before, gs.Cells())
	assert.Equal(t, 0, gs.RevealedSafe())

	_, ok := gs.Cell(-1)
	assert.False(t, ok)
}

func TestResetFromAnyPhase(t *testing.T) {
	for _, phase := range []Phase{PLAYING, VICTORY, DEFEAT} {
		t.Run(phase.Name(), func(t *testing.T) {
			gs := NewGameStateWithMines(minesAt(0), constSource(0))
			switch phase {
			case PLAYING:
				gs.Reveal(1)
			case DEFEAT:
				gs.Reveal(0)
			case VICTORY:
				for i := 1; i <= VictoryThreshold; i++ {
					gs.Reveal(i)
				}
			}
			require.Equal(t, phase, gs.Phase())

			gs.Reset()
			assert.Equal(t, PLAYING, gs.Phase())
			assert.Equal(t, 0, gs.RevealedSafe())
			for i, c := range gs.Cells() {
				assert.True(t, c.Covered, "cell %d", i)
			}
			// constSource(0) never draws a mine
			assert.Equal(t, 0, gs.MineCount())
		})
	}
}

func TestResetMineFrequency(t *testing.T) {
	gs := NewGameState(rand.New(rand.NewSource(42)))
	const resets = 2000
	mines := 0
	for i := 0; i < resets; i++ {
		gs.Reset()
		mines += gs.MineCount()
	}
	freq := float64(mines) / float64(resets*CellCount)
	assert.InDelta(t, 0.1, freq, 0.01)
}

func TestIndexPosition(t *testing.T) {
	assert.Equal(t, 0, Index(0, 0))
	assert.Equal(t, 7, Index(1, 1))
	assert.Equal(t, CellCount-1, Index(Rows-1, Columns-1))
	assert.Equal(t, -1, Index(Rows, 0))
	assert.Equal(t, -1, Index(0, Columns))

	row, col := Position(7)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)
}

func TestMakeServerMessageHidesCoveredMines(t *testing.T) {
	gs := NewGameStateWithMines(minesAt(2, 4), constSource(0))
	gs.Reveal(4)

	msg := MakeServerMessage(gs, true)
	require.Len(t, msg.Visibles, CellCount)
	assert.True(t, msg.Applied)
	assert.Equal(t, DEFEAT, msg.Phase)
	assert.False(t, msg.Visibles[2].Mine)
	assert.True(t, msg.Visibles[2].Covered)
	assert.True(t, msg.Visibles[4].Mine)
	assert.False(t, msg.Visibles[4].Covered)
}
