package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layout(rows ...string) string {
	return strings.Join(rows, "\n")
}

func emptyRows(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = "......"
	}
	return rows
}

func TestReadLayout(t *testing.T) {
	rows := emptyRows(Rows)
	rows[0] = ".....*"
	rows[14] = "*....."
	src := "# rigged board\n\n" + layout(rows...) + "\n"

	mines, err := ReadLayout(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, mines, CellCount)
	assert.True(t, mines[Index(0, 5)])
	assert.True(t, mines[Index(14, 0)])

	gs := NewGameStateWithMines(mines, constSource(0))
	assert.Equal(t, 2, gs.MineCount())
}

func TestReadLayoutErrors(t *testing.T) {
	wide := emptyRows(Rows)
	wide[3] = "......."
	bad := emptyRows(Rows)
	bad[7] = "..x..."

	cases := []struct {
		name string
		src  string
	}{
		{"too few rows", layout(emptyRows(Rows - 1)...)},
		{"too many rows", layout(emptyRows(Rows + 1)...)},
		{"wide row", layout(wide...)},
		{"unknown char", layout(bad...)},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadLayout(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLayout), "got %v", err)
		})
	}
}
