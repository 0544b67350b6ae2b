package server

import (
	"errors"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/sweeper/model"
)

func setenv(t *testing.T, key, value string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	require.NoError(t, os.Setenv(key, value))
	return func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	defer setenv(t, "PORT", "")()
	defer setenv(t, "MAX_SESSIONS", "")()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultMaxSessions, cfg.MaxSessions)

	os.Setenv("PORT", "9000")
	os.Setenv("MAX_SESSIONS", "3")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 3, cfg.MaxSessions)

	os.Setenv("MAX_SESSIONS", "many")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func writeBoard(t *testing.T, content string) string {
	t.Helper()
	f, err := ioutil.TempFile("", "board")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestLoadBoardFile(t *testing.T) {
	rows := make([]string, model.Rows)
	for i := range rows {
		rows[i] = "......"
	}
	rows[0] = "*....."
	path := writeBoard(t, strings.Join(rows, "\n"))
	defer os.Remove(path)

	newState, err := Load(Config{BoardFile: path})
	require.NoError(t, err)

	gs := newState()
	assert.Equal(t, 1, gs.MineCount())
	gs.Reveal(0)
	assert.Equal(t, model.DEFEAT, gs.Phase())

	// every session gets its own state
	assert.Equal(t, model.PLAYING, newState().Phase())
}

func TestLoadBadBoardFile(t *testing.T) {
	path := writeBoard(t, "*\n")
	defer os.Remove(path)

	_, err := Load(Config{BoardFile: path})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrLayout))

	_, err = Load(Config{BoardFile: path + ".missing"})
	assert.Error(t, err)
}
