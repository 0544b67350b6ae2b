package server

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/sweeper/model"
)

const defaultMaxSessions = 64

type Config struct {
	Port        string
	MaxSessions int
	// BoardFile, when set, gives every new session the same first layout.
	BoardFile string
}

// LoadConfig reads PORT, MAX_SESSIONS and BOARD_FILE from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:        os.Getenv("PORT"),
		MaxSessions: defaultMaxSessions,
		BoardFile:   os.Getenv("BOARD_FILE"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Defaulting to port %s", cfg.Port)
	}
	if v := os.Getenv("MAX_SESSIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("MAX_SESSIONS %q: want a non-negative number", v)
		}
		cfg.MaxSessions = n
	}
	return cfg, nil
}

// Load returns the factory for session state.
func Load(cfg Config) (func() *model.GameState, error) {
	if cfg.BoardFile == "" {
		return func() *model.GameState { return model.NewGameState(nil) }, nil
	}
	file, err := os.Open(cfg.BoardFile)
	if err != nil {
		return nil, fmt.Errorf("opening board: %w", err)
	}
	defer file.Close()

	mines, err := model.ReadLayout(file)
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", cfg.BoardFile, err)
	}
	return func() *model.GameState { return model.NewGameStateWithMines(mines, nil) }, nil
}
