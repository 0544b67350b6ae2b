package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/sweeper/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type Config struct {
	BoardFile string
	Scale     float64
	Debug     bool
}

func LoadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.BoardFile, "board", "", "start on the mine layout in this file")
	flag.Float64Var(&cfg.Scale, "scale", 1, "window scale")
	flag.BoolVar(&cfg.Debug, "debug", false, "print phase and counter on screen")
	flag.Parse()

	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
	return cfg
}

// Load creates the session state, on a fixed layout when one is configured.
func Load(cfg Config) (*model.GameState, error) {
	if cfg.BoardFile == "" {
		return model.NewGameState(nil), nil
	}
	file, err := ebitenutil.OpenFile(cfg.BoardFile)
	if err != nil {
		return nil, fmt.Errorf("opening board: %w", err)
	}
	defer file.Close()

	mines, err := model.ReadLayout(file)
	if err != nil {
		return nil, fmt.Errorf("board %s: %w", cfg.BoardFile, err)
	}
	log.Infof("starting on board %s", cfg.BoardFile)
	return model.NewGameStateWithMines(mines, nil), nil
}

type Faces struct {
	Title font.Face
	Glyph font.Face
	Small font.Face
}

func LoadFaces() (*Faces, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	face := func(size float64) font.Face {
		const dpi = 72
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}
	return &Faces{
		Title: face(22),
		Glyph: face(20),
		Small: face(16),
	}, nil
}
