package main

import (
	"image/color"

	"github.com/zucenko/sweeper/view"
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r float64
	g float64
	b float64
}

// RGBA scales the color by brightness and applies alpha.
func (c GameColor) RGBA(brightness, alpha float64) color.RGBA {
	ch := func(v float64) uint8 {
		v = v * brightness * alpha
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{ch(c.r), ch(c.g), ch(c.b), uint8(alpha * 255)}
}

var COLOR_BACKGROUND = HexToF32(0x464646)
var COLOR_BAR = HexToF32(0x000000)
var COLOR_TEXT = HexToF32(0xffffff)
var COLOR_GLYPH = HexToF32(0x000000)
var COLOR_DIALOG = HexToF32(0xf2f2f2)
var COLOR_BUTTON = HexToF32(0x321ecc)

var CELL_COLORS = map[view.Glyph]GameColor{
	view.COVERED: HexToF32(0xd0d0d0),
	view.SAFE:    HexToF32(0x0abd38),
	view.MINE:    HexToF32(0xfa3636),
}
