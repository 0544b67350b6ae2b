package view

import (
	"image"

	"github.com/zucenko/sweeper/model"
)

const (
	BarHeight  = 36
	Padding    = 4
	CellWidth  = 56
	CellHeight = 40
	// gutter between neighbouring cells, taps there hit nothing
	Gap = 1

	ScreenWidth  = 2*Padding + model.Columns*CellWidth
	ScreenHeight = BarHeight + 2*Padding + model.Rows*CellHeight

	dialogWidth  = 260
	dialogHeight = 150
	buttonWidth  = 120
	buttonHeight = 36
)

// Layout places the bar, the grid and the dialog on a screen.
type Layout struct {
	Width, Height int
}

func NewLayout() Layout {
	return Layout{Width: ScreenWidth, Height: ScreenHeight}
}

func (l Layout) Bar() image.Rectangle {
	return image.Rect(0, 0, l.Width, BarHeight)
}

func (l Layout) gridOrigin() image.Point {
	return image.Pt(Padding, BarHeight+Padding)
}

func (l Layout) CellRect(index int) image.Rectangle {
	row, col := model.Position(index)
	o := l.gridOrigin()
	x := o.X + col*CellWidth
	y := o.Y + row*CellHeight
	return image.Rect(x+Gap, y+Gap, x+CellWidth-Gap, y+CellHeight-Gap)
}

// CellAt hit tests a screen position against the grid.
func (l Layout) CellAt(x, y int) (int, bool) {
	o := l.gridOrigin()
	if x < o.X || y < o.Y {
		return -1, false
	}
	index := model.Index((y-o.Y)/CellHeight, (x-o.X)/CellWidth)
	if index < 0 {
		return -1, false
	}
	if !image.Pt(x, y).In(l.CellRect(index)) {
		return -1, false
	}
	return index, true
}

func (l Layout) Dialog() image.Rectangle {
	x := (l.Width - dialogWidth) / 2
	y := (l.Height - dialogHeight) / 2
	return image.Rect(x, y, x+dialogWidth, y+dialogHeight)
}

func (l Layout) Button() image.Rectangle {
	d := l.Dialog()
	x := d.Min.X + (dialogWidth-buttonWidth)/2
	y := d.Max.Y - buttonHeight - 12
	return image.Rect(x, y, x+buttonWidth, y+buttonHeight)
}
