package view

import (
	"image"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/sweeper/model"
)

const (
	Title        = "Minesweeper"
	ConfirmLabel = "Restart"
)

type Glyph string

const (
	COVERED Glyph = "*"
	SAFE    Glyph = "O"
	MINE    Glyph = "X"
)

type CellView struct {
	Index   int
	Rect    image.Rectangle
	Glyph   Glyph
	Enabled bool
}

type DialogView struct {
	Title   string
	Message string
	Confirm string
	Rect    image.Rectangle
	Button  image.Rectangle
}

// Frame is the whole visual tree for one state of the game.
type Frame struct {
	Title        string
	Bar          image.Rectangle
	Cells        []CellView
	Dialog       *DialogView
	Phase        model.Phase
	RevealedSafe int
}

// Change is passed to listeners after every transition.
// Revealed is the index just uncovered, or -1.
type Change struct {
	Frame    Frame
	Revealed int
	Reset    bool
}

// Presenter turns taps into GameState transitions and re-renders the
// Frame after each one.
type Presenter struct {
	state     *model.GameState
	layout    Layout
	frame     Frame
	listeners []func(Change)
}

func NewPresenter(state *model.GameState, layout Layout) *Presenter {
	p := &Presenter{state: state, layout: layout}
	p.frame = p.render()
	return p
}

// OnChange registers f to run after every transition.
func (p *Presenter) OnChange(f func(Change)) {
	p.listeners = append(p.listeners, f)
}

func (p *Presenter) Frame() Frame {
	return p.frame
}

func (p *Presenter) Layout() Layout {
	return p.layout
}

// Tap handles a tap at screen position x, y. While the dialog is shown
// only its button reacts.
func (p *Presenter) Tap(x, y int) bool {
	if p.frame.Dialog != nil {
		if image.Pt(x, y).In(p.frame.Dialog.Button) {
			return p.Confirm()
		}
		return false
	}
	index, ok := p.layout.CellAt(x, y)
	if !ok || !p.frame.Cells[index].Enabled {
		return false
	}
	return p.RevealAt(index)
}

// RevealAt reveals a cell by index.
func (p *Presenter) RevealAt(index int) bool {
	if !p.state.Reveal(index) {
		return false
	}
	log.WithFields(log.Fields{
		"cell":  index,
		"safe":  p.state.RevealedSafe(),
		"phase": p.state.Phase().Name(),
	}).Debug("revealed")
	p.changed(Change{Revealed: index})
	return true
}

// Confirm is the dialog's restart action.
func (p *Presenter) Confirm() bool {
	if !p.state.Phase().Terminal() {
		return false
	}
	log.Infof("restart after %s", p.state.Phase().Name())
	p.state.Reset()
	p.changed(Change{Revealed: -1, Reset: true})
	return true
}

func (p *Presenter) changed(c Change) {
	p.frame = p.render()
	c.Frame = p.frame
	for _, f := range p.listeners {
		f(c)
	}
}

func (p *Presenter) render() Frame {
	cells := p.state.Cells()
	f := Frame{
		Title:        Title,
		Bar:          p.layout.Bar(),
		Cells:        make([]CellView, len(cells)),
		Phase:        p.state.Phase(),
		RevealedSafe: p.state.RevealedSafe(),
	}
	for i, c := range cells {
		cv := CellView{Index: i, Rect: p.layout.CellRect(i)}
		switch {
		case c.Covered:
			cv.Glyph = COVERED
			cv.Enabled = true
		case c.Mine:
			cv.Glyph = MINE
		default:
			cv.Glyph = SAFE
		}
		f.Cells[i] = cv
	}
	switch f.Phase {
	case model.VICTORY:
		f.Dialog = p.dialog("Victory", "You won")
	case model.DEFEAT:
		f.Dialog = p.dialog("Defeat", "You lost")
	}
	return f
}

func (p *Presenter) dialog(title, message string) *DialogView {
	return &DialogView{
		Title:   title,
		Message: message,
		Confirm: ConfirmLabel,
		Rect:    p.layout.Dialog(),
		Button:  p.layout.Button(),
	}
}
