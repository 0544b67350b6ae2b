package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/sweeper/model"
	"github.com/zucenko/sweeper/view"
	"golang.org/x/image/font"
)

const (
	// a stroke travelling further than this is a drag, not a tap
	tapSlop = view.CellHeight / 2
	tick    = float32(1) / 60
)

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke follows one press from down to release.
type Stroke struct {
	source StrokeSource

	// initX and initY represents the position when the press started.
	initX int
	initY int

	// currentX and currentY represents the current position
	currentX int
	currentY int

	released  bool
	cancelled bool
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		initX:    cx,
		initY:    cy,
		currentX: cx,
		currentY: cy,
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	x, y := s.source.Position()
	s.currentX = x
	s.currentY = y
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) Position() (int, int) {
	return s.currentX, s.currentY
}

func (s *Stroke) PositionDiff() (int, int) {
	dx := s.currentX - s.initX
	dy := s.currentY - s.initY
	return dx, dy
}

type Game struct {
	Presenter *view.Presenter
	Faces     *Faces
	Debug     bool
	strokes   map[*Stroke]struct{}
	Tweens    map[*gween.Tween]Action

	dialogFrame *Nine
	button      *Nine
	dialogAlpha float64
	// brightness boost per freshly revealed cell
	pulses map[int]float64
}

func NewGame(state *model.GameState, faces *Faces, debug bool) (*Game, error) {
	dialogFrame, err := NewRoundedNine(COLOR_DIALOG)
	if err != nil {
		return nil, fmt.Errorf("dialog frame: %w", err)
	}
	button, err := NewRoundedNine(COLOR_BUTTON)
	if err != nil {
		return nil, fmt.Errorf("button frame: %w", err)
	}
	g := &Game{
		Presenter:   view.NewPresenter(state, view.NewLayout()),
		Faces:       faces,
		Debug:       debug,
		strokes:     map[*Stroke]struct{}{},
		Tweens:      make(map[*gween.Tween]Action),
		dialogFrame: dialogFrame,
		button:      button,
		pulses:      make(map[int]float64),
	}
	g.Presenter.OnChange(g.onChange)
	return g, nil
}

// onChange starts the animations for a transition. The next update
// draws the new frame.
func (g *Game) onChange(c view.Change) {
	if c.Reset {
		g.Tweens = make(map[*gween.Tween]Action)
		g.pulses = make(map[int]float64)
		g.dialogAlpha = 0
		return
	}
	if c.Revealed < 0 {
		return
	}

	index := c.Revealed
	pulse := Action{onChange: func(v float32) { g.pulses[index] = float64(v) }}
	pulse.addOnFinish(func() { delete(g.pulses, index) })
	if c.Frame.Dialog != nil {
		log.Infof("game over: %s", c.Frame.Phase.Name())
		fade := pulse.next(gween.New(0, 1, .4, ease.OutQuad))
		fade.onChange = func(v float32) { g.dialogAlpha = float64(v) }
	}
	g.Tweens[gween.New(1.6, 1, .3, ease.OutQuad)] = pulse
}

func (g *Game) updateStroke(stroke *Stroke) {
	stroke.Update()
	xDif, yDif := stroke.PositionDiff()
	if abs(xDif) > tapSlop || abs(yDif) > tapSlop {
		stroke.released = true
		stroke.cancelled = true
	}
	if !stroke.IsReleased() || stroke.cancelled {
		return
	}
	x, y := stroke.Position()
	g.Presenter.Tap(x, y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (g *Game) update(screen *ebiten.Image) error {
	g.updateTweens(tick)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s := NewStroke(&MouseStrokeSource{})
		g.strokes[s] = struct{}{}
	}

	for _, id := range inpututil.JustPressedTouchIDs() {
		s := NewStroke(&TouchStrokeSource{id})
		g.strokes[s] = struct{}{}
	}

	for s := range g.strokes {
		g.updateStroke(s)
		if s.IsReleased() {
			delete(g.strokes, s)
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return g.draw(screen)
}

func (g *Game) draw(screen *ebiten.Image) error {
	frame := g.Presenter.Frame()

	if err := screen.Fill(COLOR_BACKGROUND.RGBA(1, 1)); err != nil {
		return err
	}

	bar := frame.Bar
	ebitenutil.DrawRect(screen, float64(bar.Min.X), float64(bar.Min.Y), float64(bar.Dx()), float64(bar.Dy()), COLOR_BAR.RGBA(1, 1))
	g.drawCentered(screen, frame.Title, g.Faces.Title, bar, COLOR_TEXT, 1)

	for _, c := range frame.Cells {
		brightness := 1.0
		if p, ok := g.pulses[c.Index]; ok {
			brightness = p
		}
		r := c.Rect
		ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), CELL_COLORS[c.Glyph].RGBA(brightness, 1))
		g.drawCentered(screen, string(c.Glyph), g.Faces.Glyph, r, COLOR_GLYPH, 1)
	}

	if frame.Dialog != nil {
		g.drawDialog(screen, frame.Dialog)
	}

	if g.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d", frame.Phase.Name(), frame.RevealedSafe), 4, 0)
	}
	return nil
}

func (g *Game) drawDialog(screen *ebiten.Image, d *view.DialogView) {
	alpha := g.dialogAlpha
	size := screen.Bounds().Size()
	ebitenutil.DrawRect(screen, 0, 0, float64(size.X), float64(size.Y), COLOR_BAR.RGBA(1, .5*alpha))

	g.dialogFrame.alpha = alpha
	g.dialogFrame.SetRect(d.Rect)
	g.dialogFrame.Draw(screen)

	titleRect := image.Rect(d.Rect.Min.X, d.Rect.Min.Y+8, d.Rect.Max.X, d.Rect.Min.Y+48)
	g.drawCentered(screen, d.Title, g.Faces.Title, titleRect, COLOR_GLYPH, alpha)
	messageRect := image.Rect(d.Rect.Min.X, titleRect.Max.Y, d.Rect.Max.X, d.Button.Min.Y)
	g.drawCentered(screen, d.Message, g.Faces.Small, messageRect, COLOR_GLYPH, alpha)

	g.button.alpha = alpha
	g.button.SetRect(d.Button)
	g.button.Draw(screen)
	g.drawCentered(screen, d.Confirm, g.Faces.Small, d.Button, COLOR_TEXT, alpha)
}

// drawCentered draws s centered in r.
func (g *Game) drawCentered(screen *ebiten.Image, s string, face font.Face, r image.Rectangle, c GameColor, alpha float64) {
	width := font.MeasureString(face, s).Round()
	m := face.Metrics()
	ascent, descent := m.Ascent.Round(), m.Descent.Round()
	x := r.Min.X + (r.Dx()-width)/2
	y := r.Min.Y + (r.Dy()+ascent-descent)/2
	text.Draw(screen, s, face, x, y, c.RGBA(1, alpha))
}

func main() {
	cfg := LoadConfig()

	state, err := Load(cfg)
	if err != nil {
		log.Fatal(err)
	}
	faces, err := LoadFaces()
	if err != nil {
		log.Fatal(err)
	}
	theGame, err := NewGame(state, faces, cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.Run(theGame.update, view.ScreenWidth, view.ScreenHeight, cfg.Scale, view.Title); err != nil {
		log.Fatal(err)
	}
}
