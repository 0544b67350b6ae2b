package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine-patch: corners keep their size, edges and center
// stretch to fill the target rectangle.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4][2]int
	x, y, width, height int
	scaleCenterWidth    float64
	scaleCenterHeight   float64
	targetPositions     [4][2]float64
}

// NewRoundedNine builds a nine-patch over a generated rounded square.
func NewRoundedNine(tint GameColor) (*Nine, error) {
	const size, radius, border = 24, 7, 2
	img, err := ebiten.NewImageFromImage(roundedPatch(size, radius, border), ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	third := size / 3
	return &Nine{
		images: img,
		alpha:  1,
		R:      tint.r, G: tint.g, B: tint.b, Scale: 1,
		positions: [4][2]int{{0, 0}, {third, third}, {2 * third, 2 * third}, {size, size}},
	}, nil
}

// roundedPatch paints a white rounded square with a grey border.
func roundedPatch(size, radius, border int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s, r := float64(size), float64(radius)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+.5, float64(y)+.5
			dx := fx - math.Min(math.Max(fx, r), s-r)
			dy := fy - math.Min(math.Max(fy, r), s-r)
			inside := math.Min(math.Min(fx, s-fx), math.Min(fy, s-fy))
			if dx != 0 || dy != 0 {
				inside = r - math.Hypot(dx, dy)
			}
			switch {
			case inside < 0:
			case inside < float64(border):
				img.Set(x, y, color.RGBA{0x99, 0x99, 0x99, 0xff})
			default:
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func (n *Nine) SetRect(r image.Rectangle) {
	n.SetPosition(r.Min.X, r.Min.Y)
	n.SetSize(r.Dx(), r.Dy())
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.targetPositions[0][0] = float64(n.x)
	n.targetPositions[0][1] = float64(n.y)

	n.targetPositions[1][0] = float64(n.x) + n.Scale*float64(n.positions[1][0])
	n.targetPositions[1][1] = float64(n.y) + n.Scale*float64(n.positions[1][1])

	n.targetPositions[2][0] = float64(n.x+n.width) - n.Scale*float64(n.positions[3][0]-n.positions[2][0])
	n.targetPositions[2][1] = float64(n.y+n.height) - n.Scale*float64(n.positions[3][1]-n.positions[2][1])

	innerWidth := n.targetPositions[2][0] - n.targetPositions[1][0]
	innerHigh := n.targetPositions[2][1] - n.targetPositions[1][1]

	n.scaleCenterWidth = innerWidth / float64(n.positions[2][0]-n.positions[1][0])
	n.scaleCenterHeight = innerHigh / float64(n.positions[2][1]-n.positions[1][1])
}

// patch draws source cell (col, row) of the 3x3 split.
func (n *Nine) patch(screen *ebiten.Image, col, row int, scaleX, scaleY float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
	op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
	src := image.Rect(n.positions[col][0], n.positions[row][1], n.positions[col+1][0], n.positions[row+1][1])
	screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
}

func (n *Nine) Draw(screen *ebiten.Image) {
	scalesX := [3]float64{n.Scale, n.scaleCenterWidth, n.Scale}
	scalesY := [3]float64{n.Scale, n.scaleCenterHeight, n.Scale}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			n.patch(screen, col, row, scalesX[col], scalesY[row])
		}
	}
}
