package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine-slice frame: corners keep their size, edges and centre
// stretch to fill width x height.
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

const bezelSize = 48
const bezelCorner = 16

// bezelImage renders a rounded frame with a dark inner panel.
func bezelImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, bezelSize, bezelSize))
	rim := color.RGBA{0x90, 0x90, 0x90, 0xff}
	panel := color.RGBA{0x08, 0x08, 0x08, 0xff}
	r := bezelCorner
	for y := 0; y < bezelSize; y++ {
		for x := 0; x < bezelSize; x++ {
			cx, cy := x, y
			if cx >= bezelSize-r {
				cx = bezelSize - 1 - cx
			}
			if cy >= bezelSize-r {
				cy = bezelSize - 1 - cy
			}
			if cx < r && cy < r {
				dx, dy := r-cx, r-cy
				if dx*dx+dy*dy > r*r {
					continue
				}
			}
			if x < 4 || y < 4 || x >= bezelSize-4 || y >= bezelSize-4 {
				img.Set(x, y, rim)
			} else {
				img.Set(x, y, panel)
			}
		}
	}
	return img
}

func NewBezel() (*Nine, error) {
	img, err := ebiten.NewImageFromImage(bezelImage(), ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	return &Nine{
		images: img,
		alpha:  1,
		R:      1, G: 1, B: 1, Scale: 1,
		positions: [4][2]int{
			{0, 0},
			{bezelCorner, bezelCorner},
			{bezelSize - bezelCorner, bezelSize - bezelCorner},
			{bezelSize, bezelSize}},
	}, nil
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

// slice i, j is the source rectangle, its scale and its target position.
func (n *Nine) slice(i, j int) (image.Rectangle, float64, float64, float64, float64) {
	rect := image.Rect(n.positions[i][0], n.positions[j][1], n.positions[i+1][0], n.positions[j+1][1])
	sx, sy := n.Scale, n.Scale
	if i == 1 {
		sx = n.scaleCenterWidth
	}
	if j == 1 {
		sy = n.scaleCenterHeight
	}
	return rect, sx, sy, n.targetPositions[i][0], n.targetPositions[j][1]
}

func (n *Nine) Draw(screen *ebiten.Image) {
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			rect, sx, sy, tx, ty := n.slice(i, j)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(tx, ty)
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			_ = screen.DrawImage(n.images.SubImage(rect).(*ebiten.Image), op)
		}
	}
}
