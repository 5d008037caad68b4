// Package ebiten runs the game in an ebiten window.
package ebiten

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const ellipseSegments = 48

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func solidSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Canvas is a pong.Surface backed by an ebiten image.
type Canvas struct {
	Image *ebiten.Image
}

func (c Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.Image, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c Canvas) FillEllipse(cx, cy, rx, ry float64, clr color.Color) {
	if rx == ry {
		vector.DrawFilledCircle(c.Image, float32(cx), float32(cy), float32(rx), clr, true)
		return
	}

	var path vector.Path
	for i := 0; i < ellipseSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSegments
		x := float32(cx + rx*math.Cos(theta))
		y := float32(cy + ry*math.Sin(theta))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	c.Image.DrawTriangles(vs, is, solidSource(), op)
}
