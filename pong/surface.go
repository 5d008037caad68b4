package pong

import "image/color"

// Surface accepts solid fills in surface pixel coordinates.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	FillEllipse(cx, cy, rx, ry float64, c color.Color)
}

type DrawShape uint8

const (
	ShapeRect DrawShape = iota + 1
	ShapeEllipse
)

// DrawOp is one recorded fill. For rectangles X, Y is the top-left corner
// and W, H the size; for ellipses X, Y is the center and W, H the radii.
type DrawOp struct {
	Shape      DrawShape
	X, Y, W, H float64
	Color      color.Color
}

// DrawList is a Surface that records fills so they can be replayed later.
type DrawList struct {
	ops []DrawOp
}

func (d *DrawList) FillRect(x, y, w, h float64, c color.Color) {
	d.ops = append(d.ops, DrawOp{Shape: ShapeRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (d *DrawList) FillEllipse(cx, cy, rx, ry float64, c color.Color) {
	d.ops = append(d.ops, DrawOp{Shape: ShapeEllipse, X: cx, Y: cy, W: rx, H: ry, Color: c})
}

// Ops returns the recorded fills. The slice is reused after Reset.
func (d *DrawList) Ops() []DrawOp {
	return d.ops
}

func (d *DrawList) Reset() {
	d.ops = d.ops[:0]
}

// Replay issues the recorded fills, in order, onto dst.
func (d *DrawList) Replay(dst Surface) {
	for _, op := range d.ops {
		switch op.Shape {
		case ShapeRect:
			dst.FillRect(op.X, op.Y, op.W, op.H, op.Color)
		case ShapeEllipse:
			dst.FillEllipse(op.X, op.Y, op.W, op.H, op.Color)
		}
	}
}
