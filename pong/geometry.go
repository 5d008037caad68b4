package pong

// Rectangle is axis aligned, positioned by its center.
type Rectangle struct {
	Center Vec2
	Size   Vec2
}

type Circle struct {
	Center Vec2
	Radius float64
}

func intersectPointCircle(p Vec2, c Circle) bool {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// IntersectRectangleCircle reports whether the point of r nearest to the
// circle's center lies strictly inside the circle.
func IntersectRectangleCircle(r Rectangle, c Circle) bool {
	halfW := r.Size.X / 2
	halfH := r.Size.Y / 2
	nearest := Vec2{
		X: max(r.Center.X-halfW, min(r.Center.X+halfW, c.Center.X)),
		Y: max(r.Center.Y-halfH, min(r.Center.Y+halfH, c.Center.Y)),
	}
	return intersectPointCircle(nearest, c)
}

var (
	leftBorder   = Rectangle{Center: Vec2{X: 0, Y: WindowHeight / 2}, Size: Vec2{X: 0, Y: WindowHeight}}
	rightBorder  = Rectangle{Center: Vec2{X: WindowWidth, Y: WindowHeight / 2}, Size: Vec2{X: 0, Y: WindowHeight}}
	topBorder    = Rectangle{Center: Vec2{X: WindowWidth / 2, Y: 0}, Size: Vec2{X: WindowWidth, Y: 0}}
	bottomBorder = Rectangle{Center: Vec2{X: WindowWidth / 2, Y: WindowHeight}, Size: Vec2{X: WindowWidth, Y: 0}}
)

func playerRect(center Vec2) Rectangle {
	return Rectangle{Center: center, Size: Vec2{X: PlayerWidth, Y: PlayerHeight}}
}
