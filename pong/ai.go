package pong

// Rand is the random source for the AI paddle. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}

// NextAIVelocity perturbs the AI paddle velocity. It ignores the ball.
func NextAIVelocity(v Vec2, rng Rand) Vec2 {
	seed := rng.Float64() * 100
	switch {
	case seed > 20:
		return v
	case seed > 15:
		return Vec2{X: -PlayerVelocity, Y: v.Y}
	case seed > 10:
		return Vec2{X: PlayerVelocity, Y: v.Y}
	default:
		return Vec2{X: 0, Y: v.Y}
	}
}
