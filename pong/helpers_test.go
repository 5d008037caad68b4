package pong_test

import (
	"github.com/plus3/pong/pong"
)

// fixedRand always returns the same draw.
type fixedRand float64

func (r fixedRand) Float64() float64 {
	return float64(r)
}

// keepAI leaves the AI paddle velocity unchanged.
const keepAI = fixedRand(0.5)

func stateWithBall(pos, vel pong.Vec2) pong.GameState {
	s := pong.NewState()
	s.BallPosition = pos
	s.BallVelocity = vel
	return s
}
