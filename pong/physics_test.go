package pong_test

import (
	"fmt"
	"testing"

	"github.com/plus3/pong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	s := pong.NewState()

	assert.Equal(t, pong.Vec2{X: 300, Y: 20}, s.Player1Position)
	assert.Equal(t, pong.Vec2{X: 300, Y: 575}, s.Player2Position)
	assert.Equal(t, pong.Vec2{X: 300, Y: 300}, s.BallPosition)
	assert.Equal(t, pong.Vec2{X: 200, Y: 200}, s.BallVelocity)
	assert.Zero(t, s.Player1Velocity)
	assert.Zero(t, s.Player2Velocity)
	assert.False(t, s.Started)
	assert.Equal(t, [2]int{0, 0}, s.Score)
}

func TestAdvanceFreeFlight(t *testing.T) {
	s := pong.NewState()
	s.Player1Velocity = pong.Vec2{X: 100}
	s.Player2Velocity = pong.Vec2{X: -100}

	next, hits := pong.Advance(s, 0.1, keepAI)

	assert.False(t, hits.Any())
	assert.InDelta(t, 320, next.BallPosition.X, 1e-9)
	assert.InDelta(t, 320, next.BallPosition.Y, 1e-9)
	assert.Equal(t, s.BallVelocity, next.BallVelocity)
	assert.InDelta(t, 310, next.Player1Position.X, 1e-9)
	assert.InDelta(t, 290, next.Player2Position.X, 1e-9)
	assert.Equal(t, s.Player1Position.Y, next.Player1Position.Y)
	assert.Equal(t, s.Player2Position.Y, next.Player2Position.Y)
	assert.Equal(t, s.Player1Velocity, next.Player1Velocity)
}

func TestPlayerClamp(t *testing.T) {
	velocities := []float64{-1e6, -450, -1, 0, 1, 450, 1e6}
	deltas := []float64{0, 0.001, 1.0 / 60, 0.5, 10}

	for _, v := range velocities {
		for _, dt := range deltas {
			t.Run(fmt.Sprintf("v=%v,dt=%v", v, dt), func(t *testing.T) {
				s := pong.NewState()
				s.BallPosition = pong.Vec2{X: 300, Y: 300}
				s.BallVelocity = pong.Vec2{}
				s.Player1Velocity = pong.Vec2{X: v}
				s.Player2Velocity = pong.Vec2{X: v}

				next, _ := pong.Advance(s, dt, keepAI)

				for _, p := range []pong.Vec2{next.Player1Position, next.Player2Position} {
					assert.GreaterOrEqual(t, p.X, float64(pong.PlayerMinX))
					assert.LessOrEqual(t, p.X, float64(pong.PlayerMaxX))
					assert.Equal(t, p, pong.ConstrainPlayer(p), "clamp is idempotent")
				}
			})
		}
	}
}

func TestConstrainPlayer(t *testing.T) {
	assert.Equal(t, pong.Vec2{X: 70, Y: 20}, pong.ConstrainPlayer(pong.Vec2{X: -5, Y: 20}))
	assert.Equal(t, pong.Vec2{X: 530, Y: 575}, pong.ConstrainPlayer(pong.Vec2{X: 900, Y: 575}))
	assert.Equal(t, pong.Vec2{X: 200, Y: 1}, pong.ConstrainPlayer(pong.Vec2{X: 200, Y: 1}))
}

func TestSideBorderCollision(t *testing.T) {
	tests := []struct {
		name string
		pos  pong.Vec2
		vel  pong.Vec2
	}{
		{"left", pong.Vec2{X: 25, Y: 300}, pong.Vec2{X: -200, Y: 50}},
		{"right", pong.Vec2{X: 575, Y: 300}, pong.Vec2{X: 200, Y: -50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateWithBall(tt.pos, tt.vel)

			next, hits := pong.Advance(s, 0.1, keepAI)

			require.True(t, hits.SideBorder)
			assert.False(t, hits.TopBottomBorder)
			assert.Equal(t, pong.Vec2{X: -tt.vel.X, Y: tt.vel.Y}, next.BallVelocity)
			assert.Equal(t, tt.pos, next.BallPosition, "ball keeps its pre-update position")
		})
	}
}

func TestTopBottomBorderCollision(t *testing.T) {
	tests := []struct {
		name string
		pos  pong.Vec2
		vel  pong.Vec2
	}{
		{"top", pong.Vec2{X: 500, Y: 25}, pong.Vec2{X: 30, Y: -100}},
		{"bottom", pong.Vec2{X: 100, Y: 575}, pong.Vec2{X: -30, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateWithBall(tt.pos, tt.vel)

			next, hits := pong.Advance(s, 0.1, keepAI)

			require.True(t, hits.TopBottomBorder)
			assert.False(t, hits.SideBorder)
			assert.False(t, hits.Player1)
			assert.False(t, hits.Player2)
			assert.Equal(t, pong.Vec2{X: tt.vel.X, Y: -tt.vel.Y}, next.BallVelocity)
			assert.Equal(t, tt.pos, next.BallPosition)
		})
	}
}

func TestCornerHitsBothBorders(t *testing.T) {
	s := stateWithBall(pong.Vec2{X: 25, Y: 25}, pong.Vec2{X: -100, Y: -100})

	next, hits := pong.Advance(s, 0.1, keepAI)

	assert.True(t, hits.SideBorder)
	assert.True(t, hits.TopBottomBorder)
	assert.Equal(t, pong.Vec2{X: 100, Y: 100}, next.BallVelocity)
	assert.Equal(t, s.BallPosition, next.BallPosition)
}

func TestPlayer1Collision(t *testing.T) {
	s := stateWithBall(pong.Vec2{X: 320, Y: 60}, pong.Vec2{X: 0, Y: -200})
	s.Player1Velocity = pong.Vec2{X: 100}

	next, hits := pong.Advance(s, 0.1, keepAI)

	require.True(t, hits.Player1)
	assert.False(t, hits.TopBottomBorder)
	assert.InDelta(t, 16, next.BallVelocity.X, 1e-9, "20px right of the paddle center")
	assert.InDelta(t, 200, next.BallVelocity.Y, 1e-9)
	assert.Equal(t, s.BallPosition, next.BallPosition)
	assert.Equal(t, s.Player1Position, next.Player1Position, "paddle keeps its pre-update position")
	assert.Equal(t, s.Player1Velocity, next.Player1Velocity)
}

func TestTopBorderThenPlayer1(t *testing.T) {
	// Both rules fire. The border flips vy to +200, then the paddle flips it
	// back, so the ball is sent into the wall and reverted every frame.
	s := stateWithBall(pong.Vec2{X: 300, Y: 45}, pong.Vec2{X: 0, Y: -200})

	for frame := range 5 {
		next, hits := pong.Advance(s, 0.15, keepAI)

		require.True(t, hits.TopBottomBorder && hits.Player1, "frame %d: %+v", frame, hits)
		assert.False(t, hits.SideBorder)
		assert.Equal(t, pong.Vec2{X: 0, Y: -200}, next.BallVelocity, "frame %d", frame)
		assert.Equal(t, pong.Vec2{X: 300, Y: 45}, next.BallPosition, "frame %d", frame)
		assert.Equal(t, s.Player1Position, next.Player1Position)

		s = next
	}
}

func TestPlayer2Collision(t *testing.T) {
	s := stateWithBall(pong.Vec2{X: 280, Y: 540}, pong.Vec2{X: 0, Y: 200})
	s.Player2Velocity = pong.Vec2{X: -450}

	next, hits := pong.Advance(s, 0.1, keepAI)

	require.True(t, hits.Player2)
	assert.False(t, hits.TopBottomBorder)
	assert.InDelta(t, -16, next.BallVelocity.X, 1e-9, "20px left of the paddle center")
	assert.InDelta(t, -250, next.BallVelocity.Y, 1e-9)
	assert.Equal(t, s.BallPosition, next.BallPosition)
	assert.Equal(t, s.Player2Position, next.Player2Position)
}

func TestPlayer2SpeedsBallUp(t *testing.T) {
	// The same approach mirrored onto each paddle.
	toPlayer1 := stateWithBall(pong.Vec2{X: 300, Y: 60}, pong.Vec2{Y: -200})
	toPlayer2 := stateWithBall(pong.Vec2{X: 300, Y: 540}, pong.Vec2{Y: 200})

	afterPlayer1, hits1 := pong.Advance(toPlayer1, 0.1, keepAI)
	afterPlayer2, hits2 := pong.Advance(toPlayer2, 0.1, keepAI)
	require.True(t, hits1.Player1)
	require.True(t, hits2.Player2)

	speed1 := afterPlayer1.BallVelocity.Y
	speed2 := -afterPlayer2.BallVelocity.Y
	assert.GreaterOrEqual(t, speed2-speed1, float64(pong.BallVelocityYIncrement))
}

func TestBallDeadCenterOnPaddle(t *testing.T) {
	s := stateWithBall(pong.Vec2{X: 300, Y: 60}, pong.Vec2{X: 40, Y: -200})

	next, hits := pong.Advance(s, 0.1, keepAI)

	require.True(t, hits.Player1)
	assert.Zero(t, next.BallVelocity.X)
}

func TestIntersectRectangleCircle(t *testing.T) {
	rect := pong.Rectangle{Center: pong.Vec2{X: 100, Y: 100}, Size: pong.Vec2{X: 40, Y: 20}}

	tests := []struct {
		name   string
		center pong.Vec2
		want   bool
	}{
		{"inside", pong.Vec2{X: 100, Y: 100}, true},
		{"near edge", pong.Vec2{X: 125, Y: 100}, true},
		{"touching is not intersecting", pong.Vec2{X: 130, Y: 100}, false},
		{"near corner", pong.Vec2{X: 123, Y: 113}, true},
		{"far", pong.Vec2{X: 200, Y: 200}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pong.IntersectRectangleCircle(rect, pong.Circle{Center: tt.center, Radius: 10})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAIVelocity(t *testing.T) {
	current := pong.Vec2{X: 123}

	tests := []struct {
		draw float64
		want pong.Vec2
	}{
		{0.99, current},
		{0.35, current},
		{0.25, current},
		{0.18, pong.Vec2{X: -pong.PlayerVelocity}},
		{0.12, pong.Vec2{X: pong.PlayerVelocity}},
		{0.05, pong.Vec2{}},
		{0, pong.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.draw), func(t *testing.T) {
			assert.Equal(t, tt.want, pong.NextAIVelocity(current, fixedRand(tt.draw)))
		})
	}
}

func TestAdvanceUsesAI(t *testing.T) {
	next, _ := pong.Advance(pong.NewState(), 1.0/60, fixedRand(0.12))
	assert.Equal(t, pong.Vec2{X: pong.PlayerVelocity}, next.Player2Velocity)
}
