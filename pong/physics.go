package pong

const (
	PlayerMinX = PlayerWidth/2 + Border
	PlayerMaxX = WindowWidth - PlayerWidth/2 - Border
)

// Collisions records which collision rules fired during a step.
type Collisions struct {
	SideBorder      bool
	TopBottomBorder bool
	Player1         bool
	Player2         bool
}

// Any reports whether any rule fired.
func (c Collisions) Any() bool {
	return c.SideBorder || c.TopBottomBorder || c.Player1 || c.Player2
}

func integrate(p, v Vec2, dt float64) Vec2 {
	return p.Add(v.Scale(dt))
}

// ConstrainPlayer clamps a paddle's x into the playfield. y is untouched.
func ConstrainPlayer(p Vec2) Vec2 {
	return Vec2{X: max(min(p.X, PlayerMaxX), PlayerMinX), Y: p.Y}
}

// constrainBall leaves the ball free; the borders bounce it instead.
func constrainBall(p Vec2) Vec2 {
	return p
}

// paddleBounce returns the ball velocity after a hit on a paddle at paddleX.
// The x speed grows with the distance between ball and paddle centers.
func paddleBounce(ballX, paddleX, vy float64) Vec2 {
	distance := ballX - paddleX
	if distance < 0 {
		distance = -distance
	}
	vx := distance * BallVelocityX
	if ballX < paddleX {
		vx = -vx
	}
	return Vec2{X: vx, Y: -vy}
}

// Advance integrates one frame of motion and resolves collisions. Each rule
// tests the same tentative ball position; when several fire, later rules
// overwrite the velocity written by earlier ones. rng drives the AI paddle.
func Advance(state GameState, dt float64, rng Rand) (GameState, Collisions) {
	var hits Collisions

	ballVelocity := state.BallVelocity
	newBall := constrainBall(integrate(state.BallPosition, ballVelocity, dt))
	newPlayer1 := ConstrainPlayer(integrate(state.Player1Position, state.Player1Velocity, dt))
	newPlayer2 := ConstrainPlayer(integrate(state.Player2Position, state.Player2Velocity, dt))

	ball := Circle{Center: newBall, Radius: BallRadius}
	player1 := playerRect(newPlayer1)
	player2 := playerRect(newPlayer2)

	if IntersectRectangleCircle(leftBorder, ball) || IntersectRectangleCircle(rightBorder, ball) {
		hits.SideBorder = true
		ballVelocity = Vec2{X: -ballVelocity.X, Y: ballVelocity.Y}
		newBall = state.BallPosition
	}

	if IntersectRectangleCircle(topBorder, ball) || IntersectRectangleCircle(bottomBorder, ball) {
		hits.TopBottomBorder = true
		ballVelocity = Vec2{X: ballVelocity.X, Y: -ballVelocity.Y}
		newBall = state.BallPosition
	}

	if IntersectRectangleCircle(player1, ball) {
		hits.Player1 = true
		ballVelocity = paddleBounce(state.BallPosition.X, state.Player1Position.X, ballVelocity.Y)
		newBall = state.BallPosition
		newPlayer1 = state.Player1Position
	}

	if IntersectRectangleCircle(player2, ball) {
		hits.Player2 = true
		ballVelocity = paddleBounce(state.BallPosition.X, state.Player2Position.X, ballVelocity.Y+BallVelocityYIncrement)
		newBall = state.BallPosition
		newPlayer2 = state.Player2Position
	}

	next := state
	next.Player1Position = newPlayer1
	next.Player2Position = newPlayer2
	next.Player2Velocity = NextAIVelocity(state.Player2Velocity, rng)
	next.BallPosition = newBall
	next.BallVelocity = ballVelocity
	return next, hits
}

// Step draws state onto surface, then advances it by dt.
func Step(state GameState, surface Surface, dt float64, rng Rand) (GameState, Collisions) {
	Draw(surface, state)
	return Advance(state, dt, rng)
}

// Update is Step without the collision report.
func Update(state GameState, surface Surface, dt float64, rng Rand) GameState {
	next, _ := Step(state, surface, dt, rng)
	return next
}
