package pong

func drawBackground(s Surface) {
	s.FillRect(0, 0, WindowWidth, WindowHeight, BackgroundColor)
}

func drawPlayer(s Surface, center Vec2) {
	s.FillRect(center.X-PlayerWidth/2, center.Y-PlayerHeight/2, PlayerWidth, PlayerHeight, PlayerColor)
}

func drawBall(s Surface, center Vec2) {
	s.FillEllipse(center.X, center.Y, BallRadius, BallRadius, BallColor)
}

// Draw renders the background, both paddles and the ball.
func Draw(s Surface, state GameState) {
	drawBackground(s)
	drawPlayer(s, state.Player1Position)
	drawPlayer(s, state.Player2Position)
	drawBall(s, state.BallPosition)
}
