package main

import (
	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/pong"
)

// deadZone is how far, in pixels, the ball may be from the paddle center
// before the bot starts moving.
const deadZone = 10

// Autoplayer holds an arrow key toward the ball, one key at a time.
type Autoplayer struct {
	Keyboard *engine.Keyboard
	held     string
}

// Steer presses or releases arrow keys so the human paddle follows the ball.
func (a *Autoplayer) Steer(state pong.GameState) {
	want := ""
	switch offset := state.BallPosition.X - state.Player1Position.X; {
	case offset > deadZone:
		want = engine.CodeArrowRight
	case offset < -deadZone:
		want = engine.CodeArrowLeft
	}

	if want == a.held {
		return
	}
	if a.held != "" {
		a.Keyboard.Dispatch(engine.KeyEvent{Kind: engine.KeyUp, Code: a.held})
	}
	if want != "" {
		a.Keyboard.Dispatch(engine.KeyEvent{Kind: engine.KeyDown, Code: want})
	}
	a.held = want
}
