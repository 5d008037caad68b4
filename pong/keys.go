package pong

import "github.com/plus3/pong/engine"

// OnKey applies a key event to the human paddle. A release only stops the
// paddle when it is not already moving the other way.
func OnKey(state GameState, kind engine.EventKind, code string) GameState {
	vx := state.Player1Velocity.X

	switch kind {
	case engine.KeyDown:
		switch code {
		case engine.CodeArrowRight:
			state.Player1Velocity = Vec2{X: PlayerVelocity}
		case engine.CodeArrowLeft:
			state.Player1Velocity = Vec2{X: -PlayerVelocity}
		}
	case engine.KeyUp:
		switch code {
		case engine.CodeArrowRight:
			if vx >= 0 {
				vx = 0
			}
			state.Player1Velocity = Vec2{X: vx}
		case engine.CodeArrowLeft:
			if vx <= 0 {
				vx = 0
			}
			state.Player1Velocity = Vec2{X: vx}
		}
	}

	return state
}
