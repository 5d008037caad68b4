// Package pong implements the game rules. The ebiten host lives in pong/ebiten.
package pong

import "image/color"

const (
	Border = 5

	WindowWidth  = 600
	WindowHeight = 600

	PlayerWidth    = 130
	PlayerHeight   = 30
	PlayerVelocity = 450

	BallRadius             = 20
	BallVelocityX          = 0.8
	BallVelocityYIncrement = 50
)

var (
	BackgroundColor = color.RGBA{R: 199, G: 217, B: 229, A: 255}
	PlayerColor     = color.Black
	BallColor       = color.Black
)

// Vec2 is a 2D point or vector in surface pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// GameState is the whole game. It is replaced, never mutated in place.
type GameState struct {
	// Started and Score are placeholders; nothing sets them yet.
	Started bool
	Score   [2]int

	Player1Position Vec2
	Player1Velocity Vec2
	Player2Position Vec2
	Player2Velocity Vec2
	BallPosition    Vec2
	BallVelocity    Vec2
}

// NewState returns the state at the start of a game.
func NewState() GameState {
	return GameState{
		Player1Position: Vec2{X: WindowWidth / 2, Y: PlayerHeight/2 + Border},
		Player2Position: Vec2{X: WindowWidth / 2, Y: WindowHeight - PlayerHeight/2 - Border},
		BallPosition:    Vec2{X: WindowWidth / 2, Y: WindowHeight / 2},
		BallVelocity:    Vec2{X: 200, Y: 200},
	}
}
