package pong

import "github.com/plus3/pong/engine"

// CollisionCounts accumulates collisions over many frames.
type CollisionCounts struct {
	Frames          int64
	SideBorder      int64
	TopBottomBorder int64
	Player1         int64
	Player2         int64
}

func (c *CollisionCounts) Add(hits Collisions) {
	c.Frames++
	if hits.SideBorder {
		c.SideBorder++
	}
	if hits.TopBottomBorder {
		c.TopBottomBorder++
	}
	if hits.Player1 {
		c.Player1++
	}
	if hits.Player2 {
		c.Player2++
	}
}

// UpdateSystem replaces the game state with the next frame's state,
// drawing the current one onto Surface first.
type UpdateSystem struct {
	State   engine.Slot[GameState]
	Surface Surface
	Rand    Rand

	LastHits Collisions
	Counts   CollisionCounts
}

func (s *UpdateSystem) Execute(frame *engine.UpdateFrame) {
	next, hits := Step(s.State.Get(), s.Surface, frame.DeltaTime, s.Rand)
	s.State.Set(next)

	s.LastHits = hits
	s.Counts.Add(hits)
}
