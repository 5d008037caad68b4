package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/pong/pong"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Interval time.Duration
	Seed     uint64
	Autoplay bool

	// Results
	Frames     int64
	TotalTime  time.Duration
	FrameTime  Stats
	Collisions pong.CollisionCounts
	Final      pong.GameState
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Pong Simulation Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Frame Interval:** {{.Interval}}
- **Seed:** {{.Seed}}
- **Autoplay:** {{.Autoplay}}

## Results
- **Frames:** {{.Frames}}
- **Total Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Collisions
- Side borders:       {{.Collisions.SideBorder}}
- Top/bottom borders: {{.Collisions.TopBottomBorder}}
- Player 1 paddle:    {{.Collisions.Player1}}
- Player 2 paddle:    {{.Collisions.Player2}}

## Final State
- Ball:     {{vec .Final.BallPosition}} moving {{vec .Final.BallVelocity}}
- Player 1: {{vec .Final.Player1Position}}
- Player 2: {{vec .Final.Player2Position}}
`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"vec": fmtVec,
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

func fmtVec(v pong.Vec2) string {
	return fmt.Sprintf("(%.1f, %.1f)", v.X, v.Y)
}
