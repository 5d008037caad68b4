package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/pong"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "How long the simulation runs.")
	interval := flag.Duration("interval", time.Second/60, "Time between frames.")
	seed := flag.Uint64("seed", 1, "Seed for the AI paddle.")
	autoplay := flag.Bool("autoplay", true, "Steer the human paddle toward the ball with synthetic key events.")
	flag.Parse()

	log.Println("Starting headless pong simulation...")

	store := engine.NewStore()
	state := engine.NewSlot(store, pong.NewState())
	keyboard := engine.NewKeyboard()
	detach := engine.AttachKeyboard(keyboard, state, pong.OnKey)
	defer detach()

	frame := &pong.DrawList{}
	updater := &pong.UpdateSystem{
		Surface: frame,
		Rand:    rand.New(rand.NewPCG(*seed, *seed)),
	}
	scheduler := engine.NewScheduler(store)
	scheduler.Register(updater)

	report := &Report{
		Duration: *duration,
		Interval: *interval,
		Seed:     *seed,
		Autoplay: *autoplay,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	var bot *Autoplayer
	if *autoplay {
		bot = &Autoplayer{Keyboard: keyboard}
	}

	loop := engine.StartLoop(func(dt float64) {
		if bot != nil {
			bot.Steer(state.Get())
		}
		frame.Reset()

		start := time.Now()
		scheduler.Once(dt)
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(start))
	})

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	log.Printf("Running simulation for %s...\n", *duration)
	startTime := time.Now()
	loop.Run(ctx, *interval)
	loop.Cancel()

	report.TotalTime = time.Since(startTime)
	report.Frames = loop.Ticks()
	report.Collisions = updater.Counts
	report.Final = state.Get()
	report.FrameTime.Finalize()

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
