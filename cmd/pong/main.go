package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/engine"
	"github.com/plus3/pong/engine/debugui"
	debugui_ebiten "github.com/plus3/pong/engine/debugui/ebiten"
	"github.com/plus3/pong/pong"
	pong_ebiten "github.com/plus3/pong/pong/ebiten"
)

const windowTitle = "Pong"

func main() {
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug windows.")
	seed := flag.Uint64("seed", 0, "Seed for the AI paddle. 0 picks one from the clock.")
	tps := flag.Int("tps", ebiten.DefaultTPS, "Game ticks per second.")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Starting pong (seed %d, %d TPS)...\n", *seed, *tps)

	game := pong_ebiten.NewGame(rand.New(rand.NewPCG(*seed, *seed)))

	if *debug {
		attachDebugUI(game)
	} else {
		ebiten.SetWindowSize(pong.WindowWidth, pong.WindowHeight)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetTPS(*tps)

	err := ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatalf("Failed to run game: %v", err)
	}

	stats := game.Scheduler.GetStats()
	log.Printf("Exited after %d frames.\n", stats.Frames)
}

func attachDebugUI(game *pong_ebiten.Game) {
	backend := debugui_ebiten.NewImguiBackend(windowTitle+" (debug)", pong.WindowWidth, pong.WindowHeight)
	input := engine.NewSlot(game.Store, debugui.ImguiInputState{})

	game.Scheduler.Register(&debugui.ImguiSystem{
		Panels: []debugui.Panel{
			debugui.NewPerformanceStats(game.Scheduler, 120),
			debugui.NewStateInspector(),
		},
	})
	game.Overlay = backend
	game.KeyboardCaptured = func() bool {
		return input.Get().WantCaptureKeyboard
	}

	log.Println("Debug UI enabled.")
}
