package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/pong/engine"
	engine_ebiten "github.com/plus3/pong/engine/ebiten"
	"github.com/plus3/pong/pong"
)

// MaxDeltaSeconds caps the time a single tick may simulate. A longer stall
// would carry the ball past the borders before any collision sees it.
const MaxDeltaSeconds = 0.1

// Overlay is drawn over the playfield every frame. The Dear ImGui backend
// satisfies it.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Game hosts the engine inside ebiten. Each ebiten tick polls the keyboard
// and then advances the loop once.
type Game struct {
	Store     *engine.Store
	Scheduler *engine.Scheduler
	Keyboard  *engine.Keyboard
	Input     *engine_ebiten.Input
	Loop      *engine.Loop
	State     *engine.Slot[pong.GameState]
	Updater   *pong.UpdateSystem

	Overlay Overlay
	// KeyboardCaptured, when set and true, suppresses key presses. Releases
	// still reach the game.
	KeyboardCaptured func() bool

	frame  *pong.DrawList
	detach func()
}

// NewGame builds the store, scheduler, keyboard wiring and loop for a new
// game. The loop starts measuring time immediately.
func NewGame(rng pong.Rand, opts ...engine.LoopOption) *Game {
	store := engine.NewStore()
	state := engine.NewSlot(store, pong.NewState())
	frame := &pong.DrawList{}

	updater := &pong.UpdateSystem{Surface: frame, Rand: rng}
	scheduler := engine.NewScheduler(store)
	scheduler.Register(updater)

	keyboard := engine.NewKeyboard()

	g := &Game{
		Store:     store,
		Scheduler: scheduler,
		Keyboard:  keyboard,
		Input:     engine_ebiten.NewInput(keyboard),
		State:     state,
		Updater:   updater,
		frame:     frame,
	}
	g.detach = engine.AttachKeyboard(keyboard, state, pong.OnKey)
	g.Loop = engine.StartLoop(g.tick, opts...)
	return g
}

func (g *Game) tick(dt float64) {
	g.frame.Reset()
	g.Scheduler.Once(min(dt, MaxDeltaSeconds))
}

// Frame returns the fills issued by the most recent tick.
func (g *Game) Frame() *pong.DrawList {
	return g.frame
}

// Reset puts a fresh game into the state slot.
func (g *Game) Reset() {
	g.State.Set(pong.NewState())
}

// Close stops the loop and detaches the keyboard. Safe to call twice.
func (g *Game) Close() {
	g.Loop.Cancel()
	if g.detach != nil {
		g.detach()
		g.detach = nil
	}
}

func (g *Game) Update() error {
	if g.Loop.Cancelled() {
		return ebiten.Termination
	}

	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.Close()
		return ebiten.Termination
	}

	if g.Overlay != nil {
		g.Overlay.BeginFrame()
		defer g.Overlay.EndFrame()
	}

	captured := g.KeyboardCaptured != nil && g.KeyboardCaptured()
	if !captured && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	g.Input.Poll(captured)

	g.Loop.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	canvas := Canvas{Image: screen}
	if len(g.frame.Ops()) == 0 {
		pong.Draw(canvas, g.State.Get())
	} else {
		g.frame.Replay(canvas)
	}

	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return pong.WindowWidth, pong.WindowHeight
}
