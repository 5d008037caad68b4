// Package ebiten feeds ebiten keyboard state into an engine.Keyboard.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kamstrup/intmap"
	"github.com/plus3/pong/engine"
)

var keyCodeTable = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowLeft, engine.CodeArrowLeft},
	{ebiten.KeyArrowRight, engine.CodeArrowRight},
	{ebiten.KeyArrowUp, engine.CodeArrowUp},
	{ebiten.KeyArrowDown, engine.CodeArrowDown},
	{ebiten.KeySpace, engine.CodeSpace},
	{ebiten.KeyEnter, engine.CodeEnter},
	{ebiten.KeyEscape, engine.CodeEscape},
	{ebiten.KeyA, "KeyA"},
	{ebiten.KeyD, "KeyD"},
	{ebiten.KeyP, "KeyP"},
	{ebiten.KeyQ, "KeyQ"},
	{ebiten.KeyR, "KeyR"},
	{ebiten.KeyS, "KeyS"},
	{ebiten.KeyW, "KeyW"},
}

func defaultKeyCodes() *intmap.Map[ebiten.Key, string] {
	codes := intmap.New[ebiten.Key, string](len(keyCodeTable))
	for _, entry := range keyCodeTable {
		codes.Put(entry.key, entry.code)
	}
	return codes
}

// Input translates ebiten keys into key events on a Keyboard.
type Input struct {
	Keyboard *engine.Keyboard

	codes *intmap.Map[ebiten.Key, string]
	keys  []ebiten.Key
}

// NewInput creates an Input using the default key code table.
func NewInput(kb *engine.Keyboard) *Input {
	return &Input{
		Keyboard: kb,
		codes:    defaultKeyCodes(),
	}
}

// Code returns the key identifier for an ebiten key.
func (in *Input) Code(key ebiten.Key) (string, bool) {
	return in.codes.Get(key)
}

// Poll dispatches the keys ebiten reports as pressed or released since the
// previous tick. Must be called from the game's Update.
func (in *Input) Poll(captured bool) {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	pressed := len(in.keys)
	in.keys = inpututil.AppendJustReleasedKeys(in.keys)

	in.Deliver(in.keys[:pressed], in.keys[pressed:], captured)
}

// Deliver dispatches presses, then releases. Keys without a code are
// dropped. While captured, presses belong to someone else and only
// releases go through, so a key held before the capture still lets go.
func (in *Input) Deliver(pressed, released []ebiten.Key, captured bool) {
	if !captured {
		in.dispatch(engine.KeyDown, pressed)
	}
	in.dispatch(engine.KeyUp, released)
}

func (in *Input) dispatch(kind engine.EventKind, keys []ebiten.Key) {
	for _, key := range keys {
		code, ok := in.codes.Get(key)
		if !ok {
			continue
		}
		in.Keyboard.Dispatch(engine.KeyEvent{Kind: kind, Code: code})
	}
}
