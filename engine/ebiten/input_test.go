package ebiten_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/pong/engine"
	engine_ebiten "github.com/plus3/pong/engine/ebiten"
	"github.com/stretchr/testify/assert"
)

func recordEvents(kb *engine.Keyboard) *[]string {
	var got []string
	record := func(ev engine.KeyEvent) {
		got = append(got, ev.Kind.String()+":"+ev.Code)
	}
	kb.AddListener(engine.KeyDown, record)
	kb.AddListener(engine.KeyUp, record)
	return &got
}

func TestInputCodes(t *testing.T) {
	in := engine_ebiten.NewInput(engine.NewKeyboard())

	tests := []struct {
		key  ebiten.Key
		code string
	}{
		{ebiten.KeyArrowLeft, "ArrowLeft"},
		{ebiten.KeyArrowRight, "ArrowRight"},
		{ebiten.KeyEscape, "Escape"},
		{ebiten.KeyR, "KeyR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			code, ok := in.Code(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.code, code)
		})
	}

	_, ok := in.Code(ebiten.KeyF12)
	assert.False(t, ok)
}

func TestInputDeliver(t *testing.T) {
	kb := engine.NewKeyboard()
	got := recordEvents(kb)
	in := engine_ebiten.NewInput(kb)

	in.Deliver(
		[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyF12},
		[]ebiten.Key{ebiten.KeyArrowRight},
		false,
	)

	assert.Equal(t, []string{"keydown:ArrowLeft", "keyup:ArrowRight"}, *got)
}

func TestInputDeliverCaptured(t *testing.T) {
	kb := engine.NewKeyboard()
	got := recordEvents(kb)
	in := engine_ebiten.NewInput(kb)

	in.Deliver(
		[]ebiten.Key{ebiten.KeyArrowLeft},
		[]ebiten.Key{ebiten.KeyArrowRight},
		true,
	)

	assert.Equal(t, []string{"keyup:ArrowRight"}, *got, "releases pass while captured")
}
