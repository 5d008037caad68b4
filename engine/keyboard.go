package engine

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// EventKind distinguishes key presses from key releases.
type EventKind uint8

const (
	KeyDown EventKind = iota + 1
	KeyUp
)

func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	default:
		return "unknown"
	}
}

// KeyEvent is a single key press or release. Code is the physical key
// identifier, e.g. "ArrowLeft".
type KeyEvent struct {
	Kind EventKind
	Code string
}

// ListenerID identifies a registered keyboard listener.
type ListenerID uint32

type keyListener struct {
	kind EventKind
	fn   func(KeyEvent)
}

// Keyboard is a document-level target for key events. Listeners run
// synchronously, in registration order, on the goroutine that dispatches.
type Keyboard struct {
	listeners *intmap.Map[ListenerID, keyListener]
	order     []ListenerID
	nextID    ListenerID
}

// NewKeyboard creates a keyboard with no listeners.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		listeners: intmap.New[ListenerID, keyListener](4),
	}
}

// AddListener registers fn for events of the given kind.
func (k *Keyboard) AddListener(kind EventKind, fn func(KeyEvent)) ListenerID {
	k.nextID++
	id := k.nextID
	k.listeners.Put(id, keyListener{kind: kind, fn: fn})
	k.order = append(k.order, id)
	return id
}

// RemoveListener unregisters a listener. Unknown ids are ignored.
func (k *Keyboard) RemoveListener(id ListenerID) {
	if _, ok := k.listeners.Get(id); !ok {
		return
	}
	k.listeners.Del(id)
	k.order = slices.DeleteFunc(k.order, func(other ListenerID) bool {
		return other == id
	})
}

// ListenerCount returns the number of registered listeners.
func (k *Keyboard) ListenerCount() int {
	return k.listeners.Len()
}

// Dispatch delivers ev to every listener registered for its kind.
func (k *Keyboard) Dispatch(ev KeyEvent) {
	for _, id := range slices.Clone(k.order) {
		l, ok := k.listeners.Get(id)
		if !ok || l.kind != ev.Kind {
			continue
		}
		l.fn(ev)
	}
}

// Reducer computes the next state from the current one and a key event.
type Reducer[S any] func(state S, kind EventKind, code string) S

// AttachKeyboard routes press and release events from kb through reduce,
// storing each result in slot. The returned function removes both
// listeners; calling it again is a no-op.
func AttachKeyboard[S any](kb *Keyboard, slot *Slot[S], reduce Reducer[S]) (detach func()) {
	handle := func(ev KeyEvent) {
		slot.Set(reduce(slot.Get(), ev.Kind, ev.Code))
	}

	down := kb.AddListener(KeyDown, handle)
	up := kb.AddListener(KeyUp, handle)

	return func() {
		kb.RemoveListener(down)
		kb.RemoveListener(up)
	}
}
