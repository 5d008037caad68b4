// Package engine drives a per-refresh update loop over an explicit state
// store and routes keyboard events into state reducers.
package engine

// System is a unit of per-frame behaviour. Implementations may declare Slot
// fields, which the Scheduler binds to its Store on registration, as well as
// their own state that persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
