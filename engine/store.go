package engine

import (
	"reflect"
)

type storeEntry struct {
	typ   reflect.Type
	value reflect.Value // addressable, holds the current state value
}

// Store holds at most one value per type. It is the explicit state holder
// shared by the frame loop, the scheduler and keyboard reducers.
type Store struct {
	entries map[reflect.Type]*storeEntry
	order   []reflect.Type
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entries: make(map[reflect.Type]*storeEntry),
	}
}

// Add stores value under its dynamic type, replacing any previous value of
// the same type.
func (s *Store) Add(value any) {
	typ := reflect.TypeOf(value)
	if typ == nil {
		panic("engine: cannot store untyped nil")
	}

	entry := s.entries[typ]
	if entry == nil {
		entry = &storeEntry{
			typ:   typ,
			value: reflect.New(typ).Elem(),
		}
		s.entries[typ] = entry
		s.order = append(s.order, typ)
	}
	entry.value.Set(reflect.ValueOf(value))
}

// Has reports whether a value of the given type is held.
func (s *Store) Has(typ reflect.Type) bool {
	_, ok := s.entries[typ]
	return ok
}

// Len returns the number of held values.
func (s *Store) Len() int {
	return len(s.order)
}

// Each calls fn for every held value in insertion order until fn returns false.
func (s *Store) Each(fn func(typ reflect.Type, value any) bool) {
	for _, typ := range s.order {
		if !fn(typ, s.entries[typ].value.Interface()) {
			return
		}
	}
}

func (s *Store) getEntry(typ reflect.Type) *storeEntry {
	return s.entries[typ]
}

// Slot is a typed handle to a value held in a Store. Systems declare Slot
// fields and the Scheduler wires them on registration.
type Slot[T any] struct {
	ptr *T
}

// NewSlot returns a handle to the T held by store. If no T is held yet it is
// created from initializer, or the zero value when none is given.
func NewSlot[T any](store *Store, initializer ...T) *Slot[T] {
	var value T
	if len(initializer) > 0 {
		value = initializer[0]
	}

	typ := reflect.TypeFor[T]()
	if store.getEntry(typ) == nil {
		store.Add(value)
	}

	s := &Slot[T]{}
	s.Init(store)
	return s
}

// Init binds the slot to store. Called by the Scheduler during registration.
// It panics if store holds no T.
func (s *Slot[T]) Init(store *Store) {
	entry := store.getEntry(reflect.TypeFor[T]())
	if entry == nil {
		panic("engine: no value of type " + reflect.TypeFor[T]().String() + " in store")
	}
	s.ptr = entry.value.Addr().Interface().(*T)
}

// Bound reports whether the slot has been attached to a store.
func (s *Slot[T]) Bound() bool {
	return s.ptr != nil
}

// Get returns the current value.
func (s *Slot[T]) Get() T {
	return *s.ptr
}

// Set replaces the current value.
func (s *Slot[T]) Set(value T) {
	*s.ptr = value
}

// Update replaces the current value with fn applied to it.
func (s *Slot[T]) Update(fn func(T) T) {
	*s.ptr = fn(*s.ptr)
}
