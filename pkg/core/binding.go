package core

import "sync"

// Binding connects a widget field to host-owned state in both directions:
// the widget reads through Get on every sync, and pushes native-originated
// changes back through Set. Either accessor may be nil for a one-way
// binding.
type Binding[T any] struct {
	Get func() T
	Set func(T)
}

// IsReadable reports whether the binding can be read.
func (b Binding[T]) IsReadable() bool { return b.Get != nil }

// Read returns the bound value, or the zero value for a write-only binding.
func (b Binding[T]) Read() T {
	if b.Get == nil {
		var zero T
		return zero
	}
	return b.Get()
}

// Write pushes a value through the binding. No-op for a read-only binding.
func (b Binding[T]) Write(value T) {
	if b.Set != nil {
		b.Set(value)
	}
}

// BindConstant returns a read-only binding that always yields value.
func BindConstant[T any](value T) Binding[T] {
	return Binding[T]{Get: func() T { return value }}
}

// BindValue binds directly to a variable. The caller owns synchronization;
// use State for a binding that is safe to write from callbacks.
func BindValue[T any](ptr *T) Binding[T] {
	return Binding[T]{
		Get: func() T { return *ptr },
		Set: func(v T) { *ptr = v },
	}
}

// State owns a value and schedules a frame whenever it changes. It is the
// usual source for a Binding: the widget reads the current value on every
// sync, and native edits write straight back into it.
type State[T any] struct {
	value T
	owner *BuildOwner
	mu    sync.Mutex
}

// NewState creates a State holding an initial value.
func NewState[T any](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Attach ties the state to a BuildOwner so writes schedule frames. A state
// may be attached at most once; re-attaching replaces the owner.
func (s *State[T]) Attach(owner *BuildOwner) *State[T] {
	s.mu.Lock()
	s.owner = owner
	s.mu.Unlock()
	return s
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores a new value and schedules a frame on the attached owner.
func (s *State[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	owner := s.owner
	roots := []*AdapterElement(nil)
	if owner != nil {
		owner.mu.Lock()
		roots = append(roots, owner.roots...)
		owner.mu.Unlock()
	}
	s.mu.Unlock()

	for _, e := range roots {
		e.MarkNeedsBuild()
	}
}

// Binding returns a two-way binding onto this state.
func (s *State[T]) Binding() Binding[T] {
	return Binding[T]{Get: s.Get, Set: s.Set}
}
