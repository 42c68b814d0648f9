package loom

import "github.com/loom-ui/loom/internal/errors"

// stateRecord is one cursor position of state storage. The staged value is
// written by the setter and applied only at frame-prepare time, so a render
// in progress never observes a torn value.
type stateRecord struct {
	value     any
	staged    any
	hasStaged bool
	handle    any // the stable *State[T] setter
}

// State is the stable setter handle returned by UseState. It is identical
// across every render of the owning instance.
type State[T any] struct {
	rec *stateRecord
	in  *Instance
}

// UseState returns the current value for this cursor position and its
// stable setter, initializing the slot on first call.
func UseState[T any](initial T) (T, *State[T]) {
	in := currentInstance(hookState)
	idx := in.stateCursor
	in.stateCursor++

	if idx < len(in.states) {
		rec := in.states[idx]
		h, ok := rec.handle.(*State[T])
		if !ok {
			panic(errors.New("E003").WithComponent(in.name))
		}
		return rec.value.(T), h
	}

	rec := &stateRecord{value: initial}
	h := &State[T]{rec: rec, in: in}
	rec.handle = h
	in.states = append(in.states, rec)
	return initial, h
}

// Get returns the live value. Staged writes are not visible until the next
// frame's prepare step.
func (s *State[T]) Get() T {
	return s.rec.value.(T)
}

// Set stages the next value and enqueues the owning instance for update.
// Multiple sets within one frame coalesce; the last write wins.
func (s *State[T]) Set(next T) {
	s.rec.staged = next
	s.rec.hasStaged = true
	s.in.scheduleUpdate()
}

// Update stages fn applied to the latest value: the staged one if a write
// is already pending, the live one otherwise.
func (s *State[T]) Update(fn func(T) T) {
	base := s.rec.value.(T)
	if s.rec.hasStaged {
		base = s.rec.staged.(T)
	}
	s.Set(fn(base))
}
