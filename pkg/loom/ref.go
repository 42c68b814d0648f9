package loom

import "github.com/loom-ui/loom/internal/errors"

// Ref is a single mutable cell with identity stable across the owning
// instance's lifetime.
type Ref[T any] struct {
	Current T
}

// UseRef returns the ref for this cursor position, creating it once.
func UseRef[T any](initial T) *Ref[T] {
	in := currentInstance(hookRef)
	idx := in.refCursor
	in.refCursor++

	if idx < len(in.refs) {
		r, ok := in.refs[idx].(*Ref[T])
		if !ok {
			panic(errors.New("E003").WithComponent(in.name))
		}
		return r
	}

	r := &Ref[T]{Current: initial}
	in.refs = append(in.refs, r)
	return r
}
