package loom

import (
	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/vtree"
)

// Mount performs the instance's first render and marks it live. The
// onUpdate callback is how the external patcher learns that a later forced
// update produced a structurally different element; it is called with no
// arguments, never during Mount itself.
//
// Mounting an already-mounted or torn-down instance is a no-op that
// returns the current element.
func (s *Scheduler) Mount(in *Instance, onUpdate func()) *vtree.Element {
	if in == nil || in.mounted || in.tornDown {
		if in != nil {
			return in.element
		}
		return nil
	}
	in.sched = s
	in.onUpdate = onUpdate
	el := s.renderComponent(in)
	in.mounted = true
	return el
}

// forceUpdate re-renders a mounted instance and notifies the patcher only
// when the element reference actually changed. Called from the frame
// flush; not a public entry point.
func (s *Scheduler) forceUpdate(in *Instance) {
	if !in.mounted || in.onUpdate == nil {
		return
	}
	prev := in.element
	s.renderComponent(in)
	if in.element != prev {
		in.onUpdate()
	}
}

// Unmount tears an instance down: it leaves any pending batch, every
// stored effect and layout-effect cleanup runs under per-callback fault
// isolation, and the hook storage is released. After Unmount the instance
// is inert and is never scheduled again. Unmounting twice is a no-op.
func (s *Scheduler) Unmount(in *Instance) {
	if in == nil || !in.mounted || in.tornDown {
		return
	}

	delete(s.pending, in.id)
	s.metrics.SetPending(len(s.pending))
	s.excluded[in.id] = struct{}{}

	for _, rec := range in.effects {
		s.runStoredCleanup(in, rec)
	}
	for _, rec := range in.layouts {
		s.runStoredCleanup(in, rec)
	}

	in.mounted = false
	in.tornDown = true

	// The instance owns its hook records outright; releasing the
	// containers releases everything.
	in.states = nil
	in.effects = nil
	in.layouts = nil
	in.memos = nil
	in.refs = nil
	in.fn = nil
	in.props = nil
	in.rendered = nil
	in.element = nil
	in.onUpdate = nil
}

// runStoredCleanup invokes one stored cleanup; a panic in one cleanup
// must not skip the others.
func (s *Scheduler) runStoredCleanup(in *Instance, rec *effectRecord) {
	if rec.cleanup == nil {
		return
	}
	cleanup := rec.cleanup
	rec.cleanup = nil
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("cleanup failed", "component", in.name, "panic", r)
			errors.Report(errors.New("E004").WithComponent(in.name))
		}
	}()
	cleanup()
}
