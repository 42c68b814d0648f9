package loom

import "github.com/loom-ui/loom/pkg/vtree"

// Cleanup is returned by an effect to undo its work. It runs before the
// effect re-runs, and at unmount. For layout effects the cleanup doubles
// as the release for any external subscriptions the effect registered.
type Cleanup func()

// Deps is an effect or memo dependency list. A nil Deps means "always
// re-run"; an empty non-nil Deps means "run once".
type Deps []any

// effectRecord is one cursor position of effect storage.
type effectRecord struct {
	deps    Deps
	hasRun  bool
	cleanup Cleanup
}

// UseEffect schedules fn for the deferred effect queue when deps changed
// since the previous render. The previous cleanup, if any, is enqueued
// ahead of it and runs first in the next flush.
func UseEffect(fn func() Cleanup, deps Deps) {
	useEffect(hookEffect, fn, deps)
}

// UseLayoutEffect is like UseEffect but flushes synchronously at the end
// of the write phase of the same frame, before the frame is presented.
func UseLayoutEffect(fn func() Cleanup, deps Deps) {
	useEffect(hookLayoutEffect, fn, deps)
}

func useEffect(kind hookKind, fn func() Cleanup, deps Deps) {
	in := currentInstance(kind)
	layout := kind == hookLayoutEffect

	var idx int
	var list *[]*effectRecord
	if layout {
		idx = in.layoutCursor
		in.layoutCursor++
		list = &in.layouts
	} else {
		idx = in.effectCursor
		in.effectCursor++
		list = &in.effects
	}

	var rec *effectRecord
	if idx < len(*list) {
		rec = (*list)[idx]
	} else {
		rec = &effectRecord{}
		*list = append(*list, rec)
	}

	changed := !rec.hasRun || !depsEqual(rec.deps, deps)
	rec.deps = deps
	if !changed {
		return
	}
	rec.hasRun = true

	if in.sched == nil {
		return
	}

	key := hookKey{owner: in.id, slot: idx}
	if rec.cleanup != nil {
		prev := rec.cleanup
		rec.cleanup = nil
		in.sched.enqueueCleanup(layout, key, prev)
	}
	owner := in
	in.sched.enqueueEffect(layout, key, func() {
		if owner.tornDown {
			return
		}
		rec.cleanup = fn()
	})
}

// depsEqual compares dependency lists by shallow pairwise equality.
// A nil list on either side forces a re-run.
func depsEqual(old, next Deps) bool {
	if old == nil || next == nil {
		return false
	}
	if len(old) != len(next) {
		return false
	}
	for i := range old {
		if !vtree.ValueEqual(old[i], next[i]) {
			return false
		}
	}
	return true
}
