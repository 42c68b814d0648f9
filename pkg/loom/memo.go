package loom

import "github.com/loom-ui/loom/internal/errors"

// memoRecord is one cursor position of memo storage: a cached value plus
// the dependency list it was computed from.
type memoRecord struct {
	value any
	deps  Deps
}

// UseMemo returns the cached value for this cursor position, recomputing
// only when deps changed by shallow comparison. A nil deps recomputes on
// every render.
func UseMemo[T any](compute func() T, deps Deps) T {
	in := currentInstance(hookMemo)
	idx := in.memoCursor
	in.memoCursor++

	if idx < len(in.memos) {
		rec := in.memos[idx]
		if depsEqual(rec.deps, deps) {
			v, ok := rec.value.(T)
			if !ok {
				panic(errors.New("E003").WithComponent(in.name))
			}
			return v
		}
		v := compute()
		rec.value = v
		rec.deps = deps
		return v
	}

	v := compute()
	in.memos = append(in.memos, &memoRecord{value: v, deps: deps})
	return v
}
