package loom

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/loom-ui/loom/pkg/vtree"
)

// RenderFunc produces a component's raw output: a *vtree.Element, a
// []*vtree.Element, a value coerced to text, or nil.
type RenderFunc func(props vtree.Props) any

// Instance is the runtime record for one mounted (or about-to-mount)
// invocation of a render function. It owns its hook storage exclusively;
// nothing else holds strong references into it, so dropping the instance
// releases everything once its cleanups have run.
type Instance struct {
	id    uint64
	fn    RenderFunc
	name  string
	props vtree.Props

	// rendered is the last raw render output; element wraps it.
	rendered any
	element  *vtree.Element

	mounted  bool
	tornDown bool
	onUpdate func()

	sched *Scheduler

	// Hook records, one ordered-by-call-order list per kind, each walked
	// by a cursor reset at the start of every render.
	states  []*stateRecord
	effects []*effectRecord
	layouts []*effectRecord
	memos   []*memoRecord
	refs    []any

	stateCursor  int
	effectCursor int
	layoutCursor int
	memoCursor   int
	refCursor    int

	// Debug-mode hook order tracking.
	hookOrder   []hookKind
	hookIdx     int
	renderCount int
}

// newInstance allocates an instance for a render function. A component
// created during another component's render inherits that render's
// scheduler; top-level instances get theirs at Mount.
func newInstance(fn RenderFunc, props vtree.Props) *Instance {
	in := &Instance{
		id:    nextID(),
		fn:    fn,
		name:  funcName(fn),
		props: props,
	}
	if current != nil {
		in.sched = current.sched
	}
	return in
}

// ID implements vtree.Owner.
func (in *Instance) ID() uint64 {
	return in.id
}

// Name implements vtree.Owner.
func (in *Instance) Name() string {
	return in.name
}

// FuncID implements vtree.Owner.
func (in *Instance) FuncID() uintptr {
	if in.fn == nil {
		return 0
	}
	return reflect.ValueOf(in.fn).Pointer()
}

// Mounted reports whether the instance is live.
func (in *Instance) Mounted() bool {
	return in.mounted && !in.tornDown
}

// Element returns the current element wrapping the last render output.
func (in *Instance) Element() *vtree.Element {
	return in.element
}

// Props returns the props the instance currently renders with.
func (in *Instance) Props() vtree.Props {
	return in.props
}

// scheduleUpdate enqueues the instance for a re-render on the next frame.
func (in *Instance) scheduleUpdate() {
	if in.tornDown || in.sched == nil {
		return
	}
	in.sched.EnqueueUpdate(in)
}

// prepareForFrame copies staged state values into live state. Called by
// the scheduler at the start of a frame's write phase; this is the only
// point where setter writes become visible.
func (in *Instance) prepareForFrame() {
	for _, rec := range in.states {
		if rec.hasStaged {
			rec.value = rec.staged
			rec.staged = nil
			rec.hasStaged = false
		}
	}
}

// resetCursors rewinds every hook cursor to zero at the start of a render.
func (in *Instance) resetCursors() {
	in.stateCursor = 0
	in.effectCursor = 0
	in.layoutCursor = 0
	in.memoCursor = 0
	in.refCursor = 0
	in.hookIdx = 0
}

// funcName derives a display name from the render function symbol.
func funcName(fn RenderFunc) string {
	if fn == nil {
		return "anonymous"
	}
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "anonymous"
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
