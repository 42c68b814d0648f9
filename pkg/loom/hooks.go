package loom

import (
	"fmt"

	"github.com/loom-ui/loom/internal/errors"
)

// DebugMode enables hook-order validation across renders. Violations are
// a programmer-error class that production mode leaves undetected; with
// DebugMode on, the first render records the hook call sequence and later
// renders panic on divergence.
var DebugMode bool

// hookKind identifies the type of hook call for order validation.
type hookKind uint8

const (
	hookState hookKind = iota + 1
	hookEffect
	hookLayoutEffect
	hookMemo
	hookRef
)

// String returns a human-readable name for the hook kind.
func (k hookKind) String() string {
	switch k {
	case hookState:
		return "State"
	case hookEffect:
		return "Effect"
	case hookLayoutEffect:
		return "LayoutEffect"
	case hookMemo:
		return "Memo"
	case hookRef:
		return "Ref"
	default:
		return "Unknown"
	}
}

// current is the instance whose render is in progress. Exactly one render
// runs at a time; the runtime is single-threaded and cooperative, so plain
// package state suffices.
var current *Instance

// setCurrent swaps the currently rendering instance and returns the
// previous one.
func setCurrent(in *Instance) *Instance {
	prev := current
	current = in
	return prev
}

// currentInstance returns the instance being rendered, tracking the hook
// call for order validation. Hooks are valid only during a render.
func currentInstance(kind hookKind) *Instance {
	if current == nil {
		panic(errors.New("E002"))
	}
	current.trackHook(kind)
	return current
}

// trackHook records or validates one hook call in debug mode.
func (in *Instance) trackHook(kind hookKind) {
	if !DebugMode {
		return
	}
	if in.renderCount == 0 {
		in.hookOrder = append(in.hookOrder, kind)
	} else {
		if in.hookIdx >= len(in.hookOrder) {
			panic(fmt.Sprintf("loom: hook order changed in %s: extra %s hook at index %d",
				in.name, kind, in.hookIdx))
		}
		if expected := in.hookOrder[in.hookIdx]; expected != kind {
			panic(fmt.Sprintf("loom: hook order changed in %s at index %d: expected %s, got %s",
				in.name, in.hookIdx, expected, kind))
		}
	}
	in.hookIdx++
}

// endRender finalizes debug-mode bookkeeping for one render.
func (in *Instance) endRender() {
	if DebugMode && in.renderCount > 0 && in.hookIdx < len(in.hookOrder) {
		errors.Report(errors.New("E003").WithComponent(in.name))
	}
	in.renderCount++
}
