// Package loom is the component runtime: hook-based state, a render
// executor with bail-out, and a frame scheduler that batches updates and
// effects into a fixed per-frame pipeline.
//
// # Components
//
// A component is a plain function from props to output:
//
//	func Counter(props vtree.Props) any {
//	    count, setCount := loom.UseState(0)
//	    return loom.H("button", vtree.Props{
//	        "onclick": func() { setCount.Set(count + 1) },
//	    }, vtree.Textf("clicked %d times", count))
//	}
//
// H builds the element tree; a render-function source allocates an
// Instance, the runtime record that owns all hook storage for that
// invocation. Scheduler.Mount performs the first render, and the instance
// re-renders on the frame after any of its state setters fire.
//
// # Hooks
//
// UseState, UseEffect, UseLayoutEffect, UseMemo, and UseRef are positional:
// each call site is identified by its call order within the render, and
// that order must not change between renders. Violations are undefined in
// production; setting DebugMode makes them panic with a diagnostic.
//
// State writes are staged. A setter never mutates the value a render in
// progress can observe; staged values apply at the start of the next
// frame's write phase, and the last write to a slot wins.
//
// # Frames
//
// The scheduler flushes once per frame through a fixed pipeline: ordinary
// effect cleanups, ordinary effects, external read work, staged state
// apply, forced updates in ascending instance id, layout cleanups, layout
// effects. The whole runtime is single-threaded and cooperative; every
// entry point must be called from the frame thread.
package loom
