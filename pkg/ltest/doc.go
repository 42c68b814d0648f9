// Package ltest provides testing helpers for components and the frame
// pipeline.
//
// # Frame control
//
// SyncPhaser replaces the live frame loop in tests. Nothing runs until
// Flush, which executes exactly one frame (read phase, then write phase),
// so a test controls frame boundaries explicitly:
//
//	phaser := &ltest.SyncPhaser{}
//	sched := loom.New(phaser)
//	el := sched.Mount(in, func() {})
//	setCount.Set(1)
//	phaser.Flush()
//
// # Render assertions
//
// Assert on rendered HTML output:
//
//	ltest.ExpectContains(t, in.Element(), "Welcome")
//	ltest.ExpectNotContains(t, in.Element(), "Error")
//	ltest.ExpectElement(t, in.Element(), "button")
//	ltest.ExpectAttribute(t, in.Element(), "class", "btn-primary")
package ltest
