// Package frame provides the display-frame phase primitives the Loom
// scheduler is driven by.
//
// Phaser is the injectable contract: a read-phase queue and a write-phase
// queue, flushed once per frame with write-after-read ordering. Loop is the
// production implementation — a single-goroutine ticker loop that also
// offers Dispatch for marshalling external work (network events, timers)
// onto the cooperative thread. Tests usually substitute a synchronous
// phaser instead of running a Loop.
package frame
