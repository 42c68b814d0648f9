package ltest

import "testing"

func TestSyncPhaserFlushOrder(t *testing.T) {
	p := &SyncPhaser{}
	var got []string

	p.RequestMutation(func() { got = append(got, "write") })
	p.RequestMeasure(func() { got = append(got, "read") })
	p.Flush()

	want := []string{"read", "write"}
	if len(got) != len(want) {
		t.Fatalf("ran %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSyncPhaserSameFrameMutation(t *testing.T) {
	p := &SyncPhaser{}
	ran := false

	p.RequestMeasure(func() {
		p.RequestMutation(func() { ran = true })
	})
	p.Flush()

	if !ran {
		t.Error("mutation requested during read phase did not run in same flush")
	}
}

func TestSyncPhaserMeasureFromMutationWaits(t *testing.T) {
	p := &SyncPhaser{}
	ran := false

	p.RequestMutation(func() {
		p.RequestMeasure(func() { ran = true })
	})
	p.Flush()
	if ran {
		t.Fatal("measure requested from mutation ran in the same flush")
	}
	p.Flush()
	if !ran {
		t.Error("measure requested from mutation never ran")
	}
}

func TestSyncPhaserSettle(t *testing.T) {
	p := &SyncPhaser{}
	depth := 0

	var chain func()
	chain = func() {
		depth++
		if depth < 3 {
			p.RequestMutation(func() {
				p.RequestMeasure(chain)
			})
		}
	}
	p.RequestMeasure(chain)

	flushed := p.Settle(10)
	if depth != 3 {
		t.Errorf("chain depth = %d, want 3", depth)
	}
	if flushed == 0 || p.Pending() {
		t.Errorf("Settle(10) = %d frames, pending = %v", flushed, p.Pending())
	}
}
