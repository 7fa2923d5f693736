package core

import (
	"testing"
	"time"
)

func TestLoopStopsAtLimit(t *testing.T) {
	r := newEmbeddedRunner(t, 1, "right:5")
	loop := NewLoop(r, 1000, 5)

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		loop.Stop()
		t.Fatal("loop did not stop at its tick limit")
	}
	if r.Ticks() != 5 {
		t.Errorf("Ticks() = %d, want 5", r.Ticks())
	}
	loop.Stop()
}

func TestLoopStop(t *testing.T) {
	r := newEmbeddedRunner(t, 1, "")
	loop := NewLoop(r, 1000, 0)
	go loop.Run()

	time.Sleep(20 * time.Millisecond)
	loop.Stop()
	loop.Stop()

	ticks := r.Ticks()
	time.Sleep(20 * time.Millisecond)
	if r.Ticks() != ticks {
		t.Error("loop kept running after Stop")
	}
}
