package gate

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestShouldDispatchFiresOncePerKind(t *testing.T) {
	g := New()

	if !g.ShouldDispatch(KindEvidence) {
		t.Fatal("first evidence dispatch should be allowed")
	}
	if g.ShouldDispatch(KindEvidence) {
		t.Fatal("second evidence dispatch should be suppressed")
	}
	if !g.ShouldDispatch(KindLiveness) {
		t.Fatal("liveness kind is tracked independently")
	}
	if g.ShouldDispatch(KindLiveness) {
		t.Fatal("second liveness dispatch should be suppressed")
	}
}

func TestShouldDispatchUnderConcurrency(t *testing.T) {
	g := New()

	const frames = 64
	var granted atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < frames; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if g.ShouldDispatch(KindEvidence) {
				granted.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	if got := granted.Load(); got != 1 {
		t.Fatalf("expected exactly one granted dispatch, got %d", got)
	}
}

func TestSentReflectsDispatchState(t *testing.T) {
	g := New()

	if g.Sent(KindLiveness) {
		t.Fatal("nothing dispatched yet")
	}
	g.ShouldDispatch(KindLiveness)
	if !g.Sent(KindLiveness) {
		t.Fatal("liveness should be recorded as sent")
	}
	if g.Sent(KindEvidence) {
		t.Fatal("evidence kind must be unaffected")
	}
}
