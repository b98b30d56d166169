package simhw

import (
	"testing"
	"time"

	"github.com/gzhynko/muos/kernel"
)

func newContext(base uintptr) *kernel.ThreadContext {
	return &kernel.ThreadContext{StackAddr: base}
}

func TestSwitcherHandsOffBetweenTwoThreads(t *testing.T) {
	// Spawn's goroutine body calls kernel.ExitThread once fn returns;
	// register a no-op handler so that doesn't panic on an empty table.
	kernel.RegisterSyscall(kernel.SyscallExitThread, func(a1, a2, a3 uintptr) {})
	defer kernel.RegisterSyscall(kernel.SyscallExitThread, nil)

	sw := NewSwitcher()

	order := make(chan string, 4)
	ctxA := newContext(0x1000)
	ctxB := newContext(0x2000)

	sw.Spawn(ctxA, func() {
		order <- "A"
		select {}
	})
	sw.Spawn(ctxB, func() {
		order <- "B"
		sw.Switch(ctxB, ctxA)
	})

	// Launch B, which records itself and then hands off to A with
	// Switch; neither thread returns, so kernel.ExitThread (which has
	// no scheduler installed in this test) is never reached.
	go sw.Launch(kernel.InitialPSP(ctxB), 0, 0)

	for _, want := range []string{"B", "A"} {
		select {
		case got := <-order:
			if got != want {
				t.Fatalf("got %q, want %s", got, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for thread %s to run", want)
		}
	}
}

func TestSwitcherPanicsOnUnknownContext(t *testing.T) {
	sw := NewSwitcher()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic switching to an unregistered context")
		}
	}()
	sw.Switch(newContext(0x1), newContext(0x2))
}
