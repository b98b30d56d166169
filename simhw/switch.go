// Package simhw is the host-simulation backend for the kernel's
// hardware-abstraction interfaces, the Go equivalent of the teacher's
// testBus: it lets scheduler and syscall logic run and be tested on a
// developer machine with no Cortex-M33 in sight.
package simhw

import (
	"sync"

	"github.com/gzhynko/muos/kernel"
)

// Switcher implements kernel.ContextSwitcher by running each thread as
// its own goroutine, parked on a per-thread channel between turns. A
// context switch is a goroutine handoff: wake the next thread's
// goroutine, then park the current one until something wakes it again.
// This preserves the kernel's cooperative-looking call structure
// (Switch appears to "return" into the caller once it is resumed)
// without needing any real register state.
type Switcher struct {
	mu      sync.Mutex
	parked  map[uintptr]*parkedThread
}

type parkedThread struct {
	turn chan struct{}
}

// NewSwitcher returns an empty Switcher.
func NewSwitcher() *Switcher {
	return &Switcher{parked: make(map[uintptr]*parkedThread)}
}

// Spawn starts fn as a goroutine blocked on its own turn channel,
// keyed by the address Launch/Switch will use to resume it.
func (sw *Switcher) Spawn(ctx *kernel.ThreadContext, fn kernel.ThreadFn) {
	key := kernel.InitialPSP(ctx)
	pt := &parkedThread{turn: make(chan struct{}, 1)}

	sw.mu.Lock()
	sw.parked[key] = pt
	sw.mu.Unlock()

	go func() {
		<-pt.turn
		fn()
		kernel.ExitThread()
	}()
}

// Switch wakes next's goroutine and parks the caller's (prev's) until
// some later Switch or Launch wakes it again.
func (sw *Switcher) Switch(prev, next *kernel.ThreadContext) {
	nextPt := sw.get(kernel.InitialPSP(next))
	prevPt := sw.get(kernel.InitialPSP(prev))

	nextPt.turn <- struct{}{}
	<-prevPt.turn
}

// Launch wakes the thread whose initial PSP is psp and then blocks
// forever, matching the real backend's non-returning exception-return
// sequence. control and excReturn are accepted to satisfy the
// interface but unused: there is no real CONTROL register or
// EXC_RETURN on a host process.
func (sw *Switcher) Launch(psp uintptr, control uint32, excReturn uint32) {
	pt := sw.get(psp)
	pt.turn <- struct{}{}
	select {}
}

func (sw *Switcher) get(key uintptr) *parkedThread {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	pt, ok := sw.parked[key]
	if !ok {
		panic("simhw: no thread registered for context")
	}
	return pt
}
