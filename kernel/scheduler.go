package kernel

import "fmt"

// Scheduler is the round-robin scheduler interface (spec §4.2). The
// concrete RRScheduler is the only implementation; the interface
// exists so call sites (and tests) can substitute a recording fake the
// way the teacher's exception/interrupt code operates only through
// documented CPU methods.
type Scheduler interface {
	SpawnIdle(fn ThreadFn) int
	Spawn(fn ThreadFn) int
	ThreadAt(slot int) *Thread
	Schedule() (prev, next *ThreadContext, ok bool)
	GetInitialThreadRegisters() (psp uintptr, control uint32, excReturn uint32)
	GetCurrentThreadStack() (base uintptr, size uint32)
	SyscallSleepMs(ms uint32)
	SyscallExitThread()
	SysTick()
}

// RRScheduler holds the fixed thread table and tracks the current and
// idle threads, matching original_source/muos-threads/src/scheduler.rs's
// RRScheduler field-for-field (threads, current_thread_id,
// idle_thread_id, tick_count).
type RRScheduler struct {
	threads [MaxThreads]*Thread
	current int // -1 = none (before boot)
	idle    int // -1 = unset

	// pendingFree is the slot of a thread that exited on the last
	// switch away from it, not yet cleared. Spec §9 flags the
	// original's inline "clear then read from the same slot" as
	// fragile and suggests deferring the clear to the next Schedule
	// pass; RRScheduler does that unconditionally (see DESIGN.md).
	pendingFree int

	tick uint32
}

// NewRRScheduler returns an RRScheduler with no threads spawned.
func NewRRScheduler() *RRScheduler {
	return &RRScheduler{current: -1, idle: -1, pendingFree: -1}
}

// SpawnIdle registers the single, non-deletable idle thread. Panics if
// called twice or if the thread table is full — both are kernel-usage
// programming errors per spec §7, not recoverable conditions.
func (s *RRScheduler) SpawnIdle(fn ThreadFn) int {
	if s.idle >= 0 {
		panic("kernel: idle thread already spawned")
	}
	slot := s.freeSlot()
	if slot < 0 {
		panic("kernel: no slot for idle thread")
	}
	t := NewThread(fn, stackPool(slot), false)
	s.threads[slot] = &t
	s.idle = slot
	return slot
}

// ThreadAt returns the thread record in slot, or nil if empty.
func (s *RRScheduler) ThreadAt(slot int) *Thread {
	return s.threads[slot]
}

// Spawn creates a new user thread in Ready state in any empty
// non-idle slot, returning the slot (thread ID). Panics if the table
// is full (spec §4.2: "fails (panic in this revision)"). If there is
// no current thread yet, the new thread becomes current.
func (s *RRScheduler) Spawn(fn ThreadFn) int {
	slot := s.freeSlot()
	if slot < 0 {
		panic("kernel: no available thread slot")
	}
	t := NewThread(fn, stackPool(slot), false)
	s.threads[slot] = &t
	if s.current < 0 {
		s.current = slot
	}
	return slot
}

// freeSlot returns the lowest empty slot index, or -1 if the table is
// full. A slot pending deferred free is not yet empty: it is cleared
// lazily by the next Schedule call, per spec §3's "a thread cannot
// free itself; the scheduler completes the freeing on the next
// dispatch."
func (s *RRScheduler) freeSlot() int {
	for i, t := range s.threads {
		if t == nil {
			return i
		}
	}
	return -1
}

// Schedule picks the next runnable thread per spec §4.2's selection
// algorithm: scan forward from current+1, skipping idle, for the
// first Ready thread; if none is found and the current thread can no
// longer run (it is Blocked or Exited), fall back to idle if it is
// Ready; otherwise report no switch needed, so a lone runnable thread
// keeps the CPU instead of being swapped for idle. Before scanning, any slot left
// pending-free by a prior Exited switch-away is cleared, reclaiming it
// for the next Spawn.
func (s *RRScheduler) Schedule() (prev, next *ThreadContext, ok bool) {
	if s.pendingFree >= 0 {
		s.threads[s.pendingFree] = nil
		s.pendingFree = -1
	}

	if s.current < 0 {
		panic("kernel: no current thread")
	}
	if s.idle < 0 {
		panic("kernel: idle not spawned")
	}

	curr := s.current
	for offset := 1; offset < MaxThreads; offset++ {
		cand := (curr + offset) % MaxThreads
		if cand == s.idle {
			continue
		}
		if t := s.threads[cand]; t != nil && t.State == Ready {
			return s.doSwitch(curr, cand)
		}
	}

	if cs := s.threads[curr].State; s.idle != curr && cs != Running && cs != Ready {
		if t := s.threads[s.idle]; t != nil && t.State == Ready {
			return s.doSwitch(curr, s.idle)
		}
	}

	return nil, nil, false
}

// doSwitch demotes curr (Ready if it was Running, marked
// pending-free if it Exited) and promotes next to Running, returning
// both threads' contexts for the caller's register-level switch.
func (s *RRScheduler) doSwitch(curr, next int) (prev, nxt *ThreadContext, ok bool) {
	prevThread := s.threads[curr]
	switch prevThread.State {
	case Running:
		prevThread.State = Ready
	case Exited:
		s.pendingFree = curr
	}

	nextThread := s.threads[next]
	nextThread.State = Running
	s.current = next

	return &prevThread.Context, &nextThread.Context, true
}

// GetInitialThreadRegisters computes the PSP, CONTROL, and EXC_RETURN
// values for the boot handoff (spec §4.3 scheduler_boot): PSP is the
// base of the current thread's fabricated exception frame, which the
// hardware return sequence will pop on its way into the thread.
func (s *RRScheduler) GetInitialThreadRegisters() (psp uintptr, control uint32, excReturn uint32) {
	t := s.currentThread()
	psp = InitialPSP(&t.Context)
	control = t.ctrl()
	excReturn = ExcReturnThreadPSP
	return
}

// GetCurrentThreadStack returns the current thread's stack range, for
// programming the dynamic MPU region before a switch into it.
func (s *RRScheduler) GetCurrentThreadStack() (base uintptr, size uint32) {
	stack := stackPool(s.current)
	return stack.Base, StackSize
}

// SyscallSleepMs marks the current thread Blocked(Sleep(tick+ms)).
func (s *RRScheduler) SyscallSleepMs(ms uint32) {
	t := s.currentThread()
	t.State = Blocked
	t.Block = BlockReason{Kind: BlockSleep, Deadline: s.tick + ms}
}

// SyscallExitThread marks the current thread Exited. The slot is
// reclaimed by the next Schedule call that switches away from it.
func (s *RRScheduler) SyscallExitThread() {
	s.currentThread().State = Exited
}

// SysTick advances the tick counter by SystickFreqMs and readies any
// sleeper whose deadline has been reached, using wraparound-safe
// comparison (spec §3 invariant 5) so a wrap of tick never strands a
// sleeper.
func (s *RRScheduler) SysTick() {
	s.tick += SystickFreqMs
	for _, t := range s.threads {
		if t == nil || t.State != Blocked || t.Block.Kind != BlockSleep {
			continue
		}
		if tickReached(s.tick, t.Block.Deadline) {
			t.State = Ready
		}
	}
}

// tickReached reports whether now has reached or passed deadline,
// tolerating exactly one wraparound of the uint32 tick counter.
func tickReached(now, deadline uint32) bool {
	return int32(now-deadline) >= 0
}

func (s *RRScheduler) currentThread() *Thread {
	if s.current < 0 {
		panic("kernel: no current thread")
	}
	t := s.threads[s.current]
	if t == nil {
		panic(fmt.Sprintf("kernel: current thread slot %d is empty", s.current))
	}
	return t
}
