package kernel

// ContextSwitcher is the hardware-abstraction seam for the two pieces
// of naked assembly spec §9 calls load-bearing: the register-swap half
// of a context switch, and the one-shot launch of the first thread.
// arch/cortexm33 implements Switch/Launch with the PSP/CONTROL/
// EXC_RETURN sequence from spec §4.1 and §4.4; simhw implements them
// with goroutines parked on channels, since a host process has no PSP
// to swap.
type ContextSwitcher interface {
	// Spawn registers a freshly created thread with the backend before
	// it is ever switched to. arch/cortexm33's Spawn is a no-op: the
	// fabricated stack frame IS the thread's launch state. simhw's
	// Spawn parks a goroutine on a resume channel, since a host
	// process has no PC to fabricate a jump to.
	Spawn(ctx *ThreadContext, fn ThreadFn)

	// Switch saves prev's callee-saved registers to its own stack,
	// records the resulting SP in prev.StackAddr, then restores
	// next's callee-saved registers from its stack and resumes it.
	// Never returns to the caller in the sense the spec describes
	// (control resumes inside next); the Go signature returns
	// normally because both backends model the resumption as the
	// call unwinding back through Switch.
	Switch(prev, next *ThreadContext)

	// Launch sets PSP and CONTROL and performs the one-shot exception
	// return that starts the first thread. Does not return.
	Launch(psp uintptr, control uint32, excReturn uint32)
}

// CriticalSection is the hardware-abstraction seam for "disable
// interrupts for the duration of a scheduler access" (spec §5): the
// only discipline the global scheduler and syscall table need. Real
// hardware clears/restores PRIMASK; simhw uses a mutex, since nothing
// on the host asynchronously reenters scheduler code outside Go's own
// scheduler, but the seam keeps kernel code identical either way.
type CriticalSection interface {
	Enter()
	Exit()
}

// Peripherals is the hardware-abstraction seam for the core
// peripherals Init configures: SysTick reload/enable and NVIC
// exception priorities (PendSV lowest, per spec §6).
type Peripherals interface {
	// ConfigureSysTick sets the reload value for periodMs ticks at
	// clockHz, clears the counter, and enables the counter and its
	// interrupt.
	ConfigureSysTick(clockHz, periodMs uint32)

	// SetPendSVPriority sets PendSV's exception priority. Called with
	// 0xFF (lowest) by Init, per spec §4.4 and §6.
	SetPendSVPriority(prio uint8)

	// EnableInterrupts globally unmasks interrupts. Called once by
	// Boot, after the static MPU regions are programmed.
	EnableInterrupts()

	// RequestPendSV pends a PendSV exception (spec §4.3): the actual
	// switch happens later, at PendSV's lowest priority, not inline
	// from whatever context requests it. arch/cortexm33 sets
	// ICSR.PENDSVSET and returns immediately; simhw has no interrupt
	// controller to defer to, so it services the request synchronously
	// by calling PendSVHandler itself.
	RequestPendSV()
}
