package kernel

import "github.com/gzhynko/muos/kernel/klog"

// globals mirror the original's single static RRScheduler and PRIMASK
// discipline (spec §5): the kernel is inherently a singleton, there is
// exactly one scheduler per image, real or simulated.
var (
	sched    Scheduler
	mpu      MPU
	switcher ContextSwitcher
	crit     CriticalSection
	periph   Peripherals
)

// Init wires the kernel to its backend (arch/cortexm33 on real
// hardware, simhw on the host), programs the static MPU regions,
// configures SysTick and PendSV priority, and installs the four core
// syscall handlers. Must be called exactly once before SpawnThread or
// Boot.
func Init(clockHz uint32, m MPU, sw ContextSwitcher, cs CriticalSection, p Peripherals) error {
	sched = NewRRScheduler()
	mpu = m
	switcher = sw
	crit = cs
	periph = p

	if err := mpu.InitStatic(); err != nil {
		return err
	}
	periph.ConfigureSysTick(clockHz, SystickFreqMs)
	periph.SetPendSVPriority(0xFF)

	idle := sched.SpawnIdle(idleLoop)
	switcher.Spawn(&sched.ThreadAt(idle).Context, idleLoop)
	installSyscalls()

	return nil
}

// idleLoop is the body of the mandatory idle thread (spec §3): spin
// forever so there is always a Ready thread to fall back to.
func idleLoop() {
	for {
	}
}

// installSyscalls wires the four syscall numbers defined in
// syscall.go to the scheduler operations they trigger, the Go
// equivalent of the original's install_syscalls table. yield_now,
// sleep_ms, and exit_thread each touch scheduler state and then pend a
// PendSV (spec §4.3): none of them switches inline, since the switch
// only happens once PendSV itself fires, at its configured lowest
// priority.
func installSyscalls() {
	RegisterSyscall(SyscallSchedulerBoot, func(a1, a2, a3 uintptr) {
		boot()
	})
	RegisterSyscall(SyscallYieldNow, func(a1, a2, a3 uintptr) {
		RequestPendSV()
	})
	RegisterSyscall(SyscallSleepMs, func(a1, a2, a3 uintptr) {
		WithScheduler(func() {
			sched.SyscallSleepMs(uint32(a1))
		})
		RequestPendSV()
	})
	RegisterSyscall(SyscallExitThread, func(a1, a2, a3 uintptr) {
		WithScheduler(func() {
			sched.SyscallExitThread()
		})
		RequestPendSV()
	})
}

// WithScheduler runs fn with interrupts disabled, the only locking
// discipline the scheduler and syscall table need (spec §5): every
// entry point funnels through here before touching shared state.
func WithScheduler(fn func()) {
	crit.Enter()
	defer crit.Exit()
	fn()
}

// SpawnThread registers a new Ready thread and returns its slot
// (thread ID). Safe to call before Boot to populate the initial
// thread set, and from a running thread afterward.
func SpawnThread(fn ThreadFn) int {
	var id int
	WithScheduler(func() {
		id = sched.Spawn(fn)
		switcher.Spawn(&sched.ThreadAt(id).Context, fn)
	})
	return id
}

// boot performs the scheduler_boot syscall body (spec §4.3): fetch the
// initial thread's registers and hand off via Launch, which does not
// return.
func boot() {
	psp, control, excReturn := sched.GetInitialThreadRegisters()
	base, size := sched.GetCurrentThreadStack()
	if err := mpu.ProgramThreadStack(base, size); err != nil {
		klog.Errorf("boot: program thread stack: %v", err)
	}
	periph.EnableInterrupts()
	switcher.Launch(psp, control, excReturn)
}

// Boot traps into the scheduler_boot syscall, starting the first
// thread. Must be called from the main (pre-threading) context after
// at least one SpawnThread. Does not return.
func Boot() {
	Dispatch(SyscallSchedulerBoot, 0, 0, 0)
}

// YieldNow runs the yield_now syscall handler, voluntarily giving up
// the remainder of the current thread's time slice. The handler is
// called directly through Dispatch in the caller's context; no SVC
// trap is taken.
func YieldNow() {
	Dispatch(SyscallYieldNow, 0, 0, 0)
}

// SleepMs runs the sleep_ms syscall handler, blocking the current
// thread until at least ms milliseconds of SysTick time have passed.
// Like YieldNow, it calls the handler directly through Dispatch rather
// than through an SVC trap.
func SleepMs(ms uint32) {
	Dispatch(SyscallSleepMs, uintptr(ms), 0, 0)
}

// ExitThread runs the exit_thread syscall handler, called directly
// through Dispatch rather than through an SVC trap. Called automatically
// by threadTrampoline when a thread function returns; never returns
// itself, since the next PendSV switches away from the now-Exited
// thread.
func ExitThread() {
	Dispatch(SyscallExitThread, 0, 0, 0)
	for {
	}
}

// RequestPendSV pends a PendSV exception (spec §4.3, §4.4): the switch
// does not happen inline here. On real hardware this sets
// ICSR.PENDSVSET and returns immediately, leaving the switch to the
// PendSV exception itself once it fires at its configured (lowest)
// priority; simhw has no interrupt controller to defer to, so it
// services the request immediately by calling PendSVHandler.
func RequestPendSV() {
	periph.RequestPendSV()
}

// PendSVHandler is the portable PendSV exception entry point (spec
// §4.4): arch/cortexm33's pendSVTrampoline calls it once it is safe to
// do so (svc_arm.s-style, no register marshaling needed since PendSV
// carries no arguments); simhw's RequestPendSV calls it directly.
func PendSVHandler() {
	handlePendSV(sched, mpu, switcher)
}

// SysTickHandler is the portable SysTick exception entry point:
// arch/cortexm33's sysTickTrampoline calls it on every real SysTick
// exception; cmd/muossim's ticker calls it once per simulated period,
// standing in for hardware with no NVIC to drive the vector itself.
func SysTickHandler() {
	handleSysTick(sched, RequestPendSV)
}

// Tick drives one SysTick period in the host simulator.
func Tick() {
	SysTickHandler()
}
