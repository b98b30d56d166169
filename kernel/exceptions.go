package kernel

import "github.com/gzhynko/muos/kernel/klog"

// handlePendSV is the portable half of the PendSV handler (spec
// §4.4): ask the scheduler for the next thread, reprogram the dynamic
// MPU region to cover its stack, and hand the two contexts to the
// ContextSwitcher. The naked-asm register save/restore itself lives in
// arch/cortexm33 (real hardware) or simhw (host); this function is
// what both call into. Only the scheduling decision and the MPU
// reprogramming run under WithScheduler; the switch itself runs after
// the critical section is released (spec §5).
func handlePendSV(sched Scheduler, mpu MPU, sw ContextSwitcher) {
	var prev, next *ThreadContext
	var ok bool
	WithScheduler(func() {
		prev, next, ok = sched.Schedule()
		if !ok {
			return
		}
		base, size := sched.GetCurrentThreadStack()
		if err := mpu.ProgramThreadStack(base, size); err != nil {
			klog.Errorf("pendsv: program thread stack: %v", err)
		}
	})
	if !ok {
		return
	}
	sw.Switch(prev, next)
}

// handleSysTick is the portable half of the SysTick handler: advance
// the scheduler's tick and wake any sleepers, then request a PendSV so
// the demoted/promoted state takes effect once any higher-priority
// exception currently running returns. sched.SysTick is the only part
// that touches shared scheduler state, so only it runs under
// WithScheduler; requestPendSV runs afterward, unlocked, since on the
// host it synchronously re-enters the scheduler via PendSVHandler.
func handleSysTick(sched Scheduler, requestPendSV func()) {
	WithScheduler(func() {
		sched.SysTick()
	})
	requestPendSV()
}

// HandleSVC is the portable half of the SVC handler: dispatch the
// trapped syscall id and its argument words, already pulled out of the
// exception frame by the caller (arch/cortexm33's svcTrampoline, or
// simhw's Svc0/Svc1/Svc2, which call it with no trap involved).
func HandleSVC(id int, a1, a2, a3 uintptr) {
	Dispatch(id, a1, a2, a3)
}

// FaultInfo captures the fields of a HardFault/MemManage fault worth
// logging before giving up: spec §4.4 says a stack overflow raises
// MemManage when the MPU traps it, and the kernel's only policy is to
// report and halt.
type FaultInfo struct {
	HFSR       uint32
	CFSR       uint32
	MMFAR      uint32
	MMFARValid bool
	BFAR       uint32
	BFARValid  bool
}

// LogFault writes a FaultInfo through klog and then blocks forever.
// There is no recovery path for a corrupted exception frame (spec
// §7): halting is safer than attempting to resume.
func LogFault(f FaultInfo) {
	klog.Errorf("fault: HFSR=%#08x CFSR=%#08x", f.HFSR, f.CFSR)
	if f.MMFARValid {
		klog.Errorf("fault: MMFAR=%#08x (valid)", f.MMFAR)
	}
	if f.BFARValid {
		klog.Errorf("fault: BFAR=%#08x (valid)", f.BFAR)
	}
	for {
	}
}
