package kernel

import "testing"

// fakeScheduler records whether SysTick was called; the other Scheduler
// methods are unused by handleSysTick and left unimplemented.
type fakeScheduler struct {
	Scheduler
	tickCalled bool
}

func (f *fakeScheduler) SysTick() { f.tickCalled = true }

func TestHandleSysTickAdvancesThenRequestsPendSV(t *testing.T) {
	crit = noopCriticalSection{}
	defer func() { crit = nil }()

	f := &fakeScheduler{}
	requested := false

	handleSysTick(f, func() { requested = true })

	if !f.tickCalled {
		t.Error("expected SysTick to be called")
	}
	if !requested {
		t.Error("expected requestPendSV to be called")
	}
}

type noopCriticalSection struct{}

func (noopCriticalSection) Enter() {}
func (noopCriticalSection) Exit()  {}

func TestHandleSVCDispatchesToRegisteredHandler(t *testing.T) {
	var got [3]uintptr
	RegisterSyscall(SyscallYieldNow, func(a1, a2, a3 uintptr) {
		got = [3]uintptr{a1, a2, a3}
	})
	defer RegisterSyscall(SyscallYieldNow, nil)

	HandleSVC(SyscallYieldNow, 1, 2, 3)

	if got != [3]uintptr{1, 2, 3} {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}
