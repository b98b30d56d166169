package kernel

import (
	"encoding/binary"
	"testing"
)

func testStack() Stack {
	buf := make([]byte, StackSize)
	return Stack{Bytes: buf, Base: 0x20001000}
}

func TestNewThreadFabricatesExceptionFrame(t *testing.T) {
	fn := func() {}
	stack := testStack()
	th := NewThread(fn, stack, false)

	if th.State != Ready {
		t.Fatalf("State = %v, want Ready", th.State)
	}
	if th.Privileged {
		t.Fatal("expected an unprivileged thread")
	}
	if th.Context.StackAddr <= stack.Base || th.Context.StackAddr >= stack.Top() {
		t.Fatalf("Context.StackAddr %#x outside stack range [%#x, %#x)", th.Context.StackAddr, stack.Base, stack.Top())
	}

	frameOff := th.Context.StackAddr - stack.Base + calleeSavedWords*wordSize
	be := binary.LittleEndian
	r0 := be.Uint32(stack.Bytes[frameOff:])
	lr := be.Uint32(stack.Bytes[frameOff+5*wordSize:])
	pc := be.Uint32(stack.Bytes[frameOff+6*wordSize:])
	xpsr := be.Uint32(stack.Bytes[frameOff+7*wordSize:])

	if r0 != uint32(th.FnAddr) {
		t.Errorf("R0 = %#x, want fnAddr %#x", r0, th.FnAddr)
	}
	if lr != ExcReturnThreadPSP {
		t.Errorf("LR = %#x, want %#x", lr, ExcReturnThreadPSP)
	}
	if pc&1 == 0 {
		t.Error("PC should have the Thumb bit set")
	}
	if xpsr&0x01000000 == 0 {
		t.Error("xPSR should have the Thumb mode bit set")
	}
}

func TestNewThreadCalleeSavedBlockIsZeroed(t *testing.T) {
	stack := testStack()
	th := NewThread(func() {}, stack, false)

	regsOff := th.Context.StackAddr - stack.Base
	for i := uintptr(0); i < calleeSavedWords; i++ {
		if v := binary.LittleEndian.Uint32(stack.Bytes[regsOff+i*wordSize:]); v != 0 {
			t.Errorf("callee-saved word %d = %#x, want 0", i, v)
		}
	}
}

func TestThreadCtrlReflectsPrivilege(t *testing.T) {
	priv := NewThread(func() {}, testStack(), true)
	if got := priv.ctrl(); got != 0x2 {
		t.Errorf("privileged ctrl = %#x, want 0x2", got)
	}

	user := NewThread(func() {}, testStack(), false)
	if got := user.ctrl(); got != 0x3 {
		t.Errorf("unprivileged ctrl = %#x, want 0x3", got)
	}
}

func TestInitialPSPIsAboveExceptionFrame(t *testing.T) {
	stack := testStack()
	th := NewThread(func() {}, stack, false)

	psp := InitialPSP(&th.Context)
	want := th.Context.StackAddr + excFrameWords*wordSize
	if psp != want {
		t.Errorf("InitialPSP = %#x, want %#x", psp, want)
	}
	// psp is the base of the fabricated exception frame: the hardware
	// return sequence pops 8 words from there, landing exactly at the
	// stack's original top.
	if psp+excFrameWords*wordSize != stack.Top() {
		t.Errorf("InitialPSP + frame size = %#x, want stack top %#x", psp+excFrameWords*wordSize, stack.Top())
	}
}

func TestThreadStateString(t *testing.T) {
	cases := map[ThreadState]string{
		Ready:          "ready",
		Running:        "running",
		Blocked:        "blocked",
		Exited:         "exited",
		ThreadState(99): "invalid",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
