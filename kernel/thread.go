package kernel

import (
	"encoding/binary"
	"reflect"
)

// ThreadFn is the signature of a thread's top-level entry function.
type ThreadFn func()

// ThreadState is one of Ready, Running, Blocked, or Exited. Blocked
// threads additionally carry a BlockReason.
type ThreadState int

const (
	Ready ThreadState = iota
	Running
	Blocked
	Exited
)

func (s ThreadState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Blocked:
		return "blocked"
	case Exited:
		return "exited"
	default:
		return "invalid"
	}
}

// BlockKind identifies why a thread is blocked. The taxonomy is open
// for extension (e.g. a future semaphore wait) without touching
// ThreadState itself.
type BlockKind int

const (
	BlockNone BlockKind = iota
	BlockSleep
)

// BlockReason describes a blocked thread's wait condition. Deadline is
// only meaningful when Kind == BlockSleep: the tick count at which the
// thread becomes Ready again.
type BlockReason struct {
	Kind     BlockKind
	Deadline uint32
}

// ThreadContext is the saved machine context of a descheduled thread:
// the process stack pointer at the moment it was last switched away
// from, pointing at the top of its callee-saved register block.
type ThreadContext struct {
	StackAddr uintptr
}

// Thread is a per-slot thread record. Prio is reserved for a future
// priority scheduler and is not read by RRScheduler (see DESIGN.md).
// FP is reserved and always false in this revision.
type Thread struct {
	Context    ThreadContext
	Prio       uint32
	FnAddr     uintptr
	Fn         ThreadFn // the entry function itself; FnAddr is its address
	Privileged bool
	FP         bool
	State      ThreadState
	Block      BlockReason
}

// calleeSavedWords is the size in words of the R4-R11 block a context
// switch saves/restores.
const calleeSavedWords = 8

// excFrameWords is the size in words of the hardware exception frame
// (R0-R3, R12, LR, PC, xPSR).
const excFrameWords = 8

const wordSize = 4

// NewThread fabricates the initial stack contents for fn so that its
// first resumption looks like a return from an exception into
// threadTrampoline, per spec §4.1: an 8-word hardware exception frame
// at the top of the stack, with an 8-word zeroed callee-saved block
// immediately below it. Context.StackAddr is set to the base of that
// callee-saved block.
func NewThread(fn ThreadFn, stack Stack, privileged bool) Thread {
	top := stack.Top() &^ 7 // enforce 8-byte alignment

	frameStart := (top - excFrameWords*wordSize) &^ 7
	regsStart := (frameStart - calleeSavedWords*wordSize) &^ 7

	frameOff := frameStart - stack.Base
	regsOff := regsStart - stack.Base

	// Zero the callee-saved block (R4-R11).
	for i := uintptr(0); i < calleeSavedWords; i++ {
		binary.LittleEndian.PutUint32(stack.Bytes[regsOff+i*wordSize:], 0)
	}

	fnAddr := uintptr(reflect.ValueOf(fn).Pointer())

	frame := [excFrameWords]uint32{
		uint32(fnAddr),          // R0: argument to threadTrampoline
		0,                       // R1
		0,                       // R2
		0,                       // R3
		0,                       // R12
		ExcReturnThreadPSP,      // LR
		uint32(trampolineAddr()) | 1, // PC (Thumb bit set)
		0x01000000,              // xPSR: Thumb mode
	}
	for i, w := range frame {
		binary.LittleEndian.PutUint32(stack.Bytes[frameOff+uintptr(i)*wordSize:], w)
	}

	return Thread{
		Context:    ThreadContext{StackAddr: regsStart},
		FnAddr:     fnAddr,
		Fn:         fn,
		Privileged: privileged,
		State:      Ready,
	}
}

// InitialPSP returns the process stack pointer value a fresh thread's
// context should launch with: the base of the fabricated exception
// frame, sitting calleeSavedWords above Context.StackAddr, so the
// launch/return sequence pops exactly that frame and leaves PSP at the
// stack's original top. Exported so hardware-abstraction backends
// (simhw in particular) can key a thread by the same address value
// ContextSwitcher.Launch receives.
func InitialPSP(ctx *ThreadContext) uintptr {
	return ctx.StackAddr + excFrameWords*wordSize
}

// trampolineAddr returns the address threadTrampoline would execute
// at on real hardware. It exists so NewThread can populate the
// fabricated exception frame's PC field without every caller needing
// to know about the trampoline.
func trampolineAddr() uintptr {
	return uintptr(reflect.ValueOf(threadTrampoline).Pointer())
}

// threadTrampoline is the function every fabricated thread stack
// points its initial PC at. It calls the user entry function and, if
// that function ever returns, issues the exit_thread syscall — so one
// trampoline serves all threads without per-thread code (spec §4.1).
// On real hardware this is reached by the exception return sequence;
// the host simulator's ContextSwitcher does not call it, but runs the
// same two steps (fn, then ExitThread) as its goroutine body since
// there is no literal PC to branch to.
func threadTrampoline(fn ThreadFn) {
	fn()
	ExitThread()
}

// ctrl returns the CONTROL register value to load when this thread
// runs: privileged threads keep privileged execution on PSP,
// unprivileged threads run unprivileged on PSP (spec §4.4).
func (t *Thread) ctrl() uint32 {
	if t.Privileged {
		return 0x2
	}
	return 0x3
}
