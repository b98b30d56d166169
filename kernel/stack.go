package kernel

import "unsafe"

// Stack is one thread's stack: a byte range together with the address
// of its first byte. Base is computed by stackPool from the backing
// array's own address, so it is valid on both the
// muos_hw backend (a real linker-placed array) and the simhw backend
// (an ordinary heap/BSS array) without the rest of the kernel needing
// to know which.
type Stack struct {
	Bytes []byte
	Base  uintptr
}

// Top returns the initial top-of-stack address: Base + len(Bytes).
func (s Stack) Top() uintptr {
	return s.Base + uintptr(len(s.Bytes))
}

// Contains reports whether addr lies strictly within this stack's
// byte range [Base, Top()).
func (s Stack) Contains(addr uintptr) bool {
	return addr >= s.Base && addr < s.Top()
}

// stackPool returns the Stack view for slot, backed by threadStacks[slot].
func stackPool(slot int) Stack {
	b := threadStacks[slot].bytes[:]
	return Stack{
		Bytes: b,
		Base:  uintptr(unsafe.Pointer(&b[0])),
	}
}
