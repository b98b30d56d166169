//go:build muos_hw

package kernel

// alignedStack is one thread's backing storage. The leading zero-sized
// uint64 forces 8-byte alignment without a Rust-style repr(align(8))
// attribute; Go aligns a struct to its widest field.
type alignedStack struct {
	_     [0]uint64
	bytes [StackSize]byte
}

// threadStacks is the static stack pool. On real hardware this array
// is placed in the linker's uninitialized-data section (the
// ".uninit.stacks"-equivalent spec §6 names) via the build's linker
// script, so the stacks occupy RAM but not image size — the same
// reason the Rust original tags THREAD_STACKS with
// #[link_section = ".uninit.stacks"]. Go has no section attribute
// pragma portable across backends, so the placement is a linker-script
// concern of the muos_hw build rather than a source annotation here;
// see DESIGN.md.
var threadStacks [MaxThreads]alignedStack
