// Package kernel implements the muos core: thread records and stacks,
// a round-robin scheduler with a sleep queue, a syscall dispatch table,
// and the portable half of the exception gates that drive context
// switches. The hardware-specific pieces (MPU register programming,
// the naked context-switch assembly, privileged register access) are
// expressed as interfaces here and implemented by the arch/cortexm33
// package (real silicon) or the simhw package (host simulation/tests).
package kernel

// MaxThreads is the thread table capacity, including the idle thread.
const MaxThreads = 4

// StackSize is the size in bytes of each thread's stack.
const StackSize = 1024

// SystickFreqMs is the SysTick period in milliseconds.
const SystickFreqMs = 10

// MaxSyscallID is the capacity of the syscall handler table.
const MaxSyscallID = 32

// ExcReturnThreadPSP selects thread-mode return using PSP with no
// floating-point state: LR is set to this value on initial thread
// launch and restored by every context switch.
const ExcReturnThreadPSP uint32 = 0xFFFFFFFD

// Memory map expected by the MPU static regions (spec §6).
const (
	FlashBase = 0x10000000
	FlashSize = 2 * 1024 * 1024

	SRAMBase = 0x20000000
	SRAMSize = 512 * 1024

	IOBase = 0xD0000000
	IOSize = 16 * 1024
)
