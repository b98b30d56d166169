//go:build muos_hw

// Package cortexm33 is the real-hardware backend for the kernel's
// hardware-abstraction interfaces: MPU register programming, the
// naked-assembly context switch and SVC trampolines, SysTick/NVIC
// configuration, and PRIMASK-based critical sections. It is only
// compiled into a muos_hw build; simhw stands in for it on the host.
package cortexm33

import "unsafe"

// reg32 is a memory-mapped 32-bit register, modeled the way TinyGo's
// device packages expose MMIO: a fixed address read/written with
// volatile semantics so the compiler never reorders or elides the
// access.
type reg32 uintptr

func (r reg32) Get() uint32 {
	return *(*uint32)(unsafe.Pointer(uintptr(r)))
}

func (r reg32) Set(v uint32) {
	*(*uint32)(unsafe.Pointer(uintptr(r))) = v
}

func (r reg32) SetBits(mask uint32) {
	r.Set(r.Get() | mask)
}

func (r reg32) ClearBits(mask uint32) {
	r.Set(r.Get() &^ mask)
}

// System Control Space and MPU register addresses (ARMv8-M, Cortex-M33).
const (
	mpuTypeAddr   reg32 = 0xE000ED90
	mpuCtrlAddr   reg32 = 0xE000ED94
	mpuRNRAddr    reg32 = 0xE000ED98
	mpuRBARAddr   reg32 = 0xE000ED9C
	mpuRLARAddr   reg32 = 0xE000EDA0
	mpuMAIR0Addr  reg32 = 0xE000EDC0

	shcsrAddr reg32 = 0xE000ED24
	cfsrAddr  reg32 = 0xE000ED28
	hfsrAddr  reg32 = 0xE000ED2C
	mmfarAddr reg32 = 0xE000ED34
	bfarAddr  reg32 = 0xE000ED38

	systickCtrlAddr reg32 = 0xE000E010
	systickLoadAddr reg32 = 0xE000E014
	systickValAddr  reg32 = 0xE000E018

	shprAddr reg32 = 0xE000ED20 // System Handler Priority Register 3 (PendSV, SysTick)
	icsrAddr reg32 = 0xE000ED04 // Interrupt Control and State Register
)

const (
	mpuCtrlEnable      uint32 = 1 << 0
	mpuCtrlPrivDefEna  uint32 = 1 << 2
	shcsrMemFaultEna   uint32 = 1 << 16
	systickCtrlEnable  uint32 = 1 << 0
	systickCtrlTickInt uint32 = 1 << 1
	systickCtrlClkSrc  uint32 = 1 << 2
	icsrPendSVSet      uint32 = 1 << 28

	// cfsrMMARValid and cfsrBFARValid are CFSR bits 7 and 15: MMFSR's
	// and BFSR's "the matching fault address register holds a valid
	// address" flags.
	cfsrMMARValid uint32 = 1 << 7
	cfsrBFARValid uint32 = 1 << 15
)
