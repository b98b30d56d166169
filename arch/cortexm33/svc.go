//go:build muos_hw

package cortexm33

import "github.com/gzhynko/muos/kernel"

// Svc0, Svc1, and Svc2 trap into the kernel via the SVC instruction,
// passing the syscall id in R0 and up to two argument words in R1/R2;
// the instruction's immediate is always 0. They are implemented in
// svc_arm.s; all three share the same trap, differing only in how many
// argument registers they load.
func Svc0(id uint8)
func Svc1(id uint8, a1 uintptr)
func Svc2(id uint8, a1, a2 uintptr)

// SVCHandler is called from the SVC exception vector (svc_arm.s) with
// the id recovered from the trapped R0, the trapped R1 and R2 as a1 and
// a2, and a3 always 0. It
// keeps the portable dispatch logic in kernel.HandleSVC, the same
// function simhw calls directly with no trap involved.
func SVCHandler(id int, a1, a2, a3 uintptr) {
	kernel.HandleSVC(id, a1, a2, a3)
}
