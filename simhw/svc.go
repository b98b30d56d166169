package simhw

import "github.com/gzhynko/muos/kernel"

// Svc0, Svc1, and Svc2 stand in for the SVC-instruction trampolines
// arch/cortexm33 provides (spec §4.3's "four-instruction trap"): on a
// host process there is no SVC instruction to execute, so a syscall is
// simply a direct call into kernel.HandleSVC with the same argument
// convention (id in a dedicated slot, up to three word arguments).
func Svc0(id int) {
	kernel.HandleSVC(id, 0, 0, 0)
}

func Svc1(id int, a1 uintptr) {
	kernel.HandleSVC(id, a1, 0, 0)
}

func Svc2(id int, a1, a2 uintptr) {
	kernel.HandleSVC(id, a1, a2, 0)
}
