//go:build muos_hw

package cortexm33

import "github.com/gzhynko/muos/kernel"

// PendSVHandler is called from the PendSV exception vector
// (pendSVTrampoline, exceptions_arm.s). PendSV carries no argument
// registers to recover — unlike SVC, there is nothing to marshal — so
// the trampoline calls straight through.
func PendSVHandler() {
	kernel.PendSVHandler()
}

// SysTickHandler is called from the SysTick exception vector
// (sysTickTrampoline, exceptions_arm.s) on every timer period.
func SysTickHandler() {
	kernel.SysTickHandler()
}

// pendSVTrampoline and sysTickTrampoline are implemented in
// exceptions_arm.s and installed at their respective vector table
// slots by the muos_hw build's linker script, the same way svcTrampoline
// is (svc_arm.s).
func pendSVTrampoline()
func sysTickTrampoline()

// FaultHandler is installed at both the HardFault and MemManage
// vectors (spec §4.4, §6): a stack overflow the dynamic per-thread
// stack region traps shows up as MemManage, anything else lands in
// HardFault. Both read the same fault status registers — there is
// nothing on the stack worth recovering by the time either fires — and
// hand off to kernel.LogFault, which halts.
func FaultHandler() {
	cfsr := cfsrAddr.Get()
	kernel.LogFault(kernel.FaultInfo{
		HFSR:       hfsrAddr.Get(),
		CFSR:       cfsr,
		MMFAR:      mmfarAddr.Get(),
		MMFARValid: cfsr&cfsrMMARValid != 0,
		BFAR:       bfarAddr.Get(),
		BFARValid:  cfsr&cfsrBFARValid != 0,
	})
}
