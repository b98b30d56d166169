package kernel

// MPU is the hardware-abstraction seam for the MPU programmer (spec
// §4.5): it decouples the scheduler from the real Cortex-M33 register
// set exactly the way the teacher's Bus interface decouples CPU
// semantics from memory (cpu.go). arch/cortexm33 implements it against
// real MAIR/RNR/RBAR/RLAR registers; simhw implements it as a fake
// that records programmed regions and can assert address containment,
// standing in for testBus in cpu_test.go.
type MPU interface {
	// InitStatic programs the fixed regions (flash RO/exec, SRAM
	// privileged-only/XN, IO privileged-only/XN) once at boot and
	// enables MemManage faults.
	InitStatic() error

	// ProgramThreadStack reprograms the dynamic stack region (region
	// 2) to cover [base, base+size), read/write for both privileges,
	// execute-never. Called before every context switch.
	ProgramThreadStack(base uintptr, size uint32) error
}
