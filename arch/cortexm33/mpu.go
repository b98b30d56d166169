//go:build muos_hw

package cortexm33

import "github.com/gzhynko/muos/kernel"

// Region indices, matching the static/dynamic region map of spec §4.5
// and §6: 0=flash, 1=SRAM, 2=dynamic stack, 3=IO. Region 2 is
// reprogrammed on every context switch; the other three are written
// once by InitStatic.
const (
	regionFlash = 0
	regionSRAM  = 1
	regionStack = 2
	regionIO    = 3
)

// attrFlashExec, attrSRAM, attrStack, and attrIOExec are MAIR attribute
// encodings: normal memory, write-back cacheable for flash and SRAM;
// normal non-cacheable for the per-thread stack, since stack contents
// must be immediately visible after a switch; device, non-gatherable
// for IO.
const (
	attrFlashExec = 0xFF
	attrSRAM      = 0xFF
	attrStack     = 0x44
	attrIOExec    = 0x00
)

// MPU is the real Cortex-M33 MPU backend. It programs four of the
// device's regions: flash (execute, read-only), SRAM (privileged
// read/write, execute-never), IO (privileged-only, execute-never), and
// one dynamic region for whichever thread is currently running
// (read/write both privileges, execute-never).
type MPU struct{}

// NewMPU returns the real hardware MPU backend.
func NewMPU() *MPU { return &MPU{} }

func (m *MPU) InitStatic() error {
	mpuMAIR0Addr.Set(uint32(attrFlashExec) | uint32(attrSRAM)<<8 | uint32(attrStack)<<16 | uint32(attrIOExec)<<24)

	programRegion(regionFlash, kernel.FlashBase, kernel.FlashSize, rbarRO|rbarExecOK, 0)
	programRegion(regionSRAM, kernel.SRAMBase, kernel.SRAMSize, rbarPrivOnly|rbarXN, 1)
	programRegion(regionIO, kernel.IOBase, kernel.IOSize, rbarPrivOnly|rbarXN, 3)

	shcsrAddr.SetBits(shcsrMemFaultEna)
	mpuCtrlAddr.Set(mpuCtrlEnable | mpuCtrlPrivDefEna)
	return nil
}

func (m *MPU) ProgramThreadStack(base uintptr, size uint32) error {
	programRegion(regionStack, base, size, rbarRW|rbarXN, 2)
	return nil
}

// Bit layouts for RBAR/RLAR, kept local to this file since they are
// only ever combined by programRegion.
const (
	rbarRO       = 0b11 << 1 // AP[2:1] = 11: read-only, any privilege
	rbarRW       = 0b01 << 1 // AP[2:1] = 01: read/write, any privilege
	rbarPrivOnly = 0         // AP[2:1] = 00: read/write, privileged only
	rbarExecOK   = 0
	rbarXN       = 1 << 0

	regionEnable = 1 << 0
)

// programRegion selects region n via RNR and writes RBAR/RLAR to
// cover [base, base+size) with the given access bits and MAIR index.
func programRegion(n int, base uintptr, size uint32, accessBits uint32, mairIdx uint32) {
	mpuRNRAddr.Set(uint32(n))
	limit := uint32(base) + size - 32 // limit is inclusive, 32-byte aligned
	mpuRBARAddr.Set(uint32(base) | accessBits)
	mpuRLARAddr.Set((limit &^ 0x1F) | (mairIdx << 1) | regionEnable)
}
