//go:build muos_hw

package cortexm33

// Peripherals is the real SysTick/NVIC backend.
type Peripherals struct{}

// NewPeripherals returns the real hardware peripherals backend.
func NewPeripherals() *Peripherals { return &Peripherals{} }

func (p *Peripherals) ConfigureSysTick(clockHz, periodMs uint32) {
	reload := clockHz/1000*periodMs - 1
	systickLoadAddr.Set(reload)
	systickValAddr.Set(0)
	systickCtrlAddr.Set(systickCtrlEnable | systickCtrlTickInt | systickCtrlClkSrc)
}

// SetPendSVPriority writes prio into the PendSV priority field of
// SHPR3 (bits [23:16]), leaving SysTick's priority field untouched.
func (p *Peripherals) SetPendSVPriority(prio uint8) {
	v := shprAddr.Get()
	v = (v &^ (0xFF << 16)) | uint32(prio)<<16
	shprAddr.Set(v)
}

func (p *Peripherals) EnableInterrupts() {
	enableInterrupts()
}

// RequestPendSV sets ICSR.PENDSVSET, pending a PendSV exception at the
// priority SetPendSVPriority configured. The switch itself happens
// later, once any higher-priority exception currently running returns.
func (p *Peripherals) RequestPendSV() {
	icsrAddr.SetBits(icsrPendSVSet)
}

// enableInterrupts is implemented in switch_arm.s: a bare CPSIE I.
func enableInterrupts()
