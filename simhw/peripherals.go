package simhw

import (
	"sync"

	"github.com/gzhynko/muos/kernel"
)

// Peripherals is a recording fake for kernel.Peripherals: it keeps the
// last-configured values so tests can assert Init wired things up,
// without touching any real SysTick/NVIC registers.
type Peripherals struct {
	mu                sync.Mutex
	ClockHz, PeriodMs uint32
	PendSVPrio        uint8
	InterruptsEnabled bool
}

// NewPeripherals returns a fresh, unconfigured fake.
func NewPeripherals() *Peripherals {
	return &Peripherals{}
}

func (p *Peripherals) ConfigureSysTick(clockHz, periodMs uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ClockHz, p.PeriodMs = clockHz, periodMs
}

func (p *Peripherals) SetPendSVPriority(prio uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.PendSVPrio = prio
}

func (p *Peripherals) EnableInterrupts() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.InterruptsEnabled = true
}

// RequestPendSV has no NVIC to pend against on the host, so it services
// the request immediately by calling into the kernel's PendSV handler,
// rather than deferring to a later exception-return boundary.
func (p *Peripherals) RequestPendSV() {
	kernel.PendSVHandler()
}
