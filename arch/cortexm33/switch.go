//go:build muos_hw

package cortexm33

import "github.com/gzhynko/muos/kernel"

// Switcher is the real ContextSwitcher backend: Switch and Launch are
// thin wrappers over the naked assembly in switch_arm.s.
type Switcher struct{}

// NewSwitcher returns the real hardware context-switch backend.
func NewSwitcher() *Switcher { return &Switcher{} }

// Spawn is a no-op on real hardware: NewThread already fabricated the
// stack frame that makes the thread launchable, so there is nothing
// further to register.
func (s *Switcher) Spawn(ctx *kernel.ThreadContext, fn kernel.ThreadFn) {}

func (s *Switcher) Switch(prev, next *kernel.ThreadContext) {
	contextSwitchAsm(&prev.StackAddr, next.StackAddr)
}

func (s *Switcher) Launch(psp uintptr, control uint32, excReturn uint32) {
	launchAsm(psp, control, excReturn)
}

// contextSwitchAsm and launchAsm are implemented in switch_arm.s.
func contextSwitchAsm(savedSP *uintptr, newSP uintptr)
func launchAsm(psp uintptr, control uint32, excReturn uint32)
