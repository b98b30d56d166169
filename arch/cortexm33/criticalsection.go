//go:build muos_hw

package cortexm33

// CriticalSection implements kernel.CriticalSection by masking all
// interrupts with PRIMASK: Enter saves the current PRIMASK and sets
// it, Exit restores the saved value. Enter/Exit pairs do not nest: a
// second Enter before Exit overwrites the single saved value.
type CriticalSection struct {
	saved uint32
}

// NewCriticalSection returns a CriticalSection ready to use. A single
// instance is not safe for concurrent Enter calls from two interrupt
// priorities at once; the kernel only ever uses one at a time, guarded
// by the masking itself.
func NewCriticalSection() *CriticalSection {
	return &CriticalSection{}
}

func (c *CriticalSection) Enter() {
	c.saved = readPrimaskAndDisable()
}

func (c *CriticalSection) Exit() {
	restorePrimask(c.saved)
}

// readPrimaskAndDisable and restorePrimask are implemented in
// primask_arm.s: MRS/CPSID and MSR respectively.
func readPrimaskAndDisable() uint32
func restorePrimask(v uint32)
