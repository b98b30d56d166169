package simhw

import "sync"

// CriticalSection implements kernel.CriticalSection with a plain
// mutex. Real hardware clears PRIMASK to keep an interrupt from
// reentering scheduler code on the same core; a host process has no
// such asynchronous reentry outside of the goroutines simhw itself
// creates, so a mutex gives the same mutual-exclusion guarantee the
// kernel code actually depends on.
type CriticalSection struct {
	mu sync.Mutex
}

// NewCriticalSection returns an unlocked CriticalSection.
func NewCriticalSection() *CriticalSection {
	return &CriticalSection{}
}

func (c *CriticalSection) Enter() { c.mu.Lock() }
func (c *CriticalSection) Exit()  { c.mu.Unlock() }
