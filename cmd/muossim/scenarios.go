package main

import (
	"fmt"

	"github.com/gzhynko/muos/kernel"
	"github.com/gzhynko/muos/kernel/klog"
)

// spawnScenario populates the thread table for one of the demo
// scenarios spec.md §8 describes, before Boot hands off to it.
func spawnScenario(name string) {
	switch name {
	case "roundrobin":
		spawnRoundRobin()
	case "sleep":
		spawnSleep()
	case "exit":
		spawnExitReclaim()
	case "starvation":
		spawnAllBlocked()
	case "spinner":
		spawnSingleYield()
	default:
		klog.Fatalf("unknown scenario %q", name)
	}
}

// spawnRoundRobin is scenario 2: two threads each print one token then
// yield, expecting the output to alternate A, B, A, B, ...
func spawnRoundRobin() {
	kernel.SpawnThread(func() {
		for {
			fmt.Println("A")
			kernel.YieldNow()
		}
	})
	kernel.SpawnThread(func() {
		for {
			fmt.Println("B")
			kernel.YieldNow()
		}
	})
}

// spawnSleep is scenario 3: A sleeps 50ms, B busy-yields and counts
// how many times it ran during A's sleep.
func spawnSleep() {
	kernel.SpawnThread(func() {
		for {
			klog.Infof("A: sleeping 50ms")
			kernel.SleepMs(50)
			klog.Infof("A: woke up")
		}
	})
	kernel.SpawnThread(func() {
		count := 0
		for {
			count++
			klog.Infof("B: run #%d", count)
			kernel.YieldNow()
		}
	})
}

// spawnExitReclaim is scenario 4: three threads exit after a few
// iterations each. The three fill every non-idle slot, so the fourth
// spawn is made by the last of them once the other two have exited,
// and it reuses a reclaimed slot.
func spawnExitReclaim() {
	for i := 0; i < 3; i++ {
		id := i
		kernel.SpawnThread(func() {
			for j := 0; j < 3; j++ {
				klog.Infof("thread %d: iteration %d", id, j)
				kernel.YieldNow()
			}
			if id == 2 {
				kernel.SpawnThread(lateSpawned)
			}
			klog.Infof("thread %d: exiting", id)
		})
	}
}

func lateSpawned() {
	for {
		kernel.YieldNow()
		kernel.SleepMs(200)
		klog.Infof("late-spawned thread: reclaimed a freed slot")
	}
}

// spawnAllBlocked is scenario 5: two threads both sleep 100ms; only
// the idle thread can run while both are blocked.
func spawnAllBlocked() {
	for i := 0; i < 2; i++ {
		id := i
		kernel.SpawnThread(func() {
			for {
				klog.Infof("thread %d: sleeping 100ms", id)
				kernel.SleepMs(100)
			}
		})
	}
}

// spawnSingleYield is scenario 1: a lone user thread that only ever
// yields; the scheduler should report "no switch" on every tick since
// there is no other non-idle Ready thread to pick.
func spawnSingleYield() {
	kernel.SpawnThread(func() {
		for i := 0; ; i++ {
			if i%1000 == 0 {
				klog.Infof("spinner: tick %d", i)
			}
			kernel.YieldNow()
		}
	})
}
