// Command muossim runs the kernel against the simhw host backend so
// its scheduling behavior can be exercised and watched without any
// Cortex-M33 hardware, the host-side counterpart to the firmware image
// arch/cortexm33 targets.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/gzhynko/muos/kernel"
	"github.com/gzhynko/muos/kernel/klog"
	"github.com/gzhynko/muos/simhw"
)

var (
	scenario  = flag.String("scenario", "roundrobin", "demo scenario: roundrobin, sleep, exit, starvation, spinner")
	duration  = flag.Duration("duration", 3*time.Second, "how long to run before stopping")
	tickEvery = flag.Duration("tick", 10*time.Millisecond, "SysTick period")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		state, err := term.GetState(int(os.Stdin.Fd()))
		if err == nil {
			defer term.Restore(int(os.Stdin.Fd()), state)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		klog.Infof("interrupted, stopping")
		os.Exit(130)
	}()

	mpu := simhw.NewMPU()
	sw := simhw.NewSwitcher()
	cs := simhw.NewCriticalSection()
	periph := simhw.NewPeripherals()

	if err := kernel.Init(48_000_000, mpu, sw, cs, periph); err != nil {
		klog.Fatalf("kernel.Init: %v", err)
	}

	spawnScenario(*scenario)

	stopTick := startTicker(*tickEvery)
	defer stopTick()

	go kernel.Boot()

	time.Sleep(*duration)
	klog.Infof("duration elapsed, stopping")
}

// startTicker fires kernel.SysTick-equivalent work (via driveSysTick,
// see ticker.go) at the given period until the returned func
// is called.
func startTicker(period time.Duration) func() {
	var stop atomic.Bool
	t := time.NewTicker(period)
	go func() {
		for !stop.Load() {
			<-t.C
			driveSysTick()
		}
	}()
	return func() {
		stop.Store(true)
		t.Stop()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: muossim [flags]\n\nflags:\n")
	flag.PrintDefaults()
}
