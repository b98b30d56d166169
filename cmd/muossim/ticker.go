package main

import "github.com/gzhynko/muos/kernel"

// driveSysTick stands in for the hardware SysTick interrupt: on real
// firmware this fires from NVIC on a timer; here the ticker goroutine
// in main.go calls it directly once per configured period.
func driveSysTick() {
	kernel.Tick()
}
