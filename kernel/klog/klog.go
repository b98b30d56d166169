// Package klog is the kernel's logging shim: a thin wrapper over the
// standard library's log.Logger so call sites read like the rest of
// the ambient stack (Infof/Errorf) without pulling in a structured
// logging dependency the firmware side would pay code-size for.
package klog

import (
	"log"
	"os"
)

var std = log.New(os.Stderr, "muos: ", log.Lmicroseconds)

func Infof(format string, args ...any) {
	std.Printf("INFO "+format, args...)
}

func Errorf(format string, args ...any) {
	std.Printf("ERROR "+format, args...)
}

func Fatalf(format string, args ...any) {
	std.Fatalf("FATAL "+format, args...)
}
