// Command muosflash tails the UART log line coming off a board
// running the muos firmware image, the serial-port counterpart to
// cmd/muossim for actual hardware. It does not flash an image itself
// (that's the debug probe's job) — it is the console the kernel's
// klog output reaches once the board is running.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.bug.st/serial"
)

var (
	device  = flag.String("port", "", "serial device, e.g. /dev/ttyACM0")
	baud    = flag.Int("baud", 115200, "baud rate")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *device == "" {
		usage()
		os.Exit(2)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	mode := &serial.Mode{
		BaudRate: *baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(*device, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "muosflash: open %s: %v\n", *device, err)
		os.Exit(1)
	}
	defer port.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		port.Close()
		os.Exit(130)
	}()

	logger.Printf("muosflash: listening on %s at %d baud", *device, *baud)

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		logger.Println(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "muosflash: read: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: muosflash -port=/dev/ttyACM0 [-baud=115200]\n\nflags:\n")
	flag.PrintDefaults()
}
