// Command gdbstubd runs the GDB remote-serial stub as a standalone
// binary: it wires together the architecture register map, a delegate,
// a session, and a transport, the way camkes-tool's gdb.c is wired into
// a running CAmkES component. Since the capability delegate and fault
// interceptor are both external collaborators the specification places
// out of scope (§1, §6), this binary substitutes an in-memory
// delegate.Loopback and a synthetic target driver standing in for the
// real fault-notification path, so the stub can still be attached to
// with a real gdb client end to end.
//
// Ground truth: the emulator teacher's main(), adapted from parsing
// firmware-image/RAM/flash flags and driving a cgo machine to parsing
// transport/architecture flags and driving a stub.Session.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tiiuae/sel4-gdbstub/internal/delegate"
	"github.com/tiiuae/sel4-gdbstub/internal/registers"
	"github.com/tiiuae/sel4-gdbstub/internal/stub"
	"github.com/tiiuae/sel4-gdbstub/internal/stublog"
	"github.com/tiiuae/sel4-gdbstub/internal/transport"
)

var (
	flagArch     string
	flagLoglevel string
	flagListen   string
	flagSerial   string
	flagBaud     int
)

func main() {
	flag.StringVar(&flagArch, "arch", "x86_64", "target architecture: x86, x86_64, arm32, arm64")
	flag.StringVar(&flagLoglevel, "loglevel", "info", "debug, info, warn, error")
	flag.StringVar(&flagListen, "listen", "localhost:7333", "TCP address to serve the GDB remote protocol on")
	flag.StringVar(&flagSerial, "serial", "", "serial device to serve the GDB remote protocol on, instead of -listen")
	flag.IntVar(&flagBaud, "baud", 115200, "baud rate, when -serial is given")
	flag.Parse()

	arch, err := registers.ParseArch(flagArch)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		flag.PrintDefaults()
		os.Exit(1)
	}

	log, err := stublog.New(flagLoglevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: bad loglevel:", err)
		os.Exit(1)
	}
	defer log.Sync()

	delegateImpl := delegate.NewLoopback(arch)
	const demoTCB delegate.TCB = 1

	newSession := func() (*stub.Session, <-chan stub.StopReason) {
		faults := make(chan stub.StopReason, 1)
		var session *stub.Session
		session = stub.New(arch, delegateImpl, demoTCB, func() {
			go driveTarget(session, faults)
		}, log)
		return session, faults
	}

	if flagSerial != "" {
		conn, err := transport.OpenSerial(flagSerial, uint32(flagBaud))
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		defer conn.Close()

		session, faults := newSession()
		if err := transport.Serve(conn, session, faults, log); err != nil {
			fmt.Fprintln(os.Stderr, "gdb stub error:", err)
			os.Exit(1)
		}
		return
	}

	if err := transport.ListenAndServe(flagListen, newSession, log); err != nil {
		fmt.Fprintln(os.Stderr, "gdb stub error:", err)
		os.Exit(1)
	}
}

// driveTarget stands in for the real fault interceptor: it is the
// synthetic "something ran and stopped" signal a demo needs since this
// binary has no actual debuggee thread to intercept faults from. A
// step always reports StopStep; a continue reports a software
// breakpoint hit, matching the most common case a developer attaching
// gdb actually wants to see. Real deployments replace this goroutine
// entirely with the CAmkES fault handler sending stop reasons on the
// faults channel, from which transport.Serve calls session.NotifyFault.
func driveTarget(session *stub.Session, faults chan<- stub.StopReason) {
	time.Sleep(10 * time.Millisecond)

	if session.StepMode {
		faults <- stub.StopReason{Kind: stub.StopStep}
		return
	}
	faults <- stub.StopReason{Kind: stub.StopSoftwareBreak}
}
