package transport

import (
	"net"

	"github.com/tiiuae/sel4-gdbstub/internal/stub"
	"github.com/tiiuae/sel4-gdbstub/internal/stublog"
)

// ListenAndServe listens on addr and serves GDB connections one at a
// time, handing each one off to Serve. Only one GDB connection is
// handled at a time, intentionally: per §5 the stub is a single-
// threaded, one-request-one-reply interpreter with exactly one
// debugged thread, so two simultaneous GDB instances would simply
// trample each other's session state.
//
// Ground truth: gdbServer, adapted from a cgo-backed emulator target to
// an arbitrary stub.Session/fault-channel pair.
func ListenAndServe(addr string, newSession func() (*stub.Session, <-chan stub.StopReason), log stublog.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}

		session, faults := newSession()
		if err := Serve(conn, session, faults, log); err != nil {
			log.Errorf("gdb: connection handler error: %v", err)
		}
		conn.Close()
	}
}
