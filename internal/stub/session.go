// Package stub implements the command dispatcher, register/memory/
// breakpoint/query handlers, and the stop/resume controller described
// in the specification: the part of a GDB remote-serial stub that is
// architecture-parameterised and capability-agnostic. It depends on
// package registers for the per-architecture register map, package rsp
// for wire encoding, and package delegate for the capability operations
// it drives but does not implement.
//
// The command dispatch and handler set are a direct generalisation of
// camkes-tool's gdb.c handle_command/GDB_* functions (the macro-
// parameterised, multi-architecture copy, per the specification's
// directive to treat that copy as authoritative); the single connection,
// one-request-one-reply control flow follows the emulator teacher's
// gdbHandle loop.
package stub

import (
	"github.com/tiiuae/sel4-gdbstub/internal/delegate"
	"github.com/tiiuae/sel4-gdbstub/internal/registers"
	"github.com/tiiuae/sel4-gdbstub/internal/stublog"
)

// delegateNewContext allocates a zeroed UserContext large enough to
// hold every slot a descriptor's register table can reference. Sizing
// it by NumRegisters*WordBytes is an over-allocation for architectures
// with absent slots (x86, x86-64, arm32) but is always large enough,
// and keeps this call site free of a separate "kernel word count" field
// the descriptor has no other use for.
func delegateNewContext(d *registers.Descriptor) delegate.UserContext {
	return delegate.NewUserContext(d.NumRegisters, d.WordBytes)
}

// ThreadID is the RSP thread identifier the stub always reports: only
// one thread is ever debugged at a time.
const ThreadID = "01"

// SignalTrap is the POSIX signal number GDB is told every stop reason
// corresponds to (SIGTRAP), regardless of what actually happened.
const SignalTrap = "05"

// MaxMemRange caps the length argument accepted by m/M/X: a length of
// MaxMemRange or more is rejected with E01, so the largest 'm' reply is
// 0xff bytes, i.e. 510 hex characters.
const MaxMemRange = 0x100

// StopKind distinguishes why the target last stopped.
type StopKind int

const (
	StopNone StopKind = iota
	StopSoftwareBreak
	StopHardwareBreak
	StopStep
	StopWatch
)

// StopReason is the tagged variant from the data model: Kind plus the
// one piece of auxiliary data a Watch stop carries.
type StopReason struct {
	Kind      StopKind
	WatchAddr uint64
}

// Session is the single mutable instance of stub state, owned by the
// stub's request-processing goroutine. StopReason is set by NotifyFault
// (see controller.go) from the stop event the fault interceptor hands
// over; in transport.Serve that hand-over is a channel receive, which
// is the happens-before edge - there is no lock.
type Session struct {
	Arch     registers.Arch
	Desc     *registers.Descriptor
	Delegate delegate.Delegate
	Log      stublog.Logger

	CurrentThreadTCB delegate.TCB
	CurrentPC        uint64
	StepMode         bool
	StopReason       StopReason

	// WakeTarget releases the fault handler blocking the target thread,
	// permitting it to run again. It must be called exactly once for
	// every c/s/vCont resume request the dispatcher handles, delegate
	// failure or not.
	WakeTarget func()
}

// New builds a Session for the given architecture and delegate. wake is
// the callback invoked to release the target's fault handler; log may
// be stublog.Nop() in tests.
func New(arch registers.Arch, d delegate.Delegate, tcb delegate.TCB, wake func(), log stublog.Logger) *Session {
	return &Session{
		Arch:             arch,
		Desc:             registers.For(arch),
		Delegate:         d,
		Log:              log,
		CurrentThreadTCB: tcb,
		WakeTarget:       wake,
	}
}
