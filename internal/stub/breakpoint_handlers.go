package stub

import (
	"bytes"

	"github.com/tiiuae/sel4-gdbstub/internal/delegate"
	"github.com/tiiuae/sel4-gdbstub/internal/rsp"
)

// rspBreakpointKind is the RSP-level <type> field of a z/Z packet.
type rspBreakpointKind int

const (
	rspSoftwareBreak rspBreakpointKind = iota
	rspHardwareBreak
	rspWriteWatch
	rspReadWatch
	rspAccessWatch
)

// breakpointFormat maps an RSP breakpoint kind onto the kernel-level
// (type, access) pair the delegate understands, per §4.5. Software
// breakpoints have no kernel representation here (the target doesn't
// synthesise trap instructions) and are reported as "unsupported" by
// the caller.
// Ground truth: get_breakpoint_format.
func breakpointFormat(kind rspBreakpointKind) (typ delegate.BreakType, access delegate.AccessMode, supported bool) {
	switch kind {
	case rspHardwareBreak:
		return delegate.Instruction, delegate.ReadAccess, true
	case rspWriteWatch:
		return delegate.Data, delegate.WriteAccess, true
	case rspReadWatch:
		return delegate.Data, delegate.ReadAccess, true
	case rspAccessWatch:
		return delegate.Data, delegate.ReadWriteAccess, true
	default:
		return 0, 0, false
	}
}

// handleBreakpoint implements both 'z' (remove) and 'Z' (insert):
// "<type>,<addr>,<size>". A software-breakpoint request is met with the
// empty reply so the host falls back to its own memory-patch
// breakpoints; hardware breakpoints always use size 0.
// Ground truth: GDB_breakpoint.
func (s *Session) handleBreakpoint(payload []byte, insert bool) (reply []byte, send bool) {
	fields := bytes.SplitN(payload[1:], []byte(","), 3)
	if len(fields) != 3 {
		return []byte("E01"), true
	}
	typeVal, err1 := rsp.ParseHex(string(fields[0]))
	addr, err2 := rsp.ParseHex(string(fields[1]))
	size, err3 := rsp.ParseHex(string(fields[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return []byte("E01"), true
	}

	kind := rspBreakpointKind(typeVal)
	if kind == rspSoftwareBreak {
		return nil, true // empty reply: host falls back to a memory-patch breakpoint
	}

	brkType, access, ok := breakpointFormat(kind)
	if !ok {
		s.Log.Warnf("gdb: unknown breakpoint type %d", typeVal)
		return []byte("E01"), true
	}
	if kind == rspHardwareBreak {
		size = 0
	}

	var err error
	if insert {
		err = s.Delegate.InsertBreak(s.CurrentThreadTCB, brkType, addr, size, access)
	} else {
		err = s.Delegate.RemoveBreak(s.CurrentThreadTCB, brkType, addr, size, access)
	}
	if err != nil {
		s.Log.Errorf("gdb: breakpoint request failed: %v", err)
		return []byte("E01"), true
	}
	return []byte("OK"), true
}
