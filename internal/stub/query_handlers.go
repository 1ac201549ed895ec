package stub

import (
	"bytes"

	"github.com/tiiuae/sel4-gdbstub/internal/registers"
)

// handleQuery implements the 'q' command family (§4.9).
// Ground truth: GDB_query, extended with the qXfer annex support the
// emulator teacher's gdbHandle exercises (supplemented from
// original_source per SPEC_FULL.md §4.10: the classic gdb.c predates
// GDB's XML target-description extension).
func (s *Session) handleQuery(payload []byte) (reply []byte, send bool) {
	rest := payload[1:]

	if bytes.HasPrefix(rest, []byte("Xfer:")) {
		return s.handleQXfer(rest[len("Xfer:"):])
	}

	token := string(rest)
	if idx := bytes.IndexByte(rest, ':'); idx >= 0 {
		token = string(rest[:idx])
	}

	switch token {
	case "Supported":
		return []byte("swbreak+;hwbreak+;PacketSize=100"), true
	case "TStatus", "TfV", "Attached", "Symbol", "Offsets":
		return nil, true
	case "C":
		return []byte("QC1"), true
	case "fThreadInfo":
		return []byte("m" + ThreadID), true
	case "sThreadInfo":
		return []byte("l"), true
	default:
		s.Log.Debugf("gdb: unrecognised query %q", token)
		return []byte("E01"), true
	}
}

// handleQXfer implements qXfer:<object>:read:<annex>:<offset>,<length>.
// The offset and length fields are not interpreted: the whole annex is
// returned in a single 'l' reply.
// Only the features annex (this architecture's target.xml) is served;
// qXfer:memory-map is not applicable to a thread in a capability
// address space and is intentionally not implemented (see DESIGN.md
// qxfer-memory-map-dropped).
func (s *Session) handleQXfer(rest []byte) (reply []byte, send bool) {
	parts := bytes.Split(rest, []byte(":"))
	if len(parts) != 4 {
		return nil, true
	}
	object, mode, annex := string(parts[0]), string(parts[1]), string(parts[2])
	if mode != "read" {
		return nil, true
	}
	if object != "features" || annex != "target.xml" {
		return nil, true
	}
	return []byte("l" + registers.TargetXML(s.Arch)), true
}
