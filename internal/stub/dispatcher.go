package stub

import "bytes"

// Handle classifies and executes one RSP command payload (the bytes
// between '$' and '#', already checksum-verified by package rsp) and
// returns the reply payload to frame and send, if any. A false send
// means the command is handled but produces no immediate reply - true
// for continue/step on success, where the actual stop reply is
// produced later by NotifyFault, and for any first byte not in the
// dispatch table below, which the specification says should be logged
// and otherwise ignored.
//
// Ground truth: handle_command's switch on command[0], generalised
// from individual function calls hard-coded per architecture to calls
// against the session's architecture-parameterised register map.
func (s *Session) Handle(payload []byte) (reply []byte, send bool) {
	if len(payload) == 0 {
		return nil, false
	}

	switch payload[0] {
	case '?':
		return s.handleStopReason(), true
	case 'g':
		return s.handleReadAll()
	case 'G':
		return s.handleWriteAll(payload)
	case 'p':
		return s.handleReadOne(payload)
	case 'P':
		return s.handleWriteOne(payload)
	case 'm':
		return s.handleReadMemory(payload)
	case 'M':
		return s.handleWriteMemory(payload)
	case 'X':
		return s.handleWriteMemoryBinary(payload)
	case 'c':
		return s.handleContinue()
	case 's':
		return s.handleStep()
	case 'q':
		return s.handleQuery(payload)
	case 'H':
		return []byte("OK"), true
	case 'z':
		return s.handleBreakpoint(payload, false)
	case 'Z':
		return s.handleBreakpoint(payload, true)
	case 'v':
		return s.handleV(payload)
	default:
		s.Log.Debugf("gdb: unknown command %q", payload)
		return nil, false
	}
}

// handleV dispatches the few multi-byte 'v...' commands the stub
// recognises (§4.3, §4.8). Everything else under 'v' replies empty,
// the universal "unsupported" signal for commands GDB can tolerate not
// having.
func (s *Session) handleV(payload []byte) (reply []byte, send bool) {
	rest := payload[1:]
	switch {
	case bytes.Equal(rest, []byte("Cont?")):
		return []byte("vCont;c;s"), true
	case bytes.HasPrefix(rest, []byte("Cont;")):
		return s.handleVCont(rest[len("Cont;"):])
	case bytes.HasPrefix(rest, []byte("Kill")):
		return nil, true
	case bytes.HasPrefix(rest, []byte("MustReplyEmpty")):
		return nil, true
	default:
		s.Log.Debugf("gdb: unsupported v-command %q", payload)
		return nil, true
	}
}

// handleVCont dispatches a single vCont action. Per-thread targeting
// (";c:01" etc.) is ignored - single-thread stub - only the action
// letter itself is inspected.
// Ground truth: GDB_vcont.
func (s *Session) handleVCont(action []byte) (reply []byte, send bool) {
	if len(action) == 0 {
		return nil, true
	}
	switch action[0] {
	case 'c':
		return s.handleContinue()
	case 's':
		return s.handleStep()
	default:
		return nil, true
	}
}
