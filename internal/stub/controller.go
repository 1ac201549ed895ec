package stub

import "fmt"

// stopReplyString renders the canonical T05 reply for a stop reason,
// the table from §4.4. Ground truth: gdb.c's gdb_handle_fault and
// GDB_stop_reason switch on the same stop_reason_t and produce the same
// five strings; this is their shared core, since the two call sites
// differ only in logging, not in wire output.
func stopReplyString(r StopReason) string {
	switch r.Kind {
	case StopHardwareBreak:
		return "T" + SignalTrap + "thread:" + ThreadID + ";hwbreak:;"
	case StopSoftwareBreak:
		return "T" + SignalTrap + "thread:" + ThreadID + ";swbreak:;"
	case StopStep:
		return "T" + SignalTrap + "thread:" + ThreadID + ";"
	case StopWatch:
		return fmt.Sprintf("T%sthread:%s;watch:%08x;", SignalTrap, ThreadID, r.WatchAddr)
	case StopNone:
		fallthrough
	default:
		return "T" + SignalTrap + "thread:" + ThreadID + ";"
	}
}

// handleStopReason implements '?': report the last stop reason without
// touching it.
func (s *Session) handleStopReason() []byte {
	return []byte(stopReplyString(s.StopReason))
}

// NotifyFault is the stop/resume controller's entry point for a stop
// event reported from outside the request/reply loop: it records reason
// as the session's StopReason, refreshes CurrentPC, and returns the stop
// reply the transport should send on the wire. transport.Serve calls it
// after receiving the event from the fault interceptor's channel. This
// corresponds to gdb_handle_fault in the original, which is invoked
// from the fault path rather than from handle_command.
func (s *Session) NotifyFault(reason StopReason) []byte {
	s.StopReason = reason
	if reason.Kind == StopNone {
		s.Log.Warnf("gdb: unknown stop reason, target fault handling may be incomplete")
	} else {
		s.Log.Debugf("gdb: stop reason %v", reason.Kind)
	}
	s.CurrentPC = s.readPC()
	return []byte(stopReplyString(reason))
}

// readPC re-reads the PC register from the delegate so CurrentPC stays
// accurate across faults, per the data model invariant that CurrentPC
// is updated "after a fault is observed". A delegate error here is not
// surfaced to GDB (there is no request to reply to); it is logged and
// CurrentPC is left unchanged.
func (s *Session) readPC() uint64 {
	slot := s.Desc.ToSlot(s.Desc.PCIndex)
	v, err := s.Delegate.ReadRegister(s.CurrentThreadTCB, int(slot))
	if err != nil {
		s.Log.Errorf("gdb: failed to read PC after fault: %v", err)
		return s.CurrentPC
	}
	return v
}
