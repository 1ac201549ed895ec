package stub

// handleContinue implements 'c' and the vCont 'c' action (§4.4, §4.8).
// If the thread was in step mode and the fault that brought us here
// wasn't itself a step fault, an ordinary "run" must be re-armed via
// the delegate; otherwise the stop was already an in-place halt and the
// reply alone (once one is produced by the next NotifyFault) is enough
// to let the target go. step_mode is always cleared and WakeTarget is
// always called, delegate failure or not - the target must never be
// left hanging on a held fault handler.
//
// On success there is nothing to send now: ground truth GDB_continue
// only calls send_message on delegate failure, never on success; the
// actual stop reply is produced later by NotifyFault when the next
// fault arrives.
func (s *Session) handleContinue() (reply []byte, send bool) {
	var err error
	if s.StepMode && s.StopReason.Kind != StopStep {
		err = s.Delegate.Resume(s.CurrentThreadTCB)
	}
	s.StepMode = false
	s.WakeTarget()
	if err != nil {
		s.Log.Errorf("gdb: delegate resume failed: %v", err)
		return []byte("E01"), true
	}
	return nil, false
}

// handleStep implements 's' and the vCont 's' action (§4.4, §4.8),
// symmetric to handleContinue: arms a single-step via the delegate only
// when none is already armed and the stop wasn't itself a step fault,
// always sets step_mode, always wakes the target.
func (s *Session) handleStep() (reply []byte, send bool) {
	var err error
	if !s.StepMode && s.StopReason.Kind != StopStep {
		err = s.Delegate.Step(s.CurrentThreadTCB)
	}
	s.StepMode = true
	s.WakeTarget()
	if err != nil {
		s.Log.Errorf("gdb: delegate step failed: %v", err)
		return []byte("E01"), true
	}
	return nil, false
}
