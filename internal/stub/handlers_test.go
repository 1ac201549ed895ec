package stub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiiuae/sel4-gdbstub/internal/registers"
)

func TestQuerySupportedAdvertisesBreakSupport(t *testing.T) {
	s, _, _ := newTestSession(t, X8664)
	reply, send := s.Handle([]byte("qSupported:multiprocess+"))
	require.True(t, send)
	assert.Contains(t, string(reply), "swbreak+")
	assert.Contains(t, string(reply), "hwbreak+")
}

func TestQXferFeaturesServesTargetXML(t *testing.T) {
	s, _, _ := newTestSession(t, ARM64)
	reply, send := s.Handle([]byte("qXfer:features:read:target.xml:0,1000"))
	require.True(t, send)
	require.True(t, len(reply) > 0)
	assert.Equal(t, byte('l'), reply[0])
	assert.Contains(t, string(reply), "org.gnu.gdb.aarch64.core")
}

func TestQXferMemoryMapIsNotServed(t *testing.T) {
	s, _, _ := newTestSession(t, X8664)
	reply, send := s.Handle([]byte("qXfer:memory-map:read::0,1000"))
	assert.True(t, send)
	assert.Nil(t, reply)
}

func TestSoftwareBreakpointFallsBackToEmptyReply(t *testing.T) {
	s, _, _ := newTestSession(t, ARM32)
	reply, send := s.Handle([]byte("Z0,1000,4"))
	assert.True(t, send)
	assert.Nil(t, reply)
}

func TestHardwareBreakpointInsertAndRemove(t *testing.T) {
	s, _, _ := newTestSession(t, ARM32)
	reply, send := s.Handle([]byte("Z1,1000,4"))
	require.True(t, send)
	assert.Equal(t, "OK", string(reply))

	reply, send = s.Handle([]byte("z1,1000,4"))
	require.True(t, send)
	assert.Equal(t, "OK", string(reply))
}

func TestUnknownBreakpointKindIsError(t *testing.T) {
	s, _, _ := newTestSession(t, ARM32)
	reply, send := s.Handle([]byte("Z9,1000,4"))
	require.True(t, send)
	assert.Equal(t, "E01", string(reply))
}

func TestReadAbsentRegisterIsError(t *testing.T) {
	s, _, _ := newTestSession(t, X86)
	// On x86, cs (GDB index 10) has no kernel user-context slot.
	require.Equal(t, registers.Absent, s.Desc.ToSlot(10))
	reply, send := s.Handle([]byte("pa"))
	require.True(t, send)
	assert.Equal(t, "E00", string(reply))
}

func TestWriteOneOutOfRangeIndexIsTolerated(t *testing.T) {
	s, _, _ := newTestSession(t, X86)
	reply, send := s.Handle([]byte("P99=1"))
	require.True(t, send)
	assert.Equal(t, "OK", string(reply))
}

func TestHandleStopReasonReflectsLastFault(t *testing.T) {
	s, _, _ := newTestSession(t, X8664)
	out := s.NotifyFault(StopReason{Kind: StopSoftwareBreak})
	assert.Equal(t, "T05thread:01;swbreak:;", string(out))

	reply, send := s.Handle([]byte("?"))
	require.True(t, send)
	assert.Equal(t, "T05thread:01;swbreak:;", string(reply))
}

func TestStepThenContinueResumeDiscipline(t *testing.T) {
	s, _, wakes := newTestSession(t, ARM64)

	_, send := s.Handle([]byte("s"))
	assert.False(t, send)
	assert.True(t, s.StepMode)
	assert.Equal(t, 1, *wakes)

	s.NotifyFault(StopReason{Kind: StopStep})

	_, send = s.Handle([]byte("c"))
	assert.False(t, send)
	assert.False(t, s.StepMode)
	assert.Equal(t, 2, *wakes)
}
