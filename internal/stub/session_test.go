package stub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiiuae/sel4-gdbstub/internal/delegate"
	"github.com/tiiuae/sel4-gdbstub/internal/registers"
	"github.com/tiiuae/sel4-gdbstub/internal/rsp"
	"github.com/tiiuae/sel4-gdbstub/internal/stublog"
)

const testTCB delegate.TCB = 7

// Bare arch aliases so test call sites don't need the registers.
// prefix at every newTestSession call.
const (
	X86   = registers.X86
	X8664 = registers.X8664
	ARM32 = registers.ARM32
	ARM64 = registers.ARM64
)

var allArchs = []registers.Arch{X86, X8664, ARM32, ARM64}

func newTestSession(t *testing.T, arch registers.Arch) (*Session, *delegate.Loopback, *int) {
	t.Helper()
	wakes := 0
	d := delegate.NewLoopback(arch)
	s := New(arch, d, testTCB, func() { wakes++ }, stublog.Nop())
	return s, d, &wakes
}

func TestWriteThenReadAllRegistersIdempotent(t *testing.T) {
	for _, arch := range allArchs {
		s, _, _ := newTestSession(t, arch)
		width := s.Desc.WordBytes

		// Build a 'G' payload: one fixed-width hex word per GDB register,
		// each register's value equal to its own index plus one, swapped onto the
		// wire exactly as handleReadAll will swap it back off.
		data := make([]byte, 0, s.Desc.NumRegisters*width*2)
		for i := 0; i < s.Desc.NumRegisters; i++ {
			v := uint64(i + 1)
			if s.Desc.SwapWireBytes {
				v = rsp.SwapWireWord(v, width)
			}
			data = append(data, []byte(rsp.EncodeHexWord(v, width))...)
		}
		writePayload := append([]byte("G"), data...)

		reply, send := s.Handle(writePayload)
		require.True(t, send)
		assert.Equal(t, "OK", string(reply))

		reply, send = s.Handle([]byte("g"))
		require.True(t, send)

		for i := 0; i < s.Desc.NumRegisters; i++ {
			chunk := reply[i*width*2 : i*width*2+width*2]
			if s.Desc.ToSlot(i) == registers.Absent {
				for _, c := range chunk {
					assert.Equal(t, byte('x'), c, "%s register %d should be placeholder", arch, i)
				}
				continue
			}
			got, err := rsp.ParseHex(string(chunk))
			require.NoError(t, err)
			if s.Desc.SwapWireBytes {
				got = rsp.SwapWireWord(got, width)
			}
			assert.Equal(t, uint64(i+1), got, "%s register %d round-trip", arch, i)
		}
	}
}

func TestWriteThenReadMemoryIdempotent(t *testing.T) {
	s, _, _ := newTestSession(t, X8664)
	const addrHex = "1000"
	data := []byte{0x01, 0x02, 0x03, 0x04}
	hexData := rsp.EncodeHexBytes(data)

	writePayload := []byte("M" + addrHex + ",4:" + hexData)
	reply, send := s.Handle(writePayload)
	require.True(t, send)
	assert.Equal(t, "OK", string(reply))

	readPayload := []byte("m" + addrHex + ",4")
	reply, send = s.Handle(readPayload)
	require.True(t, send)
	assert.Equal(t, hexData, string(reply))
}

func TestReadMemoryRejectsZeroAddress(t *testing.T) {
	s, _, _ := newTestSession(t, ARM64)
	reply, send := s.Handle([]byte("m0,4"))
	require.True(t, send)
	assert.Equal(t, "E01", string(reply))
}

func TestStopReplyTableIsDeterministic(t *testing.T) {
	cases := []struct {
		reason StopReason
		want   string
	}{
		{StopReason{Kind: StopSoftwareBreak}, "T05thread:01;swbreak:;"},
		{StopReason{Kind: StopHardwareBreak}, "T05thread:01;hwbreak:;"},
		{StopReason{Kind: StopStep}, "T05thread:01;"},
		{StopReason{Kind: StopWatch, WatchAddr: 0x2000}, "T05thread:01;watch:00002000;"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, stopReplyString(c.reason))
	}
}

func TestResumeAlwaysWakesTargetEvenOnDelegateFailure(t *testing.T) {
	s, _, wakes := newTestSession(t, ARM32)
	s.Delegate = failingDelegate{Delegate: s.Delegate}
	s.StepMode = true // force handleContinue down the Resume() call path

	reply, send := s.Handle([]byte("c"))
	require.True(t, send)
	assert.Equal(t, "E01", string(reply))
	assert.Equal(t, 1, *wakes)
	assert.False(t, s.StepMode)
}

func TestContinueOnSuccessProducesNoImmediateReply(t *testing.T) {
	s, _, wakes := newTestSession(t, X86)
	reply, send := s.Handle([]byte("c"))
	assert.False(t, send)
	assert.Nil(t, reply)
	assert.Equal(t, 1, *wakes)
}

func TestUnsupportedCommandIsSilent(t *testing.T) {
	s, _, _ := newTestSession(t, X86)
	reply, send := s.Handle([]byte("@bogus"))
	assert.False(t, send)
	assert.Nil(t, reply)
}

// failingDelegate wraps a working Delegate but fails Resume/Step, to
// exercise the "wake target exactly once regardless of delegate
// success" discipline without needing a from-scratch fake for every
// other method.
type failingDelegate struct {
	delegate.Delegate
}

func (failingDelegate) Resume(tcb delegate.TCB) error { return assertError }
func (failingDelegate) Step(tcb delegate.TCB) error   { return assertError }

var assertError = errTest{}

type errTest struct{}

func (errTest) Error() string { return "delegate: forced test failure" }
