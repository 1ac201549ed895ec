package transport

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiiuae/sel4-gdbstub/internal/delegate"
	"github.com/tiiuae/sel4-gdbstub/internal/registers"
	"github.com/tiiuae/sel4-gdbstub/internal/rsp"
	"github.com/tiiuae/sel4-gdbstub/internal/stub"
	"github.com/tiiuae/sel4-gdbstub/internal/stublog"
)

func TestReadFrameParsesPayloadAndChecksum(t *testing.T) {
	packet := rsp.Encode([]byte("qSupported"))
	// Prefix with stray noise, as a host's own acks sometimes are.
	r := bufio.NewReader(bytes.NewReader(append([]byte("+-"), packet...)))

	var buf rsp.Buffer
	require.NoError(t, ReadFrame(r, &buf))

	payload, ok := rsp.Decode(&buf)
	require.True(t, ok)
	assert.Equal(t, "qSupported", string(payload))
}

// fakeConn is an in-memory io.ReadWriter splicing a pre-built inbound
// stream to a captured outbound buffer, standing in for a real
// net.Conn/serial line in Serve's unit test.
type fakeConn struct {
	in  *bytes.Reader
	out bytes.Buffer
}

func (c *fakeConn) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *fakeConn) Write(p []byte) (int, error) { return c.out.Write(p) }

func TestServeRoundTripsSimpleCommand(t *testing.T) {
	conn := &fakeConn{in: bytes.NewReader(rsp.Encode([]byte("g")))}
	d := delegate.NewLoopback(registers.X8664)
	session := stub.New(registers.X8664, d, 1, func() {}, stublog.Nop())
	faults := make(chan stub.StopReason)

	err := Serve(conn, session, faults, stublog.Nop())
	require.NoError(t, err) // io.EOF after the single command is swallowed

	out := conn.out.Bytes()
	require.True(t, len(out) > 0)
	assert.Equal(t, byte(rsp.Ack), out[0])
	assert.Contains(t, string(out), "$")
}
