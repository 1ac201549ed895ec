package transport

import (
	"bufio"
	"errors"
	"io"

	"github.com/tiiuae/sel4-gdbstub/internal/rsp"
	"github.com/tiiuae/sel4-gdbstub/internal/stub"
	"github.com/tiiuae/sel4-gdbstub/internal/stublog"
)

// Serve runs the single-connection, one-request-one-reply loop over
// rw: read a frame, ack or nack its checksum, dispatch an acked
// command, and write back whatever reply it produces. It returns when
// rw reports an error (typically io.EOF on disconnect); per §5 there is
// no timeout or cancellation, matching the original's "host
// disconnection is not detected" resource model - the loop simply blocks
// on the next read forever until the connection itself errors out.
//
// faults delivers stop events from outside this loop (the fault
// interceptor - external per §1): after a 'c'/'s'/'vCont' request that
// produced no immediate reply, Serve blocks on faults for the event
// that lets it build and send the deferred stop reply, mirroring the
// teacher's select over packetChan/runChan in its 'c' case.
//
// Ground truth: gdbHandle's for-range-over-packetChan loop, generalised
// from a hard-coded if/else command chain to session.Handle.
func Serve(rw io.ReadWriter, session *stub.Session, faults <-chan stub.StopReason, log stublog.Logger) error {
	br := bufio.NewReader(rw)
	bw := bufio.NewWriter(rw)
	var buf rsp.Buffer

	for {
		if err := ReadFrame(br, &buf); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		payload, ok := rsp.Decode(&buf)
		if !ok {
			log.Warnf("gdb: checksum mismatch, sending nack")
			if err := writeByteFlush(bw, rsp.Nack); err != nil {
				return err
			}
			continue
		}
		if err := writeByteFlush(bw, rsp.Ack); err != nil {
			return err
		}

		reply, send := session.Handle(payload)
		if send {
			if err := writeFrame(bw, reply); err != nil {
				return err
			}
			continue
		}
		// Only c/s/vCont defer their reply; any other command that
		// produced no reply is unsupported and simply ignored.
		if len(payload) == 0 || (payload[0] != 'c' && payload[0] != 's' && payload[0] != 'v') {
			continue
		}

		// Resume/step is in flight: the stop reply is deferred until
		// the fault interceptor reports the next stop.
		reason, ok := <-faults
		if !ok {
			return nil
		}
		out := session.NotifyFault(reason)
		if err := writeFrame(bw, out); err != nil {
			return err
		}
	}
}

func writeByteFlush(bw *bufio.Writer, b byte) error {
	if err := bw.WriteByte(b); err != nil {
		return err
	}
	return bw.Flush()
}

func writeFrame(bw *bufio.Writer, payload []byte) error {
	if _, err := bw.Write(rsp.Encode(payload)); err != nil {
		return err
	}
	return bw.Flush()
}
