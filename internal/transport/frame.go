// Package transport provides the byte-level collaborators the core
// stub is driven over: a TCP listener for development and testing
// (directly descended from the emulator teacher's gdbServer/gdbHandle),
// and a real serial line for the production target. Framing a raw byte
// stream into an rsp.Buffer, and serving a connection against a
// stub.Session, both live here rather than in package rsp/stub since
// the specification treats the transport itself as an external
// collaborator (§1, §6): the core only ever sees an already-framed
// payload.
package transport

import (
	"bufio"

	"github.com/tiiuae/sel4-gdbstub/internal/rsp"
)

// ReadFrame scans r for the next "$<payload>#<hh>" packet and fills buf
// with its cursors, following the framing gdbRecvPacket uses (scan for
// '$', read to '#', then the two checksum digits) but writing into the
// fixed-size, cursor-tracked buffer the data model specifies instead of
// building a Go string.
func ReadFrame(r *bufio.Reader, buf *rsp.Buffer) error {
	buf.Reset()

	for {
		c, err := r.ReadByte()
		if err != nil {
			return err
		}
		if c == '$' {
			break
		}
		// Bytes outside a frame (stray acks, line noise) are discarded,
		// matching gdbRecvPacket's scan loop.
	}

	buf.Data[0] = '$'
	length := uint32(1)
	for {
		if length >= rsp.BufSize-3 {
			return rsp.ErrOverflow
		}
		c, err := r.ReadByte()
		if err != nil {
			return err
		}
		buf.Data[length] = c
		length++
		if c == '#' {
			buf.ChecksumIndex = length - 1
			break
		}
	}

	for i := 0; i < 2; i++ {
		c, err := r.ReadByte()
		if err != nil {
			return err
		}
		buf.Data[length] = c
		length++
	}
	buf.Length = length
	buf.ChecksumCount = 0 // both checksum digits have now been consumed

	return nil
}
