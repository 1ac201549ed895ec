// Package rsp implements the GDB Remote Serial Protocol presentation
// layer: packet framing, checksums, ack/nack, and the scalar and byte
// encodings every command handler needs. It has no notion of GDB
// commands or target state; see package stub for that.
//
// The framing and checksum algorithm are ground truth from the
// camkes-tool gdb.c this stub generalises (compute_checksum,
// handle_gdb's ack/nack branch), cross-checked against the simpler
// bufio-based gdbRecvPacket/gdbSendPacket/gdbPacketChecksum trio in the
// emulator teacher this package's API shape is modelled on.
package rsp

import "fmt"

// BufSize is GETCHAR_BUFSIZ: the fixed size of the inbound packet
// buffer. No packet may exceed this many bytes including the framing.
const BufSize = 512

// Buffer is the fixed-size inbound packet buffer described by the data
// model: a transport fills Data up to Length, recording where the
// checksum delimiter and checksum digits landed, and the codec consumes
// it exactly once per packet. It carries no allocation beyond its
// backing array so it can live as a single long-lived field on a
// session, the way the original's process-wide `buf` global did.
type Buffer struct {
	Data          [BufSize]byte
	Length        uint32
	ChecksumIndex uint32 // position of '#' within Data
	ChecksumCount uint32 // number of checksum digits still to be read (2, 1 or 0)
}

// Reset clears the cursors before the transport starts filling the
// buffer with the next packet. The backing array is not zeroed: Length
// and ChecksumIndex define the valid region, matching the original's
// reuse of a single static buffer across packets.
func (b *Buffer) Reset() {
	b.Length = 0
	b.ChecksumIndex = 0
	b.ChecksumCount = 0
}

// Payload returns the packet's payload bytes (between '$' and '#'),
// assuming Data[0] == '$' and ChecksumIndex marks the '#'.
func (b *Buffer) Payload() []byte {
	return b.Data[1:b.ChecksumIndex]
}

// Checksum returns the two received checksum hex digits following '#'.
func (b *Buffer) Checksum() []byte {
	return b.Data[b.ChecksumIndex+1 : b.ChecksumIndex+3]
}

// ErrOverflow is returned when a frame would not fit in BufSize bytes.
var ErrOverflow = fmt.Errorf("rsp: packet exceeds %d-byte buffer", BufSize)
