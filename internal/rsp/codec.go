package rsp

import "fmt"

// Ack and Nack are the single-byte frame-level acknowledgements: '+'
// confirms a checksum matched, '-' asks the host to retransmit.
const (
	Ack  = '+'
	Nack = '-'
)

// Checksum computes the RSP checksum of a payload: the unsigned 8-bit
// sum of its bytes, modulo 256. Ground truth: compute_checksum in
// gdb.c, which this is a direct generalisation of (any byte slice
// instead of a C char* + length pair).
func Checksum(payload []byte) uint8 {
	var sum uint8
	for _, c := range payload {
		sum += c
	}
	return sum
}

// ChecksumHex renders a checksum as the two uppercase hex digits gdb.c
// emits via "%02X" in send_message.
func ChecksumHex(payload []byte) string {
	return fmt.Sprintf("%02X", Checksum(payload))
}

// VerifyChecksum reports whether buf's received checksum digits match
// the checksum computed over its payload. It does not distinguish a
// malformed checksum field from a mismatched one: both cases are a
// frame error per the spec's error taxonomy and both get a Nack.
func VerifyChecksum(buf *Buffer) bool {
	want, err := ParseHex(string(buf.Checksum()))
	if err != nil {
		return false
	}
	return uint8(want) == Checksum(buf.Payload())
}

// Decode validates buf's checksum and, on success, returns its payload.
// The returned slice aliases buf.Data and is only valid until the next
// Reset.
func Decode(buf *Buffer) (payload []byte, ok bool) {
	if !VerifyChecksum(buf) {
		return nil, false
	}
	return buf.Payload(), true
}

// Encode wraps a reply payload as "$<payload>#<hh>\n", the outbound
// frame format from send_message/gdbSendPacket. A zero-length payload
// is legal and means "unsupported".
func Encode(payload []byte) []byte {
	out := make([]byte, 0, len(payload)+6)
	out = append(out, '$')
	out = append(out, payload...)
	out = append(out, '#')
	out = append(out, ChecksumHex(payload)...)
	out = append(out, '\n')
	return out
}

// EncodeString is Encode for a string payload, the common case for
// every handler that doesn't deal in raw binary.
func EncodeString(payload string) []byte {
	return Encode([]byte(payload))
}
