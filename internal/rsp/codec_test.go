package rsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		[]byte("OK"),
		[]byte("qSupported:PacketSize=100"),
		[]byte{0x00, 0xff, 0x80, 0x7f},
	}
	for _, payload := range cases {
		encoded := Encode(payload)
		require.True(t, len(encoded) >= len(payload)+4)
		require.Equal(t, byte('$'), encoded[0])

		var buf Buffer
		buf.Reset()
		copy(buf.Data[:], encoded)
		buf.Length = uint32(len(encoded))
		buf.ChecksumIndex = uint32(1 + len(payload))

		decoded, ok := Decode(&buf)
		require.True(t, ok)
		assert.Equal(t, payload, decoded)
	}
}

func TestVerifyChecksumRejectsMismatch(t *testing.T) {
	var buf Buffer
	buf.Reset()
	encoded := Encode([]byte("OK"))
	copy(buf.Data[:], encoded)
	buf.ChecksumIndex = uint32(1 + len("OK"))
	// Corrupt the checksum's second hex digit.
	buf.Data[buf.ChecksumIndex+2] ^= 0x01

	assert.False(t, VerifyChecksum(&buf))
	_, ok := Decode(&buf)
	assert.False(t, ok)
}

func TestVerifyChecksumRejectsMalformedHex(t *testing.T) {
	var buf Buffer
	buf.Reset()
	encoded := Encode([]byte("OK"))
	copy(buf.Data[:], encoded)
	buf.ChecksumIndex = uint32(1 + len("OK"))
	buf.Data[buf.ChecksumIndex+1] = 'z' // not a hex digit

	assert.False(t, VerifyChecksum(&buf))
}

func TestChecksumHexIsUppercase(t *testing.T) {
	assert.Equal(t, "00", ChecksumHex(nil))
	assert.Regexp(t, "^[0-9A-F]{2}$", ChecksumHex([]byte("anything at all")))
}
