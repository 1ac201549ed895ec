package rsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	v, err := ParseHex("1a2b")
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1a2b), v)

	_, err = ParseHex("")
	assert.Error(t, err)

	_, err = ParseHex("zz")
	assert.Error(t, err)
}

func TestParseDec(t *testing.T) {
	v, err := ParseDec("256")
	require.NoError(t, err)
	assert.Equal(t, uint64(256), v)

	_, err = ParseDec("")
	assert.Error(t, err)
}

func TestEncodeHexWordWidth(t *testing.T) {
	assert.Equal(t, "000000ab", EncodeHexWord(0xab, 4))
	assert.Equal(t, "00000000000000ab", EncodeHexWord(0xab, 8))
}

func TestHexBytesRoundTrip(t *testing.T) {
	data := []byte{0x00, 0x12, 0xff, 0x7f, 0x80}
	enc := EncodeHexBytes(data)
	dec, err := DecodeHexBytes(enc, len(data))
	require.NoError(t, err)
	assert.Equal(t, data, dec)
}

func TestDecodeHexBytesTooShort(t *testing.T) {
	_, err := DecodeHexBytes("ab", 2)
	assert.Error(t, err)
}

func TestSwapWireWordIsSelfInverse(t *testing.T) {
	values := []uint64{0, 1, 0x1122334455667788, 0xdeadbeef}
	for _, v := range values {
		for _, width := range []int{4, 8} {
			masked := v
			if width < 8 {
				masked &= (1 << (width * 8)) - 1
			}
			swapped := SwapWireWord(masked, width)
			back := SwapWireWord(swapped, width)
			assert.Equal(t, masked, back, "width=%d value=%x", width, v)
		}
	}
}

func TestSwapWireWordByteOrder(t *testing.T) {
	// 0x11223344 swapped over 4 bytes should read back as 0x44332211.
	assert.Equal(t, uint64(0x44332211), SwapWireWord(0x11223344, 4))
}
