package zlutf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeUTF16FastSupplementaryPlane checks the fast encoder writes a
// surrogate pair for a non-BMP code point.
func TestEncodeUTF16FastSupplementaryPlane(t *testing.T) {
	es := NewEncodeState()
	dst := make([]byte, CarryMax)
	var pr PutResult

	n := encodeUTF16Fast(utf16BE, es, dst, MakeCPV(0x20000, false), &pr)
	require.Equal(t, 4, n)
	assert.Equal(t, []byte{0xD8, 0x40, 0xDC, 0x00}, dst[:4])
	assert.True(t, pr.Has(Accept))
}

// TestEncodeUTF16FastFallback exercises spec scenario S5: an out-of-range
// code point with ALLOW_FALLBACK set substitutes the default character
// and reports FALLBACK without ERRCODE.
func TestEncodeUTF16FastFallback(t *testing.T) {
	es := NewEncodeState()
	dst := make([]byte, CarryMax)
	pr := AllowFallback

	n := encodeUTF16Fast(utf16LE, es, dst, MakeCPV(0x110000, false), &pr)
	require.Equal(t, 2, n)
	assert.Equal(t, []byte{0x3F, 0x00}, dst[:2])
	assert.True(t, pr.Has(Fallback))
	assert.False(t, pr.Has(ErrCode))
}

// TestEncodeUTF16FastUnencodableWithoutFallback checks that without
// ALLOW_FALLBACK, an out-of-range code point reports ERRCODE and writes
// nothing.
func TestEncodeUTF16FastUnencodableWithoutFallback(t *testing.T) {
	es := NewEncodeState()
	dst := make([]byte, CarryMax)
	var pr PutResult

	n := encodeUTF16Fast(utf16LE, es, dst, MakeCPV(0x110000, false), &pr)
	assert.Equal(t, 0, n)
	assert.True(t, pr.Has(ErrCode))
	assert.False(t, pr.Has(Accept))
}

// TestEncodeUTF8FastNonNorm checks the two NonNorm encode paths: the
// overlong 2-byte form for a 7-bit value, and the single reserved byte
// 0xFE/0xFF form.
func TestEncodeUTF8FastNonNorm(t *testing.T) {
	es := NewEncodeState()
	dst := make([]byte, CarryMax)
	var pr PutResult

	n := encodeUTF8Fast(es, dst, MakeCPV(0x41, true), &pr)
	require.Equal(t, 2, n)
	assert.Equal(t, []byte{0xC1, 0x81}, dst[:2])
	assert.True(t, pr.Has(NonNormFlag))

	pr = 0
	n = encodeUTF8Fast(es, dst, MakeCPV(0xFE, true), &pr)
	require.Equal(t, 1, n)
	assert.Equal(t, byte(0xFE), dst[0])
	assert.True(t, pr.Has(NonNormFlag))
}
