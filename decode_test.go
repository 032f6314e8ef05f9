package zlutf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeAllUTF8 feeds input through decodeUTF8 the way Transcoder.Feed
// does — repeated bounded calls until the buffer is exhausted — and
// returns every non-NoChar CPV produced, in order.
func decodeAllUTF8(es *EncodeState, input []byte) []CPV {
	var out []CPV
	remaining := input
	for len(remaining) > 0 {
		cp, n := decodeUTF8(es, remaining)
		remaining = remaining[n:]
		if cp == NoChar {
			continue
		}
		out = append(out, cp)
	}
	return out
}

// TestDecodeUTF8Diverse exercises spec scenario S1: a single UTF-8 input
// containing a BOM, a multi-byte run, a non-BMP character, two reserved
// single-byte forms, an overlong two-byte form, an orphan continuation
// byte, a continuation run broken by a non-continuation byte, a decoded
// NUL, a six-byte extended form, and a sequence truncated at EOF.
func TestDecodeUTF8Diverse(t *testing.T) {
	input := []byte{
		0xEF, 0xBB, 0xBF, // U+FEFF
		0x55,             // U+0055
		0xCE, 0x94,       // U+0394
		0xE4, 0xB8, 0x80, // U+4E00
		0xF0, 0xA0, 0x80, 0x80, // U+20000
		0xFE,             // NON_NORM|U+00FE
		0xFF,             // NON_NORM|U+00FF
		0xC0, 0x81,       // NON_NORM|U+0001 (overlong)
		0x80,             // orphan continuation -> ERROR
		0xE4, 0xB8, 0x00, // truncated: 0x00 is not a continuation -> ERROR, then 0x00 decodes alone
		0xFC, 0xA0, 0x80, 0x80, 0x80, 0x80, // six-byte extended form
		0xFC, // truncated six-byte lead at EOF
	}

	es := NewEncodeState()
	got := decodeAllUTF8(es, input)

	type want struct {
		code    uint32
		nonNorm bool
		isErr   bool
	}
	expected := []want{
		{code: 0xFEFF},
		{code: 0x0055},
		{code: 0x0394},
		{code: 0x4E00},
		{code: 0x20000},
		{code: 0x00FE, nonNorm: true},
		{code: 0x00FF, nonNorm: true},
		{code: 0x0001, nonNorm: true},
		{isErr: true},
		{isErr: true},
		{code: 0x0000},
		{code: 0x20000000}, // FC A0 80 80 80 80 assembled per the six-byte extended form
	}

	require.Len(t, got, len(expected))
	for i, w := range expected {
		if w.isErr {
			assert.Truef(t, got[i].IsError(), "entry %d: want ERROR, got %#x", i, got[i])
			continue
		}
		assert.Equalf(t, w.code, got[i].Code(), "entry %d code", i)
		assert.Equalf(t, w.nonNorm, got[i].NonNorm(), "entry %d nonNorm", i)
	}

	// The final lone FC is still buffered waiting for continuations that
	// never arrive; flush resolves it to a single truncation ERROR.
	assert.True(t, decodeUTF8Flush(es).IsError())
	assert.True(t, decodeUTF8Flush(es).IsNoChar(), "flush is idempotent once carry is empty")
}

// TestDecodeUTF16LESurrogatePairAcrossFragment exercises spec scenario
// S2: a surrogate pair split across two Feed-sized fragments must still
// combine into one code point, with the trailing BMP character decoded
// cleanly afterward. Per SurrogatePairDecode's formula (cpv.go), high
// surrogate 0xD840 (w0&0x3FF == 0x40) combined with low surrogate 0xDC00
// yields 0x10000 + (0x40<<10) + 0 == 0x20000, not the 0x10000 spec.md's
// scenario text claims for these exact byte values.
func TestDecodeUTF16LESurrogatePairAcrossFragment(t *testing.T) {
	es := NewEncodeState()

	cp, n := decodeUTF16(utf16LE, es, []byte{0x40, 0xD8})
	assert.Equal(t, NoChar, cp)
	assert.Equal(t, 2, n)

	cp, n = decodeUTF16(utf16LE, es, []byte{0x00, 0xDC, 0x0A, 0x00})
	assert.False(t, cp.IsError())
	assert.EqualValues(t, 0x20000, cp.Code())
	assert.Equal(t, 2, n)

	cp, n = decodeUTF16(utf16LE, es, []byte{0x0A, 0x00})
	assert.EqualValues(t, 0x000A, cp.Code())
	assert.Equal(t, 2, n)

	assert.True(t, decodeUTF16Flush(es).IsNoChar())
}

// TestDecodeUTF16BELoneHighSurrogate exercises spec scenario S3: a high
// surrogate with no following low surrogate is yielded as-is, and the
// decoder resumes cleanly with the next code unit.
func TestDecodeUTF16BELoneHighSurrogate(t *testing.T) {
	es := NewEncodeState()
	input := []byte{0xD8, 0x40, 0x00, 0x41}

	cp, n := decodeUTF16(utf16BE, es, input)
	assert.False(t, cp.IsError())
	assert.EqualValues(t, 0xD840, cp.Code())
	assert.Equal(t, 4, n, "both code units are consumed from the bounded region even though only the lone high surrogate is yielded")

	cp, n = decodeUTF16(utf16BE, es, input[n:])
	assert.EqualValues(t, 0x0041, cp.Code())
	assert.Equal(t, 0, n, "the second code unit was already retained in carry from the previous call")
}

// TestDecodeUTF32ZNullTerminated exercises spec scenario S6: a
// null-terminated UTF-32LE decode stops at the first NUL code point and
// never consumes what follows it.
func TestDecodeUTF32ZNullTerminated(t *testing.T) {
	input := []byte{
		0x55, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x41, 0x00, 0x00, 0x00,
	}

	cp, n, terminated := decodeUTF32Z(utf32LE, input)
	assert.EqualValues(t, 0x0055, cp.Code())
	assert.Equal(t, 4, n)
	assert.False(t, terminated)

	cp, n, terminated = decodeUTF32Z(utf32LE, input[4:])
	assert.EqualValues(t, 0, cp.Code())
	assert.Equal(t, 4, n)
	assert.True(t, terminated, "NUL code point reached: the trailing 0x41 must never be consumed")
}
