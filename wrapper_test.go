package zlutf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeWrappedDestinationTooSmall exercises spec scenario S4: encoding
// U+20000 as UTF-16BE into a 2-byte destination spills the remaining 2
// bytes into carry and reports ERROUT|BUFFER; a subsequent call with a
// 4-byte destination drains exactly those bytes and sets ACCEPT.
func TestEncodeWrappedDestinationTooSmall(t *testing.T) {
	es := NewEncodeState()
	enc := func(es *EncodeState, dst []byte, cp CPV, pr *PutResult) int {
		return encodeUTF16Fast(utf16BE, es, dst, cp, pr)
	}

	dst := make([]byte, 2)
	var pr PutResult
	n := encodeWrapped(enc, es, dst, MakeCPV(0x20000, false), &pr)
	require.Equal(t, 2, n)
	assert.Equal(t, []byte{0xD8, 0x40}, dst)
	assert.True(t, pr.Has(ErrOut))
	assert.True(t, pr.Has(Buffer))
	assert.Equal(t, 2, es.CarryLen())

	dst4 := make([]byte, 4)
	pr = 0
	n = encodeWrapped(enc, es, dst4, NoChar, &pr)
	require.Equal(t, 2, n)
	assert.Equal(t, []byte{0xDC, 0x00}, dst4[:2])
	assert.True(t, pr.Has(Accept))
	assert.Equal(t, 0, es.CarryLen())
}

// TestEncodeWrappedFullDestination checks the common case: a destination
// with full 16-byte headroom encodes directly with no carry spill.
func TestEncodeWrappedFullDestination(t *testing.T) {
	es := NewEncodeState()
	dst := make([]byte, CarryMax)
	var pr PutResult

	n := encodeWrapped(encodeUTF8Fast, es, dst, MakeCPV(0x4E00, false), &pr)
	require.Equal(t, 3, n)
	assert.True(t, pr.Has(Accept))
	assert.Equal(t, 0, es.CarryLen())
}
