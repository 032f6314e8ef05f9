package zlutf

// CarryMax is the fixed carry buffer size shared by every EncodeState:
// 16 bytes, enough for one UTF-8/UTF-16/UTF-32/narrow code-unit cluster.
const CarryMax = 16

// EncodeState is the per-direction codec state that persists a partial
// character across calls. A decoder buffers unconsumed input bytes into
// carry; an encoder spills output bytes that did not fit the destination.
// The narrow codec additionally threads its host conversion state through
// mbstate; UTF decoders and encoders use carry only.
//
// The caller owns an EncodeState; a codec call borrows it mutably for the
// call's duration. Two distinct EncodeState values are required to
// transcode — one for the decoder, one for the encoder — because sharing
// one across two logical streams (or two goroutines) is undefined.
type EncodeState struct {
	carryLen int
	carry    [CarryMax]byte

	mbstate narrowMBState
}

// NewEncodeState returns a zero-initialized EncodeState. The zero value is
// already valid (spec requires only that storage is zero-filled), so this
// constructor exists for readability at call sites, not correctness.
func NewEncodeState() *EncodeState {
	return &EncodeState{}
}

// Reset clears all buffered state, discarding any partial character or
// spilled output bytes without draining them. Destruction of an
// EncodeState never requires a prior drain.
func (es *EncodeState) Reset() {
	*es = EncodeState{}
}

// CarryLen returns the number of bytes currently held in the carry buffer.
func (es *EncodeState) CarryLen() int {
	return es.carryLen
}

// carryBytes returns the live slice of buffered carry bytes.
func (es *EncodeState) carryBytes() []byte {
	return es.carry[:es.carryLen]
}

// appendCarry appends b to the carry buffer. The caller must ensure
// es.carryLen+len(b) <= CarryMax; decoders and encoders never produce more
// than one code unit cluster, which always fits.
func (es *EncodeState) appendCarry(b ...byte) {
	n := copy(es.carry[es.carryLen:], b)
	es.carryLen += n
}

// setCarry replaces the carry buffer's contents wholesale.
func (es *EncodeState) setCarry(b []byte) {
	es.carryLen = copy(es.carry[:], b)
}

// dropCarryFront removes the first n bytes of carry, shifting the rest down.
func (es *EncodeState) dropCarryFront(n int) {
	if n <= 0 {
		return
	}
	if n >= es.carryLen {
		es.carryLen = 0
		return
	}
	copy(es.carry[:], es.carry[n:es.carryLen])
	es.carryLen -= n
}

// clearCarry empties the carry buffer without touching mbstate.
func (es *EncodeState) clearCarry() {
	es.carryLen = 0
}

// drainCarryInto copies as much of the front of carry as fits into dst,
// removing the copied bytes from carry, and reports how many bytes were
// written. This is the encoder-side flush primitive (§4.4): invoked with
// cp == NoChar, a fast encoder drains whatever a prior call spilled.
func (es *EncodeState) drainCarryInto(dst []byte) int {
	n := copy(dst, es.carryBytes())
	es.dropCarryFront(n)
	return n
}
