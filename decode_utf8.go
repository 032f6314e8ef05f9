package zlutf

// decodeUTF8 implements the bounded-region half of the UTF-8 decoder
// contract (§4.3). It consumes from p, buffering a partial lead+continuation
// run into es.carry when p runs out before a character completes, and
// returns NoChar with the number of bytes it drew from p in that case —
// never more than len(p), and never counting bytes that were already
// sitting in carry from a previous call.
//
// Continuation-byte errors recover by the "maximal subpart" rule: if the
// mismatch is the very first byte examined this call (no bytes of the
// current attempt came from this call yet), exactly that one byte is
// discarded. If earlier bytes of this call already extended the carry
// past the lead byte, those bytes are discarded as the ill-formed
// subsequence and the mismatching byte itself is left unconsumed, to be
// reparsed fresh as the start of the next character.
func decodeUTF8(es *EncodeState, p []byte) (cp CPV, consumed int) {
	i := 0

	if es.carryLen == 0 {
		if len(p) == 0 {
			return NoChar, 0
		}
		lead := p[0]
		length, nonNorm := classifyUTF8Lead(lead)
		if length == 0 {
			// Orphan continuation byte with no pending lead: discard it alone.
			return ErrorCPV, 1
		}
		if length == 1 {
			return MakeCPV(uint32(lead), nonNorm), 1
		}
		es.appendCarry(lead)
		i = 1
	}

	length, nonNorm := classifyUTF8Lead(es.carry[0])
	for i < len(p) && es.carryLen < length {
		b := p[i]
		if b < 0x80 || b > 0xBF {
			es.clearCarry()
			if i == 0 {
				return ErrorCPV, 1
			}
			return ErrorCPV, i
		}
		es.appendCarry(b)
		i++
	}

	if es.carryLen < length {
		return NoChar, i
	}

	code := uint32(es.carry[0] & utf8LeadDataMask[length])
	for k := 1; k < length; k++ {
		code = (code << 6) | uint32(es.carry[k]&0x3F)
	}
	es.clearCarry()
	return MakeCPV(code, nonNorm), i
}

// decodeUTF8Flush implements the explicit end-of-stream flush form: any
// residual carry represents a truncated character and is reported as a
// single ERROR, then discarded.
func decodeUTF8Flush(es *EncodeState) CPV {
	if es.carryLen == 0 {
		return NoChar
	}
	es.clearCarry()
	return ErrorCPV
}

// decodeUTF8Z implements null-terminated mode: decode exactly one
// character from the start of p without consulting or touching carry (the
// Open Question on null-terminated buffering is resolved in favor of never
// buffering there, since pend is unavailable to bound further reads
// anyway). Returns terminated=true when the decoded character is the NUL
// code point.
func decodeUTF8Z(p []byte) (cp CPV, consumed int, terminated bool) {
	if len(p) == 0 {
		return NoChar, 0, false
	}
	lead := p[0]
	length, nonNorm := classifyUTF8Lead(lead)
	if length == 0 {
		return ErrorCPV, 1, false
	}
	if len(p) < length {
		return NoChar, 0, false
	}
	if length == 1 {
		code := uint32(lead)
		if code == 0 {
			return MakeCPV(0, nonNorm), 1, true
		}
		return MakeCPV(code, nonNorm), 1, false
	}
	for k := 1; k < length; k++ {
		b := p[k]
		if b < 0x80 || b > 0xBF {
			return ErrorCPV, 1, false
		}
	}
	code := uint32(lead & utf8LeadDataMask[length])
	for k := 1; k < length; k++ {
		code = (code << 6) | uint32(p[k]&0x3F)
	}
	return MakeCPV(code, nonNorm), length, code == 0
}
