package zlutf

// decodeNarrow implements the bounded-region half of the narrow decoder
// (§4.3, C5): it delegates the actual byte interpretation to the host
// encoding configured via NarrowEncoding, buffering an incomplete
// multibyte sequence into carry across calls exactly like mbrtowc(3) would
// signal "need more bytes" through its return value.
func decodeNarrow(es *EncodeState, p []byte) (cp CPV, consumed int) {
	oldCarry := es.carryLen
	if oldCarry == 0 && len(p) == 0 {
		return NoChar, 0
	}
	src := append(es.carryBytes(), p...)

	out, n, needMore, invalid := narrowDecodeOne(es, src, false)
	newConsumed := n - oldCarry
	if newConsumed < 0 {
		newConsumed = 0
	}

	switch {
	case needMore:
		rest := src[n:]
		es.setCarry(rest)
		return NoChar, newConsumed
	case invalid:
		es.clearCarry()
		if newConsumed == 0 && len(p) > 0 {
			newConsumed = 1
		}
		return ErrorCPV, newConsumed
	default:
		es.clearCarry()
		return out, newConsumed
	}
}

// decodeNarrowFlush forces the host decoder to resolve or reject any
// buffered partial sequence at end of stream.
func decodeNarrowFlush(es *EncodeState) CPV {
	if es.carryLen == 0 {
		return NoChar
	}
	src := es.carryBytes()
	out, _, _, invalid := narrowDecodeOne(es, src, true)
	es.clearCarry()
	if invalid {
		return ErrorCPV
	}
	return out
}

// decodeNarrowZ implements null-terminated mode without cross-call
// buffering: a fresh EncodeState backs each call so a sequence split
// across calls is never resolved, matching the symmetric treatment given
// to the other encodings' Z entry points.
func decodeNarrowZ(p []byte) (cp CPV, consumed int, terminated bool) {
	if len(p) == 0 {
		return NoChar, 0, false
	}
	es := NewEncodeState()
	out, n, needMore, invalid := narrowDecodeOne(es, p, true)
	if needMore || n == 0 {
		return ErrorCPV, 1, false
	}
	if invalid {
		return ErrorCPV, 1, false
	}
	return out, n, out == MakeCPV(0, false)
}
