package zlutf

// utf16Order abstracts the two bigness variants so the BE/LE decoders and
// encoders share one implementation each.
type utf16Order struct {
	load16  func([]byte) uint16
	store16 func([]byte, uint16)
}

var utf16BE = utf16Order{load16: loadU16BE, store16: storeU16BE}
var utf16LE = utf16Order{load16: loadU16LE, store16: storeU16LE}

// decodeUTF16 implements the bounded-region UTF-16 decoder (§4.3). carry
// holds 0-4 raw bytes: fewer than 2 means an in-progress w0, exactly 2
// means a complete but not-yet-classified code unit (either a fresh w0, or
// the retained w1 of a previous lone high surrogate), and 4 would only be
// transient inside a single call (cleared before returning).
func decodeUTF16(o utf16Order, es *EncodeState, p []byte) (cp CPV, consumed int) {
	i := 0

	if es.carryLen < 2 {
		for i < len(p) && es.carryLen < 2 {
			es.appendCarry(p[i])
			i++
		}
		if es.carryLen < 2 {
			return NoChar, i
		}
	}

	w0 := o.load16(es.carry[0:2])
	if !IsHighSurrogate(uint32(w0)) {
		es.clearCarry()
		return MakeCPV(uint32(w0), false), i
	}

	for i < len(p) && es.carryLen < 4 {
		es.appendCarry(p[i])
		i++
	}
	if es.carryLen < 4 {
		return NoChar, i
	}

	w1 := o.load16(es.carry[2:4])
	if IsLowSurrogate(uint32(w1)) {
		code := SurrogatePairDecode(w0, w1)
		es.clearCarry()
		return MakeCPV(code, false), i
	}

	// Lone high surrogate: yield it as-is, retain w1's bytes as the next w0.
	var rest [2]byte
	copy(rest[:], es.carry[2:4])
	es.setCarry(rest[:])
	return MakeCPV(uint32(w0), false), i
}

// decodeUTF16Flush reports any residual carry as a single truncation ERROR.
func decodeUTF16Flush(es *EncodeState) CPV {
	if es.carryLen == 0 {
		return NoChar
	}
	es.clearCarry()
	return ErrorCPV
}

// decodeUTF16Z implements null-terminated mode without buffering across
// calls (per the Open Question resolution): it requires at least one full
// code unit (and, for a high surrogate, its pair) to already be present in p.
func decodeUTF16Z(o utf16Order, p []byte) (cp CPV, consumed int, terminated bool) {
	if len(p) < 2 {
		return NoChar, 0, false
	}
	w0 := o.load16(p[0:2])
	if w0 == 0 {
		return MakeCPV(0, false), 2, true
	}
	if !IsHighSurrogate(uint32(w0)) {
		return MakeCPV(uint32(w0), false), 2, false
	}
	if len(p) < 4 {
		return NoChar, 0, false
	}
	w1 := o.load16(p[2:4])
	if IsLowSurrogate(uint32(w1)) {
		return MakeCPV(SurrogatePairDecode(w0, w1), false), 4, false
	}
	return MakeCPV(uint32(w0), false), 2, false
}
