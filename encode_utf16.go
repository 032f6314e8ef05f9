package zlutf

// encodeUTF16Fast implements the fast-form UTF-16 encoder (§4.4, C6),
// shared between BE and LE via the byte-order table.
func encodeUTF16Fast(o utf16Order, es *EncodeState, dst []byte, cp CPV, pr *PutResult) int {
	if cp == NoChar {
		return es.drainCarryInto(dst)
	}
	if cp.IsError() {
		return encodeUTF16Substitute(o, dst, pr)
	}

	code := cp.Code()
	switch {
	case code <= 0xFFFF:
		o.store16(dst[0:2], uint16(code))
		*pr |= Accept
		return 2
	case code <= 0x10FFFF:
		high, low := SurrogatePairEncode(code)
		o.store16(dst[0:2], high)
		o.store16(dst[2:4], low)
		*pr |= Accept
		return 4
	default:
		return encodeUTF16Substitute(o, dst, pr)
	}
}

func encodeUTF16Substitute(o utf16Order, dst []byte, pr *PutResult) int {
	if !pr.Has(AllowFallback) {
		*pr |= ErrCode
		return 0
	}
	o.store16(dst[0:2], uint16(DefaultChar))
	*pr |= Accept | Fallback
	return 2
}
