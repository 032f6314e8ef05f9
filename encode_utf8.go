package zlutf

// encodeUTF8Fast implements the fast-form UTF-8 encoder (§4.4, C6). It
// writes directly into dst without bounds-checking; the wrapper (C7) is
// responsible for guaranteeing at least 16 bytes of headroom first.
func encodeUTF8Fast(es *EncodeState, dst []byte, cp CPV, pr *PutResult) int {
	if cp == NoChar {
		return es.drainCarryInto(dst)
	}
	if cp.IsError() {
		return encodeUTF8Substitute(es, dst, pr)
	}

	code := cp.Code()
	if cp.NonNorm() {
		switch {
		case code <= 0x7F:
			dst[0] = 0xC0 | byte(code>>6)
			dst[1] = 0x80 | byte(code&0x3F)
			*pr |= Accept | NonNormFlag
			return 2
		case code >= 0xFE && code <= 0xFF:
			dst[0] = byte(code)
			*pr |= Accept | NonNormFlag
			return 1
		}
	}

	length := utf8EncodedLen(code)
	if length == 0 {
		return encodeUTF8Substitute(es, dst, pr)
	}
	if length == 1 {
		dst[0] = byte(code)
		*pr |= Accept
		return 1
	}
	for k := length - 1; k > 0; k-- {
		dst[k] = 0x80 | byte(code&0x3F)
		code >>= 6
	}
	dst[0] = utf8LeadByte[length] | byte(code)
	*pr |= Accept
	return length
}

// encodeUTF8Substitute applies the two-outcome fallback contract shared by
// every fast encoder: substitute the default character when the caller
// allows it, otherwise report ERRCODE and write nothing.
func encodeUTF8Substitute(es *EncodeState, dst []byte, pr *PutResult) int {
	if !pr.Has(AllowFallback) {
		*pr |= ErrCode
		return 0
	}
	dst[0] = byte(DefaultChar)
	*pr |= Accept | Fallback
	return 1
}
