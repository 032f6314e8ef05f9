package zlutf

// encodeNarrowFast implements the fast-form narrow encoder (§4.4, C6). It
// delegates the actual multibyte production to the host encoding
// configured via NarrowEncoding; x/text's transform.Transformer consumes
// whole scalar values, so the manual 16-bit code-unit splitting the spec
// describes for a C wide-char host is subsumed by the transformer and
// never needs to appear here.
func encodeNarrowFast(es *EncodeState, dst []byte, cp CPV, pr *PutResult) int {
	if cp == NoChar {
		return es.drainCarryInto(dst)
	}
	if cp.IsError() {
		return encodeNarrowSubstitute(es, dst, pr)
	}

	code := cp.Code()
	if code == ReplacementChar.Code() {
		// The replacement glyph is frequently unencodable in legacy
		// locales and carries no semantic distinction from '?' here, so
		// it downgrades silently without setting FALLBACK.
		out, unenc := narrowEncodeOne(es, '?')
		if unenc {
			*pr |= ErrCode
			return 0
		}
		n := copy(dst, out)
		*pr |= Accept
		return n
	}

	out, unenc := narrowEncodeOne(es, rune(code))
	if unenc {
		return encodeNarrowSubstitute(es, dst, pr)
	}
	n := copy(dst, out)
	*pr |= Accept
	return n
}

func encodeNarrowSubstitute(es *EncodeState, dst []byte, pr *PutResult) int {
	if !pr.Has(AllowFallback) {
		*pr |= ErrCode
		return 0
	}
	out, unenc := narrowEncodeOne(es, '?')
	if unenc {
		*pr |= ErrCode
		return 0
	}
	n := copy(dst, out)
	*pr |= Accept | Fallback
	return n
}
