package zlutf

// encodeUTF32Fast implements the fast-form UTF-32 encoder (§4.4, C6): it
// always emits four bytes, with no encodable-range rejection beyond the
// 31-bit CPV payload itself.
func encodeUTF32Fast(o utf32Order, es *EncodeState, dst []byte, cp CPV, pr *PutResult) int {
	if cp == NoChar {
		return es.drainCarryInto(dst)
	}
	if cp.IsError() {
		return encodeUTF32Substitute(o, dst, pr)
	}
	o.store32(dst[0:4], cp.Code())
	*pr |= Accept
	return 4
}

func encodeUTF32Substitute(o utf32Order, dst []byte, pr *PutResult) int {
	if !pr.Has(AllowFallback) {
		*pr |= ErrCode
		return 0
	}
	o.store32(dst[0:4], uint32(DefaultChar))
	*pr |= Accept | Fallback
	return 4
}
