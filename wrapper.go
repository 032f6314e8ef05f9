package zlutf

// fastEncoder is the shape every C6 fast encoder shares once its
// byte-order/host specifics are bound: write at most CarryMax bytes into
// dst, which the wrapper guarantees is large enough, and report flags in pr.
type fastEncoder func(es *EncodeState, dst []byte, cp CPV, pr *PutResult) int

// encodeWrapped implements the C7 wrapper contract (§4.5): the only place
// in the package that bounds-checks a destination before handing it to a
// fast encoder. It drains any previously spilled carry first, then either
// encodes straight into the destination (when there's headroom) or through
// carry as scratch (when there isn't), returning the number of bytes
// written to dst.
func encodeWrapped(enc fastEncoder, es *EncodeState, dst []byte, cp CPV, pr *PutResult) int {
	written := 0

	if es.carryLen > 0 {
		n := es.drainCarryInto(dst)
		written += n
		if es.carryLen > 0 {
			*pr |= ErrOut | Buffer
			return written
		}
		dst = dst[n:]
		// The character that spilled this carry is now fully delivered.
		*pr |= Accept
	}

	if cp == NoChar && written > 0 {
		return written
	}

	if len(dst) >= CarryMax {
		return written + enc(es, dst, cp, pr)
	}

	var scratch [CarryMax]byte
	n := enc(es, scratch[:], cp, pr)
	copied := copy(dst, scratch[:n])
	if copied < n {
		es.setCarry(scratch[copied:n])
		*pr |= ErrOut | Buffer
	}
	return written + copied
}
