package zlutf

// Encoding identifies one of the codecs the package can decode or encode,
// a dense integer space starting at zero so it can index a table directly
// (§6, "no inheritance; dispatch via function-valued tables").
type Encoding int

const (
	Unknown Encoding = iota // not mapped to any codec: LookupDecoder/LookupEncoder report it as not found
	encError                // sentinel, not usable as a table index
	Narrow
	UTF8
	UTF16BE
	UTF16LE
	UTF32BE
	UTF32LE
)

// EncFlush is the sentinel passed to request "flush only" where an
// Encoding value is otherwise expected.
const EncFlush Encoding = -1

func (e Encoding) String() string {
	switch e {
	case Unknown:
		return "unknown"
	case Narrow:
		return "narrow"
	case UTF8:
		return "utf-8"
	case UTF16BE:
		return "utf-16be"
	case UTF16LE:
		return "utf-16le"
	case UTF32BE:
		return "utf-32be"
	case UTF32LE:
		return "utf-32le"
	case EncFlush:
		return "flush"
	default:
		return "error"
	}
}

// decoderEntry bundles one encoding's three decode entry points.
type decoderEntry struct {
	bounded func(es *EncodeState, p []byte) (CPV, int)
	flush   func(es *EncodeState) CPV
	z       func(p []byte) (CPV, int, bool)
}

// encoderEntry bundles one encoding's fast encoder, bound to its byte order.
type encoderEntry struct {
	fast fastEncoder
}

var decoderTable = map[Encoding]decoderEntry{
	Narrow: {
		bounded: decodeNarrow,
		flush:   decodeNarrowFlush,
		z:       decodeNarrowZ,
	},
	UTF8: {
		bounded: decodeUTF8,
		flush:   decodeUTF8Flush,
		z:       decodeUTF8Z,
	},
	UTF16BE: {
		bounded: func(es *EncodeState, p []byte) (CPV, int) { return decodeUTF16(utf16BE, es, p) },
		flush:   decodeUTF16Flush,
		z:       func(p []byte) (CPV, int, bool) { return decodeUTF16Z(utf16BE, p) },
	},
	UTF16LE: {
		bounded: func(es *EncodeState, p []byte) (CPV, int) { return decodeUTF16(utf16LE, es, p) },
		flush:   decodeUTF16Flush,
		z:       func(p []byte) (CPV, int, bool) { return decodeUTF16Z(utf16LE, p) },
	},
	UTF32BE: {
		bounded: func(es *EncodeState, p []byte) (CPV, int) { return decodeUTF32(utf32BE, es, p) },
		flush:   decodeUTF32Flush,
		z:       func(p []byte) (CPV, int, bool) { return decodeUTF32Z(utf32BE, p) },
	},
	UTF32LE: {
		bounded: func(es *EncodeState, p []byte) (CPV, int) { return decodeUTF32(utf32LE, es, p) },
		flush:   decodeUTF32Flush,
		z:       func(p []byte) (CPV, int, bool) { return decodeUTF32Z(utf32LE, p) },
	},
}

var encoderTable = map[Encoding]encoderEntry{
	Narrow: {fast: encodeNarrowFast},
	UTF8:   {fast: encodeUTF8Fast},
	UTF16BE: {fast: func(es *EncodeState, dst []byte, cp CPV, pr *PutResult) int {
		return encodeUTF16Fast(utf16BE, es, dst, cp, pr)
	}},
	UTF16LE: {fast: func(es *EncodeState, dst []byte, cp CPV, pr *PutResult) int {
		return encodeUTF16Fast(utf16LE, es, dst, cp, pr)
	}},
	UTF32BE: {fast: func(es *EncodeState, dst []byte, cp CPV, pr *PutResult) int {
		return encodeUTF32Fast(utf32BE, es, dst, cp, pr)
	}},
	UTF32LE: {fast: func(es *EncodeState, dst []byte, cp CPV, pr *PutResult) int {
		return encodeUTF32Fast(utf32LE, es, dst, cp, pr)
	}},
}

// LookupDecoder resolves an Encoding to its three decode entry points. The
// ok result is false for Unknown, EncFlush, or any value outside the
// table, matching the "out-of-range encoding id" invalid-argument case.
func LookupDecoder(e Encoding) (bounded func(*EncodeState, []byte) (CPV, int), flush func(*EncodeState) CPV, z func([]byte) (CPV, int, bool), ok bool) {
	ent, found := decoderTable[e]
	if !found {
		return nil, nil, nil, false
	}
	return ent.bounded, ent.flush, ent.z, true
}

// LookupEncoder resolves an Encoding to its fast encoder function.
func LookupEncoder(e Encoding) (fast fastEncoder, ok bool) {
	ent, found := encoderTable[e]
	if !found {
		return nil, false
	}
	return ent.fast, true
}
