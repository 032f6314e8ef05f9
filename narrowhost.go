package zlutf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// narrowMBState is the host conversion state threaded through
// EncodeState.mbstate for the narrow codec (spec.md §3's mbstate region).
// It lazily wraps a transform.Transformer sourced from NarrowEncoding,
// standing in for the C runtime's mbstate_t: a decoder and an encoder each
// carry their own, created on first use and reset together with carry.
type narrowMBState struct {
	dec transform.Transformer
	enc transform.Transformer
}

// NarrowEncoding is the delegate used by the narrow codec in place of the
// host's locale-aware mbrtowc/wcrtomb primitive (spec.md §6: "the narrow
// codec DELEGATES to the platform's locale-aware conversion primitive").
// It defaults to Windows-1252, a reasonable stand-in for "whatever the
// platform's default locale" in the absence of cgo access to the real C
// library. Callers running under a known locale should call
// SetNarrowEncoding during the CLI's init, mirroring the real setlocale(3)
// call the caller is responsible for per spec.md §1.
var NarrowEncoding encoding.Encoding = charmap.Windows1252

// SetNarrowEncoding reconfigures the narrow codec's host delegate. It must
// be set, if at all, before any EncodeState used with the narrow codec has
// started accumulating mbstate — exactly like calling setlocale(3) only
// once at process start before transcoding begins (spec.md §5: "the core
// assumes the locale does not change during a logical stream").
func SetNarrowEncoding(enc encoding.Encoding) {
	NarrowEncoding = enc
}

func (es *EncodeState) narrowDecoder() transform.Transformer {
	if es.mbstate.dec == nil {
		es.mbstate.dec = NarrowEncoding.NewDecoder()
	}
	return es.mbstate.dec
}

func (es *EncodeState) narrowEncoder() transform.Transformer {
	if es.mbstate.enc == nil {
		es.mbstate.enc = NarrowEncoding.NewEncoder()
	}
	return es.mbstate.enc
}

// narrowDstScratch is large enough for the UTF-8 form of any single
// Unicode scalar value (4 bytes) with headroom for encoders that emit
// combining hints; x/text's single-rune transforms never need more.
const narrowDstScratch = 8

// narrowDecodeOne decodes at most one rune from src, mirroring mbrtowc's
// one-character-per-call contract. Handing the whole of src to
// dec.Transform in a single call would let a multi-byte-capable
// Transformer (e.g. charmapDecoder, which loops until dst is full or src
// is exhausted) pack several characters' worth of input into one
// nSrc-bytes-consumed report, so instead the window fed to Transform
// grows one byte at a time until exactly one rune resolves, an error is
// hit, or (with atEOF) the available bytes are confirmed insufficient.
// Until a rune resolves, the Transformer's own state is never advanced by
// a successful Transform call, so retrying with a larger window is safe.
func narrowDecodeOne(es *EncodeState, src []byte, atEOF bool) (cp CPV, nSrc int, needMore bool, invalid bool) {
	dst := make([]byte, narrowDstScratch)
	dec := es.narrowDecoder()

	for window := 1; window <= len(src); window++ {
		atEOFWindow := atEOF && window == len(src)
		nDst, n, err := dec.Transform(dst, src[:window], atEOFWindow)
		switch {
		case err == transform.ErrShortSrc:
			if atEOFWindow {
				return ErrorCPV, 1, false, true
			}
			continue
		case err != nil:
			return ErrorCPV, 1, false, true
		case nDst == 0:
			continue
		default:
			r, _ := utf8.DecodeRune(dst[:nDst])
			if r == utf8.RuneError {
				// x/text decoders report an unassigned byte, or a lead byte
				// truncated at EOF, by emitting U+FFFD instead of an error.
				return ErrorCPV, 1, false, true
			}
			return MakeCPV(uint32(r), false), n, false, false
		}
	}
	return NoChar, 0, true, false
}

// narrowEncodeOne feeds the UTF-8 form of one code point through the host
// encoder, reporting the encoded bytes or an "unencodable" signal.
func narrowEncodeOne(es *EncodeState, r rune) (out []byte, unencodable bool) {
	var src [utf8.UTFMax]byte
	n := utf8.EncodeRune(src[:], r)
	dst := make([]byte, narrowDstScratch)
	enc := es.narrowEncoder()
	nDst, _, err := enc.Transform(dst, src[:n], true)
	if err != nil {
		return nil, true
	}
	return append([]byte(nil), dst[:nDst]...), false
}

// encodingByName memoizes IANA charset-name lookups: the CLI's --locale
// flag and config-driven setups resolve the same handful of names
// repeatedly, and ianaindex's lookup walks a registry on every call.
var encodingByName = xsync.NewMap[string, encoding.Encoding]()

// EncodingByName resolves an IANA charset or MIME name (e.g. "windows-1252",
// "shift_jis", "ISO-8859-1") to an encoding.Encoding usable with
// SetNarrowEncoding. Lookups are cached across calls since the registry
// walk is not free and the CLI resolves the same name on every invocation.
func EncodingByName(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if enc, ok := encodingByName.Load(key); ok {
		return enc, nil
	}
	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrNarrowLocaleUnavailable, name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrNarrowLocaleUnavailable, name)
	}
	encodingByName.Store(key, enc)
	return enc, nil
}
