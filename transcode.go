package zlutf

import (
	"fmt"
)

// Transcoder couples one decoder and one encoder, each with its own
// EncodeState, so a logical stream can be fed in arbitrary fragments
// across multiple Feed calls before a single Flush (§4.6, C8). This is
// the struct-holding-mutable-state-mutated-by-methods shape teacher uses
// for Reader/Writer.
type Transcoder struct {
	srcEnc, dstEnc Encoding

	decBounded func(*EncodeState, []byte) (CPV, int)
	decFlush   func(*EncodeState) CPV
	encFast    fastEncoder

	esD *EncodeState
	esE *EncodeState

	nullTerminated bool
	terminated     bool
}

// NewTranscoder resolves srcEnc/dstEnc through the registry and returns a
// Transcoder with freshly zeroed decode/encode state.
func NewTranscoder(srcEnc, dstEnc Encoding, nullTerminated bool) (*Transcoder, error) {
	decBounded, decFlush, _, ok := LookupDecoder(srcEnc)
	if !ok {
		return nil, fmt.Errorf("%w: source %s", ErrUnknownEncoding, srcEnc)
	}
	encFast, ok := LookupEncoder(dstEnc)
	if !ok {
		return nil, fmt.Errorf("%w: destination %s", ErrUnknownEncoding, dstEnc)
	}
	return &Transcoder{
		srcEnc:         srcEnc,
		dstEnc:         dstEnc,
		decBounded:     decBounded,
		decFlush:       decFlush,
		encFast:        encFast,
		esD:            NewEncodeState(),
		esE:            NewEncodeState(),
		nullTerminated: nullTerminated,
	}, nil
}

// Terminated reports whether a null terminator has already ended the
// logical stream (only meaningful when constructed with nullTerminated).
func (t *Transcoder) Terminated() bool { return t.terminated }

// Feed runs the C8 decode-encode-sink loop (§4.6 steps 1-2) over src,
// returning the number of source bytes consumed. It performs no flush:
// callers that have more fragments call Feed again with the same
// Transcoder; the final fragment is followed by a call to Flush. It draws
// its scratch output region from a pool; callers that already hold a
// reusable buffer should use FeedScratch instead.
func (t *Transcoder) Feed(src []byte, sink Sink, opts PutResult) (consumed int, err error) {
	scratchPtr := getScratch()
	defer putScratch(scratchPtr)
	return t.FeedScratch(src, *scratchPtr, sink, opts)
}

// FeedScratch is Feed with a caller-supplied scratch output region, the
// shape §4.6's C8 loop takes natively: a fast encoder may write up to
// CarryMax bytes per code point without bounds-checking, so scratch must
// be at least that large.
func (t *Transcoder) FeedScratch(src []byte, scratch []byte, sink Sink, opts PutResult) (consumed int, err error) {
	if sink == nil {
		return 0, ErrNilSink
	}
	if len(scratch) < CarryMax {
		return 0, ErrScratchTooSmall
	}
	if t.terminated {
		return 0, nil
	}

	// The loop also runs while the decoder's carry is non-empty: UTF-16
	// retains the complete unit that followed a lone high surrogate, and it
	// must be decoded here rather than reported as truncation by Flush. An
	// incomplete carry yields NoChar and ends the loop.
	remaining := src
	for len(remaining) > 0 || t.esD.carryLen > 0 {
		cp, n := t.decBounded(t.esD, remaining)
		consumed += n
		remaining = remaining[n:]

		if cp == NoChar {
			break
		}

		if cp.IsError() {
			decodeErrors.WithLabelValues(t.srcEnc.String()).Inc()
			Logger.Debug().Str("src", t.srcEnc.String()).Msg("decode error, advancing")
		}

		if t.nullTerminated && !cp.IsError() && cp.Code() == 0 {
			t.terminated = true
			break
		}

		pr := opts
		written := encodeWrapped(t.encFast, t.esE, scratch, cp, &pr)
		if written > 0 {
			if serr := sink(scratch[:written]); serr != nil {
				return consumed, fmt.Errorf("%w: %w", ErrSinkAborted, serr)
			}
		}
		if pr.Has(ErrCode) {
			encodeErrors.WithLabelValues(t.dstEnc.String()).Inc()
			Logger.Debug().Str("dst", t.dstEnc.String()).Msg("encode error, code point unencodable")
			return consumed, fmt.Errorf("%w: %s", ErrUnencodable, t.dstEnc)
		}
		if pr.Has(Fallback) {
			encodeFallbacks.WithLabelValues(t.dstEnc.String()).Inc()
		}
		if pr.Has(Accept) {
			codePointsDecoded.WithLabelValues(t.srcEnc.String()).Inc()
			codePointsEncoded.WithLabelValues(t.dstEnc.String()).Inc()
		}
	}

	bytesTranscoded.WithLabelValues(t.srcEnc.String()).Add(float64(consumed))
	return consumed, nil
}

// Flush implements §4.6 step 3: it resolves any trailing decoder carry
// into a final ERROR, pushes it through the encoder, then drains any
// bytes the encoder had spilled into its own carry. Call it once, after
// the last Feed, when the transcoder owns both EncodeStates for the
// logical stream's whole lifetime.
func (t *Transcoder) Flush(sink Sink, opts PutResult) error {
	scratchPtr := getScratch()
	defer putScratch(scratchPtr)
	return t.FlushScratch(*scratchPtr, sink, opts)
}

// FlushScratch is Flush with a caller-supplied scratch output region; see
// FeedScratch for the sizing requirement.
func (t *Transcoder) FlushScratch(scratch []byte, sink Sink, opts PutResult) error {
	if sink == nil {
		return ErrNilSink
	}
	if len(scratch) < CarryMax {
		return ErrScratchTooSmall
	}

	if cp := t.decFlush(t.esD); cp != NoChar {
		pr := opts
		written := encodeWrapped(t.encFast, t.esE, scratch, cp, &pr)
		if written > 0 {
			if err := sink(scratch[:written]); err != nil {
				return fmt.Errorf("%w: %w", ErrSinkAborted, err)
			}
		}
		if pr.Has(ErrCode) {
			return fmt.Errorf("%w: %s", ErrUnencodable, t.dstEnc)
		}
	}

	pr := opts
	written := encodeWrapped(t.encFast, t.esE, scratch, NoChar, &pr)
	if written > 0 {
		if err := sink(scratch[:written]); err != nil {
			return fmt.Errorf("%w: %w", ErrSinkAborted, err)
		}
	}
	return nil
}

// Transcode is the one-shot convenience form: it transcodes all of src in
// a single call, owning both EncodeStates for the duration and running
// Flush afterward unless Feed returned an error (a sink abort or an
// unencodable code point), matching the
// "transcoder owns the encoder ES" auto-flush condition of §4.6 step 3.
func Transcode(srcEnc, dstEnc Encoding, src []byte, nullTerminated bool, sink Sink, opts PutResult) (consumed int, err error) {
	t, err := NewTranscoder(srcEnc, dstEnc, nullTerminated)
	if err != nil {
		return 0, err
	}
	consumed, err = t.Feed(src, sink, opts)
	if err != nil {
		return consumed, err
	}
	if err := t.Flush(sink, opts); err != nil {
		return consumed, err
	}
	return consumed, nil
}
