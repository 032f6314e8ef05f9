package zlutf

import "errors"

var (
	// ErrNilIO indicates that NewSource/NewDestWriter was called with a nil io.Reader/io.Writer.
	ErrNilIO = errors.New("zlutf: NewSource/NewDestWriter called with a nil io.Reader/io.Writer")

	// ErrInvalidWrite indicates that an io.Reader returned an invalid (negative) count
	// while being drained into a BytesWriter.
	ErrInvalidWrite = errors.New("zlutf: reader returned invalid count during ReadFrom")

	// ErrNilSink indicates a Transcode/Feed/Flush call was made with a nil sink.
	ErrNilSink = errors.New("zlutf: nil sink")

	// ErrUnknownEncoding indicates an Encoding id outside the registered range was
	// passed to the registry.
	ErrUnknownEncoding = errors.New("zlutf: unknown encoding id")

	// ErrScratchTooSmall indicates a caller-supplied scratch output region is
	// smaller than the 16-byte worst case a fast encoder can write.
	ErrScratchTooSmall = errors.New("zlutf: scratch buffer smaller than 16 bytes")

	// ErrNarrowLocaleUnavailable indicates EncodingByName could not resolve a host
	// conversion table for the requested charset name.
	ErrNarrowLocaleUnavailable = errors.New("zlutf: no narrow codec registered for that locale")

	// ErrUnencodable indicates the encoder's ERRCODE bit was set: the code point cannot be
	// represented in the target encoding and fallback was not permitted.
	ErrUnencodable = errors.New("zlutf: code point cannot be encoded in target encoding")

	// ErrSinkAborted indicates the sink callback returned an error, terminating the
	// transcode before the flush phase runs.
	ErrSinkAborted = errors.New("zlutf: sink aborted transcode")
)
