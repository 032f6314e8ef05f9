package zlutf

import (
	"bytes"
	"io"
)

// Sink receives transcoded output a region at a time (§4.6, §6). Unlike
// the spec's `(ctx, bytes, len) -> int32` C callback, the Go form returns
// an error directly: a non-nil error aborts the transcode exactly as a
// negative return does in the original contract.
type Sink func(b []byte) error

// WriterSink adapts an io.Writer to the Sink contract, the same small
// wrapping-struct-to-satisfy-an-interface shape as teacher's
// bufioWriterAdapter/bytesBufferWriterAdapter in adpaters.go.
func WriterSink(w io.Writer) Sink {
	return func(b []byte) error {
		_, err := w.Write(b)
		return err
	}
}

// TranscodeToWriter transcodes src from srcEnc to dstEnc and writes the
// result to w, a convenience wrapper over Transcode for the common
// whole-buffer, single-call case (spec.md §1: "a thin adapter writes
// resulting bytes to a stream").
func TranscodeToWriter(w io.Writer, src []byte, srcEnc, dstEnc Encoding, opts PutResult) (consumed int, err error) {
	return Transcode(srcEnc, dstEnc, src, false, WriterSink(w), opts)
}

// TranscodeBytes transcodes src from srcEnc to dstEnc and returns the
// result as a new byte slice.
func TranscodeBytes(src []byte, srcEnc, dstEnc Encoding, opts PutResult) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := TranscodeToWriter(&buf, src, srcEnc, dstEnc, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TranscodeString transcodes the UTF-8 bytes of s from UTF8 to dstEnc and
// returns the result as a string, a narrow convenience for the overwhelmingly
// common "I have a Go string, give me bytes in encoding X" case.
func TranscodeString(s string, dstEnc Encoding, opts PutResult) (string, error) {
	out, err := TranscodeBytes([]byte(s), UTF8, dstEnc, opts)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
