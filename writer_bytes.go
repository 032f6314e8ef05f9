package zlutf

import "io"

// BytesWriter is an io.Writer over a pre-allocated byte slice. It does not
// grow the slice; a write exceeding the available space writes as much as
// it can and returns io.ErrShortWrite. The CLI uses it as a bounded
// destination when --max-output-bytes caps how much a transcode may
// produce.
type BytesWriter struct {
	B []byte // destination slice
	N int    // current write position
}

// NewBytesWriter creates a new BytesWriter over p's full capacity.
func NewBytesWriter(p []byte) *BytesWriter {
	return &BytesWriter{B: p[:cap(p)]}
}

// Close implements io.Closer.
func (w *BytesWriter) Close() error { return nil }

// Write implements io.Writer.
func (w *BytesWriter) Write(p []byte) (int, error) {
	if w.N >= len(w.B) {
		return 0, io.ErrShortWrite
	}
	n := copy(w.B[w.N:], p)
	w.N += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteByte implements io.ByteWriter.
func (w *BytesWriter) WriteByte(c byte) error {
	if w.N >= len(w.B) {
		return io.ErrShortWrite
	}
	w.B[w.N] = c
	w.N++
	return nil
}

// ReadFrom implements io.ReaderFrom, reading a single chunk from r into
// whatever room remains.
func (w *BytesWriter) ReadFrom(r io.Reader) (int64, error) {
	if w.N >= len(w.B) {
		return 0, io.ErrShortWrite
	}
	n, err := r.Read(w.B[w.N:])
	if n < 0 {
		return 0, ErrInvalidWrite
	}
	w.N += n
	if err == io.EOF {
		return int64(n), nil
	}
	return int64(n), err
}

// Reset rewinds the writer to the start of B so the slice can be reused.
func (w *BytesWriter) Reset() { w.N = 0 }

// Len returns the number of bytes written so far.
func (w *BytesWriter) Len() int { return w.N }

// Size returns the capacity of the underlying slice.
func (w *BytesWriter) Size() int { return len(w.B) }

// Available returns the remaining writable capacity.
func (w *BytesWriter) Available() int { return len(w.B) - w.N }

// Bytes returns a slice view of the bytes written so far.
func (w *BytesWriter) Bytes() []byte { return w.B[:w.N] }
