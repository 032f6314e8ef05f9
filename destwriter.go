package zlutf

import (
	"bufio"
	"io"
)

// DestWriter buffers transcoded output ahead of an io.Writer, latching the
// first write error exactly like teacher's Writer: once Err() is non-nil,
// the Sink it hands out becomes a no-op.
type DestWriter struct {
	w     *bufio.Writer
	count int64
	err   error
}

// NewDestWriter wraps w in a buffered DestWriter.
func NewDestWriter(w io.Writer) (*DestWriter, error) {
	if w == nil {
		return nil, ErrNilIO
	}
	return &DestWriter{w: bufio.NewWriter(w)}, nil
}

// Sink returns a Sink backed by this writer, suitable for passing to
// Transcoder.Feed/Flush or Transcode directly.
func (d *DestWriter) Sink() Sink {
	return func(b []byte) error {
		if d.err != nil {
			return d.err
		}
		n, err := d.w.Write(b)
		d.count += int64(n)
		if err != nil {
			d.err = err
		}
		return err
	}
}

// Count returns the number of bytes accepted by the sink so far.
func (d *DestWriter) Count() int64 { return d.count }

// Err returns the first error encountered.
func (d *DestWriter) Err() error { return d.err }

// Flush writes any buffered bytes through to the underlying io.Writer.
func (d *DestWriter) Flush() error {
	if d.err != nil {
		return d.err
	}
	err := d.w.Flush()
	if err != nil {
		d.err = err
	}
	return err
}
