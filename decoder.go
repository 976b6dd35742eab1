package unfold

import (
	"errors"
	"io"
)

// Decoder unfolds everything read from an [io.Reader] and writes it to an
// [io.Writer]. Fold markers split across reads are recognised.
type Decoder struct {
	r     io.Reader
	rb    readBuffer
	state State
	out   []byte
	n     int64
}

type DecoderOption func(d *Decoder)

func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{r: r}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WithBufferSize sets the size of the read buffer.
func WithBufferSize(size int) DecoderOption {
	return func(d *Decoder) {
		if size > 0 {
			d.rb = readBuffer{buf: make([]byte, size)}
		}
	}
}

var errReaderNil = errors.New("reader is nil")

type streamFeeder interface {
	feed(in []byte, out io.Writer) (consumed int, done bool, err error)
}

// Reset discards the state of the [Decoder] and makes it read from r, reusing
// its buffers.
func (d *Decoder) Reset(r io.Reader) {
	d.r = r
	d.rb.reset()
	d.state = StateNone
	d.n = 0
}

// WriteTo writes the unfolded contents of the underlying reader to w until
// EOF and returns the number of bytes written.
func (d *Decoder) WriteTo(w io.Writer) (int64, error) {
	if d.r == nil {
		return 0, errReaderNil
	}

	if err := d.rb.feedUntilDone(d.r, d, w); err != nil && !errors.Is(err, io.EOF) {
		return d.n, err
	}

	if d.state != StateNone {
		var tail [MaxPending]byte
		n := flushState(tail[:], &d.state)
		if err := d.write(w, tail[:n]); err != nil {
			return d.n, err
		}
	}

	return d.n, nil
}

func (d *Decoder) feed(in []byte, out io.Writer) (consumed int, done bool, err error) {
	if need := len(in) + MaxPending; len(d.out) < need {
		d.out = make([]byte, need)
	}

	nDst, nSrc := decodeGeneric(d.out, in, &d.state)
	if err := d.write(out, d.out[:nDst]); err != nil {
		return nSrc, false, err
	}

	return nSrc, false, nil
}

func (d *Decoder) write(w io.Writer, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := w.Write(p)
	d.n += int64(n)
	return err
}
