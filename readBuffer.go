package unfold

import (
	"io"
)

const (
	defaultReadBufSize = 32 * 1024
)

type readBuffer struct {
	buf        []byte
	start, end int
}

func (rb *readBuffer) init() {
	if len(rb.buf) == 0 {
		rb.buf = make([]byte, defaultReadBufSize)
	}
}

func (rb *readBuffer) reset() {
	rb.start, rb.end = 0, 0
}

func (rb *readBuffer) window() []byte {
	return rb.buf[rb.start:rb.end]
}

func (rb *readBuffer) advance(consumed int) {
	if consumed <= 0 {
		return
	}
	rb.start += consumed
	if rb.start >= rb.end {
		rb.start, rb.end = 0, 0
	}
}

func (rb *readBuffer) compact() {
	if rb.start == 0 || rb.start == rb.end {
		return
	}
	copy(rb.buf, rb.buf[rb.start:rb.end])
	rb.end -= rb.start
	rb.start = 0
}

func (rb *readBuffer) readMore(r io.Reader) (int, error) {
	if rb.end == len(rb.buf) {
		rb.compact()
		if rb.end == len(rb.buf) {
			return 0, nil
		}
	}
	n, err := r.Read(rb.buf[rb.end:])
	if n > 0 {
		rb.end += n
	}
	return n, err
}

// feedUntilDone reads r until it is exhausted or the feeder reports done,
// handing every buffered window to the feeder. Bytes returned together with
// an error are fed before the error is returned.
func (rb *readBuffer) feedUntilDone(r io.Reader, feeder streamFeeder, out io.Writer) error {
	rb.init()

	for {
		_, readErr := rb.readMore(r)

		if rb.start < rb.end {
			consumed, done, err := feeder.feed(rb.window(), out)
			rb.advance(consumed)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}

		if readErr != nil {
			return readErr
		}
	}
}
