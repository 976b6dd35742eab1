package unfold

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

const (
	// DefaultLineLength is the LDIF line length (RFC 2849).
	DefaultLineLength = 76

	minLineLength = 2
)

var (
	ErrInvalidLineLength = fmt.Errorf("line length must be at least %d", minLineLength)
	ErrInvalidBreak      = errors.New("fold break must be one of CRLF, LF, CR or LFCR")
)

// Encoder folds everything written to it so that no physical line is longer
// than the line length. Unfolding the output with [Decode] gives the same
// result as unfolding the input.
type Encoder struct {
	w          io.Writer
	lineLength int
	brk        Break
	column     int

	buf []byte

	writeMu sync.Mutex
}

type EncoderOption func(e *Encoder)

// WithLineLength sets the maximum physical line length, excluding the line
// break. Continuation lines count their leading space.
func WithLineLength(n int) EncoderOption {
	return func(e *Encoder) {
		e.lineLength = n
	}
}

// WithBreak sets the line break inserted before each continuation line.
func WithBreak(b Break) EncoderOption {
	return func(e *Encoder) {
		e.brk = b
	}
}

// NewEncoder returns a new [Encoder].
// Writes to the returned writer are folded and written to w.
//
// It is the caller's responsibility to call Close on the [Encoder] when done.
func NewEncoder(w io.Writer, opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		lineLength: DefaultLineLength,
		brk:        CRLF,
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := validateFold(e.lineLength, e.brk); err != nil {
		return nil, err
	}

	e.Reset(w)

	return e, nil
}

// Reset discards the [Encoder] e's state and makes it equivalent to the
// result of its original state from [NewEncoder], but writing to w instead.
func (e *Encoder) Reset(w io.Writer) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	e.w = w
	e.column = 0
}

var errWriterNil = errors.New("writer is nil")

// Write writes the folded form of p to the underlying [io.Writer].
func (e *Encoder) Write(p []byte) (n int, err error) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return 0, errWriterNil
	}

	if len(p) == 0 {
		return 0, nil
	}

	if size := MaxLength(len(p), e.lineLength); cap(e.buf) < size {
		e.buf = make([]byte, 0, size)
	}

	e.buf = appendFolded(e.buf[:0], p, e.lineLength, e.brk, &e.column)
	if _, err := e.w.Write(e.buf); err != nil {
		return 0, err
	}

	return len(p), nil
}

// Close ends the output. Folding never holds bytes back, so nothing is
// written. It is an error to call Write after calling Close.
func (e *Encoder) Close() error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return errWriterNil
	}
	e.w = nil

	return nil
}

// Fold returns src folded at lineLength with brk before each continuation
// line.
func Fold(src []byte, lineLength int, brk Break) ([]byte, error) {
	if err := validateFold(lineLength, brk); err != nil {
		return nil, err
	}

	column := 0
	dst := make([]byte, 0, MaxLength(len(src), lineLength))

	return appendFolded(dst, src, lineLength, brk, &column), nil
}

func validateFold(lineLength int, brk Break) error {
	if lineLength < minLineLength {
		return ErrInvalidLineLength
	}
	if !brk.Valid() {
		return ErrInvalidBreak
	}
	return nil
}

// appendFolded appends src to dst, inserting brk and a space whenever the
// current physical line is full and more bytes follow.
//
// Literal breaks restart the column, so a full line never ends in a break
// character and the inserted marker is always removed whole by unfolding.
// Folds are not placed in front of a literal break.
func appendFolded(dst, src []byte, lineLength int, brk Break, column *int) []byte {
	col := *column

	for _, c := range src {
		if isBreak(c) {
			dst = append(dst, c)
			col = 0
			continue
		}

		if col >= lineLength {
			dst = append(dst, brk...)
			dst = append(dst, ' ')
			col = 1
		}

		dst = append(dst, c)
		col++
	}

	*column = col
	return dst
}
