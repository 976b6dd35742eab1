package unfold

import (
	"io"

	"golang.org/x/text/transform"
)

// Transformer unfolds text as a [transform.Transformer]. Break characters at
// the end of a chunk are held back until the next byte decides whether they
// start a fold marker; they are written out when atEOF is set.
//
// A Transformer carries state between calls and must not be shared between
// goroutines.
type Transformer struct {
	state State
}

var _ transform.Transformer = (*Transformer)(nil)

// NewTransformer returns a [Transformer] in its initial state.
func NewTransformer() *Transformer {
	return &Transformer{}
}

func (t *Transformer) Reset() {
	t.state = StateNone
}

func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		tr := transitions[t.state][classes[c]]

		size := int(tr.flush)
		if tr.emit {
			size++
		}
		if len(dst)-nDst < size {
			return nDst, nSrc, transform.ErrShortDst
		}

		nDst += copy(dst[nDst:], t.state.pending()[:tr.flush])
		if tr.emit {
			dst[nDst] = c
			nDst++
		}
		t.state = tr.next
		nSrc++
	}

	if atEOF {
		if len(dst)-nDst < len(t.state.pending()) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += flushState(dst[nDst:], &t.state)
	}

	return nDst, nSrc, nil
}

// NewReader returns a reader that unfolds everything read from r.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, NewTransformer())
}

// NewWriter returns a writer that unfolds everything written to it before
// writing to w. Close must be called to write out trailing break characters.
func NewWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, NewTransformer())
}
