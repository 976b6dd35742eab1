package unfold

import (
	"bytes"
	"errors"
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/mnightingale/unfold/internal/reference"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestDecoder(t *testing.T) {
	readers := []struct {
		name string
		wrap func(io.Reader) io.Reader
	}{
		{"plain", func(r io.Reader) io.Reader { return r }},
		{"one byte", iotest.OneByteReader},
		{"half", iotest.HalfReader},
		{"data with EOF", iotest.DataErrReader},
	}

	for _, rd := range readers {
		t.Run(rd.name, func(t *testing.T) {
			for _, tc := range decodeCases {
				dec := NewDecoder(rd.wrap(strings.NewReader(tc.raw)), WithBufferSize(3))
				b := bytes.NewBuffer(nil)
				n, err := dec.WriteTo(b)
				require.NoError(t, err, tc.name)
				require.Equal(t, int64(len(tc.expected)), n, tc.name)
				require.Equal(t, tc.expected, b.String(), tc.name)
			}
		})
	}
}

func TestDecoderLarge(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	in := reference.RandomText(rng, 200*1024)

	dec := NewDecoder(strings.NewReader(in))
	b := bytes.NewBuffer(nil)
	n, err := dec.WriteTo(b)
	require.NoError(t, err)
	require.Equal(t, int64(b.Len()), n)
	require.Equal(t, reference.Unfold(in), b.String())
}

func TestDecoderReset(t *testing.T) {
	dec := NewDecoder(strings.NewReader("a\r"))
	b := bytes.NewBuffer(nil)
	_, err := dec.WriteTo(b)
	require.NoError(t, err)
	require.Equal(t, "a\r", b.String())

	b.Reset()
	dec.Reset(strings.NewReader(" b\n c"))
	n, err := dec.WriteTo(b)
	require.NoError(t, err)
	require.Equal(t, " bc", b.String())
	require.Equal(t, int64(3), n)
}

var errBoom = errors.New("boom")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errBoom
}

func TestDecoderErrors(t *testing.T) {
	_, err := NewDecoder(nil).WriteTo(io.Discard)
	require.ErrorIs(t, err, errReaderNil)

	_, err = NewDecoder(iotest.ErrReader(errBoom)).WriteTo(io.Discard)
	require.ErrorIs(t, err, errBoom)

	_, err = NewDecoder(strings.NewReader("abc")).WriteTo(failingWriter{})
	require.ErrorIs(t, err, errBoom)

	// failing on the trailing break flush
	_, err = NewDecoder(strings.NewReader("\n")).WriteTo(failingWriter{})
	require.ErrorIs(t, err, errBoom)
}

func TestTransformer(t *testing.T) {
	for _, tc := range decodeCases {
		t.Run(tc.name, func(t *testing.T) {
			out, n, err := transform.String(NewTransformer(), tc.raw)
			require.NoError(t, err)
			require.Equal(t, len(tc.raw), n)
			require.Equal(t, tc.expected, out)
		})
	}
}

func TestTransformerShortDst(t *testing.T) {
	cases := []string{"X\r\nY", "X\n\r\rY", "ab\r\n", "a\n b"}

	for _, raw := range cases {
		tr := NewTransformer()
		src := []byte(raw)
		dst := make([]byte, 3)
		var out []byte

		for {
			nDst, nSrc, err := tr.Transform(dst, src, true)
			out = append(out, dst[:nDst]...)
			src = src[nSrc:]
			if err == nil {
				break
			}
			require.ErrorIs(t, err, transform.ErrShortDst)
		}

		require.Equal(t, reference.Unfold(raw), string(out), reference.Visible(raw))
	}

	// a full pending pair and the next byte do not fit in 2 bytes
	tr := NewTransformer()
	nDst, nSrc, err := tr.Transform(make([]byte, 2), []byte("\r\na"), false)
	require.ErrorIs(t, err, transform.ErrShortDst)
	require.Equal(t, 0, nDst)
	require.Equal(t, 2, nSrc)
}

func TestTransformerReset(t *testing.T) {
	tr := NewTransformer()
	dst := make([]byte, 8)
	_, _, err := tr.Transform(dst, []byte("a\r"), false)
	require.NoError(t, err)
	require.Equal(t, StateCR, tr.state)

	tr.Reset()
	nDst, _, err := tr.Transform(dst, []byte(" b"), true)
	require.NoError(t, err)
	require.Equal(t, " b", string(dst[:nDst]))
}

func TestNewReader(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	in := reference.RandomText(rng, 64*1024)

	out, err := io.ReadAll(NewReader(iotest.HalfReader(strings.NewReader(in))))
	require.NoError(t, err)
	require.Equal(t, reference.Unfold(in), string(out))
}

func TestNewWriter(t *testing.T) {
	b := bytes.NewBuffer(nil)
	w := NewWriter(b)

	for _, chunk := range []string{"X\r", "\n", " Y", "\n\n", " Z\r"} {
		_, err := w.Write([]byte(chunk))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.Equal(t, "XY\nZ\r", b.String())
}
