package unfold

import (
	"bytes"
	"errors"
	"strings"
)

var (
	ErrInvalidState = errors.New("invalid unfold state")

	errDestinationTooSmall = errors.New("destination must hold source plus pending break characters")
)

// Decode returns a copy of src with every fold marker removed.
//
// A fold marker is a line break followed by a single space. The line break is
// the last one or two break characters (CR, LF) before the space; two
// characters only count as one line break when they differ (\r\n or \n\r).
// All other bytes, including bare line breaks, are kept as they are.
func Decode(src []byte) []byte {
	if len(src) < 2 {
		return bytes.Clone(src)
	}

	dst := make([]byte, len(src))
	var state State
	n, _ := decodeGeneric(dst, src, &state)
	n += flushState(dst[n:], &state)

	return dst[:n]
}

// DecodeString is like [Decode] but for strings. Input without any break
// characters is returned as is.
func DecodeString(s string) string {
	if len(s) < 2 || strings.IndexAny(s, "\r\n") < 0 {
		return s
	}
	return string(DecodeInPlace([]byte(s)))
}

// DecodeIncremental unfolds src into dst, carrying unresolved break characters
// in state so that a fold marker split across calls is still recognised. A nil
// state starts from [StateNone] and discards what is left pending.
//
// All of src is always consumed. dst must be at least len(src) plus the
// pending characters of state; len(src)+[MaxPending] always suffices. Call
// [Flush] after the last chunk.
func DecodeIncremental(dst, src []byte, state *State) (nDst, nSrc int, err error) {
	if state == nil {
		unusedState := StateNone
		state = &unusedState
	}

	if *state < StateNone || *state >= numStates {
		return 0, 0, ErrInvalidState
	}

	if len(src) == 0 {
		return 0, 0, nil
	}

	if len(dst) < len(src)+len(state.pending()) {
		return 0, 0, errDestinationTooSmall
	}

	nDst, nSrc = decodeGeneric(dst, src, state)
	return nDst, nSrc, nil
}

// Flush writes the break characters still pending in state to dst and resets
// state. Nothing can follow them, so they can no longer be part of a fold
// marker.
func Flush(dst []byte, state *State) (int, error) {
	if state == nil {
		return 0, nil
	}

	if *state < StateNone || *state >= numStates {
		return 0, ErrInvalidState
	}

	if len(dst) < len(state.pending()) {
		return 0, errDestinationTooSmall
	}

	return flushState(dst, state), nil
}
