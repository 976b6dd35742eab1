package unfold

// transition is one entry of the unfolding state machine. On a byte of a given
// class in a given state, the first flush pending break characters are
// emitted literally, then the byte itself when emit is set, and the machine
// moves to next.
//
// A SPACE in any state holding breaks is the fold marker: nothing is emitted
// and the marker consumes whatever is still pending.
type transition struct {
	next  State
	flush uint8
	emit  bool
}

var transitions = [numStates][numClasses]transition{
	StateNone: {
		classOther: {StateNone, 0, true},
		classSpace: {StateNone, 0, true},
		classCR:    {StateCR, 0, false},
		classLF:    {StateLF, 0, false},
	},
	StateCR: {
		classOther: {StateNone, 1, true},
		classSpace: {StateNone, 0, false},
		classCR:    {StateCR, 1, false}, // \r\r: the older \r is literal
		classLF:    {StateCRLF, 0, false},
	},
	StateLF: {
		classOther: {StateNone, 1, true},
		classSpace: {StateNone, 0, false},
		classCR:    {StateLFCR, 0, false},
		classLF:    {StateLF, 1, false}, // \n\n: the older \n is literal
	},
	StateCRLF: {
		classOther: {StateNone, 2, true},
		classSpace: {StateNone, 0, false},
		classCR:    {StateLFCR, 1, false}, // \r\n\r keeps \n\r
		classLF:    {StateLF, 2, false},   // \r\n\n keeps \n
	},
	StateLFCR: {
		classOther: {StateNone, 2, true},
		classSpace: {StateNone, 0, false},
		classCR:    {StateCR, 2, false},   // \n\r\r keeps \r
		classLF:    {StateCRLF, 1, false}, // \n\r\n keeps \r\n
	},
}

// indexBreak returns the index of the first CR or LF in b, or -1.
func indexBreak(b []byte) int {
	for i, c := range b {
		if isBreak(c) {
			return i
		}
	}
	return -1
}

// decodeGeneric is the forward streaming unfolder. It consumes all of src,
// writing literal bytes to dst, and leaves unresolved break characters in
// state for the next call or for flushState.
//
// dst must hold len(src) plus the pending bytes of *state.
func decodeGeneric(dst, src []byte, state *State) (nDst, nSrc int) {
	s := *state

	for nSrc < len(src) {
		if s == StateNone {
			// Nothing pending: everything up to the next break is literal.
			run := src[nSrc:]
			if i := indexBreak(run); i >= 0 {
				run = run[:i]
			}
			nDst += copy(dst[nDst:], run)
			nSrc += len(run)
			if nSrc == len(src) {
				break
			}
		}

		c := src[nSrc]
		t := transitions[s][classes[c]]
		nDst += copy(dst[nDst:], s.pending()[:t.flush])
		if t.emit {
			dst[nDst] = c
			nDst++
		}
		s = t.next
		nSrc++
	}

	*state = s
	return nDst, nSrc
}

// flushState emits the pending break characters of *state literally and
// resets it.
func flushState(dst []byte, state *State) int {
	n := copy(dst, state.pending())
	*state = StateNone
	return n
}
