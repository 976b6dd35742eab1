package unfold

// Break is the line break a folded line ends with.
type Break string

// Constants for use when folding. If you don't know what to pick, choose CRLF.
const (
	CRLF Break = "\r\n"
	LF   Break = "\n"
	CR   Break = "\r"
	LFCR Break = "\n\r"
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}

// Valid reports whether b is one of the breaks that unfolding removes
// entirely when followed by a space.
func (b Break) Valid() bool {
	switch b {
	case CRLF, LF, CR, LFCR:
		return true
	}
	return false
}
