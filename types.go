package unfold

// State is the pending-break state of the unfolder, the values refer to the
// break characters seen since the last non-break character that have not yet
// been emitted or consumed into a fold marker.
//
// The shorthands represent:
// CR (\r), LF (\n)
type State int

const (
	StateNone State = 0 // default
	StateCR   State = 1
	StateLF   State = 2
	StateCRLF State = 3
	StateLFCR State = 4
)

// MaxPending is the largest number of break characters a State can hold.
const MaxPending = 2

var stateNames = [...]string{
	StateNone: "None",
	StateCR:   "CR",
	StateLF:   "LF",
	StateCRLF: "CRLF",
	StateLFCR: "LFCR",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Invalid"
	}
	return stateNames[s]
}

// pending returns the break characters held by s, oldest first.
func (s State) pending() string {
	switch s {
	case StateCR:
		return "\r"
	case StateLF:
		return "\n"
	case StateCRLF:
		return "\r\n"
	case StateLFCR:
		return "\n\r"
	default:
		return ""
	}
}

type class uint8

const (
	classOther class = iota
	classSpace
	classCR
	classLF
	numClasses
)

const numStates = StateLFCR + 1

var classes = func() (t [256]class) {
	t['\r'] = classCR
	t['\n'] = classLF
	t[' '] = classSpace
	return t
}()

func isBreak(c byte) bool {
	return c == '\r' || c == '\n'
}
