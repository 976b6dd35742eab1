// Package reference holds an independent unfolding implementation and the
// random inputs used to check the unfold package against it.
package reference

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

// markers are the four fold markers, longest first.
var markers = []string{"\n\r ", "\r\n ", "\n ", "\r "}

var markerRE = regexp.MustCompile("\n\r |\r\n |\n |\r ")

// Unfold removes every fold marker from s with a leftmost-first alternation.
func Unfold(s string) string {
	return markerRE.ReplaceAllLiteralString(s, "")
}

var visible = strings.NewReplacer("\r", "R", "\n", "N", " ", "_")

// Visible replaces CR, LF and SPACE with R, N and _ so that break runs can be
// told apart in diagnostics.
func Visible(s string) string {
	return visible.Replace(s)
}

const letters = "abcdefghijklmnopqrstuvwxyz"

// RandomText returns n bytes where each is CR, LF or SPACE with probability
// 1/10 and a lowercase letter otherwise.
func RandomText(rng *rand.Rand, n int) string {
	var b strings.Builder
	b.Grow(n)

	for range n {
		switch r := rng.IntN(10); r {
		case 0:
			b.WriteByte('\r')
		case 1:
			b.WriteByte('\n')
		case 2:
			b.WriteByte(' ')
		default:
			b.WriteByte(letters[rng.IntN(len(letters))])
		}
	}

	return b.String()
}

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomFolded returns between 1 and maxRuns runs of up to 30 alphanumeric
// bytes joined by randomly chosen fold markers.
func RandomFolded(rng *rand.Rand, maxRuns int) string {
	if maxRuns < 1 {
		maxRuns = 1
	}

	var b strings.Builder
	runs := 1 + rng.IntN(maxRuns)

	for i := range runs {
		if i > 0 {
			b.WriteString(markers[rng.IntN(len(markers))])
		}
		for range rng.IntN(31) {
			b.WriteByte(alphanumeric[rng.IntN(len(alphanumeric))])
		}
	}

	return b.String()
}

// Mismatch describes an input on which a decoder disagrees with [Unfold].
type Mismatch struct {
	Input    string
	Expected string
	Actual   string
}

func (m *Mismatch) String() string {
	return "input=" + Visible(m.Input) + " expected=" + Visible(m.Expected) + " actual=" + Visible(m.Actual)
}

// Check compares decode against [Unfold] on s and returns nil when they agree.
func Check(s string, decode func(string) string) *Mismatch {
	expected := Unfold(s)
	actual := decode(s)
	if actual == expected {
		return nil
	}
	return &Mismatch{Input: s, Expected: expected, Actual: actual}
}
