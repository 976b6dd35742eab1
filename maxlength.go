package unfold

// MaxLength returns the maximum possible length of folded output, given an
// input of length bytes folded at lineLength.
func MaxLength(length, lineLength int) int {
	if lineLength < minLineLength {
		lineLength = minLineLength
	}

	// every continuation line carries lineLength-1 input bytes after its
	// marker; one extra fold for a column carried over from a previous write
	folds := 1 + length/(lineLength-1)

	return length + folds*(len(CRLF)+1)
}
