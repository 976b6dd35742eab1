package unfold

import "bytes"

// traceCursors, when set, observes the read and write cursors of
// DecodeInPlace before every step.
var traceCursors func(read, write int)

// DecodeInPlace unfolds buf in place and returns the decoded bytes, which are
// the tail of buf. No memory is allocated.
//
// buf is scanned from the end towards the start. Literal bytes are copied from
// the read cursor to the write cursor; fold markers are skipped by the read
// cursor alone. The write cursor never drops below the read cursor, so bytes
// still to be read are never overwritten.
func DecodeInPlace(buf []byte) []byte {
	if len(buf) < 2 {
		return buf
	}

	read := len(buf) - 1
	write := read

	for read >= 0 {
		if traceCursors != nil {
			traceCursors(read, write)
		}

		c := buf[read]
		if c == ' ' && read >= 1 && isBreak(buf[read-1]) {
			// Marker: the space and the nearer break, plus the earlier break
			// when the two form a \r\n or \n\r pair.
			if read >= 2 && isBreak(buf[read-2]) && buf[read-2] != buf[read-1] {
				read -= 3
			} else {
				read -= 2
			}
			continue
		}

		buf[write] = c
		read--
		write--
	}

	return buf[write+1:]
}

// DecodeBackward is like [Decode] but unfolds a copy of src with the
// in-place backward scan of [DecodeInPlace].
func DecodeBackward(src []byte) []byte {
	return DecodeInPlace(bytes.Clone(src))
}
