// Package unfold removes fold markers from text folded by line-wrapping
// formats such as LDIF and MIME headers, and folds long lines the same way.
//
// A fold marker is a line break (CR, LF, CR LF or LF CR) immediately followed
// by a single space. Unfolding deletes the break and the space and leaves
// every other byte, including line breaks not followed by a space, untouched:
//
//	unfold.DecodeString("dn: cn=foo,\r\n dc=example") // "dn: cn=foo,dc=example"
//	unfold.DecodeString("a\n\n b")                   // "a\nb"
//
// When two identical break characters precede the space (CR CR or LF LF),
// only the nearer one belongs to the marker; the earlier one is kept.
//
// [Decode] scans forwards, [DecodeInPlace] compacts a buffer backwards
// without allocating, and [DecodeIncremental], [Decoder] and [Transformer]
// unfold streams whose fold markers may be split across reads. All functions
// are safe for concurrent use on distinct inputs.
package unfold
