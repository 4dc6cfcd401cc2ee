package pcrebc

// digitBytes, whitespaceBytes and wordBytes mirror the nfa package's own
// OP_DIGIT/OP_WHITESPACE/OP_WORDCHAR member sets (nfa/classes.go), so a
// \d inside a character class produces the same bitmap the nfa package
// would build for a standalone \d.
var (
	digitBytes      = byteRange('0', '9')
	whitespaceBytes = []byte{0x09, 0x0A, 0x0C, 0x0D, 0x20}
	wordBytes       = wordByteSet()
)

func byteRange(lo, hi byte) []byte {
	out := make([]byte, 0, int(hi)-int(lo)+1)
	for b := lo; ; b++ {
		out = append(out, b)
		if b == hi {
			break
		}
	}
	return out
}

func wordByteSet() []byte {
	out := append([]byte{}, digitBytes...)
	out = append(out, byteRange('A', 'Z')...)
	out = append(out, '_')
	out = append(out, byteRange('a', 'z')...)
	return out
}
