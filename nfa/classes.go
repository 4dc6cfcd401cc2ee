package nfa

// LF is the line-feed byte, the one byte OP_ANY excludes unless Dotall is set.
const LF = 0x0A

// digitSet, whitespaceSet and wordSet are the fixed POSIX-like byte sets
// backing OP_DIGIT/OP_WHITESPACE/OP_WORDCHAR and their negations
// (spec.md §4.E). They're plain byte slices rather than [256]bool masks to
// match the iteration order the original walks them in when adding
// transitions (ascending, matching the literal source ranges).
var (
	digitSet      = rangeBytes('0', '9')
	whitespaceSet = []byte{0x09, 0x0A, 0x0C, 0x0D, 0x20}
	wordSet       = wordCharSet()
)

func rangeBytes(lo, hi byte) []byte {
	out := make([]byte, 0, int(hi)-int(lo)+1)
	for b := lo; ; b++ {
		out = append(out, b)
		if b == hi {
			break
		}
	}
	return out
}

func wordCharSet() []byte {
	out := append([]byte{}, digitSet...)
	out = append(out, rangeBytes('A', 'Z')...)
	out = append(out, '_')
	out = append(out, rangeBytes('a', 'z')...)
	return out
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// swapCase returns the opposite-case ASCII letter for b. Callers must
// check isASCIIAlpha(b) first.
func swapCase(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b + ('a' - 'A')
}

// inSet reports whether b appears in set.
func inSet(set []byte, b byte) bool {
	for _, v := range set {
		if v == b {
			return true
		}
	}
	return false
}
