package pcrenfa

import "testing"

func TestSplitLiteral_BareLiteralHasNoFlags(t *testing.T) {
	pattern, flags := splitLiteral("abc")
	if pattern != "abc" || flags != "" {
		t.Errorf("expected (\"abc\", \"\"), got (%q, %q)", pattern, flags)
	}
}

func TestSplitLiteral_DelimitedWithFlags(t *testing.T) {
	pattern, flags := splitLiteral("/ABC/i")
	if pattern != "ABC" || flags != "i" {
		t.Errorf("expected (\"ABC\", \"i\"), got (%q, %q)", pattern, flags)
	}
}

func TestSplitLiteral_DelimitedNoFlags(t *testing.T) {
	pattern, flags := splitLiteral("/foo/")
	if pattern != "foo" || flags != "" {
		t.Errorf("expected (\"foo\", \"\"), got (%q, %q)", pattern, flags)
	}
}

func TestSplitLiteral_SlashWithNoClosingDelimiter(t *testing.T) {
	// A lone leading '/' with no other '/' in the string: last == 0, the
	// whole remainder is the pattern with no flags.
	pattern, flags := splitLiteral("/abc")
	if pattern != "abc" || flags != "" {
		t.Errorf("expected (\"abc\", \"\"), got (%q, %q)", pattern, flags)
	}
}

func TestOptionsFor_ForwardsEveryFlagLetter(t *testing.T) {
	// Unrecognized flag letters are still forwarded into the option list,
	// per spec.md §4.F's documented asymmetry with the bit-mask.
	opts := optionsFor("ixq")
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	want := "ixq"
	for i, o := range opts {
		if byte(o) != want[i] {
			t.Errorf("option %d: expected %q, got %q", i, want[i], byte(o))
		}
	}
}

func TestCompileGraph_InvalidPatternIsNonMatching(t *testing.T) {
	g, code := compileGraph("(unterminated", false)
	if code != nil {
		t.Errorf("expected nil code on compiler failure")
	}
	if g.Match([]byte("unterminated")) {
		t.Errorf("expected a non-matching graph for an invalid pattern")
	}
}

func TestCompileGraph_ReturnsCompiledByteCode(t *testing.T) {
	_, code := compileGraph("abc", false)
	if code == nil {
		t.Fatalf("expected non-nil byte-code for a valid pattern")
	}
}
