package pcrenfa

import (
	"testing"

	"github.com/coregx/pcrenfa/nfa"
)

// The following mirror the concrete end-to-end scenarios named in spec.md.

func TestRegex_PlainLiteralSearch(t *testing.T) {
	re, err := Compile("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !re.MatchString("xxabcyy") {
		t.Errorf("expected \"abc\" to match within \"xxabcyy\"")
	}
	if re.MatchString("abd") {
		t.Errorf("expected \"abc\" not to match \"abd\"")
	}
}

func TestRegex_CaselessFlag(t *testing.T) {
	re, err := Compile("/ABC/i")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !re.MatchString("abc") {
		t.Errorf("expected caseless match against \"abc\"")
	}
	if !re.MatchString("aBc") {
		t.Errorf("expected caseless match against \"aBc\"")
	}
	if re.MatchString("abd") {
		t.Errorf("expected no match against \"abd\"")
	}
}

func TestRegex_StartAnchor(t *testing.T) {
	re, err := Compile("^foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !re.MatchString("foobar") {
		t.Errorf("expected \"^foo\" to match \"foobar\"")
	}
	if re.MatchString("xfoobar") {
		t.Errorf("expected \"^foo\" to reject \"xfoobar\"")
	}
}

func TestRegex_DotExcludesNewlineUnlessDotall(t *testing.T) {
	re, err := Compile("a.b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if re.MatchString("a\nb") {
		t.Errorf("expected \"a.b\" without Dotall to reject a newline")
	}

	reS, err := Compile("/a.b/s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reS.MatchString("a\nb") {
		t.Errorf("expected \"/a.b/s\" to match across a newline")
	}
}

func TestRegex_BoundedRepetition(t *testing.T) {
	re, err := Compile("a{2,4}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if re.MatchString("a") {
		t.Errorf("expected a{2,4} to reject a single 'a'")
	}
	if !re.MatchString("aa") {
		t.Errorf("expected a{2,4} to accept \"aa\"")
	}
	if !re.MatchString("aaaa") {
		t.Errorf("expected a{2,4} to accept \"aaaa\"")
	}
	if !re.MatchString("aaaaa") {
		t.Errorf("expected a{2,4} to accept a prefix match within \"aaaaa\"")
	}
}

func TestRegex_CaselessDisablesLiteralPrefilter(t *testing.T) {
	// Regression: the literal prefilter used to be built from the raw,
	// case-sensitive OP_CHAR bytes even under /i, so "ABC" never matched
	// "abc" because the prefilter rejected it before the NFA ever ran.
	re, err := Compile("/ABC/i")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if re.Graph().HasOption(nfa.Caseless) == false {
		t.Fatalf("expected the compiled graph to carry the Caseless option")
	}
	if !re.Match([]byte("xxabcyy")) {
		t.Errorf("expected /ABC/i to match \"xxabcyy\" via Match, not just MatchString")
	}
}

func TestRegex_AlternationMatchesEitherBranchThroughPrefilter(t *testing.T) {
	// Regression: ExtractPrefix used to read only the first branch's
	// literal run and treat it as required by every match, so "xyz" was
	// rejected by the prefilter even though "abc|xyz" accepts it.
	re, err := Compile("abc|xyz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !re.MatchString("xyz") {
		t.Errorf("expected \"abc|xyz\" to match \"xyz\"")
	}
	if !re.MatchString("abc") {
		t.Errorf("expected \"abc|xyz\" to match \"abc\"")
	}
}

func TestRegex_UnanchoredClassPlusSearch(t *testing.T) {
	re, err := Compile("[0-9]+")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !re.MatchString("room 42") {
		t.Errorf("expected [0-9]+ to find a digit run within \"room 42\"")
	}
	if re.MatchString("no digits here") {
		t.Errorf("expected [0-9]+ to reject input with no digits")
	}

	single, err := Compile("[0-9]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if single.Graph().NumStates() > re.Graph().NumStates() {
		t.Errorf("expected [0-9]+ to allocate at least as many states as [0-9] (self-loop tail)")
	}
}

func TestCompileWithConfig_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPatternLen = 0
	if _, err := CompileWithConfig("abc", cfg); err == nil {
		t.Fatalf("expected CompileWithConfig to reject MaxPatternLen=0")
	}
}

func TestCompileWithConfig_RejectsPatternLongerThanLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPatternLen = 3
	if _, err := CompileWithConfig("abcdef", cfg); err == nil {
		t.Fatalf("expected CompileWithConfig to reject a pattern longer than MaxPatternLen")
	}
}

func TestRegex_StringReturnsOriginalLiteral(t *testing.T) {
	re := MustCompile("/foo/i")
	if re.String() != "/foo/i" {
		t.Errorf("expected String() to return the original literal, got %q", re.String())
	}
}

func TestRegex_MatchRunes(t *testing.T) {
	re := MustCompile("ab")
	if !re.MatchRunes([]rune("xxabyy")) {
		t.Errorf("expected MatchRunes to find \"ab\" within \"xxabyy\"")
	}
}

func TestRegex_InvalidPatternCompilesNonMatchingNotError(t *testing.T) {
	// spec.md's ExternalCompileFailure policy: Compile never errors on a
	// rejected pattern, it returns a Regex that simply never matches.
	re, err := Compile("(unterminated")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if re.MatchString("unterminated") {
		t.Errorf("expected a non-matching Regex for an invalid pattern")
	}
}
