package prefilter

import (
	"testing"

	"github.com/coregx/pcrenfa/pcre"
)

// braHeader builds an OP_BRA header (opcode + 2-byte offset) pointing past
// bodyLen bytes of body that follow it.
func braHeader(bodyLen int) []byte {
	ketPos := 3 + bodyLen
	return []byte{byte(pcre.OP_BRA), byte(ketPos >> 8), byte(ketPos)}
}

func TestExtractPrefix_LeadingLiteralRun(t *testing.T) {
	body := []byte{
		byte(pcre.OP_CHAR), 'a',
		byte(pcre.OP_CHAR), 'b',
		byte(pcre.OP_CHAR), 'c',
	}
	code := append(braHeader(len(body)), body...)
	prefix, ok := ExtractPrefix(code)
	if !ok {
		t.Fatalf("expected a prefix to be extracted")
	}
	if string(prefix) != "abc" {
		t.Errorf("expected prefix \"abc\", got %q", prefix)
	}
}

func TestExtractPrefix_StopsAtNonCharOpcode(t *testing.T) {
	body := []byte{
		byte(pcre.OP_CHAR), 'a',
		byte(pcre.OP_STAR), 'b',
	}
	code := append(braHeader(len(body)), body...)
	prefix, ok := ExtractPrefix(code)
	if !ok {
		t.Fatalf("expected a prefix to be extracted")
	}
	if string(prefix) != "a" {
		t.Errorf("expected prefix \"a\", got %q", prefix)
	}
}

func TestExtractPrefix_NoLiteralPrefixReturnsFalse(t *testing.T) {
	body := []byte{byte(pcre.OP_STAR), 'a'}
	code := append(braHeader(len(body)), body...)
	if _, ok := ExtractPrefix(code); ok {
		t.Errorf("expected no prefix when the pattern doesn't start with a literal")
	}
}

func TestExtractPrefix_RejectsNonBraHeader(t *testing.T) {
	if _, ok := ExtractPrefix([]byte{byte(pcre.OP_CHAR), 'a'}); ok {
		t.Errorf("expected ExtractPrefix to require a leading OP_BRA header")
	}
}

func TestExtractPrefix_BailsOutOnTopLevelAlternation(t *testing.T) {
	// "abc|xyz": the leading OP_CHAR run ("abc") belongs to only the first
	// branch, not every match, so no prefix should be extracted at all.
	body := []byte{
		byte(pcre.OP_CHAR), 'a',
		byte(pcre.OP_CHAR), 'b',
		byte(pcre.OP_CHAR), 'c',
		byte(pcre.OP_ALT), 0, 0,
		byte(pcre.OP_CHAR), 'x',
		byte(pcre.OP_CHAR), 'y',
		byte(pcre.OP_CHAR), 'z',
	}
	code := append(braHeader(len(body)), body...)
	if _, ok := ExtractPrefix(code); ok {
		t.Errorf("expected no prefix to be extracted across a top-level alternation")
	}
}

func TestLiteralPrefilter_CouldMatch(t *testing.T) {
	pf, err := New([]byte("abc"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pf.CouldMatch([]byte("xxabcyy")) {
		t.Errorf("expected CouldMatch to find \"abc\" within \"xxabcyy\"")
	}
	if pf.CouldMatch([]byte("no prefix here")) {
		t.Errorf("expected CouldMatch to reject input without the literal")
	}
}
