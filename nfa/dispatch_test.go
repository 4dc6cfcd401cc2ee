package nfa

import (
	"testing"

	"github.com/coregx/pcrenfa/pcre"
)

// classABC is a bare OP_CLASS matching any of 'a', 'b', 'c', followed by
// OP_END (OP_CLASS always reads one opcode past its bitmap to check for a
// CR*-suffixed quantifier, even when none is present).
func classABC() []byte {
	code := make([]byte, 1+classBitmapLen+1)
	code[0] = byte(pcre.OP_CLASS)
	setBit := func(b byte) { code[1+b>>3] |= 1 << uint(b&7) }
	setBit('a')
	setBit('b')
	setBit('c')
	code[len(code)-1] = byte(pcre.OP_END)
	return code
}

func TestDispatch_BareClassMatchesMembers(t *testing.T) {
	b := NewBuilder(NewStateFactory(false), false)
	g, err := b.Build(classABC(), []Option{})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if !g.Match([]byte("b")) {
		t.Errorf("expected class [abc] to match 'b'")
	}
	if g.Match([]byte("d")) {
		t.Errorf("expected class [abc] to reject 'd'")
	}
}

// digitCode is a bare OP_DIGIT followed by OP_END, exercising opDigit
// directly as the sole top-level opcode.
func digitCode() []byte {
	return []byte{byte(pcre.OP_DIGIT), byte(pcre.OP_END)}
}

func TestDispatch_DigitShorthand(t *testing.T) {
	b := NewBuilder(NewStateFactory(false), false)
	g, err := b.Build(digitCode(), []Option{})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if !g.Match([]byte("5")) {
		t.Errorf("expected \\d to match a digit")
	}
	if g.Match([]byte("x")) {
		t.Errorf("expected \\d to reject a non-digit")
	}
}

func TestDispatch_AnyMatchesAnyByte(t *testing.T) {
	b := NewBuilder(NewStateFactory(false), false)
	g, err := b.Build([]byte{byte(pcre.OP_ANY), byte(pcre.OP_END)}, []Option{})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if !g.Match([]byte("x")) {
		t.Errorf("expected . to match an ordinary byte")
	}
	if g.Match([]byte("\n")) {
		t.Errorf("expected . without Dotall to reject a newline")
	}
}

func TestDispatch_AllAnyFollowsDotallLikeAny(t *testing.T) {
	b := NewBuilder(NewStateFactory(false), false)
	g, err := b.Build([]byte{byte(pcre.OP_ALLANY), byte(pcre.OP_END)}, []Option{})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if g.Match([]byte("\n")) {
		t.Errorf("expected OP_ALLANY without Dotall to reject a newline, like OP_ANY")
	}

	bs := NewBuilder(NewStateFactory(false), false)
	gs, err := bs.Build([]byte{byte(pcre.OP_ALLANY), byte(pcre.OP_END)}, []Option{Dotall})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if !gs.Match([]byte("\n")) {
		t.Errorf("expected OP_ALLANY under Dotall to match a newline")
	}
}
