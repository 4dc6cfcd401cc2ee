package nfa

import (
	"testing"

	"github.com/coregx/pcrenfa/pcre"
)

// literalABC is the byte-code for the pattern "abc": an outer BRA group
// wrapping three chained OP_CHAR edges, followed by OP_END. This mirrors
// what the byte-code compiler emits for an un-anchored literal (every
// pattern is wrapped in one outer group, spec.md §3), except that the KET's
// offset field, which the Builder does not read, is left zero.
func literalABC() []byte {
	return []byte{
		byte(pcre.OP_BRA), 0, 9,
		byte(pcre.OP_CHAR), 'a',
		byte(pcre.OP_CHAR), 'b',
		byte(pcre.OP_CHAR), 'c',
		byte(pcre.OP_KET), 0, 0,
		byte(pcre.OP_END),
	}
}

func TestBuilder_BuildLiteralChain(t *testing.T) {
	b := NewBuilder(NewStateFactory(false), true)
	g, err := b.Build(literalABC(), []Option{})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if !g.Match([]byte("xxabcyy")) {
		t.Errorf("expected unanchored search to find \"abc\" within \"xxabcyy\"")
	}
	if g.Match([]byte("xxabdyy")) {
		t.Errorf("expected no match for \"xxabdyy\"")
	}
}

func TestBuilder_CaselessOptionMatchesBothCases(t *testing.T) {
	b := NewBuilder(NewStateFactory(false), true)
	g, err := b.Build(literalABC(), []Option{Caseless})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if !g.Match([]byte("ABC")) {
		t.Errorf("expected caseless match against \"ABC\"")
	}
	if !g.Match([]byte("aBc")) {
		t.Errorf("expected caseless match against mixed-case \"aBc\"")
	}
}

// anchoredA is "^a": an outer BRA group (every pattern is wrapped in one,
// spec.md §3) containing OP_CIRC followed by a single OP_CHAR edge, then
// OP_END. The wrapper is required because Build only invokes the top-level
// dispatcher once; concatenating multiple opcodes needs OP_BRA's own
// body loop to chain them.
func anchoredA() []byte {
	return []byte{
		byte(pcre.OP_BRA), 0, 6,
		byte(pcre.OP_CIRC),
		byte(pcre.OP_CHAR), 'a',
		byte(pcre.OP_KET), 0, 0,
		byte(pcre.OP_END),
	}
}

func TestBuilder_CircAnchorsStart(t *testing.T) {
	b := NewBuilder(NewStateFactory(false), true)
	g, err := b.Build(anchoredA(), []Option{})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if !g.Match([]byte("a-tail")) {
		t.Errorf("expected anchored match at start of input")
	}
	if g.Match([]byte("xa")) {
		t.Errorf("expected anchored pattern to reject a shifted occurrence")
	}
}

// starA is "a*": OP_STAR on 'a', then OP_END.
func starA() []byte {
	return []byte{
		byte(pcre.OP_STAR), 'a',
		byte(pcre.OP_END),
	}
}

func TestBuilder_StarMatchesZeroOrMore(t *testing.T) {
	b := NewBuilder(NewStateFactory(false), false)
	g, err := b.Build(starA(), []Option{})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if !g.Match([]byte("")) {
		t.Errorf("expected a* to match zero occurrences")
	}
	if !g.Match([]byte("aaaa")) {
		t.Errorf("expected a* to match many occurrences")
	}
}

func TestBuilder_StarCaselessSelfLoopAcceptsBothCases(t *testing.T) {
	// Regression: the self-loop installed by opStar must carry both the
	// stated byte and its case-swap, matching opPlus/opQuery's behavior,
	// so that "AAaa" is fully consumed rather than stopping after the
	// first case run.
	b := NewBuilder(NewStateFactory(false), false)
	g, err := b.Build(starA(), []Option{Caseless})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if !g.Match([]byte("AAaa")) {
		t.Errorf("expected caseless a* self-loop to accept mixed-case runs")
	}
	// a* accepts before the first byte, so Match alone cannot see the loop;
	// check the tail's self-loop edges directly.
	tail := g.State(g.Accept())
	for _, sym := range []int{'a', 'A'} {
		if tx := tail.Tx(sym); len(tx) != 1 || tx[0] != g.Accept() {
			t.Errorf("expected caseless a* tail to loop on %q, got %v", rune(sym), tx)
		}
	}
}

func TestBuilder_UnknownOpcodeIsFatal(t *testing.T) {
	b := NewBuilder(NewStateFactory(false), true)
	_, err := b.Build([]byte{0xFF}, []Option{})
	if err == nil {
		t.Fatalf("expected an error for an unrecognized opcode")
	}
}
