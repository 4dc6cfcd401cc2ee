// Package prefilter extracts a required literal prefix from compiled PCRE
// byte-code and uses it to reject non-matching input before the full NFA
// simulation runs, the way the teacher engine's meta package uses
// github.com/coregx/ahocorasick ahead of its DFA/NFA engines for patterns
// with strong literal prefixes.
//
// This is a pure performance layer: skipping it never changes the verdict,
// since every accepted input must contain the extracted literal as a
// substring (it comes from a run of mandatory OP_CHAR edges at the very
// start of the pattern's single branch, before any alternation). The
// extraction only fires under case-sensitive matching and bails out of a
// top-level alternation entirely (see ExtractPrefix) so that soundness
// claim holds unconditionally for whatever prefilter gets built.
package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/pcrenfa/pcre"
)

// ExtractPrefix scans the outermost group's body for a leading run of
// mandatory OP_CHAR bytes — the literal text any match of the pattern must
// begin with, once the implicit unanchored self-loop has found a start
// position. It stops at the first opcode that isn't a plain OP_CHAR (a
// quantifier, class, group, or anchor), since none of those guarantee a
// fixed byte at that position.
//
// If the outer group has a second branch (its header offset points at an
// OP_ALT, or the run stops at an OP_ALT), the run collected so far is only
// the first branch's literal, not one every match must contain (e.g.
// "abc|xyz" matches "xyz" with no "abc" in sight, and "ab*|x" matches "x") —
// ExtractPrefix bails out and returns (nil, false) rather than extract an
// unsound prefix.
//
// code is expected in the format nfa.Builder consumes: an outer
// OP_BRA/offset header, then the pattern body. Returns (nil, false) if no
// literal prefix of at least one byte could be extracted.
func ExtractPrefix(code []byte) ([]byte, bool) {
	if len(code) < 3 || pcre.Opcode(code[0]) != pcre.OP_BRA {
		return nil, false
	}
	// The outer BRA's offset points at its first delimiter; an OP_ALT there
	// means the pattern has more than one top-level branch.
	if next := int(code[1])<<8 | int(code[2]); next < len(code) && pcre.Opcode(code[next]) == pcre.OP_ALT {
		return nil, false
	}
	cp := 3 // past the OP_BRA header (opcode + 2-byte offset)
	var prefix []byte
	for cp < len(code) && pcre.Opcode(code[cp]) == pcre.OP_CHAR {
		if cp+1 >= len(code) {
			break
		}
		prefix = append(prefix, code[cp+1])
		cp += 2
	}
	// A top-level OP_ALT means the run of OP_CHAR bytes collected so far
	// belongs to only the first branch: it isn't a prefix every match is
	// required to contain, since other branches can match without it.
	if cp < len(code) && pcre.Opcode(code[cp]) == pcre.OP_ALT {
		return nil, false
	}
	if len(prefix) == 0 {
		return nil, false
	}
	return prefix, true
}

// LiteralPrefilter wraps an Aho-Corasick automaton over one or more
// required literal prefixes.
type LiteralPrefilter struct {
	automaton *ahocorasick.Automaton
}

// New builds a LiteralPrefilter over literals. Returns an error if the
// automaton fails to build (e.g. no literals supplied).
func New(literals ...[]byte) (*LiteralPrefilter, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &LiteralPrefilter{automaton: auto}, nil
}

// CouldMatch reports whether haystack might contain a match: false here is
// a proof the pattern cannot match, true means the caller must still run
// the full NFA simulation to get an authoritative verdict.
func (f *LiteralPrefilter) CouldMatch(haystack []byte) bool {
	return f.automaton.Find(haystack, 0) != nil
}
