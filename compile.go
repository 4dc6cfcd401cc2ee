// Package pcrenfa implements a PCRE byte-code-driven NFA: a Thompson
// construction over compiled PCRE opcodes, simulated directly (no DFA
// determinization, no submatch tracking) for a single yes/no verdict per
// spec.md §1–§2.
package pcrenfa

import (
	"strings"

	"github.com/coregx/pcrenfa/internal/pcrebc"
	"github.com/coregx/pcrenfa/nfa"
)

// compileGraph parses a regex literal in optional /pattern/flags form,
// invokes the (in this module, internal) PCRE byte-code compiler, and
// builds an NFA from the result.
//
// If the first character isn't '/', the entire input is the pattern with no
// flags. Otherwise, flags is the substring after the *last* '/': only
// letters present in pcre.OptionMap ({i,m,s}) contribute to the bit-mask
// that would be handed to an external byte-code compiler, but every flag
// letter — recognized or not — is still forwarded into the option list the
// nfa.Builder sees, matching the asymmetry spec.md §4.F calls out
// explicitly.
//
// On any failure from the byte-code compiler, compileGraph does not
// propagate the error: it returns an nfa.NonMatching() graph, per spec.md
// §7's ExternalCompileFailure policy (SPEC_FULL.md §5 traces this to the
// original's broad swallow-all exception handler, replaced here with an
// explicit, named result instead of exception-driven control flow).
func compileGraph(literal string, stats bool) (*nfa.Graph, []byte) {
	pattern, flags := splitLiteral(literal)
	code, err := pcrebc.Compile(pattern)
	if err != nil {
		return nfa.NonMatching(), nil
	}
	options := optionsFor(flags)
	b := nfa.NewBuilder(nfa.NewStateFactory(stats), true)
	g, err := b.Build(code, options)
	if err != nil {
		return nfa.NonMatching(), nil
	}
	return g, code
}

// splitLiteral extracts pattern and flags from a /pattern/flags literal.
func splitLiteral(literal string) (pattern, flags string) {
	if len(literal) == 0 || literal[0] != '/' {
		return literal, ""
	}
	last := strings.LastIndexByte(literal, '/')
	if last == 0 {
		return literal[1:], ""
	}
	return literal[1:last], literal[last+1:]
}

// optionsFor converts every flag letter into an nfa.Option, including
// letters the bit-mask ignores (spec.md §4.F).
func optionsFor(flags string) []nfa.Option {
	options := make([]nfa.Option, 0, len(flags))
	for i := 0; i < len(flags); i++ {
		options = append(options, nfa.Option(flags[i]))
	}
	return options
}
