package pcrenfa

import (
	"fmt"

	"github.com/coregx/pcrenfa/nfa"
	"github.com/coregx/pcrenfa/prefilter"
)

// Regex is a compiled pattern: the NFA graph it built, the literal it was
// compiled from, and — when one could be extracted — a literal-prefix
// prefilter used to short-circuit obvious non-matches ahead of simulation.
//
// A Regex is safe for concurrent Match/MatchString calls — simulation
// never mutates the graph — but not for anything that would rebuild it.
//
// Example:
//
//	re := pcrenfa.MustCompile(`/[0-9]+/`)
//	if re.MatchString("room 42") {
//	    println("matched!")
//	}
type Regex struct {
	graph   *nfa.Graph
	literal string
	pf      *prefilter.LiteralPrefilter
}

// Compile compiles a regex literal (optional /pattern/flags form, see
// compileGraph) using package-level defaults (WithStats).
//
// Compile never returns a non-nil error for a pattern the internal
// byte-code compiler rejects — per spec.md §7's ExternalCompileFailure
// policy, a rejected pattern instead compiles to a non-matching Regex.
// The error return exists for parity with CompileWithConfig and is
// reserved for configuration failures.
func Compile(literal string) (*Regex, error) {
	return CompileWithConfig(literal, DefaultConfig())
}

// CompileWithConfig compiles literal under an explicit Config.
func CompileWithConfig(literal string, cfg Config) (*Regex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(literal) > cfg.MaxPatternLen {
		return nil, &ConfigError{Field: "MaxPatternLen", Message: fmt.Sprintf("pattern length %d exceeds limit", len(literal))}
	}
	graph, code := compileGraph(literal, cfg.Stats)
	re := &Regex{graph: graph, literal: literal}
	// The extracted literal is matched byte-for-byte, so it's only sound
	// to use as a prefilter when the pattern isn't case-insensitive: under
	// Caseless, "abc" is no longer a required substring of every match
	// (e.g. /ABC/i accepts "abc").
	if code != nil && !graph.HasOption(nfa.Caseless) {
		if prefix, ok := prefilter.ExtractPrefix(code); ok {
			if pf, err := prefilter.New(prefix); err == nil {
				re.pf = pf
			}
		}
	}
	return re, nil
}

// MustCompile compiles literal and panics if compilation fails. It's
// intended for patterns known to be valid at init time.
//
// Example:
//
//	var portPattern = pcrenfa.MustCompile(`/^[0-9]{2,5}$/`)
func MustCompile(literal string) *Regex {
	re, err := Compile(literal)
	if err != nil {
		panic("pcrenfa: Compile(" + literal + "): " + err.Error())
	}
	return re
}

// Match reports whether b contains a match of the pattern, under the
// prefix-match semantics documented in spec.md §9 (open question 3): a
// match is found as soon as the accept state is reachable, before the
// remainder of b is consumed. Combined with the implicit unanchored-search
// self-loop, this gives PCRE "search" rather than "fullmatch" behavior.
func (r *Regex) Match(b []byte) bool {
	if r.pf != nil && !r.pf.CouldMatch(b) {
		return false
	}
	return r.graph.Match(b)
}

// MatchString reports whether s contains a match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// MatchRunes reports whether the rune sequence rs contains a match,
// reducing each code point to its low byte (spec.md §6, "Match input").
// Callers are responsible for values fitting in a byte; see
// nfa.Graph.MatchRunes.
func (r *Regex) MatchRunes(rs []rune) bool {
	return r.graph.MatchRunes(rs)
}

// String returns the literal the Regex was compiled from.
func (r *Regex) String() string {
	return r.literal
}

// Graph exposes the underlying NFA graph, for callers that need
// NumStates, Serialize, CalculateDepth or other introspection spec.md's
// NFA Graph component provides.
func (r *Regex) Graph() *nfa.Graph {
	return r.graph
}
