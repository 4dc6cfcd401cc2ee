// Package nfa implements a Thompson-style NFA over the 256-symbol byte
// alphabet extended with a distinguished epsilon transition (symbol index
// Epsilon). It compiles PCRE byte-code opcodes into a reachable-state
// automaton and simulates it against input, without tracking submatch
// captures, backreferences or lookaround.
package nfa

// StateID uniquely identifies a state within a single Graph's arena.
// It is only meaningful relative to the Graph that produced it.
type StateID uint32

// InvalidState marks an unset or out-of-range state reference.
const InvalidState StateID = 0xFFFFFFFF

// NSymbols is the size of the byte alphabet (0..255).
const NSymbols = 256

// Epsilon is the distinguished transition index consumed without reading
// an input byte. It is one past the last real byte value.
const Epsilon = NSymbols

// txWidth is the number of transition slots per state: one per byte value
// plus one for Epsilon.
const txWidth = NSymbols + 1

// noDepth is the sentinel value of State.depth before CalculateDepth has
// visited it, matching the Python original's "depth == -1 means unset".
const noDepth = -1

// State is a single NFA state: a set of destination states for each of the
// 257 symbol slots (0..255 plus Epsilon), and, when the owning Graph was
// built with stats enabled, a shortest-path depth from the start state.
//
// Transition sets use set semantics (AddTx is idempotent) but preserve
// insertion order, matching the data model's "ordered collection ... with
// set semantics" wording: order is never load-bearing for correctness, only
// for deterministic serialization and depth/BFS traversal order.
type State struct {
	id    StateID
	tx    [txWidth][]StateID
	depth int // noDepth (-1) until CalculateDepth sets it; only meaningful when Graph.withStats
}

// ID returns the state's stable identity within its Graph.
func (s *State) ID() StateID { return s.id }

// AddTx adds a transition on symbol sym (0..255, or Epsilon) to dst.
// Adding the same (sym, dst) pair twice is a no-op.
func (s *State) AddTx(sym int, dst StateID) {
	for _, existing := range s.tx[sym] {
		if existing == dst {
			return
		}
	}
	s.tx[sym] = append(s.tx[sym], dst)
}

// AddTxs adds a transition to dst for every byte b in 0..255 whose bit is
// set in bitmap, a 32-byte (256-bit) class bitmap. The bitmap is
// little-endian within each byte: bit b&7 of byte b>>3 selects byte b.
func (s *State) AddTxs(bitmap []byte, dst StateID) {
	for b := 0; b < NSymbols; b++ {
		if bitmap[b>>3]&(1<<uint(b&7)) != 0 {
			s.AddTx(b, dst)
		}
	}
}

// ClearTx removes all transitions on symbols 0..255, preserving any
// epsilon transitions. Used by anchor opcodes to strip the start state's
// implicit unanchored-search self-loop.
func (s *State) ClearTx() {
	for sym := 0; sym < NSymbols; sym++ {
		s.tx[sym] = nil
	}
}

// Tx returns the destination states for symbol sym (0..255, or Epsilon).
// The returned slice must not be modified by the caller.
func (s *State) Tx(sym int) []StateID {
	return s.tx[sym]
}

// Depth returns the shortest-path depth from the start state and whether
// it has been computed. Depth is only ever set by Graph.CalculateDepth, and
// only when the owning Graph was built with stats enabled.
func (s *State) Depth() (depth int, ok bool) {
	if s.depth == noDepth {
		return 0, false
	}
	return s.depth, true
}

// setDepth sets the state's depth if it is currently unset or if d is
// strictly less than the current value. It rejects negative d. Returns
// whether the value changed.
func (s *State) setDepth(d int) bool {
	if d < 0 {
		return false
	}
	if s.depth == noDepth || d < s.depth {
		s.depth = d
		return true
	}
	return false
}
