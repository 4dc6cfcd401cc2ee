package nfa

// EpsilonClosure returns the smallest set of states containing start and
// closed under epsilon transitions. Order within the result is
// unobservable to callers but deterministic for a given Graph.
func (g *Graph) EpsilonClosure(start StateID) []StateID {
	closure := []StateID{}
	seen := map[StateID]bool{}
	stack := []StateID{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		closure = append(closure, cur)
		if s := g.State(cur); s != nil {
			for _, e := range s.Tx(Epsilon) {
				if !seen[e] {
					stack = append(stack, e)
				}
			}
		}
	}
	return closure
}

// closureInto is EpsilonClosure reused across an active set, deduplicating
// into dst rather than allocating a fresh slice per source state.
func (g *Graph) closureInto(dst map[StateID]bool, start StateID) {
	stack := []StateID{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if dst[cur] {
			continue
		}
		dst[cur] = true
		if s := g.State(cur); s != nil {
			for _, e := range s.Tx(Epsilon) {
				if !dst[e] {
					stack = append(stack, e)
				}
			}
		}
	}
}

// NextStates computes { s' | exists s in active, exists t in s.tx[byte],
// s' in epsilon_closure(t) }, i.e. the active set after consuming one byte.
func (g *Graph) NextStates(active []StateID, b byte) []StateID {
	seen := map[StateID]bool{}
	for _, s := range active {
		st := g.State(s)
		if st == nil {
			continue
		}
		for _, t := range st.Tx(int(b)) {
			g.closureInto(seen, t)
		}
	}
	next := make([]StateID, 0, len(seen))
	for id := range seen {
		next = append(next, id)
	}
	return next
}

// containsAccept reports whether active includes the Graph's accept state.
func (g *Graph) containsAccept(active []StateID) bool {
	if g.accept == InvalidState {
		return false
	}
	for _, id := range active {
		if id == g.accept {
			return true
		}
	}
	return false
}

// Match simulates the automaton in binary mode, treating each element of
// input as a byte directly, and reports whether it accepts.
//
// Matching short-circuits: if the accept state is in the active set it
// returns true *before* consuming the next byte. Combined with the
// implicit start-state self-loop this gives unanchored-search semantics
// (a match anywhere in input succeeds), not full-input-match semantics —
// see spec.md §9. A trailing '$' does not change this: OP_DOLL adds no
// transition (see opNoop).
func (g *Graph) Match(input []byte) bool {
	active := g.EpsilonClosure(g.start)
	for _, b := range input {
		if g.containsAccept(active) {
			return true
		}
		next := g.NextStates(active, b)
		if len(next) == 0 {
			return false
		}
		active = next
	}
	return g.containsAccept(active)
}

// MatchRunes simulates the automaton in non-binary mode against a sequence
// of code points, reducing each to a byte by taking its value directly. It
// is the caller's responsibility to ensure every code point is <= 255
// (spec.md §6); values above that range are truncated to their low byte.
func (g *Graph) MatchRunes(input []rune) bool {
	b := make([]byte, len(input))
	for i, r := range input {
		b[i] = byte(r)
	}
	return g.Match(b)
}
