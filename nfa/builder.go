package nfa

import "github.com/coregx/pcrenfa/pcre"

// Builder drives construction of a Graph from PCRE byte-code: a mutable
// cursor into the byte-code buffer, the active option set, and a stack of
// currently-open group entry states (bra_state in spec.md §3) used by
// OP_KETRMAX to wire a greedy back-edge to the right group.
//
// Builder is the spec's "Builder state": everything the dispatcher and
// construction fragments need to thread the "current tail" state through
// successive opcodes.
type Builder struct {
	graph    *Graph
	factory  *StateFactory
	code     []byte
	cp       int
	options  []Option
	braState []StateID
}

// NewBuilder returns a Builder seeded with a fresh Graph owned by factory.
// When search is true, the start state is given a self-loop over every
// byte 0..255 — the implicit unanchored-search prefix of spec.md §3,
// invariant 5 — matching NFABuilder(nfa, is_search=True) in the original.
// Anchor opcodes (OP_CIRC/OP_CIRCM) strip this self-loop during a build.
func NewBuilder(factory *StateFactory, search bool) *Builder {
	g := newGraph(factory)
	b := &Builder{graph: g, factory: factory}
	if search {
		start := g.State(g.start)
		for i := 0; i < NSymbols; i++ {
			start.AddTx(i, g.start)
		}
	}
	return b
}

// Build converts code into NFA states under options, starting from the
// Builder's start state, and installs the resulting tail as the Graph's
// accept state. Build must be called at most once per Builder.
func (b *Builder) Build(code []byte, options []Option) (*Graph, error) {
	b.code = code
	b.cp = 0
	b.options = options
	if err := b.graph.SetOptions(options); err != nil {
		return nil, err
	}
	tail, err := b.op(b.graph.start)
	if err != nil {
		return nil, err
	}
	b.graph.accept = tail
	return b.graph, nil
}

// Graph returns the Graph under construction.
func (b *Builder) Graph() *Graph { return b.graph }

// get2 reads two bytes at cp+offset as a 16-bit big-endian integer.
func (b *Builder) get2(offset int) int {
	return int(b.code[b.cp+offset])<<8 | int(b.code[b.cp+offset+1])
}

// newState allocates a fresh state in the Graph under construction.
func (b *Builder) newState() StateID {
	return b.graph.newState(b.factory)
}

// state returns the *State for id within the Graph under construction.
func (b *Builder) state(id StateID) *State {
	return b.graph.State(id)
}

// hasOption reports whether opt is active for this build.
func (b *Builder) hasOption(opt Option) bool {
	for _, o := range b.options {
		if o == opt {
			return true
		}
	}
	return false
}

// opcodeAt returns the opcode tag at the current cursor.
func (b *Builder) opcodeAt() pcre.Opcode {
	return pcre.Opcode(b.code[b.cp])
}

// pushGroup records the entry state of a currently-open group.
func (b *Builder) pushGroup(sp StateID) { b.braState = append(b.braState, sp) }

// popGroup removes and returns the most recently opened group's entry state.
func (b *Builder) popGroup() StateID {
	last := b.braState[len(b.braState)-1]
	b.braState = b.braState[:len(b.braState)-1]
	return last
}

// topGroup returns the currently open group's entry state without popping.
func (b *Builder) topGroup() StateID {
	return b.braState[len(b.braState)-1]
}
