package nfa

// Option is one of the recognized PCRE option-map letters a Graph was
// compiled with (spec.md §6: subset of {CASELESS, MULTILINE, DOTALL}).
type Option byte

const (
	// Caseless corresponds to PCRE's 'i' flag.
	Caseless Option = 'i'
	// Multiline corresponds to PCRE's 'm' flag.
	Multiline Option = 'm'
	// Dotall corresponds to PCRE's 's' flag.
	Dotall Option = 's'
)

// Graph owns every state reachable from its start state: the arena, the
// distinguished start and accept states, the option set it was compiled
// under, and (when built with stats) the maximum depth over all states.
//
// A Graph is the "NFA" of spec.md §3: states are heap-resident, arena-owned
// by index (StateID) rather than by pointer, which is what lets Kleene-star
// self-loops and OP_KETRMAX back-edges form cycles without any reference
// counting or ownership gymnastics (spec.md §9).
type Graph struct {
	states    []*State
	start     StateID
	accept    StateID
	options   []Option
	withStats bool
	maxDepth  int
}

// newGraph returns an empty Graph with a single start state, owned by
// factory. accept is left InvalidState until a build assigns it.
func newGraph(factory *StateFactory) *Graph {
	g := &Graph{
		accept:    InvalidState,
		withStats: factory.WithStats(),
	}
	g.start = g.newState(factory)
	return g
}

// newState allocates a state via factory, installs it in the arena, and
// returns its id.
func (g *Graph) newState(factory *StateFactory) StateID {
	s := factory.NewState()
	id := StateID(len(g.states))
	s.id = id
	g.states = append(g.states, s)
	return id
}

// NonMatching returns a Graph with only a start state and no accept state:
// an automaton that matches nothing. Per spec.md §4.F and §7.4, this is
// what the top-level compiler returns when the external byte-code compiler
// fails, instead of propagating that error.
func NonMatching() *Graph {
	return newGraph(NewStateFactory(false))
}

// State returns the state with the given id, or nil if id is out of range.
func (g *Graph) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(g.states) {
		return nil
	}
	return g.states[id]
}

// Start returns the start state's id.
func (g *Graph) Start() StateID { return g.start }

// Accept returns the accept state's id, or InvalidState if the Graph has
// no accept state yet (e.g. NonMatching()).
func (g *Graph) Accept() StateID { return g.accept }

// NumStates returns the number of states allocated in this Graph's arena.
// Every state in the arena is reachable from start by construction: the
// builder never allocates a state it doesn't also wire into the graph.
func (g *Graph) NumStates() int { return len(g.states) }

// WithStats reports whether this Graph's states carry depth statistics.
func (g *Graph) WithStats() bool { return g.withStats }

// MaxDepth returns the maximum depth over all reachable states, valid only
// after CalculateDepth has run on a stats-enabled Graph.
func (g *Graph) MaxDepth() int { return g.maxDepth }

// Options returns the option letters this Graph was compiled with.
func (g *Graph) Options() []Option {
	return g.options
}

// HasOption reports whether opt is in this Graph's option set.
func (g *Graph) HasOption(opt Option) bool {
	for _, o := range g.options {
		if o == opt {
			return true
		}
	}
	return false
}

// SetOptions installs the Graph's PCRE option set. A nil slice is rejected
// with ErrInvalidConfig; pass an empty, non-nil slice for "no flags".
func (g *Graph) SetOptions(options []Option) error {
	if options == nil {
		return ErrInvalidConfig
	}
	g.options = options
	return nil
}

// GetStates performs a depth-first enumeration of every state reachable
// from start, across all 257 symbol slots (including Epsilon). This is the
// "get all states" operation of the builder invariant in spec.md §3.
func (g *Graph) GetStates() []*State {
	if len(g.states) == 0 {
		return nil
	}
	visited := make(map[StateID]bool, len(g.states))
	var order []*State
	stack := []StateID{g.start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		s := g.State(id)
		if s == nil {
			continue
		}
		order = append(order, s)
		for sym := 0; sym < txWidth; sym++ {
			for _, t := range s.Tx(sym) {
				if !visited[t] {
					stack = append(stack, t)
				}
			}
		}
	}
	return order
}
