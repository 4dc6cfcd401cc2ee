package nfa

import "log"

// bfsEntry pairs a state with the depth at which it was first discovered.
type bfsEntry struct {
	id    StateID
	depth int
}

// CalculateDepth runs a breadth-first search from start, setting each
// reachable state's depth to its shortest distance (in transitions,
// regardless of symbol) from start, and updates MaxDepth to the maximum
// depth seen.
//
// CalculateDepth is a no-op returning false when the Graph was built
// without stats (spec.md §7.5, "StatsDisabled"): it never panics, it logs
// a diagnostic and reports false so callers can tell depth is unavailable.
func (g *Graph) CalculateDepth() bool {
	if !g.withStats {
		log.Printf("nfa: CalculateDepth called on a Graph built without stats; no depth computed")
		return false
	}
	return g.calculateDepthFrom(g.start, 0)
}

func (g *Graph) calculateDepthFrom(start StateID, depth int) bool {
	queue := []bfsEntry{{start, depth}}
	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]
		s := g.State(entry.id)
		if s == nil {
			continue
		}
		if !s.setDepth(entry.depth) {
			continue
		}
		if entry.depth > g.maxDepth {
			g.maxDepth = entry.depth
		}
		for sym := 0; sym < txWidth; sym++ {
			for _, t := range s.Tx(sym) {
				queue = append(queue, bfsEntry{t, entry.depth + 1})
			}
		}
	}
	return true
}

// Depth returns the depth of the state with the given id, and whether it
// has been computed (see State.Depth). Returns (0, false) for an invalid id.
func (g *Graph) Depth(id StateID) (depth int, ok bool) {
	s := g.State(id)
	if s == nil {
		return 0, false
	}
	return s.Depth()
}
