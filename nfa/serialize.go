package nfa

import (
	"fmt"
	"strings"
)

// Serialize produces a directed-graph description of the Graph: one line
// per (state, grouping-of-target-states) edge, with the accept state
// marked via the double-circle convention, and edge labels rendered as
// comma-separated symbol ranges with "e" denoting Epsilon.
//
// This is a close port of the original Python implementation's __str__ /
// buildTXList, preserving its exact (and slightly asymmetric) range-compaction
// rules: a singleton epsilon edge renders as "e", but a range that merely
// *ends* at epsilon renders as "{lo}-e" — spec.md §9 flags this mixed
// condition as something a faithful reimplementation must reproduce exactly
// rather than normalize away.
func (g *Graph) Serialize() string {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("graph[size=\"7.75,10.25\"]\n")
	fmt.Fprintf(&b, "  %d [shape=doublecircle]\n", g.accept)

	visited := map[StateID]bool{}
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

		// Group destination states by the ascending list of symbols that
		// reach them, in first-seen order (symbols are scanned 0..256, so
		// each group's symbol list is already sorted ascending).
		order := []StateID{}
		grouped := map[StateID][]int{}
		for sym := 0; sym < txWidth; sym++ {
			for _, t := range s.Tx(sym) {
				if _, ok := grouped[t]; !ok {
					order = append(order, t)
				}
				grouped[t] = append(grouped[t], sym)
				if !visited[t] {
					stack = append(stack, t)
				}
			}
		}
		for _, t := range order {
			fmt.Fprintf(&b, "  %d -> %d [label=\"%s\"]\n", id, t, buildRangeLabel(grouped[t]))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// buildRangeLabel renders a sorted-ascending list of symbols as
// comma-separated maximal runs, e.g. [97 98 99 256] -> "97-99, e".
func buildRangeLabel(symbols []int) string {
	var out strings.Builder
	last, start := -1, -1
	n := len(symbols)
	count := 0
	for _, cur := range symbols {
		if start == -1 {
			start = cur
		}
		if last != -1 && cur-last != 1 {
			writeRun(&out, start, last)
			start = cur
			if count < n {
				out.WriteString(", ")
			}
		}
		last = cur
		count++
	}
	writeRun(&out, start, last)
	return out.String()
}

// writeRun appends the rendering of the closed run [start, last].
func writeRun(out *strings.Builder, start, last int) {
	if last == start {
		if last >= Epsilon {
			out.WriteString("e")
		} else {
			fmt.Fprintf(out, "%d", last)
		}
		return
	}
	if last >= Epsilon {
		fmt.Fprintf(out, "%d-e", start)
	} else {
		fmt.Fprintf(out, "%d-%d", start, last)
	}
}

// String implements fmt.Stringer via Serialize, matching the teacher's
// convention of a human-readable String() on its core types.
func (g *Graph) String() string {
	return g.Serialize()
}
