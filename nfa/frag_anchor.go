package nfa

// opCirc implements OP_CIRC/OP_CIRCM: anchoring the pattern at the start
// of the (line, under Multiline) input. It strips the implicit
// unanchored-search self-loop installed on the start state by NewBuilder,
// leaving sp itself unchanged (spec.md §3, invariant 5).
func (b *Builder) opCirc(sp StateID) (StateID, error) {
	b.cp++
	b.state(b.graph.start).ClearTx()
	return sp, nil
}

// opNoop implements OP_DOLL/OP_DOLLM/OP_WORD_BOUNDARY: end-of-line and
// word-boundary assertions. The NFA has no notion of lookahead past the
// current position, so these are modeled as zero-width no-ops — the
// cursor advances past the opcode and sp is returned unchanged (decided
// open question, SPEC_FULL.md §6).
func (b *Builder) opNoop(sp StateID) (StateID, error) {
	b.cp++
	return sp, nil
}
