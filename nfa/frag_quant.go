package nfa

// This file implements the single-byte quantifier families: STAR, PLUS,
// QUERY and UPTO, and their NOT-prefixed negated-symbol counterparts.
// Greedy, minimal and possessive PCRE variants all collapse onto these
// same fragments, since the NFA is pure-acceptance and the distinctions
// between them only matter to a backtracking engine (spec.md §4.E).

// opStar implements the OP_STAR family: zero-or-more repetitions of a
// literal symbol. Per the case-insensitivity contract in spec.md §4.E, the
// self-loop carries both the stated byte and its case-swap under Caseless.
func (b *Builder) opStar(sp StateID) (StateID, error) {
	b.cp++
	sym := b.code[b.cp]
	b.cp++
	prev := sp
	t := b.newState()
	b.state(prev).AddTx(Epsilon, t)
	b.state(t).AddTx(int(sym), t)
	if b.hasOption(Caseless) && isASCIIAlpha(sym) {
		b.state(t).AddTx(int(swapCase(sym)), t)
	}
	return t, nil
}

// opNotStar implements the OP_NOTSTAR family: zero-or-more repetitions of
// any byte except the stated symbol (and its case-swap under Caseless).
func (b *Builder) opNotStar(sp StateID) (StateID, error) {
	b.cp++
	sym := b.code[b.cp]
	b.cp++
	prev := sp
	t := b.newState()
	b.state(prev).AddTx(Epsilon, t)
	excl := excludedSet(sym, b.hasOption(Caseless))
	for i := 0; i < NSymbols; i++ {
		if inSet(excl, byte(i)) {
			continue
		}
		b.state(t).AddTx(i, t)
	}
	return t, nil
}

// opPlus implements the OP_PLUS family: one mandatory symbol edge plus a
// self-loop on the tail for the remaining repetitions.
func (b *Builder) opPlus(sp StateID) (StateID, error) {
	b.cp++
	sym := b.code[b.cp]
	b.cp++
	prev := sp
	t := b.newState()
	b.state(prev).AddTx(int(sym), t)
	b.state(t).AddTx(int(sym), t)
	if b.hasOption(Caseless) && isASCIIAlpha(sym) {
		swap := int(swapCase(sym))
		b.state(prev).AddTx(swap, t)
		b.state(t).AddTx(swap, t)
	}
	return t, nil
}

// opNotPlus implements the OP_NOTPLUS family: one mandatory excluded-byte
// edge plus a self-loop on the tail.
func (b *Builder) opNotPlus(sp StateID) (StateID, error) {
	b.cp++
	sym := b.code[b.cp]
	b.cp++
	prev := sp
	t := b.newState()
	excl := excludedSet(sym, b.hasOption(Caseless))
	for i := 0; i < NSymbols; i++ {
		if inSet(excl, byte(i)) {
			continue
		}
		b.state(prev).AddTx(i, t)
		b.state(t).AddTx(i, t)
	}
	return t, nil
}

// opQuery implements the OP_QUERY family: zero-or-one repetitions of a
// literal symbol.
func (b *Builder) opQuery(sp StateID) (StateID, error) {
	b.cp++
	sym := b.code[b.cp]
	b.cp++
	prev := sp
	t := b.newState()
	ps := b.state(prev)
	ps.AddTx(Epsilon, t)
	ps.AddTx(int(sym), t)
	if b.hasOption(Caseless) && isASCIIAlpha(sym) {
		ps.AddTx(int(swapCase(sym)), t)
	}
	return t, nil
}

// opNotQuery implements the OP_NOTQUERY family: zero-or-one repetitions of
// any byte except the stated symbol.
func (b *Builder) opNotQuery(sp StateID) (StateID, error) {
	b.cp++
	sym := b.code[b.cp]
	b.cp++
	prev := sp
	t := b.newState()
	ps := b.state(prev)
	ps.AddTx(Epsilon, t)
	excl := excludedSet(sym, b.hasOption(Caseless))
	for i := 0; i < NSymbols; i++ {
		if inSet(excl, byte(i)) {
			continue
		}
		ps.AddTx(i, t)
	}
	return t, nil
}

// opUpto implements the OP_UPTO family: bounded 0..n repetitions of a
// literal symbol, realized as a chain of n intermediate states each with
// an epsilon edge to a single joining tail (spec.md §4.E).
func (b *Builder) opUpto(sp StateID) (StateID, error) {
	b.cp++
	ubound := b.get2(0)
	b.cp += 2
	sym := b.code[b.cp]
	b.cp++
	if ubound < 1 {
		return sp, nil
	}
	caseless := b.hasOption(Caseless) && isASCIIAlpha(sym)
	prev := sp
	t := b.newState()
	b.state(prev).AddTx(Epsilon, t)
	for i := 0; i < ubound; i++ {
		mid := b.newState()
		b.state(prev).AddTx(int(sym), mid)
		if caseless {
			b.state(prev).AddTx(int(swapCase(sym)), mid)
		}
		b.state(mid).AddTx(Epsilon, t)
		prev = mid
	}
	return t, nil
}

// opNotUpto implements the OP_NOTUPTO family: bounded 0..n repetitions of
// any byte except the stated symbol.
func (b *Builder) opNotUpto(sp StateID) (StateID, error) {
	b.cp++
	ubound := b.get2(0)
	b.cp += 2
	sym := b.code[b.cp]
	b.cp++
	if ubound < 1 {
		return sp, nil
	}
	excl := excludedSet(sym, b.hasOption(Caseless))
	prev := sp
	t := b.newState()
	b.state(prev).AddTx(Epsilon, t)
	for i := 0; i < ubound; i++ {
		mid := b.newState()
		for j := 0; j < NSymbols; j++ {
			if inSet(excl, byte(j)) {
				continue
			}
			b.state(prev).AddTx(j, mid)
		}
		b.state(mid).AddTx(Epsilon, t)
		prev = mid
	}
	return t, nil
}
