package nfa

// opChar implements OP_CHAR/OP_CHARI: a single literal byte edge, plus its
// case-swapped counterpart when Caseless is active and the byte is an
// ASCII letter (spec.md §4.E).
func (b *Builder) opChar(sp StateID) (StateID, error) {
	b.cp++
	sym := b.code[b.cp]
	b.cp++
	t := b.newState()
	prev := b.state(sp)
	prev.AddTx(int(sym), t)
	if b.hasOption(Caseless) && isASCIIAlpha(sym) {
		prev.AddTx(int(swapCase(sym)), t)
	}
	return t, nil
}

// opNot implements OP_NOT/OP_NOTI: an edge on every byte except the stated
// one (and its case-swap under Caseless).
func (b *Builder) opNot(sp StateID) (StateID, error) {
	b.cp++
	sym := b.code[b.cp]
	b.cp++
	t := b.newState()
	prev := b.state(sp)
	excl := excludedSet(sym, b.hasOption(Caseless))
	for i := 0; i < NSymbols; i++ {
		if inSet(excl, byte(i)) {
			continue
		}
		prev.AddTx(i, t)
	}
	return t, nil
}

// opExact implements OP_EXACT/OP_EXACTI: a 2-byte count n followed by the
// symbol, chained as n linear hops each with a fresh state.
func (b *Builder) opExact(sp StateID) (StateID, error) {
	b.cp++
	n := b.get2(0)
	b.cp += 2
	sym := b.code[b.cp]
	b.cp++
	caseless := b.hasOption(Caseless) && isASCIIAlpha(sym)
	for i := 0; i < n; i++ {
		t := b.newState()
		prev := b.state(sp)
		prev.AddTx(int(sym), t)
		if caseless {
			prev.AddTx(int(swapCase(sym)), t)
		}
		sp = t
	}
	return sp, nil
}

// opNotExact implements OP_NOTEXACT/OP_NOTEXACTI: n mandatory hops, each
// excluding the stated symbol (and its case-swap under Caseless).
func (b *Builder) opNotExact(sp StateID) (StateID, error) {
	b.cp++
	n := b.get2(0)
	b.cp += 2
	sym := b.code[b.cp]
	b.cp++
	excl := excludedSet(sym, b.hasOption(Caseless))
	for i := 0; i < n; i++ {
		t := b.newState()
		prev := b.state(sp)
		for j := 0; j < NSymbols; j++ {
			if inSet(excl, byte(j)) {
				continue
			}
			prev.AddTx(j, t)
		}
		sp = t
	}
	return sp, nil
}

// excludedSet returns the set of bytes an OP_NOT-family opcode excludes:
// the stated symbol, plus its case-swap when caseless and it's an ASCII letter.
func excludedSet(sym byte, caseless bool) []byte {
	if caseless && isASCIIAlpha(sym) {
		return []byte{sym, swapCase(sym)}
	}
	return []byte{sym}
}
