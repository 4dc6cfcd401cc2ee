package nfa

import "github.com/coregx/pcrenfa/pcre"

// addTypeEdges adds, from prev to dst, the transitions for the PCRE
// "type" opcode typeOp (OP_ANY/OP_ALLANY/OP_DIGIT/OP_NOT_DIGIT/
// OP_WHITESPACE/OP_NOT_WHITESPACE/OP_WORDCHAR/OP_NOT_WORDCHAR). This is the
// shared core behind both the plain type fragments (opAny, opDigit, ...)
// and the OP_TYPE*-family quantifier fragments, which all embed one of
// these type opcodes as an operand rather than a literal byte.
func (b *Builder) addTypeEdges(prev *State, dst StateID, typeOp pcre.Opcode) error {
	switch typeOp {
	case pcre.OP_ANY, pcre.OP_ALLANY:
		dotall := b.hasOption(Dotall)
		for i := 0; i < NSymbols; i++ {
			if !dotall && i == LF {
				continue
			}
			prev.AddTx(i, dst)
		}
	case pcre.OP_DIGIT:
		for _, s := range digitSet {
			prev.AddTx(int(s), dst)
		}
	case pcre.OP_NOT_DIGIT:
		for i := 0; i < NSymbols; i++ {
			if inSet(digitSet, byte(i)) {
				continue
			}
			prev.AddTx(i, dst)
		}
	case pcre.OP_WHITESPACE:
		for _, s := range whitespaceSet {
			prev.AddTx(int(s), dst)
		}
	case pcre.OP_NOT_WHITESPACE:
		for i := 0; i < NSymbols; i++ {
			if inSet(whitespaceSet, byte(i)) {
				continue
			}
			prev.AddTx(i, dst)
		}
	case pcre.OP_WORDCHAR:
		for _, s := range wordSet {
			prev.AddTx(int(s), dst)
		}
	case pcre.OP_NOT_WORDCHAR:
		for i := 0; i < NSymbols; i++ {
			if inSet(wordSet, byte(i)) {
				continue
			}
			prev.AddTx(i, dst)
		}
	default:
		return &UnknownOpcodeError{Opcode: byte(typeOp), Cursor: b.cp}
	}
	return nil
}

func (b *Builder) opAny(sp StateID) (StateID, error) {
	b.cp++
	t := b.newState()
	if err := b.addTypeEdges(b.state(sp), t, pcre.OP_ANY); err != nil {
		return InvalidState, err
	}
	return t, nil
}

func (b *Builder) opDigit(sp StateID) (StateID, error) {
	b.cp++
	t := b.newState()
	_ = b.addTypeEdges(b.state(sp), t, pcre.OP_DIGIT)
	return t, nil
}

func (b *Builder) opNotDigit(sp StateID) (StateID, error) {
	b.cp++
	t := b.newState()
	_ = b.addTypeEdges(b.state(sp), t, pcre.OP_NOT_DIGIT)
	return t, nil
}

func (b *Builder) opWhitespace(sp StateID) (StateID, error) {
	b.cp++
	t := b.newState()
	_ = b.addTypeEdges(b.state(sp), t, pcre.OP_WHITESPACE)
	return t, nil
}

func (b *Builder) opNotWhitespace(sp StateID) (StateID, error) {
	b.cp++
	t := b.newState()
	_ = b.addTypeEdges(b.state(sp), t, pcre.OP_NOT_WHITESPACE)
	return t, nil
}

func (b *Builder) opWordchar(sp StateID) (StateID, error) {
	b.cp++
	t := b.newState()
	_ = b.addTypeEdges(b.state(sp), t, pcre.OP_WORDCHAR)
	return t, nil
}

func (b *Builder) opNotWordchar(sp StateID) (StateID, error) {
	b.cp++
	t := b.newState()
	_ = b.addTypeEdges(b.state(sp), t, pcre.OP_NOT_WORDCHAR)
	return t, nil
}

// opTypeExact implements OP_TYPEEXACT: a 2-byte count n followed by a type
// opcode operand, chained as n linear hops.
func (b *Builder) opTypeExact(sp StateID) (StateID, error) {
	b.cp++
	n := b.get2(0)
	b.cp += 2
	typeOp := b.opcodeAt()
	for i := 0; i < n; i++ {
		t := b.newState()
		if err := b.addTypeEdges(b.state(sp), t, typeOp); err != nil {
			return InvalidState, err
		}
		sp = t
	}
	b.cp++
	return sp, nil
}

// opTypePlus implements the OP_TYPEPLUS family: one mandatory type edge
// plus a self-loop on the tail.
func (b *Builder) opTypePlus(sp StateID) (StateID, error) {
	b.cp++
	typeOp := b.opcodeAt()
	t := b.newState()
	if err := b.addTypeEdges(b.state(sp), t, typeOp); err != nil {
		return InvalidState, err
	}
	if err := b.addTypeEdges(b.state(t), t, typeOp); err != nil {
		return InvalidState, err
	}
	b.cp++
	return t, nil
}

// opTypeStar implements the OP_TYPESTAR family: epsilon past the body,
// plus a self-loop on the tail for zero-or-more repetitions.
func (b *Builder) opTypeStar(sp StateID) (StateID, error) {
	b.cp++
	typeOp := b.opcodeAt()
	t := b.newState()
	b.state(sp).AddTx(Epsilon, t)
	if err := b.addTypeEdges(b.state(t), t, typeOp); err != nil {
		return InvalidState, err
	}
	b.cp++
	return t, nil
}

// opTypeQuery implements the OP_TYPEQUERY family: epsilon past the body,
// plus a direct type edge, for zero-or-one repetitions.
func (b *Builder) opTypeQuery(sp StateID) (StateID, error) {
	b.cp++
	typeOp := b.opcodeAt()
	b.cp++
	t := b.newState()
	prev := b.state(sp)
	prev.AddTx(Epsilon, t)
	if err := b.addTypeEdges(prev, t, typeOp); err != nil {
		return InvalidState, err
	}
	return t, nil
}

// opTypeUpto implements the OP_TYPEUPTO family: bounded 0..n repetition
// over a type operand, mirroring opUpto but for a type edge rather than a
// literal byte.
func (b *Builder) opTypeUpto(sp StateID) (StateID, error) {
	b.cp++
	ubound := b.get2(0)
	b.cp += 2
	typeOp := b.opcodeAt()
	b.cp++
	if ubound < 1 {
		return sp, nil
	}
	prev := sp
	t := b.newState()
	b.state(prev).AddTx(Epsilon, t)
	for i := 0; i < ubound; i++ {
		mid := b.newState()
		if err := b.addTypeEdges(b.state(prev), mid, typeOp); err != nil {
			return InvalidState, err
		}
		b.state(mid).AddTx(Epsilon, t)
		prev = mid
	}
	return t, nil
}
