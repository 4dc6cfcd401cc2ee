package nfa

import "github.com/coregx/pcrenfa/pcre"

// classBitmapLen is the fixed size, in bytes, of the 256-bit class bitmap
// that follows an OP_CLASS/OP_NCLASS opcode.
const classBitmapLen = 32

// opClass implements OP_CLASS/OP_NCLASS, including their quantified
// CR*-suffixed forms (spec.md §4.E, "CLASS with CR* suffix").
//
// For OP_NCLASS the bitmap is already the inverted membership set (the
// external compiler is responsible for negating it before emitting
// byte-code), so both opcodes share this one fragment.
func (b *Builder) opClass(sp StateID) (StateID, error) {
	bmp := b.cp + 1
	b.cp += 1 + classBitmapLen
	bitmap := b.code[bmp : bmp+classBitmapLen]
	op := b.opcodeAt()

	switch op {
	case pcre.OP_CRPLUS, pcre.OP_CRMINPLUS, pcre.OP_CRPOSPLUS:
		prev := sp
		sp = b.newState()
		b.state(prev).AddTxs(bitmap, sp)
		b.state(sp).AddTxs(bitmap, sp)
		b.cp += pcre.OPLEN[op]

	case pcre.OP_CRQUERY, pcre.OP_CRMINQUERY, pcre.OP_CRPOSQUERY:
		prev := sp
		sp = b.newState()
		b.state(prev).AddTxs(bitmap, sp)
		b.state(prev).AddTx(Epsilon, sp)
		b.cp += pcre.OPLEN[op]

	case pcre.OP_CRRANGE, pcre.OP_CRMINRANGE, pcre.OP_CRPOSRANGE:
		min := b.get2(1)
		max := b.get2(3)
		var prev StateID
		havePrev := false
		for i := 0; i < min; i++ {
			prev = sp
			havePrev = true
			sp = b.newState()
			b.state(prev).AddTxs(bitmap, sp)
		}
		b.cp += pcre.OPLEN[b.opcodeAt()]
		if !havePrev {
			prev = sp
			sp = b.newState()
			b.state(prev).AddTx(Epsilon, sp)
			b.state(prev).AddTxs(bitmap, sp)
			min++
		}
		for i := 0; i < max-min; i++ {
			mid := b.newState()
			b.state(prev).AddTxs(bitmap, mid)
			prev = mid
			b.state(prev).AddTxs(bitmap, sp)
		}

	case pcre.OP_CRSTAR, pcre.OP_CRMINSTAR, pcre.OP_CRPOSSTAR:
		prev := sp
		sp = b.newState()
		b.state(prev).AddTx(Epsilon, sp)
		b.state(sp).AddTxs(bitmap, sp)
		b.cp += pcre.OPLEN[op]

	default:
		prev := sp
		sp = b.newState()
		b.state(prev).AddTxs(bitmap, sp)
	}

	return sp, nil
}
