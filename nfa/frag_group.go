package nfa

import "github.com/coregx/pcrenfa/pcre"

// opBra implements OP_BRA/OP_CBRA/OP_SCBRA: a (possibly capturing, possibly
// alternated) group. Compiled byte-code always wraps the whole pattern in
// one outermost group, so this is also the entry point every build starts
// from (spec.md §3, "Construction").
//
// Each branch is delimited by a 2-byte offset to the next OP_ALT/OP_KET; an
// empty branch (its offset points immediately past the branch header)
// contributes no path out of sp, matching the original's behavior for
// degenerate alternatives.
func (b *Builder) opBra(sp StateID) (StateID, error) {
	b.pushGroup(sp)
	var lastStates []StateID
	for {
		np := b.cp + b.get2(1)
		b.cp += pcre.OPLEN[b.code[b.cp]]
		if b.cp < np {
			subsp := b.newState()
			b.state(sp).AddTx(Epsilon, subsp)
			for b.cp < np {
				var err error
				subsp, err = b.op(subsp)
				if err != nil {
					return InvalidState, err
				}
			}
			lastStates = append(lastStates, subsp)
		}
		if b.code[b.cp] != byte(pcre.OP_ALT) {
			break
		}
	}
	if b.code[b.cp] != byte(pcre.OP_KET) && b.code[b.cp] != byte(pcre.OP_KETRMAX) {
		return InvalidState, &MalformedGroupError{Opcode: b.code[b.cp], Cursor: b.cp}
	}
	if len(lastStates) > 0 {
		sp = b.newState()
		for _, s := range lastStates {
			b.state(s).AddTx(Epsilon, sp)
		}
	}
	if b.code[b.cp] == byte(pcre.OP_KETRMAX) {
		b.state(sp).AddTx(Epsilon, b.topGroup())
	}
	b.cp += pcre.OPLEN[b.code[b.cp]]
	b.popGroup()
	return sp, nil
}

// opBraZero implements OP_BRAZERO/OP_BRAMINZERO: makes the group that
// immediately follows optional by adding an epsilon bypass from the
// group's entry to its exit, after the group itself has been built.
func (b *Builder) opBraZero(sp StateID) (StateID, error) {
	b.pushGroup(sp)
	b.cp++
	opcode := pcre.Opcode(b.code[b.cp])
	var err error
	switch opcode {
	case pcre.OP_BRA, pcre.OP_CBRA, pcre.OP_SCBRA:
		sp, err = b.opBra(sp)
	default:
		return InvalidState, &UnknownOpcodeError{Opcode: byte(opcode), Cursor: b.cp}
	}
	if err != nil {
		return InvalidState, err
	}
	entry := b.popGroup()
	b.state(entry).AddTx(Epsilon, sp)
	return sp, nil
}
