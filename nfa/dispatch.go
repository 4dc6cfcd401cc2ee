package nfa

import "github.com/coregx/pcrenfa/pcre"

// op dispatches the opcode at the current cursor to its construction
// fragment, mirroring the if/elif chain of the original NFABuilder.op
// (spec.md §4, "Construction Fragments"). Every opcode family that shares
// one fragment (e.g. the six CASELESS/MIN/POS spellings of OP_STAR) is
// routed to that fragment here.
func (b *Builder) op(sp StateID) (StateID, error) {
	opcode := b.opcodeAt()
	switch opcode {
	case pcre.OP_ANY, pcre.OP_ALLANY:
		return b.opAny(sp)

	case pcre.OP_BRA, pcre.OP_CBRA, pcre.OP_SCBRA:
		return b.opBra(sp)
	case pcre.OP_BRAZERO, pcre.OP_BRAMINZERO:
		return b.opBraZero(sp)

	case pcre.OP_CHAR, pcre.OP_CHARI:
		return b.opChar(sp)

	case pcre.OP_CIRC, pcre.OP_CIRCM:
		return b.opCirc(sp)

	case pcre.OP_CLASS, pcre.OP_NCLASS:
		return b.opClass(sp)

	case pcre.OP_DIGIT:
		return b.opDigit(sp)

	case pcre.OP_EXACT, pcre.OP_EXACTI:
		return b.opExact(sp)

	case pcre.OP_NOT, pcre.OP_NOTI:
		return b.opNot(sp)

	case pcre.OP_NOT_DIGIT:
		return b.opNotDigit(sp)

	case pcre.OP_NOTEXACT, pcre.OP_NOTEXACTI:
		return b.opNotExact(sp)

	case pcre.OP_NOTPLUS, pcre.OP_NOTMINPLUS, pcre.OP_NOTPOSPLUS,
		pcre.OP_NOTPLUSI, pcre.OP_NOTMINPLUSI, pcre.OP_NOTPOSPLUSI:
		return b.opNotPlus(sp)

	case pcre.OP_NOTSTAR, pcre.OP_NOTMINSTAR, pcre.OP_NOTPOSSTAR,
		pcre.OP_NOTSTARI, pcre.OP_NOTMINSTARI, pcre.OP_NOTPOSSTARI:
		return b.opNotStar(sp)

	case pcre.OP_NOTQUERY, pcre.OP_NOTMINQUERY, pcre.OP_NOTPOSQUERY,
		pcre.OP_NOTQUERYI, pcre.OP_NOTMINQUERYI, pcre.OP_NOTPOSQUERYI:
		return b.opNotQuery(sp)

	case pcre.OP_NOTUPTO, pcre.OP_NOTMINUPTO, pcre.OP_NOTPOSUPTO,
		pcre.OP_NOTUPTOI, pcre.OP_NOTMINUPTOI, pcre.OP_NOTPOSUPTOI:
		return b.opNotUpto(sp)

	case pcre.OP_NOT_WHITESPACE:
		return b.opNotWhitespace(sp)
	case pcre.OP_NOT_WORDCHAR:
		return b.opNotWordchar(sp)

	case pcre.OP_PLUS, pcre.OP_MINPLUS, pcre.OP_POSPLUS,
		pcre.OP_PLUSI, pcre.OP_MINPLUSI, pcre.OP_POSPLUSI:
		return b.opPlus(sp)

	case pcre.OP_QUERY, pcre.OP_MINQUERY, pcre.OP_POSQUERY,
		pcre.OP_QUERYI, pcre.OP_MINQUERYI, pcre.OP_POSQUERYI:
		return b.opQuery(sp)

	case pcre.OP_STAR, pcre.OP_MINSTAR, pcre.OP_POSSTAR,
		pcre.OP_STARI, pcre.OP_MINSTARI, pcre.OP_POSSTARI:
		return b.opStar(sp)

	case pcre.OP_TYPEEXACT:
		return b.opTypeExact(sp)
	case pcre.OP_TYPEPLUS, pcre.OP_TYPEMINPLUS, pcre.OP_TYPEPOSPLUS:
		return b.opTypePlus(sp)
	case pcre.OP_TYPESTAR, pcre.OP_TYPEMINSTAR, pcre.OP_TYPEPOSSTAR:
		return b.opTypeStar(sp)
	case pcre.OP_TYPEQUERY, pcre.OP_TYPEMINQUERY, pcre.OP_TYPEPOSQUERY:
		return b.opTypeQuery(sp)
	case pcre.OP_TYPEUPTO, pcre.OP_TYPEMINUPTO, pcre.OP_TYPEPOSUPTO:
		return b.opTypeUpto(sp)

	case pcre.OP_UPTO, pcre.OP_MINUPTO, pcre.OP_POSUPTO,
		pcre.OP_UPTOI, pcre.OP_MINUPTOI, pcre.OP_POSUPTOI:
		return b.opUpto(sp)

	case pcre.OP_WHITESPACE:
		return b.opWhitespace(sp)
	case pcre.OP_WORDCHAR:
		return b.opWordchar(sp)

	case pcre.OP_DOLL, pcre.OP_DOLLM, pcre.OP_WORD_BOUNDARY:
		return b.opNoop(sp)

	default:
		return InvalidState, &UnknownOpcodeError{Opcode: byte(opcode), Cursor: b.cp}
	}
}
