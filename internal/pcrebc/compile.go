package pcrebc

import "github.com/coregx/pcrenfa/pcre"

// unboundedClassCap is folded into the mandatory prefix when a class body
// repeats without an upper bound (spec.md has no "class EXACT" opcode, so
// {min,} is decomposed into min-1 mandatory single hops followed by one
// OP_CRPLUS hop rather than relying on a sentinel "no maximum" value).
const unboundedClassCap = -1

// Compile turns a pattern string into PCRE byte-code, using the subset of
// syntax documented in the pcrebc package comment; the matching stride
// table is pcre.OPLEN. Compile takes no option bit-mask: this engine's
// caseless/dotall behavior is applied by the nfa package's Builder from its
// own option list, not baked into byte-code.
func Compile(pattern string) ([]byte, error) {
	ast, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	e := &emitter{}
	if err := e.emitGroup(ast, pcre.OP_KET); err != nil {
		return nil, err
	}
	e.put1(pcre.OP_END)
	return e.buf, nil
}

// emitter accumulates byte-code into a single growable buffer.
type emitter struct {
	buf []byte
}

func (e *emitter) len() int { return len(e.buf) }

func (e *emitter) put1(op pcre.Opcode) { e.buf = append(e.buf, byte(op)) }

func (e *emitter) putByte(b byte) { e.buf = append(e.buf, b) }

func (e *emitter) put2(v int) {
	e.buf = append(e.buf, byte(v>>8), byte(v))
}

func (e *emitter) patch2(pos, v int) {
	e.buf[pos] = byte(v >> 8)
	e.buf[pos+1] = byte(v)
}

// flattenAlt returns n's alternation branches, or a single-element slice
// when n isn't an alternation.
func flattenAlt(n node) []node {
	if alt, ok := n.(*altNode); ok {
		return alt.branches
	}
	return []node{n}
}

// emitGroup emits a BRA, its (possibly many) ALT-delimited branches, and a
// KET or KETRMAX terminator, backpatching each delimiter's 2-byte
// offset-to-next-delimiter field as its branch body completes
// (spec.md §4.E, "BRA/CBRA/SCBRA ... ALT ... KET/KETRMAX").
func (e *emitter) emitGroup(body node, terminator pcre.Opcode) error {
	braPos := e.len()
	branches := flattenAlt(body)
	for i, br := range branches {
		delimPos := e.len()
		op := pcre.OP_ALT
		if i == 0 {
			op = pcre.OP_BRA
		}
		e.put1(op)
		fieldPos := e.len()
		e.put2(0)
		if err := e.emitConcat(br); err != nil {
			return err
		}
		e.patch2(fieldPos, e.len()-delimPos)
	}
	ketPos := e.len()
	e.put1(terminator)
	fieldPos := e.len()
	e.put2(0)
	e.patch2(fieldPos, ketPos-braPos)
	return nil
}

func (e *emitter) emitConcat(n node) error {
	if c, ok := n.(*concatNode); ok {
		for _, item := range c.items {
			if err := e.emitNode(item); err != nil {
				return err
			}
		}
		return nil
	}
	return e.emitNode(n)
}

func (e *emitter) emitNode(n node) error {
	switch v := n.(type) {
	case litNode:
		e.put1(pcre.OP_CHAR)
		e.putByte(v.b)
		return nil
	case anyNode:
		e.put1(pcre.OP_ANY)
		return nil
	case *classNode:
		e.put1(pcre.OP_CLASS)
		e.buf = append(e.buf, v.bitmap[:]...)
		return nil
	case startAnchorNode:
		e.put1(pcre.OP_CIRC)
		return nil
	case endAnchorNode:
		e.put1(pcre.OP_DOLL)
		return nil
	case wordBoundaryNode:
		e.put1(pcre.OP_WORD_BOUNDARY)
		return nil
	case shorthandNode:
		e.put1(shorthandOpcode(v.kind))
		return nil
	case *groupNode:
		return e.emitGroup(v.body, pcre.OP_KET)
	case *repeatNode:
		return e.emitRepeat(v)
	default:
		return &ParseError{Message: "unsupported AST node"}
	}
}

// shorthandOpcode maps a bare (unquantified) \d \D \s \S \w \W to its
// single-byte type opcode.
func shorthandOpcode(kind byte) pcre.Opcode {
	switch kind {
	case 'd':
		return pcre.OP_DIGIT
	case 'D':
		return pcre.OP_NOT_DIGIT
	case 's':
		return pcre.OP_WHITESPACE
	case 'S':
		return pcre.OP_NOT_WHITESPACE
	case 'w':
		return pcre.OP_WORDCHAR
	default: // 'W'
		return pcre.OP_NOT_WORDCHAR
	}
}

func (e *emitter) emitRepeat(r *repeatNode) error {
	switch body := r.body.(type) {
	case litNode:
		return e.emitLiteralRepeat(body.b, r)
	case *classNode:
		return e.emitClassRepeat(body, r)
	case anyNode:
		return e.emitTypeRepeat(pcre.OP_ANY, r)
	case shorthandNode:
		return e.emitTypeRepeat(shorthandOpcode(body.kind), r)
	case *groupNode:
		return e.emitGroupRepeat(body, r)
	default:
		return &ParseError{Message: "quantifier applied to unsupported atom"}
	}
}

func (e *emitter) emitLiteralRepeat(sym byte, r *repeatNode) error {
	switch r.kind {
	case repStar:
		e.put1(pcre.OP_STAR)
		e.putByte(sym)
	case repPlus:
		e.put1(pcre.OP_PLUS)
		e.putByte(sym)
	case repQuery:
		e.put1(pcre.OP_QUERY)
		e.putByte(sym)
	case repRange:
		mandatory, optional, unbounded := rangeSplit(r.min, r.max)
		if mandatory > 0 {
			e.put1(pcre.OP_EXACT)
			e.put2(mandatory)
			e.putByte(sym)
		}
		switch {
		case unbounded:
			e.put1(pcre.OP_STAR)
			e.putByte(sym)
		case optional > 0:
			e.put1(pcre.OP_UPTO)
			e.put2(optional)
			e.putByte(sym)
		}
	}
	return nil
}

func (e *emitter) emitClassRepeat(body *classNode, r *repeatNode) error {
	bitmap := body.bitmap[:]
	switch r.kind {
	case repStar:
		e.put1(pcre.OP_CLASS)
		e.buf = append(e.buf, bitmap...)
		e.put1(pcre.OP_CRSTAR)
	case repPlus:
		e.put1(pcre.OP_CLASS)
		e.buf = append(e.buf, bitmap...)
		e.put1(pcre.OP_CRPLUS)
	case repQuery:
		e.put1(pcre.OP_CLASS)
		e.buf = append(e.buf, bitmap...)
		e.put1(pcre.OP_CRQUERY)
	case repRange:
		if r.max == unboundedClassCap {
			// {min,}: (min-1) mandatory single hops, then one CRPLUS hop.
			for i := 0; i < r.min-1; i++ {
				e.put1(pcre.OP_CLASS)
				e.buf = append(e.buf, bitmap...)
			}
			e.put1(pcre.OP_CLASS)
			e.buf = append(e.buf, bitmap...)
			if r.min == 0 {
				e.put1(pcre.OP_CRSTAR)
			} else {
				e.put1(pcre.OP_CRPLUS)
			}
			return nil
		}
		e.put1(pcre.OP_CLASS)
		e.buf = append(e.buf, bitmap...)
		e.put1(pcre.OP_CRRANGE)
		e.put2(r.min)
		e.put2(r.max)
	}
	return nil
}

func (e *emitter) emitTypeRepeat(typeOp pcre.Opcode, r *repeatNode) error {
	switch r.kind {
	case repStar:
		e.put1(pcre.OP_TYPESTAR)
		e.put1(typeOp)
	case repPlus:
		e.put1(pcre.OP_TYPEPLUS)
		e.put1(typeOp)
	case repQuery:
		e.put1(pcre.OP_TYPEQUERY)
		e.put1(typeOp)
	case repRange:
		mandatory, optional, unbounded := rangeSplit(r.min, r.max)
		if mandatory > 0 {
			e.put1(pcre.OP_TYPEEXACT)
			e.put2(mandatory)
			e.put1(typeOp)
		}
		switch {
		case unbounded:
			e.put1(pcre.OP_TYPESTAR)
			e.put1(typeOp)
		case optional > 0:
			e.put1(pcre.OP_TYPEUPTO)
			e.put2(optional)
			e.put1(typeOp)
		}
	}
	return nil
}

// emitGroupRepeat applies a quantifier to a parenthesized group. Greedy
// STAR/PLUS/QUERY follow the BRAZERO/KETRMAX composition spec.md describes;
// bounded {min,max} is unrolled into min mandatory copies followed by
// max-min independently optional copies (a compiler-level simplification —
// the nfa package itself gains no new opcode for this, see DESIGN.md).
func (e *emitter) emitGroupRepeat(body *groupNode, r *repeatNode) error {
	switch r.kind {
	case repStar:
		e.put1(pcre.OP_BRAZERO)
		return e.emitGroup(body.body, pcre.OP_KETRMAX)
	case repPlus:
		return e.emitGroup(body.body, pcre.OP_KETRMAX)
	case repQuery:
		e.put1(pcre.OP_BRAZERO)
		return e.emitGroup(body.body, pcre.OP_KET)
	case repRange:
		mandatory, optional, unbounded := rangeSplit(r.min, r.max)
		for i := 0; i < mandatory; i++ {
			if err := e.emitGroup(body.body, pcre.OP_KET); err != nil {
				return err
			}
		}
		switch {
		case unbounded:
			e.put1(pcre.OP_BRAZERO)
			if err := e.emitGroup(body.body, pcre.OP_KETRMAX); err != nil {
				return err
			}
		case optional > 0:
			for i := 0; i < optional; i++ {
				e.put1(pcre.OP_BRAZERO)
				if err := e.emitGroup(body.body, pcre.OP_KET); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// rangeSplit decomposes a {min,max} repeat (max == -1 meaning unbounded)
// into a mandatory count and either an unbounded tail or a bounded
// optional count.
func rangeSplit(min, max int) (mandatory, optional int, unbounded bool) {
	if max == -1 {
		return min, 0, true
	}
	return min, max - min, false
}
