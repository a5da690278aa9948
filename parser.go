package minire

// Saved state of the enclosing level while a group is being parsed.
type parseFrame struct {
	seq  []Node
	alts []Node
}

type parser struct {
	// Atoms of the branch under construction
	seq []Node
	// Completed branches of the current level, left to right
	alts  []Node
	saved stack[parseFrame]
}

func isEscapable(c rune) bool {
	switch c {
	case '\\', '(', ')', '*', '+', '?', '|':
		return true
	}
	return false
}

// Parse parses expr into a syntax tree.
//
// Supported syntax: literal runes, concatenation, alternation with "|",
// grouping with "(" and ")", the postfix quantifiers "+", "*" and "?", and
// backslash escapes of \ ( ) * + ? |. The returned error is a ParseError.
func Parse(expr string) (Node, error) {
	var p parser
	pattern := []rune(expr)
	escaped := false

	for pos, c := range pattern {
		if escaped {
			escaped = false
			if !isEscapable(c) {
				return nil, ParseError{Kind: InvalidEscape, Pos: pos, Char: c}
			}
			p.seq = append(p.seq, Literal{Char: c})
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '+', '*', '?':
			if err := p.quantify(c, pos); err != nil {
				return nil, err
			}
		case '|':
			if len(p.seq) == 0 {
				return nil, newParseError(NoPrecedingAtom, pos)
			}
			p.alts = append(p.alts, Sequence{Nodes: p.seq})
			p.seq = nil
		case '(':
			p.saved.push(parseFrame{seq: p.seq, alts: p.alts})
			p.seq, p.alts = nil, nil
		case ')':
			if err := p.closeGroup(pos); err != nil {
				return nil, err
			}
		default:
			p.seq = append(p.seq, Literal{Char: c})
		}
	}

	end := len(pattern)
	if escaped {
		return nil, newParseError(InvalidEscape, end)
	}
	if len(p.saved) != 0 {
		return nil, newParseError(UnclosedGroup, end)
	}
	if len(p.alts) != 0 {
		if len(p.seq) == 0 {
			return nil, newParseError(NoPrecedingAtom, end)
		}
		return p.alternation(), nil
	}
	if len(p.seq) == 0 {
		return nil, newParseError(EmptyExpression, end)
	}
	return Sequence{Nodes: p.seq}, nil
}

// Wraps the last atom of the current branch into a quantifier node.
func (p *parser) quantify(q rune, pos int) error {
	if len(p.seq) == 0 {
		return newParseError(NoPrecedingAtom, pos)
	}
	last := &p.seq[len(p.seq)-1]
	switch q {
	case '+':
		*last = OneOrMore{Child: *last}
	case '*':
		*last = ZeroOrMore{Child: *last}
	case '?':
		*last = Optional{Child: *last}
	}
	return nil
}

func (p *parser) closeGroup(pos int) error {
	if len(p.saved) == 0 {
		return newParseError(UnmatchedRightParen, pos)
	}
	outer := p.saved.pop()

	var group Node
	if len(p.alts) != 0 {
		if len(p.seq) == 0 {
			return newParseError(NoPrecedingAtom, pos)
		}
		group = p.alternation()
	} else if len(p.seq) != 0 {
		group = Sequence{Nodes: p.seq}
	}
	// An empty group contributes nothing

	p.seq, p.alts = outer.seq, outer.alts
	if group != nil {
		p.seq = append(p.seq, group)
	}
	return nil
}

// Folds the pending branches plus the current one into a right-nested
// Alternation. The caller ensures that the current branch is not empty.
func (p *parser) alternation() Node {
	branches := append(p.alts, Sequence{Nodes: p.seq})
	n := branches[len(branches)-1]
	for i := len(branches) - 2; i >= 0; i-- {
		n = Alternation{Left: branches[i], Right: n}
	}
	return n
}
