package minire

type generator struct {
	prog Program
}

// Address of the next emitted instruction
func (g *generator) pc() Addr {
	return Addr(len(g.prog))
}

// Returns the position of inserted instruction
func (g *generator) emit(i Instruction) Addr {
	pc := g.pc()
	g.prog = append(g.prog, i)
	return pc
}

// Resolves the open target of the placeholder at addr. The placeholder must
// be a Split with an open second target or a Jump with an open target.
func (g *generator) patch(addr Addr, want Opcode, target Addr) error {
	if !g.prog.valid(addr) || g.prog[addr].Op != want {
		return CodegenError{Kind: BackpatchFailure, Addr: addr, Want: want}
	}
	i := &g.prog[addr]
	slot := &i.X
	if want == OpSplit {
		slot = &i.Y
	}
	if *slot != NoAddr {
		return CodegenError{Kind: BackpatchFailure, Addr: addr, Want: want}
	}
	*slot = target
	return nil
}

// Generate compiles a syntax tree into a Program ending with an accept
// instruction. Every jump target in the result is resolved.
//
// A non-nil error is a CodegenError and means the tree is malformed or the
// generator is broken; trees returned by Parse always compile.
func Generate(n Node) (Program, error) {
	var g generator
	if err := g.gen(n); err != nil {
		return nil, err
	}
	g.emit(Accept())
	return g.prog, nil
}

func (g *generator) gen(n Node) error {
	switch n := n.(type) {
	case Literal:
		g.emit(MatchChar(n.Char))

	case Sequence:
		for _, child := range n.Nodes {
			if err := g.gen(child); err != nil {
				return err
			}
		}

	case OneOrMore:
		//	L1: <child>
		//	    split L1, L2
		//	L2:
		start := g.pc()
		if err := g.gen(n.Child); err != nil {
			return err
		}
		g.emit(Split(start, g.pc()+1))

	case ZeroOrMore:
		//	L1: split L2, L3
		//	L2: <child>
		//	    jmp L1
		//	L3:
		split := g.emit(Split(g.pc()+1, NoAddr))
		if err := g.gen(n.Child); err != nil {
			return err
		}
		g.emit(Jump(split))
		return g.patch(split, OpSplit, g.pc())

	case Optional:
		//	    split L1, L2
		//	L1: <child>
		//	L2:
		split := g.emit(Split(g.pc()+1, NoAddr))
		if err := g.gen(n.Child); err != nil {
			return err
		}
		return g.patch(split, OpSplit, g.pc())

	case Alternation:
		//	    split L1, L2
		//	L1: <left>
		//	    jmp L3
		//	L2: <right>
		//	L3:
		split := g.emit(Split(g.pc()+1, NoAddr))
		if err := g.gen(n.Left); err != nil {
			return err
		}
		jump := g.emit(Jump(NoAddr))
		if err := g.patch(split, OpSplit, g.pc()); err != nil {
			return err
		}
		if err := g.gen(n.Right); err != nil {
			return err
		}
		return g.patch(jump, OpJump, g.pc())

	default:
		return CodegenError{Kind: UnknownNode, Addr: g.pc()}
	}
	return nil
}
