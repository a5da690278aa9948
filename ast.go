package minire

// Node is a parsed expression. The concrete types are Literal, OneOrMore,
// ZeroOrMore, Optional, Alternation and Sequence.
type Node interface {
	node()
}

// Literal matches exactly one rune.
type Literal struct {
	Char rune
}

// OneOrMore matches Child at least once ("+").
type OneOrMore struct {
	Child Node
}

// ZeroOrMore matches Child any number of times ("*").
type ZeroOrMore struct {
	Child Node
}

// Optional matches Child at most once ("?").
type Optional struct {
	Child Node
}

// Alternation matches Left, or Right if Left fails ("|").
// Chains of alternatives nest to the right: a|b|c is Alternation{a, Alternation{b, c}}.
type Alternation struct {
	Left  Node
	Right Node
}

// Sequence matches Nodes one after another.
type Sequence struct {
	Nodes []Node
}

func (Literal) node()     {}
func (OneOrMore) node()   {}
func (ZeroOrMore) node()  {}
func (Optional) node()    {}
func (Alternation) node() {}
func (Sequence) node()    {}
