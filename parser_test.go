package minire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"
)

func lit(s string) []Node {
	res := make([]Node, 0, len(s))
	for _, c := range s {
		res = append(res, Literal{Char: c})
	}
	return res
}

func seq(nodes ...Node) Sequence {
	return Sequence{Nodes: nodes}
}

func TestParse(t *testing.T) {
	cases := []struct {
		expr string
		want Node
	}{
		{"a", seq(lit("a")...)},
		{"abc", seq(lit("abc")...)},
		{"abc|def", Alternation{seq(lit("abc")...), seq(lit("def")...)}},
		{"a|b|c", Alternation{
			seq(lit("a")...),
			Alternation{seq(lit("b")...), seq(lit("c")...)},
		}},
		{"abc?", seq(Literal{'a'}, Literal{'b'}, Optional{Literal{'c'}})},
		{"a+b*", seq(OneOrMore{Literal{'a'}}, ZeroOrMore{Literal{'b'}})},
		{"a+*", seq(ZeroOrMore{OneOrMore{Literal{'a'}}})},
		{"(abc)*", seq(ZeroOrMore{seq(lit("abc")...)})},
		{"(abc)+d", seq(OneOrMore{seq(lit("abc")...)}, Literal{'d'})},
		{"a(b|c)d", seq(
			Literal{'a'},
			Alternation{seq(lit("b")...), seq(lit("c")...)},
			Literal{'d'},
		)},
		{"(a|b)?", seq(Optional{Alternation{seq(lit("a")...), seq(lit("b")...)}})},
		{"((a))", seq(seq(seq(lit("a")...)))},
		{"a()b", seq(lit("ab")...)},
		{"x|(y)", Alternation{seq(lit("x")...), seq(seq(lit("y")...))}},
		{`\(\\\|`, seq(lit(`(\|`)...)},
		{`\**`, seq(ZeroOrMore{Literal{'*'}})},
		{"é+", seq(OneOrMore{Literal{'é'}})},
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			got, err := Parse(c.expr)
			assert.NilError(t, err)
			assert.DeepEqual(t, got, c.want)
		})
	}
}

func TestParseRunePositions(t *testing.T) {
	// Positions count runes, not bytes
	_, err := Parse("ééé)")
	assert.DeepEqual(t, err, ParseError{Kind: UnmatchedRightParen, Pos: 3})

	_, err = Parse("(ü")
	assert.DeepEqual(t, err, ParseError{Kind: UnclosedGroup, Pos: 2})

	_, err = Parse(`ö\ä`)
	assert.DeepEqual(t, err, ParseError{Kind: InvalidEscape, Pos: 2, Char: 'ä'})
}

func TestParserCloseGroup(t *testing.T) {
	opts := []cmp.Option{cmp.AllowUnexported(parser{}, parseFrame{}), cmpopts.EquateEmpty()}

	t.Run("alternation", func(t *testing.T) {
		p := parser{
			seq:  lit("c"),
			alts: []Node{seq(lit("a")...), seq(lit("b")...)},
		}
		p.saved.push(parseFrame{seq: lit("x"), alts: []Node{seq(lit("y")...)}})
		assert.NilError(t, p.closeGroup(7))
		assert.DeepEqual(t, p, parser{
			seq: []Node{
				Literal{'x'},
				Alternation{seq(lit("a")...), Alternation{seq(lit("b")...), seq(lit("c")...)}},
			},
			alts: []Node{seq(lit("y")...)},
		}, opts...)
	})

	t.Run("sequence", func(t *testing.T) {
		p := parser{seq: lit("ab")}
		p.saved.push(parseFrame{})
		assert.NilError(t, p.closeGroup(3))
		assert.DeepEqual(t, p, parser{seq: []Node{seq(lit("ab")...)}}, opts...)
	})

	t.Run("empty", func(t *testing.T) {
		p := parser{}
		p.saved.push(parseFrame{seq: lit("z")})
		assert.NilError(t, p.closeGroup(1))
		assert.DeepEqual(t, p, parser{seq: lit("z")}, opts...)
	})

	t.Run("unmatched", func(t *testing.T) {
		p := parser{seq: lit("a")}
		assert.DeepEqual(t, p.closeGroup(1), error(ParseError{Kind: UnmatchedRightParen, Pos: 1}))
	})
}

func TestParseErrorKindString(t *testing.T) {
	assert.Equal(t, InvalidEscape.String(), "InvalidEscape")
	assert.Equal(t, EmptyExpression.String(), "EmptyExpression")
	assert.Equal(t, ParseErrorKind(0).String(), "ParseErrorKind(0)")
}
