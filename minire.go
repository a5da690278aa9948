// Package minire implements a small backtracking regular expression engine.
//
// An expression is parsed into a syntax tree ([Parse]), compiled into a
// program for a tiny virtual machine ([Generate]) and executed against the
// input ([Evaluate]). The dialect only knows literal runes, concatenation,
// alternation, grouping and the quantifiers "+", "*" and "?".
//
// Matching is anchored: an expression matches when it matches a prefix of
// the input. Searching inside a line is done by the caller, by matching
// every suffix in turn.
package minire

// MatchString reports whether expr matches a prefix of input.
//
// The expression is parsed and compiled on every call; nothing is cached.
// Errors are returned unchanged from the failing stage and are one of
// ParseError, CodegenError or EvalError. A failed match is not an error.
func MatchString(expr, input string) (bool, error) {
	return MatchRunes(expr, []rune(input))
}

// MatchRunes is like [MatchString] but takes the input as runes, so that
// callers sliding over a line can avoid converting it for every offset.
func MatchRunes(expr string, input []rune) (bool, error) {
	n, err := Parse(expr)
	if err != nil {
		return false, err
	}
	prog, err := Generate(n)
	if err != nil {
		return false, err
	}
	return Evaluate(prog, input)
}
