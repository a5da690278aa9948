package minire

import (
	"fmt"
	"strconv"
)

// ParseErrorKind classifies a malformed expression.
type ParseErrorKind uint8

const (
	// An escape other than \\ \( \) \* \+ \? \|, or a trailing backslash.
	InvalidEscape ParseErrorKind = iota + 1
	// A ")" without a matching "(".
	UnmatchedRightParen
	// A quantifier or "|" with nothing before it, or a "|" with nothing after it.
	NoPrecedingAtom
	// A "(" that is never closed.
	UnclosedGroup
	// An expression without a single atom.
	EmptyExpression
)

func (k ParseErrorKind) String() string {
	switch k {
	case InvalidEscape:
		return "InvalidEscape"
	case UnmatchedRightParen:
		return "UnmatchedRightParen"
	case NoPrecedingAtom:
		return "NoPrecedingAtom"
	case UnclosedGroup:
		return "UnclosedGroup"
	case EmptyExpression:
		return "EmptyExpression"
	default:
		return "ParseErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseError is returned for syntactically invalid expressions.
// Pos is a rune offset into the expression.
type ParseError struct {
	Kind ParseErrorKind
	Pos  int
	// Char is the offending escaped rune for InvalidEscape, 0 otherwise.
	Char rune
}

func (e ParseError) Error() string {
	switch e.Kind {
	case InvalidEscape:
		if e.Char == 0 {
			return fmt.Sprintf("trailing backslash at position %d", e.Pos)
		}
		return fmt.Sprintf("invalid escape sequence \\%c at position %d", e.Char, e.Pos)
	case UnmatchedRightParen:
		return fmt.Sprintf("unmatched ')' at position %d", e.Pos)
	case NoPrecedingAtom:
		return fmt.Sprintf("nothing to repeat or alternate at position %d", e.Pos)
	case UnclosedGroup:
		return fmt.Sprintf("missing ')' at position %d", e.Pos)
	case EmptyExpression:
		return "empty expression"
	}
	return fmt.Sprintf("%v at position %d", e.Kind, e.Pos)
}

func newParseError(kind ParseErrorKind, pos int) ParseError {
	return ParseError{Kind: kind, Pos: pos}
}

// CodegenErrorKind classifies an internal code generator failure.
type CodegenErrorKind uint8

const (
	// A placeholder slot did not hold the instruction it was emitted as.
	BackpatchFailure CodegenErrorKind = iota + 1
	// The tree contained a nil or unrecognized Node.
	UnknownNode
)

func (k CodegenErrorKind) String() string {
	switch k {
	case BackpatchFailure:
		return "BackpatchFailure"
	case UnknownNode:
		return "UnknownNode"
	default:
		return "CodegenErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// CodegenError signals an inconsistency inside the code generator.
// It is never caused by the expression text itself.
type CodegenError struct {
	Kind CodegenErrorKind
	// Addr is the placeholder address for BackpatchFailure.
	Addr Addr
	// Want is the opcode expected at Addr.
	Want Opcode
}

func (e CodegenError) Error() string {
	if e.Kind == BackpatchFailure {
		return fmt.Sprintf("backpatch failure: no unpatched %v at %d", e.Want, e.Addr)
	}
	return "code generation: " + e.Kind.String()
}

// EvalError is returned when the machine reaches an address outside of the
// program. Like CodegenError it indicates a malformed program.
type EvalError struct {
	PC Addr
}

func (e EvalError) Error() string {
	return fmt.Sprintf("invalid program counter %d", e.PC)
}

var (
	_ error = (*ParseError)(nil)
	_ error = (*CodegenError)(nil)
	_ error = (*EvalError)(nil)
)
