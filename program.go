package minire

import (
	"fmt"
	"strconv"
	"strings"
)

// Addr is the index of an instruction inside a Program.
type Addr int

// NoAddr is the target of a placeholder instruction that has not been
// backpatched yet. It never appears in a Program returned by Generate.
const NoAddr Addr = -1

// Opcode identifies the operation of an Instruction.
type Opcode uint8

const (
	// Consume Char or fail.
	OpMatchChar Opcode = iota
	// Try X, then Y if X fails.
	OpSplit
	// Continue at X.
	OpJump
	// Succeed.
	OpAccept
)

func (op Opcode) String() string {
	switch op {
	case OpMatchChar:
		return "char"
	case OpSplit:
		return "split"
	case OpJump:
		return "jmp"
	case OpAccept:
		return "accept"
	default:
		return "op" + strconv.Itoa(int(op))
	}
}

// Instruction is a single machine instruction. Only the fields used by Op are
// meaningful: Char for OpMatchChar, X and Y for OpSplit, X for OpJump.
type Instruction struct {
	Op   Opcode
	Char rune
	X, Y Addr
}

// MatchChar returns an instruction that consumes c.
func MatchChar(c rune) Instruction { return Instruction{Op: OpMatchChar, Char: c} }

// Split returns an instruction that tries x first and y on failure.
func Split(x, y Addr) Instruction { return Instruction{Op: OpSplit, X: x, Y: y} }

// Jump returns an instruction that continues at x.
func Jump(x Addr) Instruction { return Instruction{Op: OpJump, X: x} }

// Accept returns an instruction that ends the match successfully.
func Accept() Instruction { return Instruction{Op: OpAccept} }

func (i Instruction) String() string {
	switch i.Op {
	case OpMatchChar:
		return fmt.Sprintf("char %q", i.Char)
	case OpSplit:
		return fmt.Sprintf("split %s, %s", i.X, i.Y)
	case OpJump:
		return fmt.Sprintf("jmp %s", i.X)
	case OpAccept:
		return "accept"
	default:
		return fmt.Sprintf("(%v %q %s %s)", i.Op, i.Char, i.X, i.Y)
	}
}

func (a Addr) String() string {
	if a == NoAddr {
		return "?"
	}
	return strconv.Itoa(int(a))
}

// Program is a flat instruction sequence produced by Generate.
// Execution starts at address 0.
type Program []Instruction

// String returns a disassembly of p, one instruction per line.
func (p Program) String() string {
	var s strings.Builder
	for pc, i := range p {
		fmt.Fprintf(&s, "%04d  %v\n", pc, i)
	}
	return s.String()
}

func (p Program) valid(a Addr) bool {
	return a >= 0 && int(a) < len(p)
}
