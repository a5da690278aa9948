package minire

type stack[T any] []T

func (s *stack[T]) push(v T) { *s = append(*s, v) }

func (s *stack[T]) pop() T {
	i := len(*s) - 1
	v := (*s)[i]
	*s = (*s)[:i]
	return v
}

type backtrackingFrame struct {
	pc Addr
	sp int
}

type machine struct {
	prog  Program
	input []rune

	// Program Counter. Index of current machine instruction
	pc Addr
	// Index of the next input rune
	sp int

	backtrackingStack stack[backtrackingFrame]
}

func (vm *machine) pushBacktrackingFrame(pc Addr) {
	vm.backtrackingStack.push(backtrackingFrame{pc: pc, sp: vm.sp})
}

// Resumes the most recent untried alternative.
// Returns false if every alternative has been exhausted.
func (vm *machine) noMatch() bool {
	if len(vm.backtrackingStack) == 0 {
		return false
	}
	frame := vm.backtrackingStack.pop()
	vm.pc = frame.pc
	vm.sp = frame.sp
	return true
}

func (vm *machine) eval() (bool, error) {
	for {
		if !vm.prog.valid(vm.pc) {
			return false, EvalError{PC: vm.pc}
		}
		i := vm.prog[vm.pc]
		switch i.Op {
		case OpMatchChar:
			if vm.sp < len(vm.input) && vm.input[vm.sp] == i.Char {
				vm.pc++
				vm.sp++
				continue
			}
			if !vm.noMatch() {
				return false, nil
			}
		case OpSplit:
			vm.pushBacktrackingFrame(i.Y)
			vm.pc = i.X
		case OpJump:
			vm.pc = i.X
		case OpAccept:
			return true, nil
		default:
			return false, EvalError{PC: vm.pc}
		}
	}
}

// Evaluate runs prog against input and reports whether it reaches an accept
// instruction. The match is anchored at the start of input but does not need
// to consume all of it.
//
// Alternatives are explored depth first: the first target of a split is
// tried before the second, and the first path that accepts wins. The returned
// error is an EvalError and only occurs for malformed programs.
//
// There is no step budget. A loop whose body can match the empty string,
// such as (a*)* or (a?)+, makes Evaluate run forever while its backtracking
// stack grows without bound. Callers that accept such expressions from
// untrusted sources must bound the call from the outside.
func Evaluate(prog Program, input []rune) (bool, error) {
	vm := machine{
		prog:  prog,
		input: input,
	}
	return vm.eval()
}
