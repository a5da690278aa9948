package minire_test

import (
	"errors"
	"fmt"

	"github.com/auvred/minire"
)

func ExampleMatchString() {
	fmt.Println(minire.MatchString("abc|def", "defg"))
	fmt.Println(minire.MatchString("(abc)+", "ab"))
	// Output:
	// true <nil>
	// false <nil>
}

func ExampleMatchString_error() {
	_, err := minire.MatchString("(abc", "abc")
	var pe minire.ParseError
	if errors.As(err, &pe) {
		fmt.Println(pe.Kind, pe.Pos)
	}
	fmt.Println(err)
	// Output:
	// UnclosedGroup 4
	// missing ')' at position 4
}

func ExampleProgram_String() {
	n, _ := minire.Parse("a*b")
	prog, _ := minire.Generate(n)
	fmt.Print(prog)
	// Output:
	// 0000  split 1, 3
	// 0001  char 'a'
	// 0002  jmp 0
	// 0003  char 'b'
	// 0004  accept
}
