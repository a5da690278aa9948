package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/auvred/minire"
)

const usage = "usage: minigrep [-n] [-v] <expr> [file...]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status: 0 if a line
// matched, 1 if none did and 2 if any error occurred.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "minigrep: ", 0)

	flags := flag.NewFlagSet("minigrep", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flags.PrintDefaults()
	}
	var (
		lineNumbers = flags.Bool("n", false, "Prefix each matching line with its line number")
		verbose     = flags.Bool("v", false, "Log the compiled program and every scanned line")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() < 1 {
		flags.Usage()
		return 2
	}
	expr := flags.Arg(0)
	files := flags.Args()[1:]

	// Reject bad expressions up front, even when no line is ever scanned
	n, err := minire.Parse(expr)
	if err != nil {
		logger.Printf("%q: %v", expr, err)
		return 2
	}
	if *verbose {
		prog, err := minire.Generate(n)
		if err != nil {
			logger.Printf("%q: %v", expr, err)
			return 2
		}
		logger.Printf("program for %q:\n%s", expr, prog)
	}

	g := &grep{
		expr:        expr,
		out:         stdout,
		withName:    len(files) > 1,
		lineNumbers: *lineNumbers,
	}
	if *verbose {
		g.logger = logger
	}

	found := false
	if len(files) == 0 {
		ok, err := g.scan("(standard input)", stdin)
		if err != nil {
			logger.Print(err)
			return 2
		}
		found = ok
	}
	// Like grep, a bad file is reported and skipped, and only decides the
	// exit status once every file has been scanned.
	failed := false
	for _, name := range files {
		ok, err := g.scanFile(name)
		if err != nil {
			logger.Print(err)
			failed = true
		}
		found = found || ok
	}

	if failed {
		return 2
	}
	if found {
		return 0
	}
	return 1
}
