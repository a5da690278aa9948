package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/auvred/minire"
)

type grep struct {
	expr string
	out  io.Writer
	// Prefix matching lines with the source name
	withName    bool
	lineNumbers bool
	// Debug output, nil when disabled
	logger *log.Logger
}

func (g *grep) scanFile(name string) (bool, error) {
	f, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return g.scan(name, f)
}

// scan prints every line of r that contains a match of g.expr and reports
// whether there was at least one.
func (g *grep) scan(name string, r io.Reader) (bool, error) {
	scanner := bufio.NewScanner(r)
	// Lines are not limited to the default 64 KiB token size
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	found := false
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if g.logger != nil {
			g.logger.Printf("%s:%d: scanning %q", name, lineno, line)
		}
		ok, err := g.matchLine([]rune(line))
		if err != nil {
			return found, fmt.Errorf("%s:%d: %w", name, lineno, err)
		}
		if !ok {
			continue
		}
		found = true
		if g.withName {
			fmt.Fprintf(g.out, "%s:", name)
		}
		if g.lineNumbers {
			fmt.Fprintf(g.out, "%d:", lineno)
		}
		fmt.Fprintln(g.out, line)
	}
	if err := scanner.Err(); err != nil {
		return found, fmt.Errorf("reading %s: %w", name, err)
	}
	return found, nil
}

// matchLine tries an anchored match at every rune offset of line and stops
// at the first one that matches.
func (g *grep) matchLine(line []rune) (bool, error) {
	for i := range line {
		ok, err := minire.MatchRunes(g.expr, line[i:])
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}
