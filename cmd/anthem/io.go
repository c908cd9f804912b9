package main

import (
	"io"
	"os"

	"github.com/anthem-go/anthem/internal/asp"
)

// readProgram reads an ASP program from args[0] if given, or from stdin
// otherwise (the `[FILE]` optional-argument convention shared by
// analyze/translate/tighten).
func readProgram(args []string) (asp.Program, error) {
	if len(args) == 1 {
		return asp.FromFile(args[0])
	}
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return asp.Program{}, fatalf("reading standard input: %w", err)
	}
	return asp.Parse(string(src))
}
