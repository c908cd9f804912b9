package translate

import (
	"testing"

	"github.com/anthem-go/anthem/internal/asp"
)

func mustParseProgram(t *testing.T, src string) asp.Program {
	t.Helper()
	p, err := asp.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return p
}

func TestShorthandFactDropsTruthAntecedent(t *testing.T) {
	p := mustParseProgram(t, "p.\n")
	fs, err := Shorthand(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := fs[0].String(), "p"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestShorthandRuleFormsImplication(t *testing.T) {
	p := mustParseProgram(t, "q(X) :- p(X).\n")
	fs, err := Shorthand(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := fs[0].String(), "forall X (p(X) -> q(X))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestShorthandRejectsArithmetic(t *testing.T) {
	p := mustParseProgram(t, "p(X) :- q(X), X = 1 + 2.\n")
	if _, err := Shorthand(p); err == nil {
		t.Fatal("expected an error for an arithmetic term")
	}
}

func TestShorthandChoiceHead(t *testing.T) {
	p := mustParseProgram(t, "{p(X)} :- q(X).\n")
	fs, err := Shorthand(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := fs[0].String(), "forall X (q(X) and not not p(X) -> p(X))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestShorthandConstraint(t *testing.T) {
	p := mustParseProgram(t, ":- p.\n")
	fs, err := Shorthand(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := fs[0].String(), "p -> #false"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
