package translate

import (
	"testing"

	"github.com/anthem-go/anthem/internal/asp"
)

func TestTightenAppendsIndexToBasicHeadAndPositiveBody(t *testing.T) {
	p := mustParseProgram(t, "q(X) :- p(X).\n")
	out := Tighten(p)
	if len(out.Rules) != 3 {
		t.Fatalf("expected 1 tightened rule + 1 forget-successors rule per predicate (p, q), got %d", len(out.Rules))
	}
	got := asp.Format(asp.Program{Rules: []asp.Rule{out.Rules[0]}})
	want := "q(X, N + 1) :- p(X, N).\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTightenLeavesConstraintUnchanged(t *testing.T) {
	p := mustParseProgram(t, ":- p.\n")
	out := Tighten(p)
	got := asp.Format(asp.Program{Rules: []asp.Rule{out.Rules[0]}})
	want := ":- p.\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTightenLeavesNegativeBodyLiteralUntouched(t *testing.T) {
	p := mustParseProgram(t, "q(X) :- not p(X).\n")
	out := Tighten(p)
	got := asp.Format(asp.Program{Rules: []asp.Rule{out.Rules[0]}})
	want := "q(X, N + 1) :- not p(X).\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTightenAddsForgetSuccessorsPerPredicate(t *testing.T) {
	p := mustParseProgram(t, "q(X) :- p(X).\n")
	out := Tighten(p)
	formatted := asp.Format(out)
	wantP := "p(X1) :- p(X1, N).\n"
	wantQ := "q(X1) :- q(X1, N).\n"
	if !containsLine(formatted, wantP) {
		t.Errorf("expected forget-successors rule %q in:\n%s", wantP, formatted)
	}
	if !containsLine(formatted, wantQ) {
		t.Errorf("expected forget-successors rule %q in:\n%s", wantQ, formatted)
	}
}

func TestTightenChoosesFreshIndexVariable(t *testing.T) {
	p := mustParseProgram(t, "q(N) :- p(N).\n")
	out := Tighten(p)
	got := asp.Format(asp.Program{Rules: []asp.Rule{out.Rules[0]}})
	want := "q(N, N1 + 1) :- p(N, N1).\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func containsLine(haystack, line string) bool {
	for i := 0; i+len(line) <= len(haystack); i++ {
		if haystack[i:i+len(line)] == line {
			return true
		}
	}
	return false
}
