package translate

import (
	"testing"

	"github.com/anthem-go/anthem/internal/fol"
)

func TestCompleteBasicRule(t *testing.T) {
	p := mustParseProgram(t, "p(X) :- q(X).\n")
	theory := TauStar(p)
	out, ok := Complete(theory)
	if !ok {
		t.Fatal("expected completion to succeed")
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 completion formula, got %d", len(out))
	}
	want := "forall V1 (p(V1) <-> exists X (V1 = X and exists Z1 (Z1 = X and q(Z1))))"
	if got := out[0].String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCompleteMergesConstraintsUnderOneFalsityAxiom(t *testing.T) {
	p := mustParseProgram(t, ":- p.\n:- q.\n")
	theory := TauStar(p)
	out, ok := Complete(theory)
	if !ok {
		t.Fatal("expected completion to succeed")
	}
	if len(out) != 1 {
		t.Fatalf("expected both constraints to merge into 1 completion formula, got %d", len(out))
	}
	want := "#false <-> p or q"
	if got := out[0].String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCompleteRejectsNonImplication(t *testing.T) {
	f := mustParseFol(t, "p and q")
	if _, ok := Complete([]fol.Formula{f}); ok {
		t.Fatal("expected a non-implication formula to make completion fail")
	}
}
