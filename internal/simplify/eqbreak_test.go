package simplify

import (
	"testing"

	"github.com/anthem-go/anthem/internal/theory"
)

func TestBreakEquivalencesSplitsForwardAndBackward(t *testing.T) {
	af := theory.AnnotatedFormula{
		Role: theory.RoleSpec, Name: "equiv",
		Formula: mustParse(t, "forall X (p(X) <-> q(X))"),
	}
	out := BreakEquivalences([]theory.AnnotatedFormula{af})
	if len(out) != 2 {
		t.Fatalf("expected 2 formulas, got %d", len(out))
	}
	if out[0].Name != "equiv_forward" || out[0].Direction != theory.DirectionForward {
		t.Errorf("unexpected forward half: %+v", out[0])
	}
	if want := "forall X (p(X) -> q(X))"; out[0].Formula.String() != want {
		t.Errorf("got %q, want %q", out[0].Formula, want)
	}
	if out[1].Name != "equiv_backward" || out[1].Direction != theory.DirectionBackward {
		t.Errorf("unexpected backward half: %+v", out[1])
	}
	if want := "forall X (p(X) <- q(X))"; out[1].Formula.String() != want {
		t.Errorf("got %q, want %q", out[1].Formula, want)
	}
}

func TestBreakEquivalencesPassesThroughNonEquivalence(t *testing.T) {
	af := theory.AnnotatedFormula{Role: theory.RoleSpec, Name: "rule", Formula: mustParse(t, "forall X (p(X) -> q(X))")}
	out := BreakEquivalences([]theory.AnnotatedFormula{af})
	if len(out) != 1 || out[0].Name != "rule" {
		t.Fatalf("expected the non-equivalence formula to pass through unchanged, got %+v", out)
	}
}
