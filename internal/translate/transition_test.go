package translate

import (
	"testing"

	"github.com/anthem-go/anthem/internal/fol"
)

func TestTransitionBuildsImplicationOverHereThere(t *testing.T) {
	got := Transition(fol.Predicate{Symbol: "p", Arity: 1}).String()
	want := "forall X1 (hp(X1) -> tp(X1))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTransitionNullaryPredicate(t *testing.T) {
	got := Transition(fol.Predicate{Symbol: "q", Arity: 0}).String()
	want := "hq -> tq"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTransitionAxiomsAreSortedByPredicate(t *testing.T) {
	axioms := TransitionAxioms(map[fol.Predicate]bool{
		{Symbol: "q", Arity: 1}: true,
		{Symbol: "p", Arity: 1}: true,
	})
	if len(axioms) != 2 {
		t.Fatalf("expected 2 axioms, got %d", len(axioms))
	}
	if want := "forall X1 (hp(X1) -> tp(X1))"; axioms[0].String() != want {
		t.Errorf("expected p before q, got %q", axioms[0])
	}
	if want := "forall X1 (hq(X1) -> tq(X1))"; axioms[1].String() != want {
		t.Errorf("expected q second, got %q", axioms[1])
	}
}
