package theory

import (
	"strings"
	"testing"

	"github.com/anthem-go/anthem/internal/fol"
)

func TestProblemSerializeOrdersSymbolsAndDeclarations(t *testing.T) {
	f1, err := fol.Parse("p(X)")
	if err != nil {
		t.Fatal(err)
	}
	prob := NewProblem("p1", []ProblemAnnotatedFormula{
		{Name: "ax1", Role: ProblemAxiom, F: f1},
	})
	out := prob.Serialize()
	if !strings.Contains(out, "tff(p_type, type, p: general > $o).") {
		t.Errorf("expected a predicate type declaration, got:\n%s", out)
	}
	if !strings.Contains(out, "tff(ax1, axiom, p(X)).") {
		t.Errorf("expected the axiom declaration, got:\n%s", out)
	}
}

func TestWithWarningsPrefaceOrdering(t *testing.T) {
	w := Flawless(42).AddWarning("b").PrefaceWarnings([]string{"a"})
	if w.Data != 42 {
		t.Fatalf("expected data 42, got %v", w.Data)
	}
	if len(w.Warnings) != 2 || w.Warnings[0] != "a" || w.Warnings[1] != "b" {
		t.Fatalf("expected warnings [a b], got %v", w.Warnings)
	}
}

func TestUserGuidePrivatePredicate(t *testing.T) {
	ug := UserGuide{OutputPredicates: []fol.Predicate{{Symbol: "p", Arity: 1}}}
	if ug.IsPrivate(fol.Predicate{Symbol: "p", Arity: 1}) {
		t.Fatal("p/1 is declared output, should not be private")
	}
	if !ug.IsPrivate(fol.Predicate{Symbol: "q", Arity: 1}) {
		t.Fatal("q/1 is undeclared, should be private")
	}
}
