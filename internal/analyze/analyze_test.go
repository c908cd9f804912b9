package analyze

import (
	"testing"

	"github.com/anthem-go/anthem/internal/asp"
)

func mustParse(t *testing.T, src string) asp.Program {
	t.Helper()
	p, err := asp.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return p
}

func TestTightAcyclicProgram(t *testing.T) {
	p := mustParse(t, "p(X) :- q(X).\nq(X) :- r(X).\n")
	if !Tight(p) {
		t.Fatal("expected an acyclic program to be tight")
	}
}

func TestTightRejectsPositiveCycle(t *testing.T) {
	p := mustParse(t, "p(X) :- q(X).\nq(X) :- p(X).\n")
	if Tight(p) {
		t.Fatal("expected a positive recursive cycle to make the program non-tight")
	}
}

func TestTightIgnoresNegativeEdges(t *testing.T) {
	p := mustParse(t, "p(X) :- not q(X).\nq(X) :- not p(X).\n")
	if !Tight(p) {
		t.Fatal("expected negation-only mutual dependency to remain tight")
	}
}

func TestPrivateRecursionChoiceHead(t *testing.T) {
	p := mustParse(t, "{p(X)} :- q(X).\n")
	private := map[asp.Predicate]bool{{Symbol: "p", Arity: 1}: true}
	if !HasPrivateRecursion(p, private) {
		t.Fatal("expected a choice rule with a private head to count as private recursion")
	}
}

func TestPrivateRecursionBodyCycle(t *testing.T) {
	p := mustParse(t, "p(X) :- not q(X).\nq(X) :- not p(X).\n")
	private := map[asp.Predicate]bool{
		{Symbol: "p", Arity: 1}: true,
		{Symbol: "q", Arity: 1}: true,
	}
	if !HasPrivateRecursion(p, private) {
		t.Fatal("expected a negative cycle among private predicates to count as private recursion")
	}
}
