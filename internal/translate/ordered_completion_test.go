package translate

import (
	"testing"

	"github.com/anthem-go/anthem/internal/fol"
)

func mustContainFormula(t *testing.T, fs []fol.Formula, want string) {
	t.Helper()
	for _, f := range fs {
		if f.String() == want {
			return
		}
	}
	t.Errorf("expected %q among:", want)
	for _, f := range fs {
		t.Logf("  %s", f)
	}
}

func TestOrderedCompleteSimpleFact(t *testing.T) {
	p := mustParseProgram(t, "p :- q.\n")
	theory := TauStar(p)
	out, ok := OrderedComplete(theory)
	if !ok {
		t.Fatal("expected ordered completion to succeed")
	}
	mustContainFormula(t, out, "p <- q")
	mustContainFormula(t, out, "p -> q and less_q_p")
}

func TestOrderedCompleteKeepsConstraintsStandalone(t *testing.T) {
	p := mustParseProgram(t, ":- p.\n")
	theory := TauStar(p)
	out, ok := OrderedComplete(theory)
	if !ok {
		t.Fatal("expected ordered completion to succeed")
	}
	if len(out) != 1 {
		t.Fatalf("expected the lone constraint to survive standalone, got %d formulas", len(out))
	}
	if got, want := out[0].String(), "p -> #false"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOrderedCompletionAxiomsIrreflexivityAndTransitivity(t *testing.T) {
	p := mustParseProgram(t, "p :- p.\n")
	theory := TauStar(p)
	axioms := OrderedCompletionAxioms(theory)
	mustContainFormula(t, axioms, "not less_p_p")
	mustContainFormula(t, axioms, "less_p_p and less_p_p -> less_p_p")
}
