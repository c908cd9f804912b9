package translate

import (
	"testing"

	"github.com/anthem-go/anthem/internal/fol"
)

func TestTauStarRuleBasicHead(t *testing.T) {
	p := mustParseProgram(t, "q(X) :- p(X).\n")
	f := TauStarRule(p.Rules[0])
	got := f.String()
	want := "forall V1 X (V1 = X and exists Z1 (Z1 = X and p(Z1)) -> q(V1))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestTauStarSharedGlobalsAcrossRules checks the property completion relies
// on: two rules with the same head predicate/arity produce head atoms that
// are structurally identical, because TauStar computes one shared global
// variable list for the whole program (spec §4.5).
func TestTauStarSharedGlobalsAcrossRules(t *testing.T) {
	p := mustParseProgram(t, "q(X) :- p(X).\nq(Y) :- r(Y).\n")
	fs := TauStar(p)
	if len(fs) != 2 {
		t.Fatalf("expected 2 formulas, got %d", len(fs))
	}
	headOf := func(f fol.Formula) fol.Formula {
		body := f
		if body.Kind == fol.FormulaQuantified {
			body = body.Sub[0]
		}
		return body.Sub[1]
	}
	h1, h2 := headOf(fs[0]), headOf(fs[1])
	if h1.String() != h2.String() {
		t.Errorf("expected identical head atoms, got %q and %q", h1.String(), h2.String())
	}
}

func TestTauStarRulePropositionalFact(t *testing.T) {
	p := mustParseProgram(t, "p.\n")
	f := TauStarRule(p.Rules[0])
	if got, want := f.String(), "#true -> p"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTauStarRuleNegatedBodyLiteral(t *testing.T) {
	p := mustParseProgram(t, "q :- not p.\n")
	f := TauStarRule(p.Rules[0])
	if got, want := f.String(), "not p -> q"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTauStarRuleChoiceHead(t *testing.T) {
	p := mustParseProgram(t, "{p} :- q.\n")
	f := TauStarRule(p.Rules[0])
	if got, want := f.String(), "q and not not p -> p"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTauStarRuleConstraint(t *testing.T) {
	p := mustParseProgram(t, ":- p.\n")
	f := TauStarRule(p.Rules[0])
	if got, want := f.String(), "p -> #false"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTauStarSignAppliesInsideExistential(t *testing.T) {
	p := mustParseProgram(t, "q :- not p(X).\n")
	f := TauStarRule(p.Rules[0])
	// the negation must be inside the existential scope, next to the atom,
	// not wrapped around the whole quantified formula.
	want := "forall X (exists Z1 (Z1 = X and not p(Z1)) -> q)"
	if got := f.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTauStarCollectsAllRules(t *testing.T) {
	p := mustParseProgram(t, "p.\nq :- p.\n")
	fs := TauStar(p)
	if len(fs) != 2 {
		t.Fatalf("expected 2 formulas, got %d", len(fs))
	}
}

func TestTauStarRuleWithInterval(t *testing.T) {
	p := mustParseProgram(t, "p(X) :- X = 1..3.\n")
	f := TauStarRule(p.Rules[0])
	if f.String() == "" {
		t.Fatal("expected a non-empty translation")
	}
}
