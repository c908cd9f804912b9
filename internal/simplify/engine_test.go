package simplify

import (
	"testing"

	"github.com/anthem-go/anthem/internal/fol"
)

func TestEngineAppliesRulesToFixedPoint(t *testing.T) {
	// p and #true and #true loses both truths: the inner conjunction drops
	// its #true when it is rewritten, and the rebuilt outer conjunction drops
	// the other one in the same bottom-up pass.
	got := HT().Apply(mustParse(t, "p(X) and #true and #true")).String()
	if want := "p(X)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEngineLeavesAlreadySimpleFormulaUnchanged(t *testing.T) {
	f := mustParse(t, "p(X) and q(X)")
	got := HT().Apply(f)
	if got.String() != f.String() {
		t.Errorf("expected no-op on already-simple formula, got %q", got)
	}
}

func TestHashOfDistinguishesDifferentFormulas(t *testing.T) {
	a := mustParse(t, "p(X)")
	b := mustParse(t, "q(X)")
	if hashOf(a) == hashOf(b) {
		t.Error("expected distinct formulas to hash differently")
	}
}

func TestHashOfStableForEqualFormulas(t *testing.T) {
	a := fol.Atom("p", fol.Var("X", fol.SortGeneral))
	b := fol.Atom("p", fol.Var("X", fol.SortGeneral))
	if hashOf(a) != hashOf(b) {
		t.Error("expected structurally equal formulas to hash the same")
	}
}
