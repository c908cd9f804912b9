package translate

import (
	"testing"

	"github.com/anthem-go/anthem/internal/fol"
)

func mustParseFol(t *testing.T, src string) fol.Formula {
	t.Helper()
	f, err := fol.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return f
}

func TestGammaAtomPrependsHere(t *testing.T) {
	f := mustParseFol(t, "p(X)")
	if got, want := Gamma(f).String(), "hp(X)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGammaNegationUsesThere(t *testing.T) {
	f := mustParseFol(t, "not p(X)")
	if got, want := Gamma(f).String(), "not tp(X)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGammaConjunctionDistributes(t *testing.T) {
	f := mustParseFol(t, "p(X) and q(X)")
	if got, want := Gamma(f).String(), "hp(X) and hq(X)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGammaImplicationConjoinsBothWorlds(t *testing.T) {
	f := mustParseFol(t, "p(X) -> q(X)")
	if got, want := Gamma(f).String(), "(hp(X) -> hq(X)) and (tp(X) -> tq(X))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGammaQuantifiedDistributesUnderBinder(t *testing.T) {
	f := mustParseFol(t, "forall X (p(X) -> q(X))")
	if got, want := Gamma(f).String(), "forall X ((hp(X) -> hq(X)) and (tp(X) -> tq(X)))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
