package asp

import (
	"reflect"
	"testing"
)

// TestParseRoundTrip checks the semantic round trip spec §4.3 requires:
// Format(ast) re-parses to an AST structurally identical to ast, for every
// ast the parser can produce. It does not require textual identity with the
// original source, since Format is free to canonicalize whitespace and
// parenthesization.
func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"p(X).\n",
		"p(X) :- q(X), not r(X).\n",
		":- p(X), X = 1.\n",
		"{p(X)} :- q(X).\n",
		"p(X) :- q(X), X = 1 + 2 * 3.\n",
		"p(X) :- X = 1..3.\n",
	}
	for _, src := range cases {
		prog, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		reparsed, err := Parse(Format(prog))
		if err != nil {
			t.Fatalf("re-parsing Format(Parse(%q)): %v", src, err)
		}
		if !reflect.DeepEqual(prog, reparsed) {
			t.Errorf("round trip mismatch for %q:\n  original: %#v\n  reparsed: %#v", src, prog, reparsed)
		}
	}
}

func TestParseDoubleNegation(t *testing.T) {
	prog, err := Parse("p(X) :- not not q(X).\n")
	if err != nil {
		t.Fatal(err)
	}
	bf := prog.Rules[0].Body[0]
	if bf.Sign != SignDoubleNegation {
		t.Fatalf("expected double negation, got %v", bf.Sign)
	}
}

func TestPositiveBodyPredicatesExcludesNegation(t *testing.T) {
	prog, err := Parse("p(X) :- q(X), not r(X), not not s(X).\n")
	if err != nil {
		t.Fatal(err)
	}
	pos := prog.Rules[0].PositiveBodyPredicates()
	if len(pos) != 1 {
		t.Fatalf("expected exactly one positive body predicate, got %v", pos)
	}
	if !pos[Predicate{Symbol: "q", Arity: 1}] {
		t.Fatalf("expected q/1 in positive body predicates, got %v", pos)
	}
}

func TestOperatorPrecedenceLeftAssociative(t *testing.T) {
	prog, err := Parse("p(X) :- X = 1 - 2 - 3.\n")
	if err != nil {
		t.Fatal(err)
	}
	term := prog.Rules[0].Body[0].Right
	if term.Kind != TermBinary || term.Op != OpSubtract {
		t.Fatalf("expected top-level subtraction, got %#v", term)
	}
	left := term.Args[0]
	if left.Kind != TermBinary || left.Op != OpSubtract {
		t.Fatalf("expected left-associative (1 - 2) - 3, got %#v", term)
	}
}
