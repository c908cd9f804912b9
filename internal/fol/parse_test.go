package fol

import "testing"

func TestParseRoundTripDefault(t *testing.T) {
	cases := []string{
		"#true",
		"#false",
		"p",
		"p(X, Y)",
		"not p(X)",
		"p(X) and q(X)",
		"p(X) or q(X)",
		"p(X) -> q(X)",
		"p(X) <-> q(X)",
		"forall X (p(X) -> q(X))",
		"exists X Y (p(X, Y))",
		"X = Y",
		"X$i < Y$i",
		"N$i = (1 + 2)",
	}
	for _, src := range cases {
		f, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		got := Format(f)
		if got != src {
			t.Errorf("round trip mismatch: parsed %q, formatted back as %q", src, got)
		}
	}
}

func TestParseMixedImplicationRequiresParens(t *testing.T) {
	_, err := Parse("p -> q <- r")
	if err == nil {
		t.Fatal("expected a parse error for mixed implication-family connectives without parentheses")
	}
	if _, err := Parse("(p -> q) <- r"); err != nil {
		t.Fatalf("expected explicitly parenthesized mixed nesting to parse, got: %v", err)
	}
}

func TestParseRightAssociativeImplication(t *testing.T) {
	f, err := Parse("p -> q -> r")
	if err != nil {
		t.Fatal(err)
	}
	if f.Connective != ConnImplication || f.Sub[0].Predicate != "p" {
		t.Fatalf("expected right-associative parse p -> (q -> r), got %#v", f)
	}
	inner := f.Sub[1]
	if inner.Connective != ConnImplication || inner.Sub[0].Predicate != "q" {
		t.Fatalf("expected inner implication q -> r, got %#v", inner)
	}
}

func TestParseLeftAssociativeReverseImplication(t *testing.T) {
	f, err := Parse("p <- q <- r")
	if err != nil {
		t.Fatal(err)
	}
	if f.Connective != ConnReverseImplication {
		t.Fatalf("expected top connective <-, got %v", f.Connective)
	}
	left := f.Sub[0]
	if left.Connective != ConnReverseImplication || left.Sub[0].Predicate != "p" {
		t.Fatalf("expected left-associative parse (p <- q) <- r, got %#v", f)
	}
}

func TestFormatTPTPWrapsGeneralSort(t *testing.T) {
	f, err := Parse("p(X) -> q(N$i)")
	if err != nil {
		t.Fatal(err)
	}
	got := FormatTPTP(f)
	want := "p(X) => q(f__integer__(N$i))"
	if got != want {
		t.Errorf("FormatTPTP() = %q, want %q", got, want)
	}
}

func TestFormatILTPRejectsIntegerSort(t *testing.T) {
	f, err := Parse("p(N$i)")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := FormatILTP(f); err == nil {
		t.Fatal("expected FormatILTP to reject an integer-sorted variable")
	}
}

func TestSubstituteAlphaRenamesToAvoidCapture(t *testing.T) {
	// exists Y (p(X, Y)) [X := Y] must rename the bound Y before substituting,
	// else the free Y in the replacement would be captured.
	body := Atom("p", Term{Kind: TermVariable, Variable: Variable{Name: "X"}}, Term{Kind: TermVariable, Variable: Variable{Name: "Y"}})
	f := Quantify(Exists, []Variable{{Name: "Y"}}, body)
	replaced := f.Substitute(Variable{Name: "X"}, Term{Kind: TermVariable, Variable: Variable{Name: "Y"}})
	if replaced.Bound[0].Name == "Y" {
		t.Fatalf("expected the bound variable to be alpha-renamed away from Y, got %#v", replaced.Bound)
	}
	free := replaced.FreeVariables()
	if _, ok := free["Y"]; !ok {
		t.Fatalf("expected Y to occur free in the substituted formula, got %#v", free)
	}
}
