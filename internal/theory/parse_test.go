package theory

import "testing"

func TestParseSpecificationBasicLemma(t *testing.T) {
	src := "% a comment line\nlemma/forward step1: p\nassumption default: forall X (p(X) -> q(X))\n"
	spec, err := ParseSpecification(src)
	if err != nil {
		t.Fatalf("ParseSpecification: %v", err)
	}
	if len(spec.Formulas) != 2 {
		t.Fatalf("expected 2 formulas, got %d", len(spec.Formulas))
	}
	if spec.Formulas[0].Role != RoleLemma || spec.Formulas[0].Direction != DirectionForward || spec.Formulas[0].Name != "step1" {
		t.Errorf("unexpected first formula: %+v", spec.Formulas[0])
	}
	if spec.Formulas[1].Role != RoleAssumption || spec.Formulas[1].Direction != DirectionUniversal {
		t.Errorf("unexpected second formula: %+v", spec.Formulas[1])
	}
}

func TestParseSpecificationRejectsUnknownRole(t *testing.T) {
	if _, err := ParseSpecification("bogus: p\n"); err == nil {
		t.Fatal("expected an error for an unknown role")
	}
}

func TestParseSpecificationRejectsMissingColon(t *testing.T) {
	if _, err := ParseSpecification("lemma step1 p\n"); err == nil {
		t.Fatal("expected an error for a missing ':' separator")
	}
}

func TestParseUserGuideFullShape(t *testing.T) {
	src := "input p/1\noutput q/2\nplaceholder n: integer\nassume base: forall X (p(X) -> q(X, X))\n"
	ug, err := ParseUserGuide(src)
	if err != nil {
		t.Fatalf("ParseUserGuide: %v", err)
	}
	if len(ug.InputPredicates) != 1 || ug.InputPredicates[0].Symbol != "p" || ug.InputPredicates[0].Arity != 1 {
		t.Errorf("unexpected input predicates: %+v", ug.InputPredicates)
	}
	if len(ug.OutputPredicates) != 1 || ug.OutputPredicates[0].Symbol != "q" || ug.OutputPredicates[0].Arity != 2 {
		t.Errorf("unexpected output predicates: %+v", ug.OutputPredicates)
	}
	if len(ug.Placeholders) != 1 {
		t.Fatalf("expected 1 placeholder, got %d", len(ug.Placeholders))
	}
	if len(ug.Assumptions) != 1 || ug.Assumptions[0].Name != "base" {
		t.Errorf("unexpected assumptions: %+v", ug.Assumptions)
	}
}

func TestParseUserGuideRejectsUnknownDirective(t *testing.T) {
	if _, err := ParseUserGuide("bogus p/1\n"); err == nil {
		t.Fatal("expected an error for an unknown directive")
	}
}
