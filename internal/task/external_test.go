package task

import (
	"strings"
	"testing"

	"github.com/anthem-go/anthem/internal/fol"
	"github.com/anthem-go/anthem/internal/theory"
)

func TestExternalEquivalenceUniversalDirectionProducesBothProblems(t *testing.T) {
	spec := theory.Specification{Formulas: []theory.AnnotatedFormula{
		{Role: theory.RoleSpec, Formula: fol.Atom("p")},
	}}
	task := ExternalEquivalenceTask{
		SpecificationFormulas: &spec,
		Program:               mustParseProgram(t, "p.\n"),
		UserGuide: theory.UserGuide{
			OutputPredicates: []fol.Predicate{{Symbol: "p", Arity: 0}},
		},
		Decomposition: DecompositionIndependent,
		Direction:     theory.DirectionUniversal,
	}
	result, err := task.Decompose()
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	if len(result.Data) != 2 {
		t.Fatalf("expected a forward and a backward problem, got %d", len(result.Data))
	}
	if !strings.HasPrefix(result.Data[0].Name, "forward") {
		t.Errorf("expected the first problem to be the forward direction, got %q", result.Data[0].Name)
	}
	if !strings.HasPrefix(result.Data[1].Name, "backward") {
		t.Errorf("expected the second problem to be the backward direction, got %q", result.Data[1].Name)
	}
}

func TestExternalEquivalenceRejectsMismatchedPublicPredicates(t *testing.T) {
	spec := theory.Specification{Formulas: []theory.AnnotatedFormula{
		{Role: theory.RoleSpec, Formula: fol.Atom("q")},
	}}
	task := ExternalEquivalenceTask{
		SpecificationFormulas: &spec,
		Program:               mustParseProgram(t, "p.\n"),
		UserGuide: theory.UserGuide{
			OutputPredicates: []fol.Predicate{{Symbol: "p", Arity: 0}, {Symbol: "q", Arity: 0}},
		},
		Decomposition: DecompositionIndependent,
		Direction:     theory.DirectionUniversal,
	}
	if _, err := task.Decompose(); err == nil {
		t.Fatal("expected a validation error when specification and program disagree on public predicates")
	}
}

func TestExternalEquivalenceRejectsNonTightProgramUnlessBypassed(t *testing.T) {
	spec := theory.Specification{Formulas: []theory.AnnotatedFormula{
		{Role: theory.RoleSpec, Formula: fol.Atom("p")},
	}}
	program := mustParseProgram(t, "p :- p.\n")
	base := ExternalEquivalenceTask{
		SpecificationFormulas: &spec,
		Program:               program,
		UserGuide: theory.UserGuide{
			OutputPredicates: []fol.Predicate{{Symbol: "p", Arity: 0}},
		},
		Decomposition: DecompositionIndependent,
		Direction:     theory.DirectionForward,
	}
	if _, err := base.Decompose(); err == nil {
		t.Fatal("expected a validation error for a non-tight program")
	}

	bypassed := base
	bypassed.BypassTightness = true
	if _, err := bypassed.Decompose(); err != nil {
		t.Fatalf("did not expect an error once tightness is bypassed: %v", err)
	}
}

func TestExternalEquivalenceForwardOnlyWhenDirectionForward(t *testing.T) {
	spec := theory.Specification{Formulas: []theory.AnnotatedFormula{
		{Role: theory.RoleSpec, Formula: fol.Atom("p")},
	}}
	task := ExternalEquivalenceTask{
		SpecificationFormulas: &spec,
		Program:               mustParseProgram(t, "p.\n"),
		UserGuide: theory.UserGuide{
			OutputPredicates: []fol.Predicate{{Symbol: "p", Arity: 0}},
		},
		Decomposition: DecompositionIndependent,
		Direction:     theory.DirectionForward,
	}
	result, err := task.Decompose()
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	for _, p := range result.Data {
		if strings.HasPrefix(p.Name, "backward") {
			t.Fatalf("did not expect a backward problem, got %q", p.Name)
		}
	}
}

func TestExternalEquivalenceSpecificationProgramCompletesCleanly(t *testing.T) {
	specProgram := mustParseProgram(t, "p :- not q.\n")
	task := ExternalEquivalenceTask{
		SpecificationProgram: &specProgram,
		Program:              mustParseProgram(t, "p :- not q.\n"),
		UserGuide: theory.UserGuide{
			OutputPredicates: []fol.Predicate{{Symbol: "p", Arity: 0}},
		},
		BypassTightness: true,
		Decomposition:   DecompositionIndependent,
		Direction:       theory.DirectionForward,
	}
	if _, err := task.Decompose(); err != nil {
		t.Fatalf("expected this shape to complete cleanly, got %v", err)
	}
}
