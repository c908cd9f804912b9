package task

import (
	"fmt"

	"github.com/anthem-go/anthem/internal/asp"
	"github.com/anthem-go/anthem/internal/fol"
	"github.com/anthem-go/anthem/internal/simplify"
	"github.com/anthem-go/anthem/internal/theory"
	"github.com/anthem-go/anthem/internal/translate"
)

// StrongEquivalenceTask compares two programs for strong equivalence:
// τ*-translate each, optionally simplify, apply Γ, optionally simplify
// again and break equivalences, then check the here/there bridge in each
// requested direction (spec §4.7 "Strong equivalence", grounded in
// strong_equivalence.rs's StrongEquivalenceTask).
type StrongEquivalenceTask struct {
	Left, Right       asp.Program
	Decomposition     Decomposition
	Direction         theory.Direction
	Simplify          bool
	BreakEquivalences bool
}

// Decompose runs the full strong-equivalence pipeline and returns the
// decomposed TPTP problems ready for the prover driver.
func (t StrongEquivalenceTask) Decompose() []theory.Problem {
	tracer().Debugf("strong equivalence: direction=%s decomposition=%v", t.Direction, t.Decomposition)
	predicates := map[fol.Predicate]bool{}
	for p := range translate.FolPredicates(t.Left.Predicates()) {
		predicates[p] = true
	}
	for p := range translate.FolPredicates(t.Right.Predicates()) {
		predicates[p] = true
	}
	transitionAxioms := translate.TransitionAxioms(predicates)

	left := t.translateSide(t.Left)
	right := t.translateSide(t.Right)

	var problems []theory.Problem
	if t.Direction == theory.DirectionUniversal || t.Direction == theory.DirectionForward {
		problems = append(problems, t.assemble("forward", transitionAxioms, "left", left, "right", right))
	}
	if t.Direction == theory.DirectionUniversal || t.Direction == theory.DirectionBackward {
		problems = append(problems, t.assemble("backward", transitionAxioms, "right", right, "left", left))
	}

	var out []theory.Problem
	for _, p := range problems {
		out = append(out, Decompose(p, t.Decomposition)...)
	}
	return out
}

// translateSide runs τ*/Γ and the optional simplification passes over one
// program, following strong_equivalence.rs's decompose body exactly:
// HT-simplify before Γ, classical-simplify after, then break equivalences.
func (t StrongEquivalenceTask) translateSide(p asp.Program) []fol.Formula {
	formulas := translate.TauStar(p)
	if t.Simplify {
		formulas = simplifyAll(simplify.HT(), formulas)
	}
	for i, f := range formulas {
		formulas[i] = translate.Gamma(f)
	}
	if t.Simplify {
		formulas = simplifyAll(simplify.Classical(), formulas)
	}
	if t.BreakEquivalences {
		formulas = breakEquivalencesAll(formulas)
	}
	return formulas
}

func simplifyAll(e simplify.Engine, fs []fol.Formula) []fol.Formula {
	out := make([]fol.Formula, len(fs))
	for i, f := range fs {
		out[i] = e.Apply(f)
	}
	return out
}

func breakEquivalencesAll(fs []fol.Formula) []fol.Formula {
	wrapped := make([]theory.AnnotatedFormula, len(fs))
	for i, f := range fs {
		wrapped[i] = theory.AnnotatedFormula{Formula: f}
	}
	broken := simplify.BreakEquivalences(wrapped)
	out := make([]fol.Formula, len(broken))
	for i, af := range broken {
		out[i] = af.Formula
	}
	return out
}

// assemble builds one named problem: the transition axioms and axiomSide
// (named axiomName_i) as axioms, conjectureSide (named conjectureName_i) as
// conjectures (strong_equivalence.rs's Problem::with_name(...).add_theory(...)
// chain).
func (t StrongEquivalenceTask) assemble(name string, transitionAxioms []fol.Formula, axiomName string, axiomSide []fol.Formula, conjectureName string, conjectureSide []fol.Formula) theory.Problem {
	var formulas []theory.ProblemAnnotatedFormula
	for i, f := range transitionAxioms {
		formulas = append(formulas, theory.ProblemAnnotatedFormula{Name: nameN("transition_axiom", i), Role: theory.ProblemAxiom, F: f})
	}
	for i, f := range axiomSide {
		formulas = append(formulas, theory.ProblemAnnotatedFormula{Name: nameN(axiomName, i), Role: theory.ProblemAxiom, F: f})
	}
	for i, f := range conjectureSide {
		formulas = append(formulas, theory.ProblemAnnotatedFormula{Name: nameN(conjectureName, i), Role: theory.ProblemConjecture, F: f})
	}
	p := theory.NewProblem(name, formulas)
	return RenameConflictingSymbols(p)
}

func nameN(prefix string, i int) string {
	return fmt.Sprintf("%s_%d", prefix, i)
}
