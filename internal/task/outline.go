// Package task assembles and decomposes end-to-end verification tasks
// (spec §4.7): strong equivalence between two programs, and external
// equivalence between a specification and a program against a user guide
// and proof outline. Every task follows the same three-stage shape —
// validate, assemble, decompose — grounded in original_source's
// src/verifying/{outline,problem,task}/*.rs.
package task

import (
	"fmt"

	"github.com/anthem-go/anthem/internal/fol"
	"github.com/anthem-go/anthem/internal/theory"
)

// ProofOutlineError is returned when a proof-outline formula does not
// match the shape spec §4.7 requires of a lemma, inductive lemma, or
// definition, grounded in outline/mod.rs's ProofOutlineError.
type ProofOutlineError struct {
	Reason  string
	Formula fol.Formula
}

func (e *ProofOutlineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Formula)
}

// GeneralLemma is a lemma's conjecture/consequence pair: if every
// conjecture is proved, every consequence may be added as an axiom to the
// next proof step. A basic lemma F has conjectures [F] and consequences
// [F]; an inductive lemma F has conjectures [base, step] and consequences
// [F] (outline/mod.rs's GeneralLemma).
type GeneralLemma struct {
	Conjectures  []theory.ProblemAnnotatedFormula
	Consequences []theory.ProblemAnnotatedFormula
}

// ProofOutline is the validated, direction-split content of a proof
// outline specification (spec §4.7 "Proof-outline validation").
type ProofOutline struct {
	ForwardLemmas       []GeneralLemma
	BackwardLemmas      []GeneralLemma
	ForwardDefinitions  []theory.AnnotatedFormula
	BackwardDefinitions []theory.AnnotatedFormula
}

// FromSpecification validates every annotated formula of spec as a lemma,
// inductive lemma, or definition, and splits the result by direction.
// taken is the set of predicates already in scope before the outline is
// considered (typically those of the specification and program under
// verification); a definition may only introduce a predicate outside this
// set (outline/mod.rs's ProofOutline::from_specification).
func FromSpecification(spec theory.Specification, taken map[fol.Predicate]bool) (theory.WithWarnings[ProofOutline], error) {
	inScope := make(map[fol.Predicate]bool, len(taken))
	for p := range taken {
		inScope[p] = true
	}

	var warnings []string
	var forwardLemmas, backwardLemmas []GeneralLemma
	var forwardDefs, backwardDefs []theory.AnnotatedFormula

	for _, anf := range spec.Formulas {
		switch anf.Role {
		case theory.RoleLemma, theory.RoleInductiveLemma:
			lemma, err := toGeneralLemma(anf)
			if err != nil {
				return theory.WithWarnings[ProofOutline]{}, err
			}
			switch anf.Direction {
			case theory.DirectionUniversal:
				forwardLemmas = append(forwardLemmas, lemma)
				backwardLemmas = append(backwardLemmas, lemma)
			case theory.DirectionForward:
				forwardLemmas = append(forwardLemmas, lemma)
			case theory.DirectionBackward:
				backwardLemmas = append(backwardLemmas, lemma)
			}

		case theory.RoleDefinition:
			predicate, defWarnings, err := checkDefinition(anf.Formula, inScope)
			if err != nil {
				return theory.WithWarnings[ProofOutline]{}, err
			}
			inScope[predicate] = true
			warnings = append(warnings, defWarnings...)
			switch anf.Direction {
			case theory.DirectionForward:
				forwardDefs = append(forwardDefs, anf)
			case theory.DirectionBackward:
				backwardDefs = append(backwardDefs, anf)
			case theory.DirectionUniversal:
				forwardDefs = append(forwardDefs, anf)
				backwardDefs = append(backwardDefs, anf)
			}

		default:
			return theory.WithWarnings[ProofOutline]{}, &ProofOutlineError{
				Reason:  "the following annotated formula has a role that is forbidden in proof outlines",
				Formula: anf.Formula,
			}
		}
	}

	out := ProofOutline{
		ForwardLemmas:       forwardLemmas,
		BackwardLemmas:      backwardLemmas,
		ForwardDefinitions:  forwardDefs,
		BackwardDefinitions: backwardDefs,
	}
	return theory.Flawless(out).PrefaceWarnings(warnings), nil
}

// toProblemFormula mirrors problem/mod.rs's `From<(fol::AnnotatedFormula,
// Role)>`: an empty name falls back to one derived from the formula's role.
func toProblemFormula(af theory.AnnotatedFormula, role theory.ProblemRole) theory.ProblemAnnotatedFormula {
	name := af.Name
	if name == "" {
		switch af.Role {
		case theory.RoleSpec:
			name = "spec"
		case theory.RoleAssumption:
			name = "assumption"
		case theory.RoleLemma, theory.RoleInductiveLemma:
			name = "lemma"
		default:
			name = "unknown_role"
		}
	}
	return theory.ProblemAnnotatedFormula{Name: name, Role: role, F: af.Formula}
}

func toGeneralLemma(anf theory.AnnotatedFormula) (GeneralLemma, error) {
	closed := theory.AnnotatedFormula{
		Role: anf.Role, Direction: anf.Direction, Name: anf.Name,
		Formula: anf.Formula.UniversalClosure(),
	}

	switch closed.Role {
	case theory.RoleLemma:
		return GeneralLemma{
			Conjectures:  []theory.ProblemAnnotatedFormula{toProblemFormula(closed, theory.ProblemConjecture)},
			Consequences: []theory.ProblemAnnotatedFormula{toProblemFormula(closed, theory.ProblemAxiom)},
		}, nil

	case theory.RoleInductiveLemma:
		base, step, err := splitInductiveLemma(closed.Formula)
		if err != nil {
			return GeneralLemma{}, err
		}
		baseAnf := theory.AnnotatedFormula{Role: theory.RoleLemma, Direction: closed.Direction, Name: closed.Name + "base_case", Formula: base}
		stepAnf := theory.AnnotatedFormula{Role: theory.RoleLemma, Direction: closed.Direction, Name: closed.Name + "inductive_step", Formula: step}
		return GeneralLemma{
			Conjectures: []theory.ProblemAnnotatedFormula{
				toProblemFormula(baseAnf, theory.ProblemConjecture),
				toProblemFormula(stepAnf, theory.ProblemConjecture),
			},
			Consequences: []theory.ProblemAnnotatedFormula{toProblemFormula(closed, theory.ProblemAxiom)},
		}, nil

	default:
		return GeneralLemma{}, &ProofOutlineError{
			Reason:  "the following annotated formula cannot be converted to a general lemma",
			Formula: closed.Formula,
		}
	}
}

// splitInductiveLemma requires the shape `forall n̄ (n >= k -> F(n))` with n
// an integer variable and n̄ exactly F's free variables, and returns the
// base case F(k) and the inductive step `forall n̄ (n >= k and F(n) -> F(n+1))`
// (outline/mod.rs's CheckInternal::inductive_lemma).
func splitInductiveLemma(f fol.Formula) (base, step fol.Formula, err error) {
	fail := func() (fol.Formula, fol.Formula, error) {
		return fol.Formula{}, fol.Formula{}, &ProofOutlineError{Reason: "the following inductive lemma is malformed", Formula: f}
	}
	if f.Kind != fol.FormulaQuantified || f.Quantifier != fol.Forall {
		return fail()
	}
	inner := f.Sub[0]
	if inner.Kind != fol.FormulaBinary || inner.Connective != fol.ConnImplication {
		return fail()
	}
	lhs, rhs := inner.Sub[0], inner.Sub[1]

	if lhs.Kind != fol.FormulaComparison || len(lhs.Guards) != 1 {
		return fol.Formula{}, fol.Formula{}, &ProofOutlineError{Reason: "the antecedent of the following inductive lemma is malformed", Formula: f}
	}
	if lhs.Comparand.Kind != fol.TermVariable || lhs.Comparand.Variable.Sort != fol.SortInteger {
		return fol.Formula{}, fol.Formula{}, &ProofOutlineError{Reason: "the inductive term in the following inductive lemma is not an integer variable", Formula: f}
	}
	guard := lhs.Guards[0]
	if guard.Relation != fol.RelGreaterEqual || guard.Term.Kind != fol.TermNumeral {
		return fail()
	}

	bound := map[string]bool{}
	for _, v := range f.Bound {
		bound[v.String()] = true
	}
	free := rhs.FreeVariables()
	if len(bound) != len(free) {
		return fol.Formula{}, fol.Formula{}, &ProofOutlineError{Reason: "the universally quantified variables in the following inductive lemma do not match the RHS free variables", Formula: f}
	}
	for k := range bound {
		if _, ok := free[k]; !ok {
			return fol.Formula{}, fol.Formula{}, &ProofOutlineError{Reason: "the universally quantified variables in the following inductive lemma do not match the RHS free variables", Formula: f}
		}
	}

	inductionVar := lhs.Comparand.Variable
	least := guard.Term
	base = rhs.Substitute(inductionVar, least).UniversalClosure()

	successor := fol.Binary(fol.OpAdd, lhs.Comparand, fol.Num(1))
	antecedent := fol.And(lhs, rhs)
	consequent := rhs.Substitute(inductionVar, successor)
	step = fol.Implies(antecedent, consequent).UniversalClosure()
	return base, step, nil
}

// checkDefinition validates f as `∀X̄ (p(X̄) ↔ RHS)` (outline/mod.rs's
// CheckInternal::definition): the LHS argument list is exactly the bound
// variable list with no duplicates, p is not yet in scope, RHS has no free
// variables outside X̄, and RHS mentions no predicate outside taken. A
// bound variable absent from RHS produces a warning, not an error.
func checkDefinition(f fol.Formula, taken map[fol.Predicate]bool) (fol.Predicate, []string, error) {
	fail := func(reason string) (fol.Predicate, []string, error) {
		return fol.Predicate{}, nil, &ProofOutlineError{Reason: reason, Formula: f}
	}
	if f.Kind != fol.FormulaQuantified || f.Quantifier != fol.Forall {
		return fail("the following definition is malformed")
	}
	inner := f.Sub[0]
	if inner.Kind != fol.FormulaBinary || inner.Connective != fol.ConnEquivalence {
		return fail("the following definition is malformed")
	}
	lhs, rhs := inner.Sub[0], inner.Sub[1]
	if lhs.Kind != fol.FormulaAtom {
		return fail("the following definition is malformed")
	}

	bound := map[string]bool{}
	for _, v := range f.Bound {
		if bound[v.String()] {
			return fail("the following definiton contains duplicated variables in outermost quantification")
		}
		bound[v.String()] = true
	}

	lhsVars := map[string]bool{}
	for _, t := range lhs.Terms {
		if t.Kind != fol.TermVariable {
			return fail("the LHS of the following definition contains a non-variable term")
		}
		lhsVars[t.Variable.String()] = true
	}
	if len(lhsVars) != len(bound) {
		return fail("the following definition has different variables in the LHS than the universal quantification")
	}
	for k := range bound {
		if !lhsVars[k] {
			return fail("the following definition has different variables in the LHS than the universal quantification")
		}
	}

	predicate := fol.Predicate{Symbol: lhs.Predicate, Arity: len(lhs.Terms)}
	if taken[predicate] {
		return fol.Predicate{}, nil, &ProofOutlineError{Reason: fmt.Sprintf("definitions require fresh predicates but the following predicate is taken: %s", predicate), Formula: f}
	}

	for k := range rhs.FreeVariables() {
		if !bound[k] {
			return fail("the following definition contains free variables in the RHS")
		}
	}

	var warnings []string
	for k := range bound {
		if _, ok := rhs.FreeVariables()[k]; !ok {
			warnings = append(warnings, fmt.Sprintf("the universally quantified list of variables contains members which do not occur in the RHS of %s", f))
			break
		}
	}

	for p := range rhs.Predicates() {
		if !taken[p] {
			return fol.Predicate{}, nil, &ProofOutlineError{
				Reason:  fmt.Sprintf("undefined predicate -- `%s` occurs for the first time in the RHS of definition", p),
				Formula: f,
			}
		}
	}

	return predicate, warnings, nil
}
