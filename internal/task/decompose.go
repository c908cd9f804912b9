package task

import (
	"fmt"

	"github.com/anthem-go/anthem/internal/theory"
)

// Decomposition picks how a problem's conjectures are split across
// multiple prover invocations (spec §4.7).
type Decomposition int

const (
	DecompositionIndependent Decomposition = iota
	DecompositionSequential
)

// Decompose splits p per mode, grounded in problem/mod.rs's
// decompose_independent/decompose_sequential.
func Decompose(p theory.Problem, mode Decomposition) []theory.Problem {
	if mode == DecompositionSequential {
		return decomposeSequential(p)
	}
	return decomposeIndependent(p)
}

// decomposeIndependent emits one problem per conjecture, each paired with
// every axiom of p (spec §4.7 "Independent mode").
func decomposeIndependent(p theory.Problem) []theory.Problem {
	axioms := p.Axioms()
	conjectures := p.Conjectures()
	out := make([]theory.Problem, len(conjectures))
	for i, c := range conjectures {
		formulas := make([]theory.ProblemAnnotatedFormula, 0, len(axioms)+1)
		formulas = append(formulas, axioms...)
		formulas = append(formulas, c)
		out[i] = theory.Problem{Name: fmt.Sprintf("%s_%d", p.Name, i), Preamble: p.Preamble, Formulas: formulas}
	}
	return out
}

// decomposeSequential emits a linear sequence where each previously proved
// conjecture is re-introduced as an axiom of the next problem (spec §4.7
// "Sequential mode").
func decomposeSequential(p theory.Problem) []theory.Problem {
	formulas := append([]theory.ProblemAnnotatedFormula{}, p.Axioms()...)
	conjectures := p.Conjectures()
	out := make([]theory.Problem, len(conjectures))
	for i, c := range conjectures {
		if n := len(formulas); n > 0 {
			formulas[n-1].Role = theory.ProblemAxiom
		}
		formulas = append(formulas, c)
		snapshot := append([]theory.ProblemAnnotatedFormula{}, formulas...)
		out[i] = theory.Problem{Name: fmt.Sprintf("%s_%d", p.Name, i), Preamble: p.Preamble, Formulas: snapshot}
	}
	return out
}

// FromComponents assembles the lemma-prefix sequence of an external
// equivalence direction and appends a final problem carrying the
// conclusions, grounded in problem/mod.rs's Problem::from_components: each
// lemma contributes 1 (basic) or 2 (inductive) intermediate problems
// naming its own conjectures against everything proved so far, after which
// its consequence formula is folded into the running axiom set.
func FromComponents(name string, stable, premises []theory.ProblemAnnotatedFormula, lemmas []GeneralLemma, conclusions []theory.ProblemAnnotatedFormula) []theory.Problem {
	running := append([]theory.ProblemAnnotatedFormula{}, stable...)
	running = append(running, premises...)

	final := append([]theory.ProblemAnnotatedFormula{}, running...)

	var problems []theory.Problem
	for _, lemma := range lemmas {
		for _, conjecture := range lemma.Conjectures {
			formulas := append(append([]theory.ProblemAnnotatedFormula{}, running...), conjecture)
			problems = append(problems, theory.NewProblem(fmt.Sprintf("%s_%d", name, len(problems)), formulas))
		}
		running = append(running, lemma.Consequences...)
		final = append(final, lemma.Consequences...)
	}

	final = append(final, conclusions...)
	finalProblem := theory.NewProblem(fmt.Sprintf("%s_%d", name, len(problems)), final)
	if len(finalProblem.Conjectures()) > 0 {
		problems = append(problems, finalProblem)
	}
	return problems
}
