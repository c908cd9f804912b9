package translate

import (
	"fmt"
	"sort"

	"github.com/anthem-go/anthem/internal/fol"
)

// OrderedComplete computes the ordered completion of theory (spec §4.5): a
// strengthening of Complete that additionally orders each definition's body
// atoms strictly below its own head via less_p_q auxiliary atoms, so that
// together with OrderedCompletionAxioms it captures the well-founded
// (rather than merely supported) models of the original program. Every
// constraint (a formula whose head is falsity) is kept as its own
// standalone universal closure rather than merged into one axiom, matching
// the components()/has_head_mismatches() split original_source's
// ordered_completion.rs performs before building rule/definition pairs.
func OrderedComplete(theory []fol.Formula) ([]fol.Formula, bool) {
	var constraints []fol.Formula
	order := []string{}
	defs := map[string]*definition{}
	for _, f := range theory {
		body, head, ok := split(f)
		if !ok {
			return nil, false
		}
		if head.Kind == fol.FormulaFalsity {
			constraints = append(constraints, f)
			continue
		}
		key := head.String()
		d, seen := defs[key]
		if !seen {
			d = &definition{head: head}
			defs[key] = d
			order = append(order, key)
		}
		d.bodies = append(d.bodies, body)
	}

	out := make([]fol.Formula, 0, len(constraints)+2*len(order))
	out = append(out, constraints...)

	for _, key := range order {
		d := defs[key]
		v := sortedVariables(d.head.Variables())
		out = append(out, ruleTranslation(d.head, v, d.bodies))
	}
	for _, key := range order {
		d := defs[key]
		v := sortedVariables(d.head.Variables())
		out = append(out, definitionWithOrder(d.head, v, d.bodies))
	}
	return out, true
}

// ruleTranslation builds forall V (head <- disjoin(bodies quantified over
// their own free variables outside v)), the same shape as plain completion
// but with a reverse implication rather than an equivalence.
func ruleTranslation(head fol.Formula, v []fol.Variable, bodies []fol.Formula) fol.Formula {
	disjuncts := make([]fol.Formula, len(bodies))
	for i, b := range bodies {
		disjuncts[i] = existentiallyCloseOutside(b, v)
	}
	whole := fol.Bin(fol.ConnReverseImplication, head, fol.Disjoin(disjuncts))
	return fol.Quantify(fol.Forall, v, whole)
}

// definitionWithOrder builds forall V (head -> disjoin(bodies with order
// atoms injected)): the -> half of completion, strengthened so that every
// positive body atom q(zs) is additionally constrained by less_q_head(zs,v).
func definitionWithOrder(head fol.Formula, v []fol.Variable, bodies []fol.Formula) fol.Formula {
	disjuncts := make([]fol.Formula, len(bodies))
	for i, b := range bodies {
		withOrder := conjoinOrderAtoms(b, head)
		disjuncts[i] = existentiallyCloseOutside(withOrder, v)
	}
	whole := fol.Implies(head, fol.Disjoin(disjuncts))
	return fol.Quantify(fol.Forall, v, whole)
}

func existentiallyCloseOutside(f fol.Formula, v []fol.Variable) fol.Formula {
	vSet := map[string]bool{}
	for _, x := range v {
		vSet[x.String()] = true
	}
	existentials := map[string]fol.Variable{}
	for name, vv := range f.FreeVariables() {
		if !vSet[name] {
			existentials[name] = vv
		}
	}
	return fol.Quantify(fol.Exists, sortedVariables(existentials), f)
}

// createOrderFormula builds the auxiliary atom less_p_q(p's terms, q's
// terms) expressing that an instance of p precedes an instance of q in the
// program's support order.
func createOrderFormula(p, q fol.Formula) fol.Formula {
	terms := make([]fol.Term, 0, len(p.Terms)+len(q.Terms))
	terms = append(terms, p.Terms...)
	terms = append(terms, q.Terms...)
	return fol.Atom(fmt.Sprintf("less_%s_%s", p.Predicate, q.Predicate), terms...)
}

// conjoinOrderAtoms replaces every positive atom q(zs) of formula (i.e.
// every atom not in the scope of a negation) with q(zs) and
// less_q_head(zs, head's terms), leaving comparisons, negated sub-formulas,
// and the quantifier/connective structure otherwise untouched.
func conjoinOrderAtoms(formula fol.Formula, head fol.Formula) fol.Formula {
	switch formula.Kind {
	case fol.FormulaAtom:
		return fol.And(formula, createOrderFormula(formula, head))
	case fol.FormulaTruth, fol.FormulaFalsity, fol.FormulaComparison:
		return formula
	case fol.FormulaUnary:
		return formula // negated sub-formulas are left unordered
	case fol.FormulaBinary:
		return fol.Bin(formula.Connective,
			conjoinOrderAtoms(formula.Sub[0], head),
			conjoinOrderAtoms(formula.Sub[1], head))
	case fol.FormulaQuantified:
		return fol.Quantify(formula.Quantifier, formula.Bound, conjoinOrderAtoms(formula.Sub[0], head))
	}
	return formula
}

// OrderedCompletionAxioms builds the irreflexivity and transitivity axioms
// the less_p_q auxiliary atoms must satisfy (spec §4.5): for every predicate
// p appearing anywhere in theory, not less_p_p(x,x); and for every ordered
// triple (p, q, r), (less_p_q(x,y) and less_q_r(y,z)) -> less_p_r(x,z).
func OrderedCompletionAxioms(theory []fol.Formula) []fol.Formula {
	preds := collectPredicates(theory)
	axioms := make([]fol.Formula, 0, len(preds)+len(preds)*len(preds)*len(preds))
	for _, p := range preds {
		axioms = append(axioms, irreflexivityAxiom(p))
	}
	for _, p := range preds {
		for _, q := range preds {
			for _, r := range preds {
				axioms = append(axioms, transitivityAxiom(p, q, r))
			}
		}
	}
	return axioms
}

func collectPredicates(theory []fol.Formula) []fol.Predicate {
	set := map[fol.Predicate]bool{}
	for _, f := range theory {
		for p := range f.Predicates() {
			set[p] = true
		}
	}
	out := make([]fol.Predicate, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Symbol != out[j].Symbol {
			return out[i].Symbol < out[j].Symbol
		}
		return out[i].Arity < out[j].Arity
	})
	return out
}

func generalVariables(lo, hi int) []fol.Term {
	terms := make([]fol.Term, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		terms = append(terms, fol.Var(fmt.Sprintf("X%d", i), fol.SortGeneral))
	}
	return terms
}

func atomOf(p fol.Predicate, terms []fol.Term) fol.Formula {
	return fol.Atom(p.Symbol, terms...)
}

func irreflexivityAxiom(p fol.Predicate) fol.Formula {
	atom := atomOf(p, generalVariables(1, p.Arity))
	f := fol.Not(createOrderFormula(atom, atom))
	return fol.Quantify(fol.Forall, sortedVariables(f.FreeVariables()), f)
}

func transitivityAxiom(p, q, r fol.Predicate) fol.Formula {
	pAtom := atomOf(p, generalVariables(1, p.Arity))
	qAtom := atomOf(q, generalVariables(p.Arity+1, p.Arity+q.Arity))
	rAtom := atomOf(r, generalVariables(p.Arity+q.Arity+1, p.Arity+q.Arity+r.Arity))
	f := fol.Implies(
		fol.And(createOrderFormula(pAtom, qAtom), createOrderFormula(qAtom, rAtom)),
		createOrderFormula(pAtom, rAtom),
	)
	return fol.Quantify(fol.Forall, sortedVariables(f.FreeVariables()), f)
}
