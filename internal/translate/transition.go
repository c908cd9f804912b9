package translate

import (
	"fmt"
	"sort"

	"github.com/anthem-go/anthem/internal/asp"
	"github.com/anthem-go/anthem/internal/fol"
)

// Transition builds the HT bridge axiom `∀x̄ (h_p(x̄) → t_p(x̄))` for a
// predicate p, grounded in strong_equivalence.rs's `transition` function:
// strong equivalence's forward/backward problems carry one such axiom per
// predicate so that agreement on "there" forces agreement on "here".
func Transition(p fol.Predicate) fol.Formula {
	terms := make([]fol.Term, p.Arity)
	vars := make([]fol.Variable, p.Arity)
	for i := range terms {
		v := fol.Variable{Name: fmt.Sprintf("X%d", i+1), Sort: fol.SortGeneral}
		vars[i] = v
		terms[i] = fol.Term{Kind: fol.TermVariable, Variable: v}
	}
	atom := fol.Atom(p.Symbol, terms...)
	return fol.Quantify(fol.Forall, vars, fol.Implies(here(atom), there(atom))).UniversalClosure()
}

// TransitionAxioms builds one Transition axiom per predicate in ps, in a
// deterministic (sorted) order (strong_equivalence.rs's transition_axioms).
func TransitionAxioms(ps map[fol.Predicate]bool) []fol.Formula {
	sorted := make([]fol.Predicate, 0, len(ps))
	for p := range ps {
		sorted = append(sorted, p)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Symbol != sorted[j].Symbol {
			return sorted[i].Symbol < sorted[j].Symbol
		}
		return sorted[i].Arity < sorted[j].Arity
	})
	out := make([]fol.Formula, len(sorted))
	for i, p := range sorted {
		out[i] = Transition(p)
	}
	return out
}

// ToFolPredicate converts an ASP predicate identity to its FOL counterpart;
// the two are structurally identical but kept as distinct types by their
// packages, one per-package identity type instead of a single shared one.
func ToFolPredicate(p asp.Predicate) fol.Predicate {
	return fol.Predicate{Symbol: p.Symbol, Arity: p.Arity}
}

// FolPredicates converts a whole asp.Program predicate set.
func FolPredicates(ps map[asp.Predicate]bool) map[fol.Predicate]bool {
	out := make(map[fol.Predicate]bool, len(ps))
	for p := range ps {
		out[ToFolPredicate(p)] = true
	}
	return out
}
