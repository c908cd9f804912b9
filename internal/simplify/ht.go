package simplify

import (
	"sort"

	"github.com/anthem-go/anthem/internal/fol"
)

// HT returns the here-and-there simplifier: the eight rules of spec §4.6, in
// the fixed order the spec lists them (identity, annihilation, idempotence,
// quantifier joining, quantifier scope extension, quantifier domain
// restriction, variable-list pruning, transitive equality). Every rule here
// is sound under the logic of here-and-there, not just classically.
func HT() Engine {
	return Engine{Rules: []Rule{
		{Name: "identity", Rewrite: identity},
		{Name: "annihilation", Rewrite: annihilation},
		{Name: "idempotence", Rewrite: idempotence},
		{Name: "quantifier-joining", Rewrite: quantifierJoining},
		{Name: "quantifier-scope-extension", Rewrite: quantifierScopeExtension},
		{Name: "quantifier-domain-restriction", Rewrite: quantifierDomainRestriction},
		{Name: "quantifier-pruning", Rewrite: quantifierPruning},
		{Name: "transitive-equality", Rewrite: transitiveEquality},
	}}
}

func formulaEqual(a, b fol.Formula) bool { return a.String() == b.String() }

func isTruth(f fol.Formula) bool   { return f.Kind == fol.FormulaTruth }
func isFalsity(f fol.Formula) bool { return f.Kind == fol.FormulaFalsity }

// identity: F ∧ ⊤ ⇒ F, F ∨ ⊥ ⇒ F, ⊤ → F ⇒ F.
func identity(f fol.Formula) (fol.Formula, bool) {
	if f.Kind != fol.FormulaBinary {
		return f, false
	}
	l, r := f.Sub[0], f.Sub[1]
	switch f.Connective {
	case fol.ConnConjunction:
		if isTruth(r) {
			return l, true
		}
		if isTruth(l) {
			return r, true
		}
	case fol.ConnDisjunction:
		if isFalsity(r) {
			return l, true
		}
		if isFalsity(l) {
			return r, true
		}
	case fol.ConnImplication:
		if isTruth(l) {
			return r, true
		}
	}
	return f, false
}

// annihilation: F ∨ ⊤ ⇒ ⊤, F ∧ ⊥ ⇒ ⊥, F → ⊤ ⇒ ⊤, ⊥ → F ⇒ ⊤, F → F ⇒ ⊤.
func annihilation(f fol.Formula) (fol.Formula, bool) {
	if f.Kind != fol.FormulaBinary {
		return f, false
	}
	l, r := f.Sub[0], f.Sub[1]
	switch f.Connective {
	case fol.ConnDisjunction:
		if isTruth(l) || isTruth(r) {
			return fol.Truth(), true
		}
	case fol.ConnConjunction:
		if isFalsity(l) || isFalsity(r) {
			return fol.Falsity(), true
		}
	case fol.ConnImplication:
		if isTruth(r) || isFalsity(l) {
			return fol.Truth(), true
		}
		if formulaEqual(l, r) {
			return fol.Truth(), true
		}
	}
	return f, false
}

// idempotence: F ∧ F ⇒ F, F ∨ F ⇒ F.
func idempotence(f fol.Formula) (fol.Formula, bool) {
	if f.Kind != fol.FormulaBinary {
		return f, false
	}
	if f.Connective != fol.ConnConjunction && f.Connective != fol.ConnDisjunction {
		return f, false
	}
	if formulaEqual(f.Sub[0], f.Sub[1]) {
		return f.Sub[0], true
	}
	return f, false
}

// quantifierJoining: q x (q y F) ⇒ q x y F for the same quantifier, with the
// combined variable list de-duplicated and sorted.
func quantifierJoining(f fol.Formula) (fol.Formula, bool) {
	if f.Kind != fol.FormulaQuantified {
		return f, false
	}
	inner := f.Sub[0]
	if inner.Kind != fol.FormulaQuantified || inner.Quantifier != f.Quantifier {
		return f, false
	}
	seen := map[string]bool{}
	var combined []fol.Variable
	for _, v := range append(append([]fol.Variable{}, f.Bound...), inner.Bound...) {
		if seen[v.String()] {
			continue
		}
		seen[v.String()] = true
		combined = append(combined, v)
	}
	sort.Slice(combined, func(i, j int) bool { return combined[i].String() < combined[j].String() })
	return fol.Quantify(f.Quantifier, combined, inner.Sub[0]), true
}

// quantifierScopeExtension: (q x F) ∘ G ⇒ q x (F ∘ G) for ∘ ∈ {∧, ∨} when x
// is not free in G, and symmetrically G ∘ (q x F) ⇒ q x (G ∘ F).
func quantifierScopeExtension(f fol.Formula) (fol.Formula, bool) {
	if f.Kind != fol.FormulaBinary {
		return f, false
	}
	if f.Connective != fol.ConnConjunction && f.Connective != fol.ConnDisjunction {
		return f, false
	}
	l, r := f.Sub[0], f.Sub[1]
	if l.Kind == fol.FormulaQuantified && !boundFreeIn(l.Bound, r) {
		return fol.Quantify(l.Quantifier, l.Bound, fol.Bin(f.Connective, l.Sub[0], r)), true
	}
	if r.Kind == fol.FormulaQuantified && !boundFreeIn(r.Bound, l) {
		return fol.Quantify(r.Quantifier, r.Bound, fol.Bin(f.Connective, l, r.Sub[0])), true
	}
	return f, false
}

func boundFreeIn(bound []fol.Variable, f fol.Formula) bool {
	free := f.FreeVariables()
	for _, v := range bound {
		if _, ok := free[v.String()]; ok {
			return true
		}
	}
	return false
}

// quantifierDomainRestriction narrows an outer general existential binding Z
// to the integer sort when the body fixes Z equal to an integer-sorted
// variable I of an inner existential: ∃Z̄ (∃Ī (… Z = I … ∧ …) ∧ …) becomes the
// same formula with a fresh integer variable substituted for Z throughout
// and Z dropped from the outer binding (since the inner I now carries the
// value). The symmetric shape ∀Z̄ (∃Ī … → …) is handled the same way inside
// an implication's antecedent.
func quantifierDomainRestriction(f fol.Formula) (fol.Formula, bool) {
	if f.Kind != fol.FormulaQuantified {
		return f, false
	}
	switch f.Quantifier {
	case fol.Exists:
		return restrictExistentialDomain(f)
	case fol.Forall:
		if f.Sub[0].Kind == fol.FormulaBinary && f.Sub[0].Connective == fol.ConnImplication {
			ante := f.Sub[0].Sub[0]
			if z, i, ok := findDomainEqualityInConjunction(f.Bound, ante); ok {
				renamed := f.Sub[0].Substitute(z, fol.Term{Kind: fol.TermVariable, Variable: i})
				newBound := removeVariable(f.Bound, z)
				return fol.Quantify(fol.Forall, newBound, renamed), true
			}
		}
	}
	return f, false
}

// restrictExistentialDomain matches ∃Z̄ (∃Ī (…Z = I… ∧ …) ∧ …): some
// top-level conjunct of the body is itself an existential binding I that
// equates I with Z, a general variable bound by the outer existential.
func restrictExistentialDomain(f fol.Formula) (fol.Formula, bool) {
	if z, i, ok := findDomainEqualityInConjunction(f.Bound, f.Sub[0]); ok {
		renamed := f.Sub[0].Substitute(z, fol.Term{Kind: fol.TermVariable, Variable: i})
		newBound := removeVariable(f.Bound, z)
		return fol.Quantify(fol.Exists, newBound, renamed), true
	}
	return f, false
}

// findDomainEqualityInConjunction looks across every top-level conjunct of
// body for one that is itself an existential quantifier whose own body
// equates a general variable bound by outer with an integer variable it
// binds.
func findDomainEqualityInConjunction(outer []fol.Variable, body fol.Formula) (fol.Variable, fol.Variable, bool) {
	for _, conjunct := range fol.ConjoinInvert(body) {
		if conjunct.Kind != fol.FormulaQuantified || conjunct.Quantifier != fol.Exists {
			continue
		}
		if z, i, ok := findDomainEquality(outer, conjunct); ok {
			return z, i, true
		}
	}
	return fol.Variable{}, fol.Variable{}, false
}

// findDomainEquality looks for a conjunct Z = I inside inner's body, where Z
// is general and bound by outer, and I is an integer variable bound by
// inner.
func findDomainEquality(outer []fol.Variable, inner fol.Formula) (fol.Variable, fol.Variable, bool) {
	for _, conjunct := range fol.ConjoinInvert(inner.Sub[0]) {
		if conjunct.Kind != fol.FormulaComparison || len(conjunct.Guards) != 1 {
			continue
		}
		if conjunct.Guards[0].Relation != fol.RelEqual {
			continue
		}
		z, zOK := asVariable(conjunct.Comparand)
		i, iOK := asVariable(conjunct.Guards[0].Term)
		if zOK && iOK && z.Sort == fol.SortGeneral && i.Sort == fol.SortInteger &&
			containsVariable(outer, z) && containsVariable(inner.Bound, i) {
			return z, i, true
		}
		// symmetric I = Z
		z, zOK = asVariable(conjunct.Guards[0].Term)
		i, iOK = asVariable(conjunct.Comparand)
		if zOK && iOK && z.Sort == fol.SortGeneral && i.Sort == fol.SortInteger &&
			containsVariable(outer, z) && containsVariable(inner.Bound, i) {
			return z, i, true
		}
	}
	return fol.Variable{}, fol.Variable{}, false
}

func asVariable(t fol.Term) (fol.Variable, bool) {
	if t.Kind == fol.TermVariable {
		return t.Variable, true
	}
	return fol.Variable{}, false
}

func containsVariable(vs []fol.Variable, v fol.Variable) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

func removeVariable(vs []fol.Variable, v fol.Variable) []fol.Variable {
	out := make([]fol.Variable, 0, len(vs))
	for _, x := range vs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// quantifierPruning drops bound variables that do not occur free in the
// body, and the quantifier itself once its variable list is empty
// (fol.Quantify already collapses an empty list to the bare body).
func quantifierPruning(f fol.Formula) (fol.Formula, bool) {
	if f.Kind != fol.FormulaQuantified {
		return f, false
	}
	free := f.Sub[0].FreeVariables()
	pruned := make([]fol.Variable, 0, len(f.Bound))
	changed := false
	for _, v := range f.Bound {
		if _, ok := free[v.String()]; ok {
			pruned = append(pruned, v)
		} else {
			changed = true
		}
	}
	if !changed {
		return f, false
	}
	return fol.Quantify(f.Quantifier, pruned, f.Sub[0]), true
}

// transitiveEquality: in an existential ∃Z̄ (... ∧ X = t ∧ Y = t ∧ ...) with
// X, Y both bound by the existential and of compatible sort, keep the
// sub-sort variable and substitute it for the other throughout the body,
// dropping the now-redundant equality.
func transitiveEquality(f fol.Formula) (fol.Formula, bool) {
	if f.Kind != fol.FormulaQuantified || f.Quantifier != fol.Exists {
		return f, false
	}
	conjuncts := fol.ConjoinInvert(f.Sub[0])
	for i := 0; i < len(conjuncts); i++ {
		xi, ti, ok := asEquality(conjuncts[i])
		if !ok || !containsVariable(f.Bound, xi) {
			continue
		}
		for j := 0; j < len(conjuncts); j++ {
			if i == j {
				continue
			}
			yj, tj, ok := asEquality(conjuncts[j])
			if !ok || !containsVariable(f.Bound, yj) || !ti.Equal(tj) {
				continue
			}
			narrower, compatible := fol.Narrower(xi.Sort, yj.Sort)
			if !compatible {
				continue
			}
			keep, drop := xi, yj
			if narrower == yj.Sort && narrower != xi.Sort {
				keep, drop = yj, xi
			}
			remaining := make([]fol.Formula, 0, len(conjuncts)-1)
			for k, c := range conjuncts {
				if k == j {
					continue
				}
				remaining = append(remaining, c)
			}
			body := fol.Conjoin(remaining).Substitute(drop, fol.Term{Kind: fol.TermVariable, Variable: keep})
			return fol.Quantify(fol.Exists, removeVariable(f.Bound, drop), body), true
		}
	}
	return f, false
}

func asEquality(f fol.Formula) (fol.Variable, fol.Term, bool) {
	if f.Kind != fol.FormulaComparison || len(f.Guards) != 1 || f.Guards[0].Relation != fol.RelEqual {
		return fol.Variable{}, fol.Term{}, false
	}
	if v, ok := asVariable(f.Comparand); ok {
		return v, f.Guards[0].Term, true
	}
	return fol.Variable{}, fol.Term{}, false
}
