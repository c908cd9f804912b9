package translate

import (
	"sort"

	"github.com/anthem-go/anthem/internal/fol"
)

// Complete computes Clark's completion of theory (spec §4.5): it groups the
// theory's formulas by head atom, and for each head g with definitions
// B1,...,Bn replaces them all by the single equivalence
//
//	forall V (g(V) <-> exists Y1 (B1) or ... or exists Yn (Bn))
//
// where V is g's own argument variables and each Yi is Bi's free variables
// minus V. It reports ok=false if any formula of theory is not of the
// completable shape a τ*-translated rule always has: a (possibly
// forall-quantified) implication whose consequent is a plain atom or
// falsity.
//
// Constraints all share the single head "falsity", so every constraint body
// in theory is disjoined together under one completion axiom rather than
// kept separate; original_source's completion.rs carries the same gap,
// flagged there with "TODO: Take care for constraints".
func Complete(theory []fol.Formula) ([]fol.Formula, bool) {
	defs, ok := definitions(theory)
	if !ok {
		return nil, false
	}
	out := make([]fol.Formula, 0, len(defs.order))
	for _, key := range defs.order {
		d := defs.entries[key]
		v := sortedVariables(d.head.Variables())
		vSet := map[string]bool{}
		for _, x := range v {
			vSet[x.String()] = true
		}
		disjuncts := make([]fol.Formula, len(d.bodies))
		for i, b := range d.bodies {
			free := b.FreeVariables()
			existentials := make(map[string]fol.Variable)
			for name, vv := range free {
				if !vSet[name] {
					existentials[name] = vv
				}
			}
			disjuncts[i] = fol.Quantify(fol.Exists, sortedVariables(existentials), b)
		}
		whole := fol.Iff(d.head, fol.Disjoin(disjuncts))
		out = append(out, fol.Quantify(fol.Forall, v, whole))
	}
	return out, true
}

// definition collects every body formula of theory that shares a single
// head atom (or falsity), in order of first occurrence.
type definition struct {
	head   fol.Formula
	bodies []fol.Formula
}

type definitionSet struct {
	order   []string
	entries map[string]*definition
}

func definitions(theory []fol.Formula) (*definitionSet, bool) {
	defs := &definitionSet{entries: map[string]*definition{}}
	for _, f := range theory {
		body, head, ok := split(f)
		if !ok {
			return nil, false
		}
		key := head.String()
		d, seen := defs.entries[key]
		if !seen {
			d = &definition{head: head}
			defs.entries[key] = d
			defs.order = append(defs.order, key)
		}
		d.bodies = append(d.bodies, body)
	}
	return defs, true
}

// split decomposes a single theory formula into (body, head), where head is
// the plain atom or falsity it concludes. It requires f to have no free
// variables (τ*'s output is always closed) and to be, modulo one outer
// universal quantifier, a single implication concluding an atom or falsity.
func split(f fol.Formula) (fol.Formula, fol.Formula, bool) {
	if len(f.FreeVariables()) != 0 {
		return fol.Formula{}, fol.Formula{}, false
	}
	inner := f
	if f.Kind == fol.FormulaQuantified && f.Quantifier == fol.Forall {
		inner = f.Sub[0]
	}
	return splitImplication(inner)
}

func splitImplication(f fol.Formula) (fol.Formula, fol.Formula, bool) {
	if f.Kind != fol.FormulaBinary {
		return fol.Formula{}, fol.Formula{}, false
	}
	var body, head fol.Formula
	switch f.Connective {
	case fol.ConnImplication:
		body, head = f.Sub[0], f.Sub[1]
	case fol.ConnReverseImplication:
		head, body = f.Sub[0], f.Sub[1]
	default:
		return fol.Formula{}, fol.Formula{}, false
	}
	if head.Kind != fol.FormulaAtom && head.Kind != fol.FormulaFalsity {
		return fol.Formula{}, fol.Formula{}, false
	}
	return body, head, true
}

// sortedVariables is Variables()/FreeVariables()'s companion: a
// deterministic (name-sorted) slice, since map iteration order is not.
func sortedVariables(vars map[string]fol.Variable) []fol.Variable {
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]fol.Variable, len(names))
	for i, n := range names {
		out[i] = vars[n]
	}
	return out
}
