// Package translate implements the translation stage of the pipeline (spec
// §4.5): τ* (ASP programs into FOL formulas over here-and-there), Γ (HT into
// classical FOL over h/t predicate prefixes), Clark's completion and its
// ordered variant, and tightening.
package translate

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/anthem-go/anthem/internal/asp"
	"github.com/anthem-go/anthem/internal/fol"
)

// fresh tracks the set of variable names already in use while translating a
// single rule, so that every existential introduced by val/valuation is
// distinct from the rule's own variables and from every other fresh
// variable introduced so far (spec §4.1 "fresh variables").
type fresh struct {
	taken map[string]bool
}

func newFresh(r asp.Rule) *fresh {
	taken := map[string]bool{}
	for v := range r.Variables() {
		taken[v] = true
	}
	return &fresh{taken: taken}
}

func (f *fresh) one(prefix string, sort fol.Sort) fol.Variable {
	v := fol.FreshVariables(f.taken, prefix, sort, 1)[0]
	f.taken[v.String()] = true
	return v
}

func (f *fresh) many(prefix string, sort fol.Sort, n int) []fol.Variable {
	vs := fol.FreshVariables(f.taken, prefix, sort, n)
	for _, v := range vs {
		f.taken[v.String()] = true
	}
	return vs
}

// termLeaf converts an ASP precomputed constant or variable directly into
// the corresponding FOL term; it is only ever called on asp.Term values
// val's recursive cases guarantee are leaves (spec §4.5 "val(t, Z)").
func termLeaf(t asp.Term) fol.Term {
	switch t.Kind {
	case asp.TermInfimum:
		return fol.Inf()
	case asp.TermSupremum:
		return fol.Sup()
	case asp.TermInteger:
		return fol.Num(t.Integer)
	case asp.TermSymbol:
		return fol.Sym(t.Symbol)
	case asp.TermVariable:
		return fol.Var(t.Name, fol.SortGeneral)
	default:
		return fol.Sym("<invalid>")
	}
}

// Val is the inductive term-valuation translation (spec §4.5): it returns
// the formula relating FOL term z (the "output" of the valuation) to the
// ASP term t, introducing whatever fresh existential variables the
// recursive cases need.
func Val(t asp.Term, z fol.Term, fr *fresh) fol.Formula {
	switch t.Kind {
	case asp.TermInfimum, asp.TermSupremum, asp.TermInteger, asp.TermSymbol, asp.TermVariable:
		return fol.Cmp(z, fol.Guard{Relation: fol.RelEqual, Term: termLeaf(t)})

	case asp.TermUnary:
		// unary negative rewrites to 0 - t
		return Val(asp.Bin(asp.OpSubtract, asp.Int(0), t.Args[0]), z, fr)

	case asp.TermBinary:
		switch t.Op {
		case asp.OpAdd, asp.OpSubtract, asp.OpMultiply:
			i := fr.one("I", fol.SortInteger)
			j := fr.one("J", fol.SortInteger)
			iTerm := fol.Term{Kind: fol.TermVariable, Variable: i}
			jTerm := fol.Term{Kind: fol.TermVariable, Variable: j}
			zEq := fol.Cmp(z, fol.Guard{Relation: fol.RelEqual, Term: fol.Binary(integerOp(t.Op), iTerm, jTerm)})
			body := fol.Conjoin([]fol.Formula{zEq, Val(t.Args[0], iTerm, fr), Val(t.Args[1], jTerm, fr)})
			return fol.Quantify(fol.Exists, []fol.Variable{i, j}, body)

		case asp.OpDivide, asp.OpModulo:
			i := fr.one("I", fol.SortInteger)
			j := fr.one("J", fol.SortInteger)
			q := fr.one("Q", fol.SortInteger)
			r := fr.one("R", fol.SortInteger)
			iT := fol.Term{Kind: fol.TermVariable, Variable: i}
			jT := fol.Term{Kind: fol.TermVariable, Variable: j}
			qT := fol.Term{Kind: fol.TermVariable, Variable: q}
			rT := fol.Term{Kind: fol.TermVariable, Variable: r}
			quotientRelation := fol.Cmp(iT, fol.Guard{Relation: fol.RelEqual, Term: fol.Binary(fol.OpAdd, fol.Binary(fol.OpMultiply, jT, qT), rT)})
			jNonZero := fol.Cmp(jT, fol.Guard{Relation: fol.RelNotEqual, Term: fol.Num(0)})
			rRange := fol.Cmp(fol.Num(0), fol.Guard{Relation: fol.RelLessEqual, Term: rT}, fol.Guard{Relation: fol.RelLess, Term: qT})
			result := q
			if t.Op == asp.OpModulo {
				result = r
			}
			resultTerm := fol.Term{Kind: fol.TermVariable, Variable: result}
			zEq := fol.Cmp(z, fol.Guard{Relation: fol.RelEqual, Term: resultTerm})
			body := fol.Conjoin([]fol.Formula{
				quotientRelation, Val(t.Args[0], iT, fr), Val(t.Args[1], jT, fr),
				jNonZero, rRange, zEq,
			})
			return fol.Quantify(fol.Exists, []fol.Variable{i, j, q, r}, body)
		}

	case asp.TermInterval:
		i := fr.one("I", fol.SortInteger)
		j := fr.one("J", fol.SortInteger)
		k := fr.one("K", fol.SortInteger)
		iT := fol.Term{Kind: fol.TermVariable, Variable: i}
		jT := fol.Term{Kind: fol.TermVariable, Variable: j}
		kT := fol.Term{Kind: fol.TermVariable, Variable: k}
		inRange := fol.Cmp(iT, fol.Guard{Relation: fol.RelLessEqual, Term: kT}, fol.Guard{Relation: fol.RelLessEqual, Term: jT})
		zEq := fol.Cmp(z, fol.Guard{Relation: fol.RelEqual, Term: kT})
		body := fol.Conjoin([]fol.Formula{Val(t.Args[0], iT, fr), Val(t.Args[1], jT, fr), inRange, zEq})
		return fol.Quantify(fol.Exists, []fol.Variable{i, j, k}, body)
	}
	return fol.Falsity()
}

func integerOp(op asp.Op) fol.IntegerOp {
	switch op {
	case asp.OpAdd:
		return fol.OpAdd
	case asp.OpSubtract:
		return fol.OpSubtract
	case asp.OpMultiply:
		return fol.OpMultiply
	default:
		return fol.OpAdd
	}
}

// translateLiteral translates a signed body literal (spec §4.5).
func translateLiteral(sign asp.Sign, a asp.Atom, fr *fresh) fol.Formula {
	return translateAtomSigned(sign, a, fr)
}

// translateAtomSigned is the valuation-wrapped translation of a signed body
// literal (spec §4.5): for an atom of arity k, it is ∃Z… (val(t₁,Z₁) ∧ … ∧
// val(tₖ,Zₖ) ∧ sign p(Z₁,…,Zₖ)), with sign applied to the atom itself inside
// the existential's scope, not around the whole quantified formula; a 0-ary
// atom skips the quantifier and valuation entirely, since it has no
// arguments to valuate.
func translateAtomSigned(sign asp.Sign, a asp.Atom, fr *fresh) fol.Formula {
	zs := fr.many("Z", fol.SortGeneral, len(a.Terms))
	zTerms := make([]fol.Term, len(a.Terms))
	conjuncts := make([]fol.Formula, 0, len(a.Terms)+1)
	for i, t := range a.Terms {
		zTerm := fol.Term{Kind: fol.TermVariable, Variable: zs[i]}
		zTerms[i] = zTerm
		conjuncts = append(conjuncts, Val(t, zTerm, fr))
	}
	signedAtom := applySign(sign, fol.Atom(a.Symbol, zTerms...))
	if len(zs) == 0 {
		return signedAtom
	}
	conjuncts = append(conjuncts, signedAtom)
	return fol.Quantify(fol.Exists, zs, fol.Conjoin(conjuncts))
}

// applySign wraps f in zero, one, or two negations per sign.
func applySign(sign asp.Sign, f fol.Formula) fol.Formula {
	switch sign {
	case asp.SignNegation:
		return fol.Not(f)
	case asp.SignDoubleNegation:
		return fol.Not(fol.Not(f))
	default:
		return f
	}
}

// translateComparison translates a body comparison (spec §4.5).
func translateComparison(left asp.Term, rel asp.Relation, right asp.Term, fr *fresh) fol.Formula {
	z1 := fr.one("Z", fol.SortGeneral)
	z2 := fr.one("Z", fol.SortGeneral)
	z1T := fol.Term{Kind: fol.TermVariable, Variable: z1}
	z2T := fol.Term{Kind: fol.TermVariable, Variable: z2}
	cmp := fol.Cmp(z1T, fol.Guard{Relation: folRelation(rel), Term: z2T})
	body := fol.Conjoin([]fol.Formula{Val(left, z1T, fr), Val(right, z2T, fr), cmp})
	return fol.Quantify(fol.Exists, []fol.Variable{z1, z2}, body)
}

func folRelation(r asp.Relation) fol.Relation {
	switch r {
	case asp.RelEqual:
		return fol.RelEqual
	case asp.RelNotEqual:
		return fol.RelNotEqual
	case asp.RelLess:
		return fol.RelLess
	case asp.RelLessEqual:
		return fol.RelLessEqual
	case asp.RelGreater:
		return fol.RelGreater
	case asp.RelGreaterEqual:
		return fol.RelGreaterEqual
	default:
		return fol.RelEqual
	}
}

// translateBody translates a rule body to the conjunction of its atomic
// formula translations (spec §4.5).
func translateBody(body []asp.BodyFormula, fr *fresh) fol.Formula {
	conjuncts := make([]fol.Formula, 0, len(body))
	for _, bf := range body {
		switch bf.Kind {
		case asp.BodyLiteral:
			conjuncts = append(conjuncts, translateLiteral(bf.Sign, bf.Atom, fr))
		case asp.BodyComparison:
			conjuncts = append(conjuncts, translateComparison(bf.Left, bf.Rel, bf.Right, fr))
		}
	}
	return fol.Conjoin(conjuncts)
}

var globalVarPattern = regexp.MustCompile(`^V([0-9]*)$`)

// GlobalHeadVariables picks max-arity-many variable names "V<n>" shared
// across every rule of p, disjoint from every variable name occurring
// anywhere in p, so that a basic/choice head atom rewritten to use them
// always prints identically for a given predicate regardless of which rule
// produced it (spec §4.5; needed so that completion's grouping-by-head-atom
// can key on the head atoms' plain structural equality).
func GlobalHeadVariables(p asp.Program) []fol.Variable {
	maxArity := 0
	for _, r := range p.Rules {
		if pr, ok := r.HeadPredicate(); ok && pr.Arity > maxArity {
			maxArity = pr.Arity
		}
	}
	maxTaken := 0
	for _, r := range p.Rules {
		for name := range r.Variables() {
			if m := globalVarPattern.FindStringSubmatch(name); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil && n > maxTaken {
					maxTaken = n
				}
			}
		}
	}
	globals := make([]fol.Variable, maxArity)
	for i := 0; i < maxArity; i++ {
		globals[i] = fol.Variable{Name: fmt.Sprintf("V%d", maxTaken+i+1), Sort: fol.SortGeneral}
	}
	return globals
}

// globalizeHead rewrites a basic/choice head atom to use the first len(args)
// of globals as its argument positions, returning the rewritten atom and the
// list of val(t_i, V_i) valuation formulas to conjoin into the rule's body.
func globalizeHead(a asp.Atom, globals []fol.Variable, fr *fresh) (fol.Formula, []fol.Formula) {
	terms := make([]fol.Term, len(a.Terms))
	valuations := make([]fol.Formula, len(a.Terms))
	for i, t := range a.Terms {
		v := globals[i]
		terms[i] = fol.Term{Kind: fol.TermVariable, Variable: v}
		valuations[i] = Val(t, terms[i], fr)
	}
	return fol.Atom(a.Symbol, terms...), valuations
}

// TauStarRule translates a single rule to its τ* formula, universally
// closed (spec §4.5), globalizing the head's own variable names from the
// rule alone. Use TauStar to translate a whole program: it computes one
// shared global-variable list up front so that every rule sharing a head
// predicate/arity produces identical head atoms.
func TauStarRule(r asp.Rule) fol.Formula {
	globals := GlobalHeadVariables(asp.Program{Rules: []asp.Rule{r}})
	return tauStarRuleWithGlobals(r, globals)
}

func tauStarRuleWithGlobals(r asp.Rule, globals []fol.Variable) fol.Formula {
	fr := newFresh(r)
	for _, v := range globals {
		fr.taken[v.String()] = true
	}
	bodyF := translateBody(r.Body, fr)

	var whole fol.Formula
	switch r.Head.Kind {
	case asp.HeadBasic:
		headF, valuations := globalizeHead(r.Head.Atom, globals, fr)
		body := fol.Conjoin(append(append([]fol.Formula{}, valuations...), bodyF))
		whole = fol.Implies(body, headF)
	case asp.HeadChoice:
		headF, valuations := globalizeHead(r.Head.Atom, globals, fr)
		body := fol.Conjoin(append(append([]fol.Formula{}, valuations...), bodyF))
		whole = fol.Implies(fol.And(body, fol.Not(fol.Not(headF))), headF)
	case asp.HeadFalsity:
		whole = fol.Implies(bodyF, fol.Falsity())
	}
	return whole.UniversalClosure()
}

// TauStar translates every rule of p and returns the resulting list of
// closed HT formulas (spec §4.5 "τ* (ASP → FOL over HT)"), sharing one
// global head-variable list across all rules.
func TauStar(p asp.Program) []fol.Formula {
	globals := GlobalHeadVariables(p)
	out := make([]fol.Formula, len(p.Rules))
	for i, r := range p.Rules {
		out[i] = tauStarRuleWithGlobals(r, globals)
	}
	return out
}
