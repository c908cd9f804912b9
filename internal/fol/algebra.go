package fol

import (
	"fmt"
	"sort"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global syntax tracer, in the style of lr.T() /
// runtime.T(): a single package-local accessor rather than a package-level
// mutable variable.
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}

// Variables returns the set of all variables occurring in f, bound or free.
func (f Formula) Variables() map[string]Variable {
	vars := make(map[string]Variable)
	collectFormulaVars(f, vars)
	return vars
}

func collectFormulaVars(f Formula, into map[string]Variable) {
	switch f.Kind {
	case FormulaAtom:
		for _, t := range f.Terms {
			collectTermVars(t, into)
		}
	case FormulaComparison:
		collectTermVars(f.Comparand, into)
		for _, g := range f.Guards {
			collectTermVars(g.Term, into)
		}
	case FormulaUnary, FormulaBinary:
		for _, s := range f.Sub {
			collectFormulaVars(s, into)
		}
	case FormulaQuantified:
		for _, v := range f.Bound {
			into[v.String()] = v
		}
		collectFormulaVars(f.Sub[0], into)
	}
}

// FreeVariables returns the variables of f occurring outside all enclosing
// quantifier scopes.
func (f Formula) FreeVariables() map[string]Variable {
	free := make(map[string]Variable)
	collectFree(f, free, map[string]bool{})
	return free
}

func collectFree(f Formula, into map[string]Variable, bound map[string]bool) {
	switch f.Kind {
	case FormulaAtom:
		for _, t := range f.Terms {
			collectFreeTerm(t, into, bound)
		}
	case FormulaComparison:
		collectFreeTerm(f.Comparand, into, bound)
		for _, g := range f.Guards {
			collectFreeTerm(g.Term, into, bound)
		}
	case FormulaUnary, FormulaBinary:
		for _, s := range f.Sub {
			collectFree(s, into, bound)
		}
	case FormulaQuantified:
		inner := make(map[string]bool, len(bound)+len(f.Bound))
		for k := range bound {
			inner[k] = true
		}
		for _, v := range f.Bound {
			inner[v.String()] = true
		}
		collectFree(f.Sub[0], into, inner)
	}
}

func collectFreeTerm(t Term, into map[string]Variable, bound map[string]bool) {
	switch t.Kind {
	case TermVariable:
		if !bound[t.Variable.String()] {
			into[t.Variable.String()] = t.Variable
		}
	case TermUnary, TermBinary:
		for _, a := range t.Args {
			collectFreeTerm(a, into, bound)
		}
	}
}

// Predicates returns the non-duplicating set of predicates occurring in f.
func (f Formula) Predicates() map[Predicate]bool {
	preds := make(map[Predicate]bool)
	collectPredicates(f, preds)
	return preds
}

func collectPredicates(f Formula, into map[Predicate]bool) {
	switch f.Kind {
	case FormulaAtom:
		into[f.predicate()] = true
	case FormulaUnary, FormulaBinary:
		for _, s := range f.Sub {
			collectPredicates(s, into)
		}
	case FormulaQuantified:
		collectPredicates(f.Sub[0], into)
	}
}

// Symbols returns the non-duplicating set of symbolic constants occurring in
// f, used for TPTP `tff` symbol declarations.
func (f Formula) Symbols() map[string]bool {
	syms := make(map[string]bool)
	var walkTerm func(Term)
	walkTerm = func(t Term) {
		switch t.Kind {
		case TermSymbol:
			syms[t.Symbol] = true
		case TermUnary, TermBinary:
			for _, a := range t.Args {
				walkTerm(a)
			}
		}
	}
	var walk func(Formula)
	walk = func(g Formula) {
		switch g.Kind {
		case FormulaAtom:
			for _, t := range g.Terms {
				walkTerm(t)
			}
		case FormulaComparison:
			walkTerm(g.Comparand)
			for _, gd := range g.Guards {
				walkTerm(gd.Term)
			}
		case FormulaUnary, FormulaBinary:
			for _, s := range g.Sub {
				walk(s)
			}
		case FormulaQuantified:
			walk(g.Sub[0])
		}
	}
	walk(f)
	return syms
}

// FunctionConstants returns placeholders: symbolic or general 0-ary
// identifiers that are not ordinary quoted symbols but user-guide
// placeholders. In this AST placeholders are represented identically to
// symbols; callers that need to distinguish them (the task pipeline) consult
// the user guide's declared placeholder names alongside Symbols.
func (f Formula) FunctionConstants(placeholders map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for s := range f.Symbols() {
		if placeholders[s] {
			out[s] = true
		}
	}
	return out
}

// Substitute performs capture-avoiding substitution of variable v by term
// repl within f. Any bound occurrence of v that would otherwise capture a
// free variable of repl is alpha-renamed first, using the fresh-name policy
// below, before recursing into the binder's body.
func (f Formula) Substitute(v Variable, repl Term) Formula {
	switch f.Kind {
	case FormulaTruth, FormulaFalsity:
		return f
	case FormulaAtom:
		terms := make([]Term, len(f.Terms))
		for i, t := range f.Terms {
			terms[i] = t.Substitute(v, repl)
		}
		return Formula{Kind: FormulaAtom, Predicate: f.Predicate, Terms: terms}
	case FormulaComparison:
		guards := make([]Guard, len(f.Guards))
		for i, g := range f.Guards {
			guards[i] = Guard{Relation: g.Relation, Term: g.Term.Substitute(v, repl)}
		}
		return Formula{Kind: FormulaComparison, Comparand: f.Comparand.Substitute(v, repl), Guards: guards}
	case FormulaUnary:
		return Formula{Kind: FormulaUnary, Connective: f.Connective, Sub: []Formula{f.Sub[0].Substitute(v, repl)}}
	case FormulaBinary:
		return Formula{Kind: FormulaBinary, Connective: f.Connective,
			Sub: []Formula{f.Sub[0].Substitute(v, repl), f.Sub[1].Substitute(v, repl)}}
	case FormulaQuantified:
		for _, b := range f.Bound {
			if b == v {
				return f // v is shadowed here; substitution does not reach the body
			}
		}
		if f.unsafeUnder(repl) {
			renamed := f.alphaRename(repl.Variables())
			return renamed.Substitute(v, repl)
		}
		return Formula{Kind: FormulaQuantified, Quantifier: f.Quantifier, Bound: f.Bound,
			Sub: []Formula{f.Sub[0].Substitute(v, repl)}}
	}
	return f
}

// UnsafeSubstitution reports whether Substitute(v, repl) would require
// alpha-renaming to avoid capturing a free variable of repl, without
// performing the substitution. The simplifier's equality-elimination rule
// (§4.6 rule 8) guards on this before eliminating a variable.
func (f Formula) UnsafeSubstitution(v Variable, repl Term) bool {
	replVars := repl.Variables()
	var walk func(Formula) bool
	walk = func(g Formula) bool {
		if g.Kind == FormulaQuantified {
			for _, b := range g.Bound {
				if b == v {
					return false
				}
			}
			if g.unsafeUnder(repl) {
				return true
			}
		}
		for _, s := range g.Sub {
			if walk(s) {
				return true
			}
		}
		return false
	}
	_ = replVars
	return walk(f)
}

// unsafeUnder reports whether any variable bound at this quantifier node
// occurs free in repl, which would let substitution capture it.
func (f Formula) unsafeUnder(repl Term) bool {
	replVars := repl.Variables()
	for _, b := range f.Bound {
		if _, ok := replVars[b.String()]; ok {
			return true
		}
	}
	return false
}

// alphaRename renames every bound variable of f (a quantified formula) that
// collides with avoid, producing fresh names distinct from avoid and from
// the free variables of f's own body.
func (f Formula) alphaRename(avoid map[string]Variable) Formula {
	taken := map[string]bool{}
	for k := range avoid {
		taken[k] = true
	}
	for k := range f.Sub[0].Variables() {
		taken[k] = true
	}
	renamed := make([]Variable, len(f.Bound))
	body := f.Sub[0]
	for i, b := range f.Bound {
		fresh := FreshNames(taken, b.Name, 1)[0]
		nv := Variable{Name: fresh, Sort: b.Sort}
		taken[nv.String()] = true
		body = body.Substitute(b, Term{Kind: TermVariable, Variable: nv})
		renamed[i] = nv
	}
	return Formula{Kind: FormulaQuantified, Quantifier: f.Quantifier, Bound: renamed, Sub: []Formula{body}}
}

// Apply performs a bottom-up structural rewrite of f: every sub-formula is
// mapped through mapper first, and the tree rebuilt from the rewritten
// sub-formulas is then passed to mapper itself. Simplification passes compose rewrites by iterated Apply.
func (f Formula) Apply(mapper func(Formula) Formula) Formula {
	switch f.Kind {
	case FormulaUnary:
		return mapper(Formula{Kind: FormulaUnary, Connective: f.Connective, Sub: []Formula{f.Sub[0].Apply(mapper)}})
	case FormulaBinary:
		return mapper(Formula{Kind: FormulaBinary, Connective: f.Connective,
			Sub: []Formula{f.Sub[0].Apply(mapper), f.Sub[1].Apply(mapper)}})
	case FormulaQuantified:
		return mapper(Formula{Kind: FormulaQuantified, Quantifier: f.Quantifier, Bound: f.Bound,
			Sub: []Formula{f.Sub[0].Apply(mapper)}})
	default:
		return mapper(f)
	}
}

// UniversalClosure quantifies f universally over its free-variable set, in
// deterministic (sorted) order.
func (f Formula) UniversalClosure() Formula {
	free := f.FreeVariables()
	if len(free) == 0 {
		return f
	}
	return Quantify(Forall, sortedVars(free), f)
}

func sortedVars(vars map[string]Variable) []Variable {
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]Variable, len(names))
	for i, n := range names {
		out[i] = vars[n]
	}
	return out
}

// Conjoin folds fs into a left-associative conjunction; the empty fold
// yields ⊤.
func Conjoin(fs []Formula) Formula {
	if len(fs) == 0 {
		return Truth()
	}
	acc := fs[0]
	for _, f := range fs[1:] {
		acc = And(acc, f)
	}
	return acc
}

// Disjoin folds fs into a left-associative disjunction; the empty fold
// yields ⊥.
func Disjoin(fs []Formula) Formula {
	if len(fs) == 0 {
		return Falsity()
	}
	acc := fs[0]
	for _, f := range fs[1:] {
		acc = Or(acc, f)
	}
	return acc
}

// ConjoinInvert is the inverse of Conjoin: it flattens a left-associative
// conjunction tree back into the ordered list of conjuncts. A non-conjunction
// formula is returned as a singleton list.
func ConjoinInvert(f Formula) []Formula {
	if f.Kind == FormulaBinary && f.Connective == ConnConjunction {
		return append(ConjoinInvert(f.Sub[0]), f.Sub[1])
	}
	return []Formula{f}
}

// --- Fresh variables --------------------------------------------------

// FreshNames produces count names by appending increasing integers to
// prefix, skipping any that collide with taken or with a name already
// produced in this call (spec §4.1). Choice of digits is deterministic:
// plain decimal, starting at 1.
func FreshNames(taken map[string]bool, prefix string, count int) []string {
	names := make([]string, 0, count)
	produced := make(map[string]bool, count)
	n := 1
	for len(names) < count {
		cand := fmt.Sprintf("%s%d", prefix, n)
		n++
		if taken[cand] || produced[cand] {
			continue
		}
		produced[cand] = true
		names = append(names, cand)
	}
	return names
}

// FreshVariables is FreshNames specialised to produce sorted Variable
// values, as used by τ* when introducing existential valuation variables
// (spec §4.5).
func FreshVariables(taken map[string]bool, prefix string, sort Sort, count int) []Variable {
	names := FreshNames(taken, prefix, count)
	vars := make([]Variable, count)
	for i, n := range names {
		vars[i] = Variable{Name: n, Sort: sort}
	}
	return vars
}
