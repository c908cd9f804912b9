package task

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"

	"github.com/anthem-go/anthem/internal/fol"
	"github.com/anthem-go/anthem/internal/theory"
)

// reservedSymbols are the identifiers theory's TPTP preamble and the
// module's own sort-encoding helpers already declare (theory.Problem's
// default preamble, and the f__/c__/p__ helpers translate and theory
// emit). A user program's predicate or symbolic-constant name must never
// collide with one of these once both land in the same problem file.
var reservedSymbols = map[string]bool{
	"general": true, "symbol": true,
	"f__integer__": true, "f__symbolic__": true,
	"c__infimum__": true, "c__supremum__": true,
	"p__less__": true, "p__less_equal__": true,
	"p__greater__": true, "p__greater_equal__": true, "equal": true,
}

// RenameConflictingSymbols renames every predicate symbol and symbolic
// constant of p that collides with a reserved name (spec §4.7 "Problem
// symbol-renaming"), suffixing the colliding name with a deterministic,
// content-derived token so repeated runs over the same input rename it
// identically every time. strong_equivalence.rs calls this step
// rename_conflicting_symbols before serialization, but its body was never
// implemented there, so the reserved-name lookup plus a structhash-derived
// suffix implemented here is this module's own design.
func RenameConflictingSymbols(p theory.Problem) theory.Problem {
	predicates := map[fol.Predicate]bool{}
	symbols := map[string]bool{}
	for _, af := range p.Formulas {
		for pr := range af.F.Predicates() {
			predicates[pr] = true
		}
		for s := range af.F.Symbols() {
			symbols[s] = true
		}
	}

	predicateRenames := map[string]string{}
	for pr := range predicates {
		if reservedSymbols[pr.Symbol] {
			predicateRenames[pr.Symbol] = mangle(pr.Symbol)
		}
	}
	symbolRenames := map[string]string{}
	for s := range symbols {
		if reservedSymbols[s] {
			symbolRenames[s] = mangle(s)
		}
	}
	if len(predicateRenames) == 0 && len(symbolRenames) == 0 {
		return p
	}

	formulas := make([]theory.ProblemAnnotatedFormula, len(p.Formulas))
	for i, af := range p.Formulas {
		formulas[i] = theory.ProblemAnnotatedFormula{
			Name: af.Name,
			Role: af.Role,
			F:    renameFormula(af.F, predicateRenames, symbolRenames),
		}
	}
	return theory.Problem{Name: p.Name, Preamble: p.Preamble, Formulas: formulas}
}

func renameFormula(f fol.Formula, predicates, symbols map[string]string) fol.Formula {
	return f.Apply(func(g fol.Formula) fol.Formula {
		switch g.Kind {
		case fol.FormulaAtom:
			name := g.Predicate
			if r, ok := predicates[name]; ok {
				name = r
			}
			terms := make([]fol.Term, len(g.Terms))
			for i, t := range g.Terms {
				terms[i] = renameTerm(t, symbols)
			}
			return fol.Formula{Kind: fol.FormulaAtom, Predicate: name, Terms: terms}
		case fol.FormulaComparison:
			guards := make([]fol.Guard, len(g.Guards))
			for i, gd := range g.Guards {
				guards[i] = fol.Guard{Relation: gd.Relation, Term: renameTerm(gd.Term, symbols)}
			}
			return fol.Formula{Kind: fol.FormulaComparison, Comparand: renameTerm(g.Comparand, symbols), Guards: guards}
		default:
			return g
		}
	})
}

func renameTerm(t fol.Term, symbols map[string]string) fol.Term {
	return t.Apply(func(s fol.Term) fol.Term {
		if s.Kind == fol.TermSymbol {
			if r, ok := symbols[s.Symbol]; ok {
				return fol.Sym(r)
			}
		}
		return s
	})
}

// mangle derives a deterministic replacement for a reserved identifier,
// suffixing it with a short structural hash of the name itself (the same
// library the simplifier's fixed-point loop uses for formula hashing).
func mangle(name string) string {
	h, err := structhash.Hash(name, 1)
	if err != nil {
		panic(err)
	}
	h = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, strings.ToLower(h))
	if len(h) > 8 {
		h = h[:8]
	}
	return fmt.Sprintf("%s__r%s", name, h)
}
