package translate

import "github.com/anthem-go/anthem/internal/fol"

// Gamma translates a here-and-there formula into classical FOL by
// prepending "h"/"t" (here/there) to every predicate symbol, so that the
// classical model of the translated theory over h/t-prefixed predicates
// corresponds to an HT interpretation of the original (spec §4.5 "Γ").
func Gamma(f fol.Formula) fol.Formula {
	switch f.Kind {
	case fol.FormulaTruth, fol.FormulaFalsity, fol.FormulaAtom, fol.FormulaComparison:
		return here(f)

	case fol.FormulaUnary:
		if f.Connective == fol.ConnNegation {
			return fol.Not(there(f.Sub[0]))
		}
		return f

	case fol.FormulaBinary:
		switch f.Connective {
		case fol.ConnConjunction, fol.ConnDisjunction:
			return fol.Bin(f.Connective, Gamma(f.Sub[0]), Gamma(f.Sub[1]))
		case fol.ConnImplication:
			gammaImp := fol.Implies(Gamma(f.Sub[0]), Gamma(f.Sub[1]))
			thereImp := fol.Implies(there(f.Sub[0]), there(f.Sub[1]))
			return fol.And(gammaImp, thereImp)
		}

	case fol.FormulaQuantified:
		return fol.Quantify(f.Quantifier, f.Bound, Gamma(f.Sub[0]))
	}
	return f
}

// here renames every predicate of f with the "h" (here) prefix.
func here(f fol.Formula) fol.Formula {
	return prependPredicate(f, "h")
}

// there renames every predicate of f with the "t" (there) prefix.
func there(f fol.Formula) fol.Formula {
	return prependPredicate(f, "t")
}

// prependPredicate renames every atom's predicate symbol by a raw syntactic
// rewrite, with no further translation of the formula's shape.
func prependPredicate(f fol.Formula, prefix string) fol.Formula {
	return f.Apply(func(g fol.Formula) fol.Formula {
		if g.Kind != fol.FormulaAtom {
			return g
		}
		return fol.Atom(prefix+g.Predicate, g.Terms...)
	})
}
