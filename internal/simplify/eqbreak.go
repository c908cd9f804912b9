package simplify

import (
	"github.com/anthem-go/anthem/internal/fol"
	"github.com/anthem-go/anthem/internal/theory"
)

// BreakEquivalences implements spec §4.6's optional equivalence-breaking
// transform: every annotated formula whose body is (possibly under a prefix
// of universal quantifiers) an equivalence `L <-> R` is replaced by a pair,
// `L -> R` named "<name>_forward" and `L <- R` named "<name>_backward",
// carrying the matching Direction. A formula that is not shaped as an
// equivalence passes through unchanged.
func BreakEquivalences(fs []theory.AnnotatedFormula) []theory.AnnotatedFormula {
	out := make([]theory.AnnotatedFormula, 0, len(fs))
	for _, af := range fs {
		binders, inner := peelForalls(af.Formula)
		if inner.Kind != fol.FormulaBinary || inner.Connective != fol.ConnEquivalence {
			out = append(out, af)
			continue
		}
		l, r := inner.Sub[0], inner.Sub[1]
		out = append(out,
			theory.AnnotatedFormula{
				Role: af.Role, Direction: theory.DirectionForward, Name: af.Name + "_forward",
				Formula: rewrapForalls(binders, fol.Implies(l, r)),
			},
			theory.AnnotatedFormula{
				Role: af.Role, Direction: theory.DirectionBackward, Name: af.Name + "_backward",
				Formula: rewrapForalls(binders, fol.Bin(fol.ConnReverseImplication, l, r)),
			},
		)
	}
	return out
}

// peelForalls strips every leading layer of universal quantification off f,
// returning the stripped binder lists (outermost first) and the remaining
// unquantified body.
func peelForalls(f fol.Formula) ([][]fol.Variable, fol.Formula) {
	var binders [][]fol.Variable
	for f.Kind == fol.FormulaQuantified && f.Quantifier == fol.Forall {
		binders = append(binders, f.Bound)
		f = f.Sub[0]
	}
	return binders, f
}

// rewrapForalls reapplies binders (outermost first) around body.
func rewrapForalls(binders [][]fol.Variable, body fol.Formula) fol.Formula {
	for i := len(binders) - 1; i >= 0; i-- {
		body = fol.Quantify(fol.Forall, binders[i], body)
	}
	return body
}
