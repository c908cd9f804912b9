package simplify

import "github.com/anthem-go/anthem/internal/fol"

// Classical returns the classical simplifier: every HT rule, plus
// double-negation elimination (spec §4.6: "Classical simplifier adds:
// ¬¬F ⇒ F"), which is sound classically but not under the logic of
// here-and-there.
func Classical() Engine {
	ht := HT()
	rules := make([]Rule, 0, len(ht.Rules)+1)
	rules = append(rules, ht.Rules...)
	rules = append(rules, Rule{Name: "double-negation", Rewrite: doubleNegation})
	return Engine{Rules: rules}
}

func doubleNegation(f fol.Formula) (fol.Formula, bool) {
	if f.Kind != fol.FormulaUnary || f.Connective != fol.ConnNegation {
		return f, false
	}
	inner := f.Sub[0]
	if inner.Kind != fol.FormulaUnary || inner.Connective != fol.ConnNegation {
		return f, false
	}
	return inner.Sub[0], true
}
