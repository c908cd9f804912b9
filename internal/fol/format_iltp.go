package fol

import (
	"fmt"
	"strings"
)

// ErrUnsupportedInILTP reports a construct absent from the ILTP dialect's
// intuitionistic-prover subset that FormatILTP detects: integer terms and
// sorted (integer or symbolic) variables.
type ErrUnsupportedInILTP struct {
	Construct string
}

func (e *ErrUnsupportedInILTP) Error() string {
	return fmt.Sprintf("fol: %s is not representable in the ILTP dialect", e.Construct)
}

func writeILTPGeneralTerm(b *strings.Builder, t Term) error {
	switch t.Kind {
	case TermSymbol:
		b.WriteString(t.Symbol)
		return nil
	case TermVariable:
		if t.Variable.Sort != SortGeneral {
			return &ErrUnsupportedInILTP{Construct: "a sorted (integer/symbolic) variable"}
		}
		b.WriteString(t.Variable.Name)
		return nil
	default:
		return &ErrUnsupportedInILTP{Construct: "an integer term"}
	}
}

func writeILTPAtom(b *strings.Builder, f Formula) error {
	b.WriteString(f.Predicate)
	if len(f.Terms) == 0 {
		return nil
	}
	b.WriteString("(")
	for i, t := range f.Terms {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := writeILTPGeneralTerm(b, t); err != nil {
			return err
		}
	}
	b.WriteString(")")
	return nil
}

func writeILTPComparison(b *strings.Builder, f Formula) error {
	prev := f.Comparand
	for i, g := range f.Guards {
		if i > 0 {
			b.WriteString(" & ")
		}
		switch g.Relation {
		case RelEqual, RelNotEqual:
			if err := writeILTPGeneralTerm(b, prev); err != nil {
				return err
			}
			b.WriteString(" ")
			b.WriteString(tptpRelation(g.Relation))
			b.WriteString(" ")
			if err := writeILTPGeneralTerm(b, g.Term); err != nil {
				return err
			}
		default:
			b.WriteString(tptpRelation(g.Relation))
			b.WriteString("(")
			if err := writeILTPGeneralTerm(b, prev); err != nil {
				return err
			}
			b.WriteString(", ")
			if err := writeILTPGeneralTerm(b, g.Term); err != nil {
				return err
			}
			b.WriteString(")")
		}
		prev = g.Term
	}
	return nil
}

func writeILTP(b *strings.Builder, f Formula) error {
	switch f.Kind {
	case FormulaTruth:
		b.WriteString("$true")
		return nil
	case FormulaFalsity:
		b.WriteString("$false")
		return nil
	case FormulaAtom:
		return writeILTPAtom(b, f)
	case FormulaComparison:
		return writeILTPComparison(b, f)
	case FormulaUnary:
		b.WriteString(tptpConnective(f.Connective))
		return writeILTPOperand(b, f, f.Sub[0], false)
	case FormulaQuantified:
		b.WriteString(f.Quantifier.tptpSymbol())
		b.WriteString("[")
		for i, v := range f.Bound {
			if v.Sort != SortGeneral {
				return &ErrUnsupportedInILTP{Construct: "a sorted (integer/symbolic) quantified variable"}
			}
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(v.Name)
		}
		b.WriteString("]: (")
		if err := writeILTP(b, f.Sub[0]); err != nil {
			return err
		}
		b.WriteString(")")
		return nil
	case FormulaBinary:
		if err := writeILTPOperand(b, f, f.Sub[0], false); err != nil {
			return err
		}
		b.WriteString(" ")
		b.WriteString(tptpConnective(f.Connective))
		b.WriteString(" ")
		return writeILTPOperand(b, f, f.Sub[1], true)
	}
	return nil
}

func writeILTPOperand(b *strings.Builder, parent, child Formula, isRight bool) error {
	if needsParens(parent, child, isRight) {
		b.WriteString("(")
		if err := writeILTP(b, child); err != nil {
			return err
		}
		b.WriteString(")")
		return nil
	}
	return writeILTP(b, child)
}

// FormatILTP renders f in the ILTP dialect, the subset of TPTP accepted by
// intuitionistic provers. It rejects any formula mentioning integer
// arithmetic or a sorted (non-general) variable by returning an
// *ErrUnsupportedInILTP rather than panicking, so callers can report the
// offending problem and continue with the rest of a batch. Function
// constants are not detected: placeholders are represented as symbols, and
// every symbol is written out as-is.
func FormatILTP(f Formula) (string, error) {
	var b strings.Builder
	if err := writeILTP(&b, f); err != nil {
		return "", err
	}
	return b.String(), nil
}
