package fol

import (
	"fmt"
	"strings"
)

// writeTPTPIntegerTerm renders t (an integer-sorted term) in TPTP's
// arithmetic-function-symbol style: $uminus, $sum, $difference, $product over
// plain numerals/variables, matching original_source's tptp.rs exactly.
func writeTPTPIntegerTerm(b *strings.Builder, t Term) {
	switch t.Kind {
	case TermNumeral:
		if t.Numeral < 0 {
			fmt.Fprintf(b, "$uminus(%d)", -t.Numeral)
		} else {
			fmt.Fprintf(b, "%d", t.Numeral)
		}
	case TermVariable:
		b.WriteString(t.Variable.Name)
		b.WriteString("$i")
	case TermInfimum:
		b.WriteString("c__infimum__")
	case TermSupremum:
		b.WriteString("c__supremum__")
	case TermUnary:
		b.WriteString(tptpIntegerOp(t.Op))
		b.WriteString("(")
		writeTPTPIntegerTerm(b, t.Args[0])
		b.WriteString(")")
	case TermBinary:
		b.WriteString(tptpIntegerOp(t.Op))
		b.WriteString("(")
		writeTPTPIntegerTerm(b, t.Args[0])
		b.WriteString(", ")
		writeTPTPIntegerTerm(b, t.Args[1])
		b.WriteString(")")
	}
}

func tptpIntegerOp(op IntegerOp) string {
	switch op {
	case OpNegative:
		return "$uminus"
	case OpAdd:
		return "$sum"
	case OpSubtract:
		return "$difference"
	case OpMultiply:
		return "$product"
	default:
		return "?"
	}
}

// writeTPTPGeneralTerm renders t as a value of TPTP's distinguished general
// sort, wrapping integer- and symbolic-sorted terms with the injection
// functions f__integer__/f__symbolic__ (spec §4.3).
func writeTPTPGeneralTerm(b *strings.Builder, t Term) {
	switch t.Sort() {
	case SortInteger:
		if t.Kind == TermInfimum {
			b.WriteString("c__infimum__")
			return
		}
		if t.Kind == TermSupremum {
			b.WriteString("c__supremum__")
			return
		}
		b.WriteString("f__integer__(")
		writeTPTPIntegerTerm(b, t)
		b.WriteString(")")
	case SortSymbolic:
		b.WriteString("f__symbolic__(")
		if t.Kind == TermVariable {
			b.WriteString(t.Variable.Name)
			b.WriteString("$s")
		} else {
			b.WriteString(t.Symbol)
		}
		b.WriteString(")")
	default: // general variable
		b.WriteString(t.Variable.Name)
	}
}

func tptpRelation(r Relation) string {
	switch r {
	case RelEqual:
		return "="
	case RelNotEqual:
		return "!="
	case RelGreaterEqual:
		return "p__greater_equal__"
	case RelLessEqual:
		return "p__less_equal__"
	case RelGreater:
		return "p__greater__"
	case RelLess:
		return "p__less__"
	default:
		return "?"
	}
}

func tptpConnective(c Connective) string {
	switch c {
	case ConnNegation:
		return "~"
	case ConnConjunction:
		return "&"
	case ConnDisjunction:
		return "|"
	case ConnImplication:
		return "=>"
	case ConnReverseImplication:
		return "<="
	case ConnEquivalence:
		return "<=>"
	default:
		return "?"
	}
}

func tptpSortAnnotation(s Sort) string {
	switch s {
	case SortInteger:
		return "$int"
	case SortSymbolic:
		return "symbol"
	default:
		return "general"
	}
}

func writeTPTPAtom(b *strings.Builder, f Formula) {
	b.WriteString(f.Predicate)
	if len(f.Terms) == 0 {
		return
	}
	b.WriteString("(")
	for i, t := range f.Terms {
		if i > 0 {
			b.WriteString(", ")
		}
		writeTPTPGeneralTerm(b, t)
	}
	b.WriteString(")")
}

// writeTPTPComparison chains a guard list pairwise: equal/not-equal guards
// print infix, every other relation prints as a prefix predicate symbol
// (p__less__ etc.), matching the original's Comparison formatter.
func writeTPTPComparison(b *strings.Builder, f Formula) {
	prev := f.Comparand
	for i, g := range f.Guards {
		if i > 0 {
			b.WriteString(" & ")
		}
		switch g.Relation {
		case RelEqual, RelNotEqual:
			writeTPTPGeneralTerm(b, prev)
			b.WriteString(" ")
			b.WriteString(tptpRelation(g.Relation))
			b.WriteString(" ")
			writeTPTPGeneralTerm(b, g.Term)
		default:
			b.WriteString(tptpRelation(g.Relation))
			b.WriteString("(")
			writeTPTPGeneralTerm(b, prev)
			b.WriteString(", ")
			writeTPTPGeneralTerm(b, g.Term)
			b.WriteString(")")
		}
		prev = g.Term
	}
}

func writeTPTP(b *strings.Builder, f Formula) {
	switch f.Kind {
	case FormulaTruth:
		b.WriteString("$true")
	case FormulaFalsity:
		b.WriteString("$false")
	case FormulaAtom:
		writeTPTPAtom(b, f)
	case FormulaComparison:
		writeTPTPComparison(b, f)
	case FormulaUnary:
		b.WriteString(tptpConnective(f.Connective))
		writeTPTPOperand(b, f, f.Sub[0], false)
	case FormulaQuantified:
		b.WriteString(f.Quantifier.tptpSymbol())
		b.WriteString("[")
		for i, v := range f.Bound {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(v.Name)
			b.WriteString(": ")
			b.WriteString(tptpSortAnnotation(v.Sort))
		}
		b.WriteString("]: (")
		writeTPTP(b, f.Sub[0])
		b.WriteString(")")
	case FormulaBinary:
		writeTPTPOperand(b, f, f.Sub[0], false)
		b.WriteString(" ")
		b.WriteString(tptpConnective(f.Connective))
		b.WriteString(" ")
		writeTPTPOperand(b, f, f.Sub[1], true)
	}
}

func writeTPTPOperand(b *strings.Builder, parent, child Formula, isRight bool) {
	if needsParens(parent, child, isRight) {
		b.WriteString("(")
		writeTPTP(b, child)
		b.WriteString(")")
		return
	}
	writeTPTP(b, child)
}

func (q Quantifier) tptpSymbol() string {
	if q == Exists {
		return "?"
	}
	return "!"
}

// FormatTPTP renders f as a TPTP `tff` formula body, wrapping non-general
// terms with the injection functions and sort-annotating every quantified
// variable (spec §4.3, §6).
func FormatTPTP(f Formula) string {
	var b strings.Builder
	writeTPTP(&b, f)
	return b.String()
}
