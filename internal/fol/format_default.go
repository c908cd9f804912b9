package fol

import (
	"strings"
)

// precedence assigns the connective-precedence table of spec §4.2 a total
// numeric order (higher binds tighter): not(6) > quantifier-prefix(5) >
// and(4) > or(3) > {->, <-, <->}(2). Atomic formulas never need parens as an
// operand and are given the highest value.
func precedence(f Formula) int {
	switch f.Kind {
	case FormulaUnary:
		return 6
	case FormulaQuantified:
		return 5
	case FormulaBinary:
		switch f.Connective {
		case ConnConjunction:
			return 4
		case ConnDisjunction:
			return 3
		default: // ->, <-, <->
			return 2
		}
	default:
		return 100
	}
}

// needsParens decides whether child, appearing as an operand of parent
// (isRightChild distinguishes the two operands of a binary parent), must be
// parenthesized so that the default dialect round-trips through the parser.
func needsParens(parent, child Formula, isRightChild bool) bool {
	switch child.Kind {
	case FormulaTruth, FormulaFalsity, FormulaAtom, FormulaComparison:
		return false
	}
	pp, cp := precedence(parent), precedence(child)
	if cp > pp {
		return false
	}
	if cp < pp {
		return true
	}
	switch parent.Kind {
	case FormulaUnary, FormulaQuantified:
		return false // "not not p" and nested quantifiers never need extra grouping
	case FormulaBinary:
		if child.Kind != FormulaBinary {
			return false
		}
		switch parent.Connective {
		case ConnConjunction, ConnDisjunction:
			if child.Connective != parent.Connective {
				return false
			}
			return isRightChild // left-associative: only the right operand regroups
		case ConnImplication, ConnEquivalence: // right-associative
			if child.Connective == parent.Connective {
				return !isRightChild
			}
			return true // mixed implication-family nesting requires mandatory parens
		case ConnReverseImplication: // left-associative
			if child.Connective == parent.Connective {
				return isRightChild
			}
			return true
		}
	}
	return false
}

func writeDefault(b *strings.Builder, f Formula) {
	switch f.Kind {
	case FormulaTruth:
		b.WriteString("#true")
	case FormulaFalsity:
		b.WriteString("#false")
	case FormulaAtom:
		writeAtomDefault(b, f)
	case FormulaComparison:
		writeComparisonDefault(b, f)
	case FormulaUnary:
		b.WriteString("not ")
		writeOperandDefault(b, f, f.Sub[0], false)
	case FormulaQuantified:
		b.WriteString(f.Quantifier.String())
		b.WriteString(" ")
		for i, v := range f.Bound {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(v.String())
		}
		b.WriteString(" (")
		writeDefault(b, f.Sub[0])
		b.WriteString(")")
	case FormulaBinary:
		writeOperandDefault(b, f, f.Sub[0], false)
		b.WriteString(" ")
		b.WriteString(f.Connective.String())
		b.WriteString(" ")
		writeOperandDefault(b, f, f.Sub[1], true)
	}
}

func writeOperandDefault(b *strings.Builder, parent, child Formula, isRight bool) {
	if needsParens(parent, child, isRight) {
		b.WriteString("(")
		writeDefault(b, child)
		b.WriteString(")")
		return
	}
	writeDefault(b, child)
}

func writeAtomDefault(b *strings.Builder, f Formula) {
	b.WriteString(f.Predicate)
	if len(f.Terms) == 0 {
		return
	}
	b.WriteString("(")
	for i, t := range f.Terms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteString(")")
}

func writeComparisonDefault(b *strings.Builder, f Formula) {
	b.WriteString(f.Comparand.String())
	for _, g := range f.Guards {
		b.WriteString(" ")
		b.WriteString(g.Relation.String())
		b.WriteString(" ")
		b.WriteString(g.Term.String())
	}
}

// Format renders f in the default, human-readable dialect matching the
// parser's accepted grammar. Every Formula produced by Parse round-trips
// through Format exactly (modulo canonical whitespace), per spec §8.
func Format(f Formula) string {
	return f.String()
}
