package fol

import "fmt"

// TermKind discriminates the variants of Term.
type TermKind int

const (
	TermVariable TermKind = iota
	TermSymbol
	TermNumeral
	TermInfimum
	TermSupremum
	TermUnary
	TermBinary
)

// IntegerOp is the operator of a TermUnary/TermBinary integer-sorted term.
type IntegerOp int

const (
	OpNone IntegerOp = iota
	OpNegative          // unary
	OpAdd               // binary
	OpSubtract          // binary
	OpMultiply          // binary
)

func (o IntegerOp) String() string {
	switch o {
	case OpNegative:
		return "-"
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	default:
		return "?"
	}
}

// Variable names a sorted FOL variable, e.g. `X` (general), `N$i` (integer),
// `S$s` (symbolic).
type Variable struct {
	Name string
	Sort Sort
}

func (v Variable) String() string {
	switch v.Sort {
	case SortInteger:
		return v.Name + "$i"
	case SortSymbolic:
		return v.Name + "$s"
	default:
		return v.Name
	}
}

// Term is a tagged union over the sorted FOL term grammar of spec §3: a
// general term is a symbol, a general variable, or an embedded integer term;
// an integer term is a numeral, #inf, #sup, an integer variable, or a unary/
// binary arithmetic operation over integer terms.
type Term struct {
	Kind TermKind

	// TermVariable
	Variable Variable

	// TermSymbol
	Symbol string

	// TermNumeral
	Numeral int

	// TermUnary / TermBinary
	Op   IntegerOp
	Args []Term // len 1 for unary, len 2 for binary
}

// Var constructs a variable term of the given sort.
func Var(name string, sort Sort) Term {
	return Term{Kind: TermVariable, Variable: Variable{Name: name, Sort: sort}}
}

// Sym constructs a symbolic constant term.
func Sym(name string) Term {
	return Term{Kind: TermSymbol, Symbol: name}
}

// Num constructs an integer numeral term.
func Num(n int) Term {
	return Term{Kind: TermNumeral, Numeral: n}
}

// Inf is the integer infimum constant `#inf`.
func Inf() Term { return Term{Kind: TermInfimum} }

// Sup is the integer supremum constant `#sup`.
func Sup() Term { return Term{Kind: TermSupremum} }

// Unary constructs a unary integer operation (currently only negation).
func Unary(op IntegerOp, arg Term) Term {
	return Term{Kind: TermUnary, Op: op, Args: []Term{arg}}
}

// Binary constructs a binary integer operation.
func Binary(op IntegerOp, lhs, rhs Term) Term {
	return Term{Kind: TermBinary, Op: op, Args: []Term{lhs, rhs}}
}

// Sort returns the sort of t as determined by its constructor; integer
// operators and numerals are always integer-sorted, a variable carries its
// declared sort, and a symbol is symbolic.
func (t Term) Sort() Sort {
	switch t.Kind {
	case TermVariable:
		return t.Variable.Sort
	case TermSymbol:
		return SortSymbolic
	case TermNumeral, TermInfimum, TermSupremum, TermUnary, TermBinary:
		return SortInteger
	default:
		return SortGeneral
	}
}

func (t Term) String() string {
	switch t.Kind {
	case TermVariable:
		return t.Variable.String()
	case TermSymbol:
		return t.Symbol
	case TermNumeral:
		return fmt.Sprintf("%d", t.Numeral)
	case TermInfimum:
		return "#inf"
	case TermSupremum:
		return "#sup"
	case TermUnary:
		return fmt.Sprintf("%s%s", t.Op, t.Args[0])
	case TermBinary:
		return fmt.Sprintf("(%s %s %s)", t.Args[0], t.Op, t.Args[1])
	default:
		return "<invalid term>"
	}
}

// Equal reports structural equality of two terms, ignoring nothing — two
// variables are equal only if both name and sort match.
func (t Term) Equal(other Term) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TermVariable:
		return t.Variable == other.Variable
	case TermSymbol:
		return t.Symbol == other.Symbol
	case TermNumeral:
		return t.Numeral == other.Numeral
	case TermInfimum, TermSupremum:
		return true
	case TermUnary, TermBinary:
		if t.Op != other.Op || len(t.Args) != len(other.Args) {
			return false
		}
		for i := range t.Args {
			if !t.Args[i].Equal(other.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Variables returns the set of variables occurring in t, keyed by their
// String form so that sort-distinct variables sharing a name never collide.
func (t Term) Variables() map[string]Variable {
	vars := make(map[string]Variable)
	collectTermVars(t, vars)
	return vars
}

func collectTermVars(t Term, into map[string]Variable) {
	switch t.Kind {
	case TermVariable:
		into[t.Variable.String()] = t.Variable
	case TermUnary, TermBinary:
		for _, a := range t.Args {
			collectTermVars(a, into)
		}
	}
}

// Substitute performs capture-avoiding substitution of variable v by term
// repl within t. Terms have no binders of their own, so capture cannot arise
// here; the capture-avoidance machinery lives in Formula.Substitute, which
// renames quantifiers before recursing into their bodies.
func (t Term) Substitute(v Variable, repl Term) Term {
	switch t.Kind {
	case TermVariable:
		if t.Variable == v {
			return repl
		}
		return t
	case TermUnary, TermBinary:
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.Substitute(v, repl)
		}
		return Term{Kind: t.Kind, Op: t.Op, Args: args}
	default:
		return t
	}
}

// Apply performs a bottom-up structural rewrite of t, mapping every
// sub-term through f before returning.
func (t Term) Apply(f func(Term) Term) Term {
	switch t.Kind {
	case TermUnary, TermBinary:
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.Apply(f)
		}
		return f(Term{Kind: t.Kind, Op: t.Op, Args: args})
	default:
		return f(t)
	}
}
