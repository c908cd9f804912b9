// Package asp implements the answer-set-program half of the AST & algebra
// module (spec §4.1): a precomputed-term algebra, rules with basic/choice/
// falsity heads, and the recursive-descent parser/formatter pair for the
// grammar of spec §4.2/§4.3. Its structure mirrors internal/fol: tagged-union
// structs dispatched by a Kind field rather than per-node interfaces (spec
// §9), grounded in the same terex.Atom tagged-representation idea the
// teacher uses for its own term algebra.
package asp

import "fmt"

// TermKind discriminates the variants of Term.
type TermKind int

const (
	TermInfimum TermKind = iota
	TermInteger
	TermSymbol
	TermSupremum
	TermVariable
	TermUnary
	TermBinary
	TermInterval
)

// Op is an ASP arithmetic or interval operator.
type Op int

const (
	OpNone Op = iota
	OpNegative
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpInterval // ".." — only ever binary
)

func (o Op) String() string {
	switch o {
	case OpNegative, OpSubtract:
		return "-"
	case OpAdd:
		return "+"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpModulo:
		return "\\"
	case OpInterval:
		return ".."
	default:
		return "?"
	}
}

// Term is a tagged union over spec §3's ASP term grammar: a precomputed
// constant (infimum, integer, symbol, supremum), a variable, a unary minus,
// or a binary arithmetic/interval operation.
type Term struct {
	Kind    TermKind
	Integer int
	Symbol  string
	Name    string // TermVariable
	Op      Op
	Args    []Term // len 1 unary, len 2 binary/interval
}

func Inf() Term             { return Term{Kind: TermInfimum} }
func Sup() Term             { return Term{Kind: TermSupremum} }
func Int(n int) Term        { return Term{Kind: TermInteger, Integer: n} }
func Sym(name string) Term  { return Term{Kind: TermSymbol, Symbol: name} }
func Var(name string) Term  { return Term{Kind: TermVariable, Name: name} }
func Neg(t Term) Term       { return Term{Kind: TermUnary, Op: OpNegative, Args: []Term{t}} }
func Bin(op Op, l, r Term) Term {
	kind := TermBinary
	if op == OpInterval {
		kind = TermInterval
	}
	return Term{Kind: kind, Op: op, Args: []Term{l, r}}
}

func (t Term) String() string {
	switch t.Kind {
	case TermInfimum:
		return "#inf"
	case TermSupremum:
		return "#sup"
	case TermInteger:
		return fmt.Sprintf("%d", t.Integer)
	case TermSymbol:
		return t.Symbol
	case TermVariable:
		return t.Name
	case TermUnary:
		return fmt.Sprintf("-%s", wrapTerm(t.Args[0]))
	case TermBinary, TermInterval:
		return fmt.Sprintf("%s %s %s", wrapTerm(t.Args[0]), t.Op, wrapTerm(t.Args[1]))
	default:
		return "<invalid term>"
	}
}

// wrapTerm parenthesizes a compound sub-term so the default dialect
// round-trips through the parser regardless of the surrounding operator's
// precedence (a conservative, always-safe choice; spec §4.3 requires only
// that printed output re-parses to the same tree, not minimal parenthesization).
func wrapTerm(t Term) string {
	switch t.Kind {
	case TermUnary, TermBinary, TermInterval:
		return "(" + t.String() + ")"
	default:
		return t.String()
	}
}

// Variables returns the set of variable names occurring in t.
func (t Term) Variables() map[string]bool {
	out := map[string]bool{}
	collectVars(t, out)
	return out
}

func collectVars(t Term, into map[string]bool) {
	switch t.Kind {
	case TermVariable:
		into[t.Name] = true
	case TermUnary, TermBinary, TermInterval:
		for _, a := range t.Args {
			collectVars(a, into)
		}
	}
}

// Substitute replaces every occurrence of variable name with repl. ASP
// terms carry no binders, so no capture-avoidance is needed here (mirrors
// fol.Term.Substitute).
func (t Term) Substitute(name string, repl Term) Term {
	switch t.Kind {
	case TermVariable:
		if t.Name == name {
			return repl
		}
		return t
	case TermUnary, TermBinary, TermInterval:
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.Substitute(name, repl)
		}
		return Term{Kind: t.Kind, Op: t.Op, Args: args}
	default:
		return t
	}
}

// Apply performs a bottom-up structural rewrite of t.
func (t Term) Apply(f func(Term) Term) Term {
	switch t.Kind {
	case TermUnary, TermBinary, TermInterval:
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.Apply(f)
		}
		return f(Term{Kind: t.Kind, Op: t.Op, Args: args})
	default:
		return f(t)
	}
}
