package fol

import (
	"fmt"
	"strings"
)

// Predicate identifies an atom by symbol and arity; arity is part of
// predicate identity (spec §3 invariant).
type Predicate struct {
	Symbol string
	Arity  int
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s/%d", p.Symbol, p.Arity)
}

// Relation is the relation of a comparison guard.
type Relation int

const (
	RelEqual Relation = iota
	RelNotEqual
	RelLess
	RelLessEqual
	RelGreater
	RelGreaterEqual
)

func (r Relation) String() string {
	switch r {
	case RelEqual:
		return "="
	case RelNotEqual:
		return "!="
	case RelLess:
		return "<"
	case RelLessEqual:
		return "<="
	case RelGreater:
		return ">"
	case RelGreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// Negate returns the relation that holds exactly when r does not.
func (r Relation) Negate() Relation {
	switch r {
	case RelEqual:
		return RelNotEqual
	case RelNotEqual:
		return RelEqual
	case RelLess:
		return RelGreaterEqual
	case RelLessEqual:
		return RelGreater
	case RelGreater:
		return RelLessEqual
	case RelGreaterEqual:
		return RelLess
	default:
		return r
	}
}

// Guard is one link of a comparison's guard chain: `rel term`.
type Guard struct {
	Relation Relation
	Term     Term
}

// Connective discriminates unary and binary formula connectives.
type Connective int

const (
	ConnNone Connective = iota
	ConnNegation
	ConnConjunction
	ConnDisjunction
	ConnImplication
	ConnReverseImplication
	ConnEquivalence
)

func (c Connective) String() string {
	switch c {
	case ConnNegation:
		return "not"
	case ConnConjunction:
		return "and"
	case ConnDisjunction:
		return "or"
	case ConnImplication:
		return "->"
	case ConnReverseImplication:
		return "<-"
	case ConnEquivalence:
		return "<->"
	default:
		return "?"
	}
}

// RequiresParens reports whether c belongs to the implication family (->,
// <-, <->). The default formatter parenthesizes such a child whenever its
// connective differs from its implication-family parent's; a same-connective
// chain in its associative position is printed without parentheses.
func (c Connective) RequiresParens() bool {
	return c == ConnImplication || c == ConnReverseImplication || c == ConnEquivalence
}

// Quantifier distinguishes universal and existential quantification.
type Quantifier int

const (
	Forall Quantifier = iota
	Exists
)

func (q Quantifier) String() string {
	if q == Exists {
		return "exists"
	}
	return "forall"
}

// Dual returns the De Morgan dual quantifier.
func (q Quantifier) Dual() Quantifier {
	if q == Forall {
		return Exists
	}
	return Forall
}

// FormulaKind discriminates the variants of Formula.
type FormulaKind int

const (
	FormulaTruth FormulaKind = iota
	FormulaFalsity
	FormulaAtom
	FormulaComparison
	FormulaUnary
	FormulaBinary
	FormulaQuantified
)

// Formula is a tagged union over the FOL formula grammar of spec §3.
type Formula struct {
	Kind FormulaKind

	// FormulaAtom
	Predicate string
	Terms     []Term

	// FormulaComparison
	Comparand Term
	Guards    []Guard

	// FormulaUnary / FormulaBinary
	Connective Connective
	Sub        []Formula // len 1 for unary/quantified, len 2 for binary

	// FormulaQuantified
	Quantifier Quantifier
	Bound      []Variable
}

// Truth is the formula `⊤`.
func Truth() Formula { return Formula{Kind: FormulaTruth} }

// Falsity is the formula `⊥`.
func Falsity() Formula { return Formula{Kind: FormulaFalsity} }

// Atom constructs an atomic formula `p(t…)`.
func Atom(predicate string, terms ...Term) Formula {
	return Formula{Kind: FormulaAtom, Predicate: predicate, Terms: terms}
}

// Cmp constructs a comparison `term guard…`.
func Cmp(term Term, guards ...Guard) Formula {
	return Formula{Kind: FormulaComparison, Comparand: term, Guards: guards}
}

// Not constructs a negation.
func Not(f Formula) Formula {
	return Formula{Kind: FormulaUnary, Connective: ConnNegation, Sub: []Formula{f}}
}

// Bin constructs a binary formula.
func Bin(conn Connective, lhs, rhs Formula) Formula {
	return Formula{Kind: FormulaBinary, Connective: conn, Sub: []Formula{lhs, rhs}}
}

// And is shorthand for Bin(ConnConjunction, ...).
func And(lhs, rhs Formula) Formula { return Bin(ConnConjunction, lhs, rhs) }

// Or is shorthand for Bin(ConnDisjunction, ...).
func Or(lhs, rhs Formula) Formula { return Bin(ConnDisjunction, lhs, rhs) }

// Implies is shorthand for Bin(ConnImplication, ...).
func Implies(lhs, rhs Formula) Formula { return Bin(ConnImplication, lhs, rhs) }

// Iff is shorthand for Bin(ConnEquivalence, ...).
func Iff(lhs, rhs Formula) Formula { return Bin(ConnEquivalence, lhs, rhs) }

// Quantify wraps f under a single quantifier over vars, dropping the
// quantifier entirely if vars is empty (spec §4.1).
func Quantify(q Quantifier, vars []Variable, f Formula) Formula {
	if len(vars) == 0 {
		return f
	}
	return Formula{Kind: FormulaQuantified, Quantifier: q, Bound: vars, Sub: []Formula{f}}
}

// predicate returns the Predicate identity of an atomic formula.
func (f Formula) predicate() Predicate {
	return Predicate{Symbol: f.Predicate, Arity: len(f.Terms)}
}

func (f Formula) String() string {
	var b strings.Builder
	writeDefault(&b, f)
	return b.String()
}
