// Package theory holds the specification/user-guide/problem data model of
// spec §3: annotated formulas, specifications, user guides, and TPTP
// problems, plus the generic warning-carrying result wrapper surfaced by
// src/convenience/with_warnings/mod.rs.
package theory

import (
	"sort"
	"strings"

	"github.com/anthem-go/anthem/internal/fol"
)

// Role discriminates the purpose of an annotated formula within a
// specification (spec §3).
type Role int

const (
	RoleAssumption Role = iota
	RoleSpec
	RoleLemma
	RoleInductiveLemma
	RoleDefinition
)

func (r Role) String() string {
	switch r {
	case RoleAssumption:
		return "assumption"
	case RoleSpec:
		return "spec"
	case RoleLemma:
		return "lemma"
	case RoleInductiveLemma:
		return "inductive-lemma"
	case RoleDefinition:
		return "definition"
	default:
		return "?"
	}
}

// Direction says which half of an equivalence proof an annotated formula
// participates in.
type Direction int

const (
	DirectionUniversal Direction = iota
	DirectionForward
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "universal"
	}
}

// AnnotatedFormula bundles a role, direction, name, and formula (spec §3).
type AnnotatedFormula struct {
	Role      Role
	Direction Direction
	Name      string
	Formula   fol.Formula
}

// Specification is an ordered list of annotated formulas.
type Specification struct {
	Formulas []AnnotatedFormula
}

// UserGuide declares public predicates, placeholders, and standing
// assumptions (spec §3).
type UserGuide struct {
	InputPredicates  []fol.Predicate
	OutputPredicates []fol.Predicate
	Placeholders     map[string]fol.Sort
	Assumptions      []AnnotatedFormula
}

// PublicPredicates returns the non-duplicating union of input and output
// predicates — the predicates two artifacts must agree on for external
// equivalence (spec §4.7).
func (u UserGuide) PublicPredicates() map[fol.Predicate]bool {
	out := map[fol.Predicate]bool{}
	for _, p := range u.InputPredicates {
		out[p] = true
	}
	for _, p := range u.OutputPredicates {
		out[p] = true
	}
	return out
}

// IsPrivate reports whether p is absent from both the input and output
// predicate lists (spec §4.4 "private" predicates).
func (u UserGuide) IsPrivate(p fol.Predicate) bool {
	return !u.PublicPredicates()[p]
}

// ProblemRole discriminates the two roles a formula can take inside a
// TPTP problem.
type ProblemRole int

const (
	ProblemAxiom ProblemRole = iota
	ProblemConjecture
)

func (r ProblemRole) String() string {
	if r == ProblemConjecture {
		return "conjecture"
	}
	return "axiom"
}

// ProblemAnnotatedFormula is one declaration inside a Problem.
type ProblemAnnotatedFormula struct {
	Name string
	Role ProblemRole
	F    fol.Formula
}

// Problem is a named, ordered sequence of axiom/conjecture declarations
// plus a fixed interpretation preamble (spec §3).
type Problem struct {
	Name     string
	Preamble string
	Formulas []ProblemAnnotatedFormula
}

// Axioms returns the axiom-role prefix of p.Formulas.
func (p Problem) Axioms() []ProblemAnnotatedFormula {
	var out []ProblemAnnotatedFormula
	for _, f := range p.Formulas {
		if f.Role == ProblemAxiom {
			out = append(out, f)
		}
	}
	return out
}

// Conjectures returns the conjecture-role suffix of p.Formulas (spec §3
// invariant: "a problem's conjecture set is ... the tail of the problem
// after all axioms").
func (p Problem) Conjectures() []ProblemAnnotatedFormula {
	var out []ProblemAnnotatedFormula
	for _, f := range p.Formulas {
		if f.Role == ProblemConjecture {
			out = append(out, f)
		}
	}
	return out
}

// defaultPreamble is the standard sort setup shared by every problem this
// module emits: general is the TPTP super-sort, and integer and symbol
// values are embedded into it by the `f__integer__`/`f__symbolic__`
// functions declared here. The preamble holds type declarations only.
const defaultPreamble = `tff(general_type, type, general: $tType).
tff(symbol_type, type, symbol: $tType).
tff(f_integer_type, type, f__integer__: ( $int ) > general).
tff(f_symbolic_type, type, f__symbolic__: ( symbol ) > general).
tff(c_infimum_type, type, c__infimum__: general).
tff(c_supremum_type, type, c__supremum__: general).
`

// NewProblem builds a Problem with the shared interpretation preamble.
func NewProblem(name string, formulas []ProblemAnnotatedFormula) Problem {
	return Problem{Name: name, Preamble: defaultPreamble, Formulas: formulas}
}

// Serialize renders p as TPTP problem text (spec §6): the preamble, then a
// `tff` type declaration per predicate (sorted by symbol), then one per
// symbolic constant (sorted by name), then symbol-order axioms over the
// sorted symbol list, then one `tff(name, role, formula).` per problem
// formula.
func (p Problem) Serialize() string {
	var b strings.Builder
	b.WriteString(p.Preamble)

	predicates := map[fol.Predicate]bool{}
	symbols := map[string]bool{}
	for _, pf := range p.Formulas {
		for pr := range pf.F.Predicates() {
			predicates[pr] = true
		}
		for s := range pf.F.Symbols() {
			symbols[s] = true
		}
	}

	predNames := make([]string, 0, len(predicates))
	predByName := map[string]fol.Predicate{}
	for pr := range predicates {
		predNames = append(predNames, pr.Symbol)
		predByName[pr.Symbol] = pr
	}
	sort.Strings(predNames)
	for _, name := range predNames {
		pr := predByName[name]
		b.WriteString("tff(")
		b.WriteString(mangleDeclName(name))
		b.WriteString("_type, type, ")
		b.WriteString(name)
		b.WriteString(": ")
		writePredicateType(&b, pr.Arity)
		b.WriteString(").\n")
	}

	symNames := make([]string, 0, len(symbols))
	for s := range symbols {
		symNames = append(symNames, s)
	}
	sort.Strings(symNames)
	for _, name := range symNames {
		b.WriteString("tff(")
		b.WriteString(mangleDeclName(name))
		b.WriteString("_symbol_type, type, ")
		b.WriteString(name)
		b.WriteString(": symbol).\n")
	}
	for i := 0; i+1 < len(symNames); i++ {
		b.WriteString("tff(symbol_order_")
		b.WriteString(mangleDeclName(symNames[i]))
		b.WriteString(", axiom, p__less__(f__symbolic__(")
		b.WriteString(symNames[i])
		b.WriteString("), f__symbolic__(")
		b.WriteString(symNames[i+1])
		b.WriteString("))).\n")
	}

	for _, pf := range p.Formulas {
		b.WriteString("tff(")
		b.WriteString(pf.Name)
		b.WriteString(", ")
		b.WriteString(pf.Role.String())
		b.WriteString(", ")
		b.WriteString(fol.FormatTPTP(pf.F))
		b.WriteString(").\n")
	}
	return b.String()
}

func writePredicateType(b *strings.Builder, arity int) {
	if arity == 0 {
		b.WriteString("$o")
		return
	}
	for i := 0; i < arity; i++ {
		if i > 0 {
			b.WriteString(" * ")
		}
		b.WriteString("general")
	}
	b.WriteString(" > $o")
}

// mangleDeclName produces a TPTP-safe identifier fragment for use in
// declaration names, replacing characters TPTP identifiers disallow.
func mangleDeclName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
