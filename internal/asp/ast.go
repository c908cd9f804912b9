package asp

import "fmt"

// Sign is the polarity of a body literal (spec §3: "none, negation,
// double-negation").
type Sign int

const (
	SignNone Sign = iota
	SignNegation
	SignDoubleNegation
)

func (s Sign) String() string {
	switch s {
	case SignNegation:
		return "not "
	case SignDoubleNegation:
		return "not not "
	default:
		return ""
	}
}

// Relation is a comparison relation in an ASP body.
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

// Predicate identifies an atom by symbol and arity.
type Predicate struct {
	Symbol string
	Arity  int
}

func (p Predicate) String() string { return fmt.Sprintf("%s/%d", p.Symbol, p.Arity) }

// Atom is a predicate application `p(t…)`.
type Atom struct {
	Symbol string
	Terms  []Term
}

func (a Atom) predicate() Predicate { return Predicate{Symbol: a.Symbol, Arity: len(a.Terms)} }

// BodyFormulaKind discriminates the two atomic body formula variants.
type BodyFormulaKind int

const (
	BodyLiteral BodyFormulaKind = iota
	BodyComparison
)

// BodyFormula is an atomic body formula: a signed literal or a comparison.
type BodyFormula struct {
	Kind BodyFormulaKind

	// BodyLiteral
	Sign Sign
	Atom Atom

	// BodyComparison
	Left  Term
	Rel   Relation
	Right Term
}

func Literal(sign Sign, atom Atom) BodyFormula {
	return BodyFormula{Kind: BodyLiteral, Sign: sign, Atom: atom}
}

func Comparison(left Term, rel Relation, right Term) BodyFormula {
	return BodyFormula{Kind: BodyComparison, Left: left, Rel: rel, Right: right}
}

// HeadKind discriminates the three rule-head variants (spec §3).
type HeadKind int

const (
	HeadBasic HeadKind = iota
	HeadChoice
	HeadFalsity
)

// Head is a rule head: a basic atom, a choice atom `{p(t…)}`, or falsity
// (constraint rules have no head atom at all).
type Head struct {
	Kind HeadKind
	Atom Atom // HeadBasic, HeadChoice
}

func BasicHead(a Atom) Head  { return Head{Kind: HeadBasic, Atom: a} }
func ChoiceHead(a Atom) Head { return Head{Kind: HeadChoice, Atom: a} }
func FalsityHead() Head      { return Head{Kind: HeadFalsity} }

// Rule is `head :- body.` (the body may be empty, a fact).
type Rule struct {
	Head Head
	Body []BodyFormula
}

// Program is an ordered sequence of rules.
type Program struct {
	Rules []Rule
}

// Predicates returns the non-duplicating set of predicates occurring
// anywhere in p (head or body).
func (p Program) Predicates() map[Predicate]bool {
	out := map[Predicate]bool{}
	for _, r := range p.Rules {
		if r.Head.Kind != HeadFalsity {
			out[r.Head.Atom.predicate()] = true
		}
		for _, bf := range r.Body {
			if bf.Kind == BodyLiteral {
				out[bf.Atom.predicate()] = true
			}
		}
	}
	return out
}

// HeadPredicate returns the predicate of r's head and whether r has one
// (false for a falsity/constraint head).
func (r Rule) HeadPredicate() (Predicate, bool) {
	if r.Head.Kind == HeadFalsity {
		return Predicate{}, false
	}
	return r.Head.Atom.predicate(), true
}

// PositiveBodyPredicates returns the predicates occurring unsigned
// (SignNone) in r's body — the edges of the positive dependency graph
// (spec §4.4).
func (r Rule) PositiveBodyPredicates() map[Predicate]bool {
	out := map[Predicate]bool{}
	for _, bf := range r.Body {
		if bf.Kind == BodyLiteral && bf.Sign == SignNone {
			out[bf.Atom.predicate()] = true
		}
	}
	return out
}

// BodyPredicates returns every predicate occurring in r's body regardless
// of sign — used by the private-recursion check (spec §4.4).
func (r Rule) BodyPredicates() map[Predicate]bool {
	out := map[Predicate]bool{}
	for _, bf := range r.Body {
		if bf.Kind == BodyLiteral {
			out[bf.Atom.predicate()] = true
		}
	}
	return out
}

// Variables returns the set of variable names occurring in a.
func (a Atom) Variables() map[string]bool {
	out := map[string]bool{}
	for _, t := range a.Terms {
		for v := range t.Variables() {
			out[v] = true
		}
	}
	return out
}

// Variables returns the set of variable names occurring anywhere in bf.
func (bf BodyFormula) Variables() map[string]bool {
	out := map[string]bool{}
	switch bf.Kind {
	case BodyLiteral:
		return bf.Atom.Variables()
	case BodyComparison:
		for v := range bf.Left.Variables() {
			out[v] = true
		}
		for v := range bf.Right.Variables() {
			out[v] = true
		}
	}
	return out
}

// Variables returns the set of variable names occurring anywhere in r
// (head and body).
func (r Rule) Variables() map[string]bool {
	out := map[string]bool{}
	if r.Head.Kind != HeadFalsity {
		for v := range r.Head.Atom.Variables() {
			out[v] = true
		}
	}
	for _, bf := range r.Body {
		for v := range bf.Variables() {
			out[v] = true
		}
	}
	return out
}

// Substitute replaces every occurrence of variable name with repl
// throughout r.
func (r Rule) Substitute(name string, repl Term) Rule {
	head := r.Head
	if head.Kind != HeadFalsity {
		head.Atom = substituteAtom(head.Atom, name, repl)
	}
	body := make([]BodyFormula, len(r.Body))
	for i, bf := range r.Body {
		body[i] = substituteBodyFormula(bf, name, repl)
	}
	return Rule{Head: head, Body: body}
}

func substituteAtom(a Atom, name string, repl Term) Atom {
	terms := make([]Term, len(a.Terms))
	for i, t := range a.Terms {
		terms[i] = t.Substitute(name, repl)
	}
	return Atom{Symbol: a.Symbol, Terms: terms}
}

func substituteBodyFormula(bf BodyFormula, name string, repl Term) BodyFormula {
	switch bf.Kind {
	case BodyLiteral:
		return BodyFormula{Kind: BodyLiteral, Sign: bf.Sign, Atom: substituteAtom(bf.Atom, name, repl)}
	case BodyComparison:
		return BodyFormula{Kind: BodyComparison, Left: bf.Left.Substitute(name, repl), Rel: bf.Rel,
			Right: bf.Right.Substitute(name, repl)}
	}
	return bf
}
