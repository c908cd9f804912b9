package translate

import (
	"fmt"

	"github.com/anthem-go/anthem/internal/asp"
)

// Tighten rewrites p so every rule's predicates carry an extra trailing
// index argument that increases by one from body to head, then adds one
// "forget the index" rule per predicate that projects it back away (spec
// §4.5 "tightening"): the resulting program is tight (internal/analyze.Tight
// holds of it) while remaining externally equivalent to p, since the added
// index argument is existentially forgettable. A constraint (Head::Falsity)
// is left untouched, since it has no head atom whose index could advance.
func Tighten(p asp.Program) asp.Program {
	indexVar := tighteningIndexVariable(p)
	rules := make([]asp.Rule, 0, len(p.Rules)+len(p.Predicates()))
	for _, r := range p.Rules {
		rules = append(rules, tightenRule(r, indexVar))
	}
	for pr := range p.Predicates() {
		rules = append(rules, forgetSuccessorsRule(pr))
	}
	return asp.Program{Rules: rules}
}

// tighteningIndexVariable picks a variable name for the tightening index,
// fresh with respect to every variable occurring anywhere in p.
func tighteningIndexVariable(p asp.Program) string {
	taken := map[string]bool{}
	for _, r := range p.Rules {
		for v := range r.Variables() {
			taken[v] = true
		}
	}
	name := "N"
	for n := 1; taken[name]; n++ {
		name = fmt.Sprintf("N%d", n)
	}
	return name
}

// tightenRule appends variable+1 to a basic/choice head's argument list and
// threads variable through the rule's positive body literals via
// tightenBody; a falsity-headed rule (a constraint) is returned unchanged.
func tightenRule(r asp.Rule, variable string) asp.Rule {
	if r.Head.Kind == asp.HeadFalsity {
		return r
	}
	successor := asp.Bin(asp.OpAdd, asp.Var(variable), asp.Int(1))
	head := asp.Head{
		Kind: r.Head.Kind,
		Atom: asp.Atom{
			Symbol: r.Head.Atom.Symbol,
			Terms:  append(append([]asp.Term{}, r.Head.Atom.Terms...), successor),
		},
	}
	return asp.Rule{Head: head, Body: tightenBody(r.Body, variable)}
}

// tightenBody appends variable as a trailing argument to every positive
// (unsigned) body literal; comparisons and negated/double-negated literals
// are left untouched.
func tightenBody(body []asp.BodyFormula, variable string) []asp.BodyFormula {
	out := make([]asp.BodyFormula, len(body))
	for i, bf := range body {
		if bf.Kind == asp.BodyLiteral && bf.Sign == asp.SignNone {
			out[i] = asp.Literal(asp.SignNone, asp.Atom{
				Symbol: bf.Atom.Symbol,
				Terms:  append(append([]asp.Term{}, bf.Atom.Terms...), asp.Var(variable)),
			})
			continue
		}
		out[i] = bf
	}
	return out
}

// forgetSuccessorsRule builds p(X1,...,Xk) :- p(X1,...,Xk,N). for a
// predicate p/k (k = pr.Arity, pr's arity as it appeared before tightening),
// letting a proof project the tightened predicate (arity k+1) back down to
// its original arity by existentially forgetting the index.
func forgetSuccessorsRule(pr asp.Predicate) asp.Rule {
	args := make([]asp.Term, pr.Arity)
	for i := range args {
		args[i] = asp.Var(fmt.Sprintf("X%d", i+1))
	}
	head := asp.BasicHead(asp.Atom{Symbol: pr.Symbol, Terms: args})
	bodyArgs := append(append([]asp.Term{}, args...), asp.Var("N"))
	body := []asp.BodyFormula{asp.Literal(asp.SignNone, asp.Atom{Symbol: pr.Symbol, Terms: bodyArgs})}
	return asp.Rule{Head: head, Body: body}
}
