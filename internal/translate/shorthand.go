package translate

import (
	"fmt"

	"github.com/anthem-go/anthem/internal/asp"
	"github.com/anthem-go/anthem/internal/fol"
)

// ErrUnsupportedInShorthand reports an asp.Term shape the shorthand
// translation cannot handle: anything beyond a precomputed symbol or a
// variable, since shorthand skips val's existential-valuation machinery
// entirely and requires terms that translate to a FOL term directly.
type ErrUnsupportedInShorthand struct {
	Term asp.Term
}

func (e *ErrUnsupportedInShorthand) Error() string {
	return fmt.Sprintf("term %s is not supported by shorthand translation", e.Term)
}

// shorthandTerm translates an asp.Term directly to a fol.Term, without
// introducing any fresh variable: only precomputed terms and variables are
// supported (original_source/src/translating/shorthand.rs translate_term).
func shorthandTerm(t asp.Term) (fol.Term, error) {
	switch t.Kind {
	case asp.TermInfimum:
		return fol.Inf(), nil
	case asp.TermSupremum:
		return fol.Sup(), nil
	case asp.TermInteger:
		return fol.Num(t.Integer), nil
	case asp.TermSymbol:
		return fol.Sym(t.Symbol), nil
	case asp.TermVariable:
		return fol.Var(t.Name, fol.SortGeneral), nil
	default:
		return fol.Term{}, &ErrUnsupportedInShorthand{Term: t}
	}
}

// shorthandAtom translates an atom directly, term by term, with no
// existential quantification (translate_atom).
func shorthandAtom(a asp.Atom) (fol.Formula, error) {
	terms := make([]fol.Term, len(a.Terms))
	for i, t := range a.Terms {
		ft, err := shorthandTerm(t)
		if err != nil {
			return fol.Formula{}, err
		}
		terms[i] = ft
	}
	return fol.Atom(a.Symbol, terms...), nil
}

// shorthandLiteral translates a signed literal, wrapping shorthandAtom in
// zero, one, or two negations per its sign.
func shorthandLiteral(sign asp.Sign, a asp.Atom) (fol.Formula, error) {
	f, err := shorthandAtom(a)
	if err != nil {
		return fol.Formula{}, err
	}
	switch sign {
	case asp.SignNegation:
		return fol.Not(f), nil
	case asp.SignDoubleNegation:
		return fol.Not(fol.Not(f)), nil
	default:
		return f, nil
	}
}

// shorthandComparison translates a body comparison directly (translate_comparison).
func shorthandComparison(left asp.Term, rel asp.Relation, right asp.Term) (fol.Formula, error) {
	l, err := shorthandTerm(left)
	if err != nil {
		return fol.Formula{}, err
	}
	r, err := shorthandTerm(right)
	if err != nil {
		return fol.Formula{}, err
	}
	return fol.Cmp(l, fol.Guard{Relation: folRelation(rel), Term: r}), nil
}

// shorthandBody conjoins the direct translations of every body formula
// (body_translate); an empty body translates to Truth so shorthandRule can
// still form B -> H for a fact.
func shorthandBody(body []asp.BodyFormula) (fol.Formula, error) {
	conjuncts := make([]fol.Formula, 0, len(body))
	for _, bf := range body {
		var f fol.Formula
		var err error
		switch bf.Kind {
		case asp.BodyLiteral:
			f, err = shorthandLiteral(bf.Sign, bf.Atom)
		case asp.BodyComparison:
			f, err = shorthandComparison(bf.Left, bf.Rel, bf.Right)
		}
		if err != nil {
			return fol.Formula{}, err
		}
		conjuncts = append(conjuncts, f)
	}
	if len(conjuncts) == 0 {
		return fol.Truth(), nil
	}
	return fol.Conjoin(conjuncts), nil
}

// shorthandChoiceBody translates a choice rule's body as body & not not head
// (choice_body_translate).
func shorthandChoiceBody(body []asp.BodyFormula, head asp.Atom) (fol.Formula, error) {
	b, err := shorthandBody(body)
	if err != nil {
		return fol.Formula{}, err
	}
	h, err := shorthandAtom(head)
	if err != nil {
		return fol.Formula{}, err
	}
	return fol.And(b, fol.Not(fol.Not(h))), nil
}

// ShorthandRule translates a single rule the way shorthand_rule does: a
// plain universally-closed implication body -> head, with no valuation and
// no fresh variables beyond the rule's own. It is an alternate, more
// restrictive translation to TauStarRule — any body or head term beyond a
// symbol/variable (arithmetic, intervals) is rejected rather than expanded.
func ShorthandRule(r asp.Rule) (fol.Formula, error) {
	var head, body fol.Formula
	var err error
	switch r.Head.Kind {
	case asp.HeadBasic:
		head, err = shorthandAtom(r.Head.Atom)
		if err == nil {
			body, err = shorthandBody(r.Body)
		}
	case asp.HeadChoice:
		head, err = shorthandAtom(r.Head.Atom)
		if err == nil {
			body, err = shorthandChoiceBody(r.Body, r.Head.Atom)
		}
	case asp.HeadFalsity:
		head = fol.Falsity()
		body, err = shorthandBody(r.Body)
	}
	if err != nil {
		return fol.Formula{}, err
	}
	return fol.Implies(body, head).UniversalClosure(), nil
}

// Shorthand translates every rule of p via ShorthandRule, simplifying a fact
// rule's `Truth -> H` result down to bare `H` (shorthand, mirroring the
// match in original_source's shorthand() that drops a Truth antecedent).
func Shorthand(p asp.Program) ([]fol.Formula, error) {
	out := make([]fol.Formula, len(p.Rules))
	for i, r := range p.Rules {
		f, err := ShorthandRule(r)
		if err != nil {
			return nil, err
		}
		if f.Kind == fol.FormulaBinary && f.Connective == fol.ConnImplication && f.Sub[0].Kind == fol.FormulaTruth {
			f = f.Sub[1]
		}
		out[i] = f
	}
	return out, nil
}
