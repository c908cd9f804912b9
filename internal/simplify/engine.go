// Package simplify implements the fixed, ordered rewrite pipeline the task
// pipeline applies to translated theories (spec §4.6): an HT-sound
// rule set shared by both logics, a classical-only extension, and the
// optional equivalence-breaking transform the task pipeline applies last.
//
// The engine itself is a small term-rewriting loop in the spirit of
// terex/termr's Rewriter/RewriteRule pair: a Rule pattern-matches a node
// shape and produces a rewritten replacement, Apply drives repeated
// bottom-up passes (fol.Formula.Apply provides the tree walk) until a pass
// changes nothing. Where termr matches against a parsed GCons s-expression,
// a Rule here matches directly against fol.Formula's tagged-union Kind,
// since that is this module's native tree shape.
package simplify

import (
	"github.com/cnf/structhash"

	"github.com/anthem-go/anthem/internal/fol"
)

// Rule is one named local rewrite: Rewrite reports ok=false when the rule's
// pattern does not match f, in which case the engine leaves f untouched and
// tries the next rule.
type Rule struct {
	Name    string
	Rewrite func(f fol.Formula) (fol.Formula, bool)
}

// Engine is an ordered rule list applied bottom-up to a fixed point.
type Engine struct {
	Rules []Rule
}

// Apply rewrites f bottom-up through every rule of e in order, repeating
// whole passes until a pass leaves the formula unchanged (spec §4.6: "a
// fixed, ordered list of local rewrites... repeats until a pass produces no
// change"). Change is detected via a structural hash (structhash.Hash)
// rather than reflect.DeepEqual.
func (e Engine) Apply(f fol.Formula) fol.Formula {
	for {
		next := e.pass(f)
		if hashOf(next) == hashOf(f) {
			return next
		}
		f = next
	}
}

// pass runs every rule of e over every node of f once, bottom-up.
func (e Engine) pass(f fol.Formula) fol.Formula {
	return f.Apply(func(node fol.Formula) fol.Formula {
		for _, r := range e.Rules {
			if rewritten, ok := r.Rewrite(node); ok {
				node = rewritten
			}
		}
		return node
	})
}

// hashOf computes a structural fingerprint of f for fixed-point detection.
func hashOf(f fol.Formula) string {
	h, err := structhash.Hash(f, 1)
	if err != nil {
		panic(err)
	}
	return h
}
