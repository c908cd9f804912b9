package analyze

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/anthem-go/anthem/internal/asp"
)

// HasPrivateRecursion reports whether p has private recursion with respect
// to private, the set of predicates not exposed via the user guide (spec
// §4.4): either a choice-head rule's head predicate is private, or the
// sub-graph induced by all body predicates (of either sign), restricted to
// private vertices, contains a cycle.
func HasPrivateRecursion(p asp.Program, private map[asp.Predicate]bool) bool {
	for _, r := range p.Rules {
		if r.Head.Kind == asp.HeadChoice {
			head, ok := r.HeadPredicate()
			if ok && private[head] {
				return true
			}
		}
	}
	return buildPrivateBodyGraph(p, private).hasCycle()
}

// buildPrivateBodyGraph constructs the body-induced subgraph of spec §4.4:
// an edge from a rule's head predicate to every predicate in its body
// regardless of sign, with both endpoints restricted to private predicates.
func buildPrivateBodyGraph(p asp.Program, private map[asp.Predicate]bool) *Graph {
	g := &Graph{
		vertices: treeset.NewWith(predicateComparator),
		adj:      map[asp.Predicate]*treeset.Set{},
	}
	ensure := func(pr asp.Predicate) *treeset.Set {
		g.vertices.Add(pr)
		if _, ok := g.adj[pr]; !ok {
			g.adj[pr] = treeset.NewWith(predicateComparator)
		}
		return g.adj[pr]
	}
	for _, r := range p.Rules {
		head, ok := r.HeadPredicate()
		if !ok || !private[head] {
			continue
		}
		edges := ensure(head)
		for pr := range r.BodyPredicates() {
			if !private[pr] {
				continue
			}
			ensure(pr)
			edges.Add(pr)
		}
	}
	return g
}
