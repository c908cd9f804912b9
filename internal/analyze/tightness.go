// Package analyze implements the two ASP program analyzers of spec §4.4:
// tightness (a positive-dependency-graph cycle check) and private recursion.
// The dependency graph is kept as a gods treeset-backed adjacency structure
// and walked with an arraylist-backed stack, the same gods containers used
// for state-graph bookkeeping elsewhere in this module.
package analyze

import (
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/anthem-go/anthem/internal/asp"
)

func predicateComparator(a, b interface{}) int {
	pa, pb := a.(asp.Predicate), b.(asp.Predicate)
	if pa.Symbol != pb.Symbol {
		return utils.StringComparator(pa.Symbol, pb.Symbol)
	}
	return utils.IntComparator(pa.Arity, pb.Arity)
}

// Graph is the positive dependency graph of a program: a vertex per
// predicate, and an edge from a rule's head predicate to every predicate
// occurring positively (unsigned) in that rule's body (spec §4.4).
type Graph struct {
	vertices *treeset.Set
	adj      map[asp.Predicate]*treeset.Set
}

// BuildPositiveDependencyGraph constructs the positive dependency graph of
// p.
func BuildPositiveDependencyGraph(p asp.Program) *Graph {
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
	for pr := range p.Predicates() {
		ensure(pr)
	}
	for _, r := range p.Rules {
		head, ok := r.HeadPredicate()
		if !ok {
			continue
		}
		edges := ensure(head)
		for pr := range r.PositiveBodyPredicates() {
			ensure(pr)
			edges.Add(pr)
		}
	}
	return g
}

// successors returns g's neighbors of pr in deterministic (sorted) order.
func (g *Graph) successors(pr asp.Predicate) []asp.Predicate {
	set, ok := g.adj[pr]
	if !ok {
		return nil
	}
	items := set.Values()
	out := make([]asp.Predicate, len(items))
	for i, v := range items {
		out[i] = v.(asp.Predicate)
	}
	return out
}

// Vertices returns every predicate in g's vertex set, sorted by symbol
// then arity (exported for the CLI's dependency-graph tree rendering).
func (g *Graph) Vertices() []asp.Predicate {
	return g.sortedVertices()
}

// Successors returns pr's positive-dependency edges, sorted by symbol
// then arity (exported for the CLI's dependency-graph tree rendering).
func (g *Graph) Successors(pr asp.Predicate) []asp.Predicate {
	return g.successors(pr)
}

func (g *Graph) sortedVertices() []asp.Predicate {
	items := g.vertices.Values()
	out := make([]asp.Predicate, len(items))
	for i, v := range items {
		out[i] = v.(asp.Predicate)
	}
	sort.Slice(out, func(i, j int) bool { return predicateComparator(out[i], out[j]) < 0 })
	return out
}

// hasCycle runs an iterative DFS with an explicit arraylist-backed stack
// to test g for a cycle.
func (g *Graph) hasCycle() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[asp.Predicate]int{}
	for _, v := range g.sortedVertices() {
		color[v] = white
	}
	type frame struct {
		vertex asp.Predicate
		next   int
	}
	for _, start := range g.sortedVertices() {
		if color[start] != white {
			continue
		}
		stack := arraylist.New()
		stack.Add(&frame{vertex: start})
		color[start] = gray
		for !stack.Empty() {
			top, _ := stack.Get(stack.Size() - 1)
			fr := top.(*frame)
			succ := g.successors(fr.vertex)
			if fr.next >= len(succ) {
				color[fr.vertex] = black
				stack.Remove(stack.Size() - 1)
				continue
			}
			next := succ[fr.next]
			fr.next++
			switch color[next] {
			case white:
				color[next] = gray
				stack.Add(&frame{vertex: next})
			case gray:
				return true // back edge: a cycle
			}
		}
	}
	return false
}

// Tight reports whether p's positive dependency graph is acyclic (spec
// §4.4: "the program is tight iff the graph is acyclic").
func Tight(p asp.Program) bool {
	return !BuildPositiveDependencyGraph(p).hasCycle()
}
