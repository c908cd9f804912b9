package prover

import (
	"testing"

	"github.com/anthem-go/anthem/internal/theory"
)

func TestProveAllSequentialPreservesSubmissionOrder(t *testing.T) {
	p := Prover{
		Flavor:    scriptFlavor{script: "cat >/dev/null; echo '% SZS status Theorem for problem'"},
		Instances: 1,
	}
	problems := []theory.Problem{testProblem("a"), testProblem("b"), testProblem("c")}

	var names []string
	for r := range p.ProveAll(problems) {
		if r.Err != nil {
			t.Fatalf("ProveAll: %v", r.Err)
		}
		names = append(names, r.Report.Problem.Name)
	}
	want := []string{"a", "b", "c"}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("got order %v, want %v", names, want)
		}
	}
}

func TestProveAllParallelReturnsAllResults(t *testing.T) {
	p := Prover{
		Flavor:    scriptFlavor{script: "cat >/dev/null; echo '% SZS status Theorem for problem'"},
		Instances: 4,
	}
	problems := []theory.Problem{testProblem("p0"), testProblem("p1"), testProblem("p2"), testProblem("p3")}

	seen := map[string]bool{}
	for r := range p.ProveAll(problems) {
		if r.Err != nil {
			t.Fatalf("ProveAll: %v", r.Err)
		}
		seen[r.Report.Problem.Name] = true
	}
	for _, prob := range problems {
		if !seen[prob.Name] {
			t.Errorf("missing result for %q", prob.Name)
		}
	}
}
