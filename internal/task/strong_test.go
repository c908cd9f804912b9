package task

import (
	"strings"
	"testing"

	"github.com/anthem-go/anthem/internal/asp"
	"github.com/anthem-go/anthem/internal/theory"
)

func mustParseProgram(t *testing.T, src string) asp.Program {
	t.Helper()
	p, err := asp.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return p
}

func TestStrongEquivalenceUniversalDirectionProducesBothProblems(t *testing.T) {
	task := StrongEquivalenceTask{
		Left:          mustParseProgram(t, "p :- q.\n"),
		Right:         mustParseProgram(t, "p :- q.\n"),
		Decomposition: DecompositionIndependent,
		Direction:     theory.DirectionUniversal,
	}
	problems := task.Decompose()
	if len(problems) != 2 {
		t.Fatalf("expected a forward and a backward problem, got %d", len(problems))
	}
	if !strings.HasPrefix(problems[0].Name, "forward") {
		t.Errorf("expected the first problem to be the forward direction, got %q", problems[0].Name)
	}
	if !strings.HasPrefix(problems[1].Name, "backward") {
		t.Errorf("expected the second problem to be the backward direction, got %q", problems[1].Name)
	}
}

func TestStrongEquivalenceForwardOnlyWhenDirectionForward(t *testing.T) {
	task := StrongEquivalenceTask{
		Left:          mustParseProgram(t, "p.\n"),
		Right:         mustParseProgram(t, "p.\n"),
		Decomposition: DecompositionIndependent,
		Direction:     theory.DirectionForward,
	}
	problems := task.Decompose()
	for _, p := range problems {
		if strings.HasPrefix(p.Name, "backward") {
			t.Fatalf("did not expect a backward problem, got %q", p.Name)
		}
	}
}

func TestStrongEquivalenceEveryPredicateGetsATransitionAxiom(t *testing.T) {
	task := StrongEquivalenceTask{
		Left:          mustParseProgram(t, "p :- q.\n"),
		Right:         mustParseProgram(t, "p :- q.\n"),
		Decomposition: DecompositionIndependent,
		Direction:     theory.DirectionForward,
	}
	problems := task.Decompose()
	if len(problems) != 1 {
		t.Fatalf("expected one forward problem, got %d", len(problems))
	}
	var transitionCount int
	for _, f := range problems[0].Axioms() {
		if strings.HasPrefix(f.Name, "transition_axiom") {
			transitionCount++
		}
	}
	if transitionCount != 2 {
		t.Errorf("expected 2 transition axioms (p and q), got %d", transitionCount)
	}
}

func TestStrongEquivalenceSimplifyAndBreakEquivalencesDoNotPanic(t *testing.T) {
	task := StrongEquivalenceTask{
		Left:              mustParseProgram(t, "p :- q.\n"),
		Right:             mustParseProgram(t, "p :- q.\n"),
		Decomposition:     DecompositionSequential,
		Direction:         theory.DirectionUniversal,
		Simplify:          true,
		BreakEquivalences: true,
	}
	problems := task.Decompose()
	if len(problems) == 0 {
		t.Fatal("expected at least one problem")
	}
}
