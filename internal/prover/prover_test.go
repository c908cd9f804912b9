package prover

import (
	"testing"

	"github.com/anthem-go/anthem/internal/theory"
)

// scriptFlavor runs an inline shell script standing in for a real prover
// binary, so Prove's stdin/stdout/stderr plumbing can be exercised without
// any TPTP-compatible prover installed.
type scriptFlavor struct {
	script string
}

func (s scriptFlavor) Binary() string { return "sh" }

func (s scriptFlavor) Args(int, int) []string { return []string{"-c", s.script} }

func testProblem(name string) theory.Problem {
	return theory.NewProblem(name, nil)
}

func TestProveExtractsStatusFromStdout(t *testing.T) {
	p := Prover{Flavor: scriptFlavor{script: "cat >/dev/null; echo '% SZS status Theorem for problem_0'"}}
	report, err := p.Prove(testProblem("problem_0"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	status, err := report.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status != Theorem {
		t.Errorf("got %v, want Theorem", status)
	}
}

func TestProveCapturesStdinContent(t *testing.T) {
	p := Prover{Flavor: scriptFlavor{script: "cat; echo '% SZS status GaveUp for echoed'"}}
	report, err := p.Prove(testProblem("echoed"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if len(report.Stdout) == 0 {
		t.Fatal("expected the problem's serialized TPTP text to be echoed back through stdout")
	}
}

func TestProveSurvivesNonZeroExit(t *testing.T) {
	p := Prover{Flavor: scriptFlavor{script: "cat >/dev/null; echo '% SZS status Error for problem_0'; exit 1"}}
	report, err := p.Prove(testProblem("problem_0"))
	if err != nil {
		t.Fatalf("did not expect a ProverError on a non-zero exit that still reports a status: %v", err)
	}
	status, err := report.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status != Error {
		t.Errorf("got %v, want Error", status)
	}
}

func TestVampireArgsIncludeTimeLimitAndCores(t *testing.T) {
	args := Vampire{}.Args(10, 4)
	want := []string{"--mode", "casc", "-t", "10s", "--cores", "4"}
	if len(args) != len(want) {
		t.Fatalf("got %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("got %v, want %v", args, want)
		}
	}
}

func TestGenericArgsOmitTimeLimitWhenUnset(t *testing.T) {
	if args := (Generic{Command: "eprover"}).Args(0, 1); args != nil {
		t.Errorf("expected no args when time limit is unset, got %v", args)
	}
}
