// Package prover drives an external TPTP-compatible theorem prover: one
// child process per problem, SZS status extraction on its stdout,
// and a bounded-parallelism pool across many problems (spec §4.8, grounded
// in original_source's src/verifying/{proof,prover}/{mod,vampire}.rs).
package prover

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"unicode/utf8"

	"github.com/anthem-go/anthem/internal/theory"
)

// ProverError reports a failure of the prove pipeline itself (spawn,
// stdin write, wait, or UTF-8 decode), as opposed to a Status the prover
// itself reported (spec §7 "Prover error").
type ProverError struct {
	Reason string
	Cause  error
}

func (e *ProverError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Cause)
	}
	return e.Reason
}

func (e *ProverError) Unwrap() error { return e.Cause }

// Report is a prover's result for one problem: the problem itself plus its
// raw stdout/stderr, from which a Status can be extracted on demand
// (proof/vampire.rs's VampireReport, generalized across flavors).
type Report struct {
	Problem theory.Problem
	Stdout  string
	Stderr  string
}

// Status extracts the SZS status from the report's stdout.
func (r Report) Status() (Status, error) {
	return ParseStatus(r.Stdout)
}

func (r Report) String() string {
	return fmt.Sprintf("%s: %s", r.Problem.Name, r.Stdout)
}

// Flavor specializes the command line used to invoke a prover binary: spec
// §4.8 fixes the stdin/stdout/stderr contract, but the flags that carry the
// time limit and core count differ per known prover, grounded in
// prover/mod.rs + vampire.rs's per-binary Prover impls.
type Flavor interface {
	// Binary is the executable name passed to exec.LookPath/exec.Command.
	Binary() string
	// Args builds the argument list for one invocation, given the
	// configured time limit (seconds, 0 meaning unset) and core count.
	Args(timeLimit, cores int) []string
}

// Vampire invokes the `vampire` binary in CASC mode, passing the time limit
// via `-t` and the configured core count as a thread count via `--cores`
// (vampire.rs's bare `Command::new("vampire")`, specialized with the flags
// Vampire actually accepts).
type Vampire struct{}

func (Vampire) Binary() string { return "vampire" }

func (Vampire) Args(timeLimit, cores int) []string {
	args := []string{"--mode", "casc"}
	if timeLimit > 0 {
		args = append(args, "-t", strconv.Itoa(timeLimit)+"s")
	}
	if cores > 1 {
		args = append(args, "--cores", strconv.Itoa(cores))
	}
	return args
}

// Generic invokes an arbitrary TPTP-compatible prover binary that accepts a
// `--time-limit SECONDS` flag and nothing else — the fallback flavor for
// provers other than Vampire.
type Generic struct {
	Command string
}

func (g Generic) Binary() string { return g.Command }

func (Generic) Args(timeLimit, _ int) []string {
	if timeLimit > 0 {
		return []string{"--time-limit", strconv.Itoa(timeLimit)}
	}
	return nil
}

// Prover configures and runs one prover flavor against TPTP problems (spec
// §4.8: "a prover value carries a time limit, an instances count, and a
// cores count").
type Prover struct {
	Flavor    Flavor
	TimeLimit int
	Instances int
	Cores     int
}

// instances returns the configured instance count, defaulting to 1
// (sequential) when unset.
func (p Prover) instances() int {
	if p.Instances <= 0 {
		return 1
	}
	return p.Instances
}

// Prove spawns the configured prover as a child process, writes problem's
// serialized TPTP text to its stdin, and captures stdout/stderr once it
// exits (vampire.rs's Prover::prove, generalized over Flavor).
func (p Prover) Prove(problem theory.Problem) (Report, error) {
	tracer().Debugf("spawning %s for problem %s", p.Flavor.Binary(), problem.Name)
	cmd := exec.Command(p.Flavor.Binary(), p.Flavor.Args(p.TimeLimit, p.Cores)...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return Report{}, &ProverError{Reason: "unable to spawn prover as a child process", Cause: err}
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Report{}, &ProverError{Reason: "unable to spawn prover as a child process", Cause: err}
	}

	if _, err := stdin.Write([]byte(problem.Serialize())); err != nil {
		stdin.Close()
		return Report{}, &ProverError{Reason: "unable to write to the prover's stdin", Cause: err}
	}
	if err := stdin.Close(); err != nil {
		return Report{}, &ProverError{Reason: "unable to write to the prover's stdin", Cause: err}
	}

	if err := cmd.Wait(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return Report{}, &ProverError{Reason: "unable to wait for the prover", Cause: err}
		}
		// A non-zero exit status is not itself fatal: the SZS status line
		// is still extracted from whatever the prover wrote to stdout.
	}

	if !utf8.Valid(stdout.Bytes()) || !utf8.Valid(stderr.Bytes()) {
		return Report{}, &ProverError{Reason: "unable to decode the prover's output as UTF-8"}
	}

	return Report{Problem: problem, Stdout: stdout.String(), Stderr: stderr.String()}, nil
}
