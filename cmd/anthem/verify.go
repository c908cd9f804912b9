package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/anthem-go/anthem/internal/asp"
	"github.com/anthem-go/anthem/internal/prover"
	"github.com/anthem-go/anthem/internal/task"
	"github.com/anthem-go/anthem/internal/theory"
)

var (
	verifyEquivalence   string
	verifyDecomposition string
	verifyDirection     string
	bypassTightness     bool
	noSimplify          bool
	noEqBreak           bool
	noProofSearch       bool
	timeLimit           int
	instances           int
	cores               int
	saveProblemsDir     string
)

var verifyCmd = &cobra.Command{
	Use:   "verify --equivalence {strong|external} FILES…",
	Short: "verify an equivalence claim between artifacts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decomposition, err := parseDecomposition(verifyDecomposition)
		if err != nil {
			return err
		}
		direction, err := parseDirection(verifyDirection)
		if err != nil {
			return err
		}

		var problems []theory.Problem
		var warnings []string
		switch verifyEquivalence {
		case "strong":
			problems, err = verifyStrong(args, decomposition, direction)
		case "external":
			problems, warnings, err = verifyExternal(args, decomposition, direction)
		default:
			return fatalf("unknown --equivalence %q (expected \"strong\" or \"external\")", verifyEquivalence)
		}
		if err != nil {
			return err
		}
		for _, w := range warnings {
			pterm.Warning.Println(w)
		}

		if saveProblemsDir != "" {
			if err := saveProblems(saveProblemsDir, problems, !noSimplify); err != nil {
				return err
			}
		}
		if noProofSearch {
			pterm.Info.Printf("generated %d problem(s); proof search skipped\n", len(problems))
			return nil
		}
		return runProofSearch(problems)
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyEquivalence, "equivalence", "", "kind of equivalence to verify (strong, external)")
	verifyCmd.Flags().StringVar(&verifyDecomposition, "decomposition", "independent", "conjecture decomposition mode (independent, sequential)")
	verifyCmd.Flags().StringVar(&verifyDirection, "direction", "universal", "proof direction (universal, forward, backward)")
	verifyCmd.Flags().BoolVar(&bypassTightness, "bypass-tightness", false, "skip the tightness precondition")
	verifyCmd.Flags().BoolVar(&noSimplify, "no-simplify", false, "skip formula simplification")
	verifyCmd.Flags().BoolVar(&noEqBreak, "no-eq-break", false, "skip breaking bi-implications into separate forward and backward implications")
	verifyCmd.Flags().BoolVar(&noProofSearch, "no-proof-search", false, "generate problems without invoking the prover")
	verifyCmd.Flags().IntVar(&timeLimit, "time-limit", 0, "per-problem prover time limit in seconds")
	verifyCmd.Flags().IntVarP(&instances, "instances", "n", 1, "number of problems to prove in parallel")
	verifyCmd.Flags().IntVarP(&cores, "cores", "m", 1, "cores made available to each prover instance")
	verifyCmd.Flags().StringVar(&saveProblemsDir, "save-problems", "", "directory to write generated TPTP problems to")
	verifyCmd.MarkFlagRequired("equivalence")
}

func parseDecomposition(s string) (task.Decomposition, error) {
	switch s {
	case "independent":
		return task.DecompositionIndependent, nil
	case "sequential":
		return task.DecompositionSequential, nil
	default:
		return 0, fatalf("unknown --decomposition %q (expected \"independent\" or \"sequential\")", s)
	}
}

func parseDirection(s string) (theory.Direction, error) {
	switch s {
	case "universal":
		return theory.DirectionUniversal, nil
	case "forward":
		return theory.DirectionForward, nil
	case "backward":
		return theory.DirectionBackward, nil
	default:
		return 0, fatalf("unknown --direction %q (expected \"universal\", \"forward\", or \"backward\")", s)
	}
}

func verifyStrong(files []string, decomposition task.Decomposition, direction theory.Direction) ([]theory.Problem, error) {
	in, err := classifyFiles(files)
	if err != nil {
		return nil, err
	}
	if in.ProgramFile == "" || in.SpecificationProgram == "" {
		return nil, fatalf("strong equivalence requires exactly two .lp files")
	}
	left, err := asp.FromFile(in.SpecificationProgram)
	if err != nil {
		return nil, err
	}
	right, err := asp.FromFile(in.ProgramFile)
	if err != nil {
		return nil, err
	}
	t := task.StrongEquivalenceTask{
		Left:              left,
		Right:             right,
		Decomposition:     decomposition,
		Direction:         direction,
		Simplify:          !noSimplify,
		BreakEquivalences: !noEqBreak,
	}
	return t.Decompose(), nil
}

func verifyExternal(files []string, decomposition task.Decomposition, direction theory.Direction) ([]theory.Problem, []string, error) {
	in, err := classifyFiles(files)
	if err != nil {
		return nil, nil, err
	}
	if in.ProgramFile == "" {
		return nil, nil, fatalf("external equivalence requires a program")
	}
	if in.UserGuideFile == "" {
		return nil, nil, fatalf("external equivalence requires a .ug user guide")
	}

	program, err := asp.FromFile(in.ProgramFile)
	if err != nil {
		return nil, nil, err
	}
	userGuide, err := theory.UserGuideFromFile(in.UserGuideFile)
	if err != nil {
		return nil, nil, err
	}

	var outline theory.Specification
	if in.ProofOutlineFile != "" {
		outline, err = theory.SpecificationFromFile(in.ProofOutlineFile)
		if err != nil {
			return nil, nil, err
		}
	}

	t := task.ExternalEquivalenceTask{
		Program:           program,
		UserGuide:         userGuide,
		ProofOutline:      outline,
		Decomposition:     decomposition,
		Direction:         direction,
		Simplify:          !noSimplify,
		BreakEquivalences: !noEqBreak,
		BypassTightness:   bypassTightness,
	}

	switch {
	case in.SpecificationProgram != "":
		specProgram, err := asp.FromFile(in.SpecificationProgram)
		if err != nil {
			return nil, nil, err
		}
		t.SpecificationProgram = &specProgram
	case in.SpecificationFile != "":
		spec, err := theory.SpecificationFromFile(in.SpecificationFile)
		if err != nil {
			return nil, nil, err
		}
		spec.Formulas = filterRole(spec.Formulas, theory.RoleSpec)
		t.SpecificationFormulas = &spec
	default:
		return nil, nil, fatalf("external equivalence requires a specification (.spec file or second .lp file)")
	}

	result, err := t.Decompose()
	if err != nil {
		return nil, nil, err
	}
	return result.Data, result.Warnings, nil
}

func filterRole(afs []theory.AnnotatedFormula, role theory.Role) []theory.AnnotatedFormula {
	var out []theory.AnnotatedFormula
	for _, af := range afs {
		if af.Role == role {
			out = append(out, af)
		}
	}
	return out
}

func saveProblems(dir string, problems []theory.Problem, simplified bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fatalf("creating %s: %w", dir, err)
	}
	variant := "2"
	if simplified {
		variant = "1"
	}
	for _, p := range problems {
		path := filepath.Join(dir, fmt.Sprintf("%s=%s.p", p.Name, variant))
		if err := os.WriteFile(path, []byte(p.Serialize()), 0o644); err != nil {
			return fatalf("writing %s: %w", path, err)
		}
	}
	return nil
}

func runProofSearch(problems []theory.Problem) error {
	driver := prover.Prover{
		Flavor:    prover.Vampire{},
		TimeLimit: timeLimit,
		Instances: instances,
		Cores:     cores,
	}

	allSucceeded := true
	for result := range driver.ProveAll(problems) {
		if result.Err != nil {
			pterm.Error.Printf("%s: %v\n", result.Report.Problem.Name, result.Err)
			allSucceeded = false
			continue
		}
		status, err := result.Report.Status()
		if err != nil {
			pterm.Error.Printf("%s: %v\n", result.Report.Problem.Name, err)
			allSucceeded = false
			continue
		}
		if status.Success() {
			pterm.Success.Printf("%s: %s\n", result.Report.Problem.Name, status)
		} else {
			pterm.Error.Printf("%s: %s\n", result.Report.Problem.Name, status)
			allSucceeded = false
		}
	}

	if !allSucceeded {
		return fatalf("verification failed")
	}
	pterm.Success.Printf("all %d problem(s) proved\n", len(problems))
	return nil
}
