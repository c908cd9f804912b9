package main

import (
	"fmt"
	"path/filepath"
	"strings"
)

// fileKind classifies an input path by its extension (spec §6 "File
// conventions").
type fileKind int

const (
	kindUnknown fileKind = iota
	kindProgram
	kindSpecification
	kindProofOutline
	kindUserGuide
)

// classify maps path's extension to a fileKind: `.help.spec` must be
// checked before the plainer `.spec` suffix since it is the longer match.
func classify(path string) fileKind {
	switch {
	case strings.HasSuffix(path, ".help.spec"):
		return kindProofOutline
	case strings.HasSuffix(path, ".spec"):
		return kindSpecification
	case strings.HasSuffix(path, ".ug"):
		return kindUserGuide
	case strings.HasSuffix(path, ".lp"):
		return kindProgram
	default:
		return kindUnknown
	}
}

// inputs is the classified result of one verify invocation's file list.
type inputs struct {
	SpecificationProgram string // set when the specification is itself a .lp program
	SpecificationFile    string // set when the specification is a .spec file
	ProgramFile          string
	ProofOutlineFile     string
	UserGuideFile        string
}

// classifyFiles sorts files by fileKind, applying spec §6's special case:
// two `.lp` files with no `.spec` means the first is the specification and
// the second is the program.
func classifyFiles(files []string) (inputs, error) {
	var in inputs
	var programs []string

	for _, f := range files {
		switch classify(f) {
		case kindProgram:
			programs = append(programs, f)
		case kindSpecification:
			if in.SpecificationFile != "" {
				return inputs{}, fmt.Errorf("more than one .spec file given: %s and %s", in.SpecificationFile, f)
			}
			in.SpecificationFile = f
		case kindProofOutline:
			if in.ProofOutlineFile != "" {
				return inputs{}, fmt.Errorf("more than one .help.spec file given: %s and %s", in.ProofOutlineFile, f)
			}
			in.ProofOutlineFile = f
		case kindUserGuide:
			if in.UserGuideFile != "" {
				return inputs{}, fmt.Errorf("more than one .ug file given: %s and %s", in.UserGuideFile, f)
			}
			in.UserGuideFile = f
		default:
			return inputs{}, fmt.Errorf("file %s has an unrecognized extension (expected .lp, .spec, .help.spec, or .ug)", filepath.Base(f))
		}
	}

	switch {
	case in.SpecificationFile != "" && len(programs) == 1:
		in.ProgramFile = programs[0]
	case in.SpecificationFile == "" && len(programs) == 2:
		in.SpecificationProgram = programs[0]
		in.ProgramFile = programs[1]
	case in.SpecificationFile == "" && len(programs) == 1:
		in.ProgramFile = programs[0]
	default:
		return inputs{}, fmt.Errorf("expected exactly one program and at most one specification, got %d program(s) and specification=%q", len(programs), in.SpecificationFile)
	}
	return in, nil
}
