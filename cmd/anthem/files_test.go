package main

import "testing"

func TestClassifyRecognizesEveryExtension(t *testing.T) {
	cases := map[string]fileKind{
		"program.lp":        kindProgram,
		"spec.spec":         kindSpecification,
		"outline.help.spec": kindProofOutline,
		"guide.ug":          kindUserGuide,
		"notes.txt":         kindUnknown,
	}
	for path, want := range cases {
		if got := classify(path); got != want {
			t.Errorf("classify(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestClassifyFilesSpecAndProgram(t *testing.T) {
	in, err := classifyFiles([]string{"a.spec", "b.lp"})
	if err != nil {
		t.Fatal(err)
	}
	if in.SpecificationFile != "a.spec" || in.ProgramFile != "b.lp" {
		t.Errorf("got %+v", in)
	}
}

func TestClassifyFilesTwoProgramsNoSpecSplitsFirstAsSpecification(t *testing.T) {
	in, err := classifyFiles([]string{"first.lp", "second.lp"})
	if err != nil {
		t.Fatal(err)
	}
	if in.SpecificationProgram != "first.lp" || in.ProgramFile != "second.lp" {
		t.Errorf("got %+v", in)
	}
}

func TestClassifyFilesRejectsDuplicateSpec(t *testing.T) {
	_, err := classifyFiles([]string{"a.spec", "b.spec", "c.lp"})
	if err == nil {
		t.Fatal("expected an error for two .spec files")
	}
}

func TestClassifyFilesRejectsUnrecognizedExtension(t *testing.T) {
	_, err := classifyFiles([]string{"a.lp", "notes.txt"})
	if err == nil {
		t.Fatal("expected an error for an unrecognized extension")
	}
}

func TestClassifyFilesFullShape(t *testing.T) {
	in, err := classifyFiles([]string{"a.spec", "b.lp", "c.help.spec", "d.ug"})
	if err != nil {
		t.Fatal(err)
	}
	if in.SpecificationFile != "a.spec" || in.ProgramFile != "b.lp" ||
		in.ProofOutlineFile != "c.help.spec" || in.UserGuideFile != "d.ug" {
		t.Errorf("got %+v", in)
	}
}
