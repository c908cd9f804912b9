package main

import (
	"testing"

	"github.com/anthem-go/anthem/internal/task"
	"github.com/anthem-go/anthem/internal/theory"
)

func TestParseDecompositionRecognizesBothModes(t *testing.T) {
	if got, err := parseDecomposition("independent"); err != nil || got != task.DecompositionIndependent {
		t.Errorf("independent: got %v, %v", got, err)
	}
	if got, err := parseDecomposition("sequential"); err != nil || got != task.DecompositionSequential {
		t.Errorf("sequential: got %v, %v", got, err)
	}
	if _, err := parseDecomposition("bogus"); err == nil {
		t.Error("expected an error for an unknown decomposition mode")
	}
}

func TestParseDirectionRecognizesAllThree(t *testing.T) {
	cases := map[string]theory.Direction{
		"universal": theory.DirectionUniversal,
		"forward":   theory.DirectionForward,
		"backward":  theory.DirectionBackward,
	}
	for s, want := range cases {
		got, err := parseDirection(s)
		if err != nil || got != want {
			t.Errorf("%s: got %v, %v", s, got, err)
		}
	}
	if _, err := parseDirection("sideways"); err == nil {
		t.Error("expected an error for an unknown direction")
	}
}

func TestFilterRoleKeepsOnlyMatchingFormulas(t *testing.T) {
	afs := []theory.AnnotatedFormula{
		{Role: theory.RoleSpec, Name: "s"},
		{Role: theory.RoleLemma, Name: "l"},
		{Role: theory.RoleSpec, Name: "s2"},
	}
	got := filterRole(afs, theory.RoleSpec)
	if len(got) != 2 || got[0].Name != "s" || got[1].Name != "s2" {
		t.Errorf("got %+v", got)
	}
}
