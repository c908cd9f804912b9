package prover

import "testing"

func TestParseStatusRecognizesSZSLine(t *testing.T) {
	output := "% SZS status Theorem for problem_0\nmore noise\n"
	got, err := ParseStatus(output)
	if err != nil {
		t.Fatalf("ParseStatus: %v", err)
	}
	if got != Theorem {
		t.Errorf("got %v, want Theorem", got)
	}
	if !got.Success() {
		t.Errorf("expected Theorem to be a success status")
	}
}

func TestParseStatusFailureIsNotSuccess(t *testing.T) {
	output := "% SZS status Timeout for problem_1\n"
	got, err := ParseStatus(output)
	if err != nil {
		t.Fatalf("ParseStatus: %v", err)
	}
	if got != TimeOut {
		t.Errorf("got %v, want TimeOut", got)
	}
	if got.Success() {
		t.Errorf("did not expect Timeout to be a success status")
	}
}

func TestParseStatusMissingLine(t *testing.T) {
	if _, err := ParseStatus("nothing of interest here\n"); err == nil {
		t.Fatal("expected an error when no SZS status line is present")
	}
}

func TestParseStatusUnrecognizedWord(t *testing.T) {
	if _, err := ParseStatus("% SZS status Bogus for problem_0\n"); err == nil {
		t.Fatal("expected an error for an unrecognized status word")
	}
}
