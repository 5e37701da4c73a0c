package model

import "testing"

func TestSourceFingerprint(t *testing.T) {
	if got := SourceFingerprint("remotive", "101"); got != "remotive:101" {
		t.Errorf("SourceFingerprint = %q", got)
	}
}

func TestContentFingerprint_NormalizesCaseAndWhitespace(t *testing.T) {
	a := ContentFingerprint("Junior Developer", "Acme")
	b := ContentFingerprint("  junior developer ", "ACME  ")
	if a != b {
		t.Errorf("normalized inputs should collide: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(a))
	}
}

func TestContentFingerprint_DistinctInputs(t *testing.T) {
	a := ContentFingerprint("Junior Developer", "Acme")
	b := ContentFingerprint("Junior Developer", "Beta")
	c := ContentFingerprint("Senior Developer", "Acme")
	if a == b || a == c {
		t.Error("distinct title/company pairs should not collide")
	}
}
