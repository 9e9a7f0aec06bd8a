package validation

import (
	"testing"

	"github.com/gcgpws/backend-portal/model"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2004-03-15")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if d.Year() != 2004 || int(d.Month()) != 3 || d.Day() != 15 {
		t.Errorf("parsed wrong date: %v", d)
	}

	for _, bad := range []string{"", "15-03-2004", "2004/03/15", "2004-13-01", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected %q to fail parsing", bad)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("student@example.com") {
		t.Error("expected valid email to pass")
	}
	for _, bad := range []string{"", "no-at-sign", "@missing-local.com"} {
		if ValidateEmail(bad) {
			t.Errorf("expected %q to fail", bad)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  Ayesha  "); got != "Ayesha" {
		t.Errorf("expected trimmed string, got %q", got)
	}
}

func TestValidateStructCourseTag(t *testing.T) {
	type req struct {
		Course string `validate:"required,course"`
	}

	v := NewValidator()
	for _, course := range model.Courses {
		if err := v.ValidateStruct(req{Course: course}); err != nil {
			t.Errorf("expected offered course %q to pass: %v", course, err)
		}
	}
	for _, bad := range []string{"law", "BTECH", ""} {
		if err := v.ValidateStruct(req{Course: bad}); err == nil {
			t.Errorf("expected %q to fail course validation", bad)
		}
	}
}

func TestValidateStructOneof(t *testing.T) {
	type req struct {
		Status string `validate:"required,oneof=pending approved rejected"`
	}

	v := NewValidator()
	if err := v.ValidateStruct(req{Status: "approved"}); err != nil {
		t.Errorf("expected valid status to pass: %v", err)
	}
	if err := v.ValidateStruct(req{Status: "waitlisted"}); err == nil {
		t.Error("expected unknown status to fail")
	}
}
