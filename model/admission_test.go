package model

import "testing"

func TestAdmissionStatusIsValid(t *testing.T) {
	valid := []AdmissionStatus{
		AdmissionStatusPending,
		AdmissionStatusApproved,
		AdmissionStatusRejected,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be a valid status", s)
		}
	}

	invalid := []AdmissionStatus{"", "waitlisted", "Pending", "APPROVED"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestIsValidCourse(t *testing.T) {
	for _, c := range Courses {
		if !IsValidCourse(c) {
			t.Errorf("expected catalog course %q to validate", c)
		}
	}

	for _, c := range []string{"", "BTech", "astrology"} {
		if IsValidCourse(c) {
			t.Errorf("expected %q to be rejected", c)
		}
	}
}

func TestFullName(t *testing.T) {
	a := Admission{FirstName: "Ayesha", LastName: "Khan"}
	if got := a.FullName(); got != "Ayesha Khan" {
		t.Errorf("expected full name %q, got %q", "Ayesha Khan", got)
	}
}
