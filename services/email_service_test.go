package services

import (
	"context"
	"strings"
	"testing"
	"time"
)

func sampleEmailData() EmailData {
	return EmailData{
		FirstName:   "Ayesha",
		LastName:    "Khan",
		Course:      "bsc",
		ReferenceNo: "ref-123",
		Reason:      "Incomplete marksheets",
	}
}

func TestUnconfiguredMailerSkipsSending(t *testing.T) {
	svc := NewEmailService(EmailConfig{})

	if svc.IsConfigured() {
		t.Fatal("service without credentials must report unconfigured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if svc.SendAcknowledgment(ctx, "a@example.com", sampleEmailData()) {
		t.Error("unconfigured mailer must report failure, not attempt delivery")
	}
	if svc.SendApproval(ctx, "a@example.com", sampleEmailData()) {
		t.Error("unconfigured mailer must report failure, not attempt delivery")
	}
	if svc.SendRejection(ctx, "a@example.com", sampleEmailData()) {
		t.Error("unconfigured mailer must report failure, not attempt delivery")
	}
}

func TestIsConfigured(t *testing.T) {
	svc := NewEmailService(EmailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "noreply@example.com",
		Password: "secret",
		From:     "College <noreply@example.com>",
	})
	if !svc.IsConfigured() {
		t.Error("service with credentials must report configured")
	}
}

func TestTemplateRendering(t *testing.T) {
	data := sampleEmailData()

	t.Run("acknowledgment", func(t *testing.T) {
		var out strings.Builder
		if err := acknowledgmentTemplate.Execute(&out, data); err != nil {
			t.Fatalf("template failed to render: %v", err)
		}
		body := out.String()
		for _, want := range []string{"Ayesha", "ref-123", "BSC"} {
			if !strings.Contains(body, want) {
				t.Errorf("acknowledgment body missing %q", want)
			}
		}
	})

	t.Run("approval", func(t *testing.T) {
		var out strings.Builder
		if err := approvalTemplate.Execute(&out, data); err != nil {
			t.Fatalf("template failed to render: %v", err)
		}
		body := out.String()
		for _, want := range []string{"Ayesha", "APPROVED", "BSC"} {
			if !strings.Contains(body, want) {
				t.Errorf("approval body missing %q", want)
			}
		}
	})

	t.Run("rejection", func(t *testing.T) {
		var out strings.Builder
		if err := rejectionTemplate.Execute(&out, data); err != nil {
			t.Fatalf("template failed to render: %v", err)
		}
		body := out.String()
		if !strings.Contains(body, "Incomplete marksheets") {
			t.Error("rejection body missing the stated reason")
		}
	})

	t.Run("rejection without reason", func(t *testing.T) {
		noReason := sampleEmailData()
		noReason.Reason = ""

		var out strings.Builder
		if err := rejectionTemplate.Execute(&out, noReason); err != nil {
			t.Fatalf("template failed to render: %v", err)
		}
	})
}
