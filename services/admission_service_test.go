package services

import (
	"context"
	"testing"

	"github.com/gcgpws/backend-portal/model"
	"github.com/gcgpws/backend-portal/utils/apperrors"
)

func newAdmissionService(t *testing.T, mailer Mailer) (*AdmissionService, *NotificationService) {
	t.Helper()
	db := setupTestDB(t)
	notifications := NewNotificationService(db)
	return NewAdmissionService(db, notifications, mailer), notifications
}

func TestSubmitCreatesPendingApplication(t *testing.T) {
	mailer := &stubMailer{succeed: true}
	svc, notifications := newAdmissionService(t, mailer)
	ctx := context.Background()

	admission, err := svc.Submit(ctx, validSubmitRequest())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if admission.Status != model.AdmissionStatusPending {
		t.Errorf("expected status pending, got %s", admission.Status)
	}
	if admission.ReferenceNo == "" {
		t.Error("expected a reference number to be assigned")
	}
	if admission.ID == 0 {
		t.Error("expected admission to be persisted with an ID")
	}

	// Submission records an admin notification tied to the application
	count, err := notifications.UnreadCount(ctx)
	if err != nil {
		t.Fatalf("UnreadCount returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 unread notification, got %d", count)
	}

	// And an acknowledgment email to the applicant
	if len(mailer.acknowledgments) != 1 {
		t.Fatalf("expected 1 acknowledgment email, got %d", len(mailer.acknowledgments))
	}
	if mailer.recipients[0] != "ayesha.khan@example.com" {
		t.Errorf("acknowledgment sent to wrong recipient: %s", mailer.recipients[0])
	}
	if mailer.acknowledgments[0].ReferenceNo != admission.ReferenceNo {
		t.Error("acknowledgment email carries wrong reference number")
	}
}

func TestSubmitSucceedsWhenEmailFails(t *testing.T) {
	mailer := &stubMailer{succeed: false}
	svc, notifications := newAdmissionService(t, mailer)
	ctx := context.Background()

	admission, err := svc.Submit(ctx, validSubmitRequest())
	if err != nil {
		t.Fatalf("Submit must not fail when the email transport fails: %v", err)
	}

	stored, err := svc.GetByID(ctx, admission.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if stored.Status != model.AdmissionStatusPending {
		t.Errorf("expected persisted status pending, got %s", stored.Status)
	}

	// Notification still lands even though the email did not
	count, _ := notifications.UnreadCount(ctx)
	if count != 1 {
		t.Errorf("expected 1 unread notification, got %d", count)
	}
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	svc, _ := newAdmissionService(t, &stubMailer{succeed: true})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*SubmitRequest)
	}{
		{"missing email", func(r *SubmitRequest) { r.Email = "" }},
		{"malformed email", func(r *SubmitRequest) { r.Email = "not-an-email" }},
		{"unknown course", func(r *SubmitRequest) { r.Course = "astrology" }},
		{"missing photo", func(r *SubmitRequest) { r.PhotoURL = "" }},
		{"missing id proof", func(r *SubmitRequest) { r.IDProofURL = "" }},
		{"bad dob", func(r *SubmitRequest) { r.DOB = "15-03-2004" }},
		{"year out of range", func(r *SubmitRequest) { r.AdmissionYear = 1812 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmitRequest()
			tc.mutate(&req)

			_, err := svc.Submit(ctx, req)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !apperrors.IsValidation(err) {
				t.Errorf("expected validation error, got %T: %v", err, err)
			}
		})
	}
}

func TestUpdateStatusApproval(t *testing.T) {
	mailer := &stubMailer{succeed: true}
	svc, notifications := newAdmissionService(t, mailer)
	ctx := context.Background()

	admission, err := svc.Submit(ctx, validSubmitRequest())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	reviewerID := uint(42)
	updated, err := svc.UpdateStatus(ctx, admission.ID, model.AdmissionStatusApproved, "Welcome aboard", &reviewerID)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if updated.Status != model.AdmissionStatusApproved {
		t.Errorf("expected status approved, got %s", updated.Status)
	}
	if updated.ReviewedBy == nil || *updated.ReviewedBy != reviewerID {
		t.Error("expected reviewer to be recorded")
	}
	if updated.ReviewedAt == nil {
		t.Error("expected review time to be recorded")
	}

	if len(mailer.approvals) != 1 {
		t.Fatalf("expected 1 approval email, got %d", len(mailer.approvals))
	}

	// Successful decision email is recorded on the application
	stored, _ := svc.GetByID(ctx, admission.ID)
	if !stored.IsNotified {
		t.Error("expected is_notified to be set after a delivered decision email")
	}

	// One notification for submission, one for the decision
	count, _ := notifications.UnreadCount(ctx)
	if count != 2 {
		t.Errorf("expected 2 unread notifications, got %d", count)
	}
}

func TestUpdateStatusRejectionCarriesReason(t *testing.T) {
	mailer := &stubMailer{succeed: true}
	svc, _ := newAdmissionService(t, mailer)
	ctx := context.Background()

	admission, _ := svc.Submit(ctx, validSubmitRequest())

	_, err := svc.UpdateStatus(ctx, admission.ID, model.AdmissionStatusRejected, "Incomplete marksheets", nil)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	if len(mailer.rejections) != 1 {
		t.Fatalf("expected 1 rejection email, got %d", len(mailer.rejections))
	}
	if mailer.rejections[0].Reason != "Incomplete marksheets" {
		t.Errorf("rejection email carries wrong reason: %q", mailer.rejections[0].Reason)
	}
}

func TestUpdateStatusSurvivesEmailFailure(t *testing.T) {
	mailer := &stubMailer{succeed: false}
	svc, _ := newAdmissionService(t, mailer)
	ctx := context.Background()

	admission, _ := svc.Submit(ctx, validSubmitRequest())

	updated, err := svc.UpdateStatus(ctx, admission.ID, model.AdmissionStatusApproved, "", nil)
	if err != nil {
		t.Fatalf("decision must not fail when the email transport fails: %v", err)
	}
	if updated.Status != model.AdmissionStatusApproved {
		t.Errorf("expected status approved, got %s", updated.Status)
	}

	stored, _ := svc.GetByID(ctx, admission.ID)
	if stored.IsNotified {
		t.Error("is_notified must stay false when the email was not delivered")
	}
}

func TestUpdateStatusReappliedReNotifies(t *testing.T) {
	mailer := &stubMailer{succeed: true}
	svc, notifications := newAdmissionService(t, mailer)
	ctx := context.Background()

	admission, _ := svc.Submit(ctx, validSubmitRequest())

	if _, err := svc.UpdateStatus(ctx, admission.ID, model.AdmissionStatusApproved, "", nil); err != nil {
		t.Fatalf("first decision returned error: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, admission.ID, model.AdmissionStatusApproved, "", nil); err != nil {
		t.Fatalf("repeated decision returned error: %v", err)
	}

	if len(mailer.approvals) != 2 {
		t.Errorf("expected the applicant to be emailed on each decision, got %d emails", len(mailer.approvals))
	}

	// Submission plus two decisions
	count, _ := notifications.UnreadCount(ctx)
	if count != 3 {
		t.Errorf("expected 3 unread notifications, got %d", count)
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	mailer := &stubMailer{succeed: true}
	svc, notifications := newAdmissionService(t, mailer)
	ctx := context.Background()

	admission, _ := svc.Submit(ctx, validSubmitRequest())

	if _, err := svc.UpdateStatus(ctx, admission.ID, "waitlisted", "", nil); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, 99999, model.AdmissionStatusApproved, "", nil); !apperrors.IsNotFound(err) {
		t.Errorf("expected not found error for missing application, got %v", err)
	}

	// Rejected updates must leave no trace: only the submission notification
	// exists and no decision email went out.
	count, _ := notifications.UnreadCount(ctx)
	if count != 1 {
		t.Errorf("expected 1 unread notification after rejected updates, got %d", count)
	}
	if len(mailer.approvals) != 0 || len(mailer.rejections) != 0 {
		t.Errorf("expected no decision emails after rejected updates, got %d approvals and %d rejections",
			len(mailer.approvals), len(mailer.rejections))
	}
}

func TestGetStats(t *testing.T) {
	mailer := &stubMailer{succeed: true}
	svc, _ := newAdmissionService(t, mailer)
	ctx := context.Background()

	var ids []uint
	for i := 0; i < 7; i++ {
		req := validSubmitRequest()
		admission, err := svc.Submit(ctx, req)
		if err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}
		ids = append(ids, admission.ID)
	}

	if _, err := svc.UpdateStatus(ctx, ids[0], model.AdmissionStatusApproved, "", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateStatus(ctx, ids[1], model.AdmissionStatusApproved, "", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateStatus(ctx, ids[2], model.AdmissionStatusRejected, "", nil); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats returned error: %v", err)
	}

	if stats.Total != 7 {
		t.Errorf("expected total 7, got %d", stats.Total)
	}
	if stats.Pending != 4 {
		t.Errorf("expected 4 pending, got %d", stats.Pending)
	}
	if stats.Approved != 2 {
		t.Errorf("expected 2 approved, got %d", stats.Approved)
	}
	if stats.Rejected != 1 {
		t.Errorf("expected 1 rejected, got %d", stats.Rejected)
	}
	if len(stats.Recent) != 5 {
		t.Errorf("expected 5 recent applications, got %d", len(stats.Recent))
	}
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newAdmissionService(t, &stubMailer{succeed: true})
	ctx := context.Background()

	first, _ := svc.Submit(ctx, validSubmitRequest())
	second, _ := svc.Submit(ctx, validSubmitRequest())

	admissions, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(admissions) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(admissions))
	}
	if admissions[0].ID != second.ID || admissions[1].ID != first.ID {
		t.Error("expected newest application first")
	}
}
