package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gcgpws/backend-portal/model"
	"github.com/gcgpws/backend-portal/utils/apperrors"
	"github.com/gcgpws/backend-portal/utils/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// emailTimeout bounds the outbound SMTP exchange so a hung transport cannot
// stall a request whose primary write already committed.
const emailTimeout = 15 * time.Second

// AdmissionService is the admission workflow engine. It owns every status
// mutation and the ordering of side effects around it: persist first, then
// best-effort notification, then best-effort email. Only persistence
// failures abort an operation.
type AdmissionService struct {
	db            *gorm.DB
	notifications *NotificationService
	mailer        Mailer
	validator     *validation.Validator
}

// NewAdmissionService creates a new admission service
func NewAdmissionService(db *gorm.DB, notifications *NotificationService, mailer Mailer) *AdmissionService {
	return &AdmissionService{
		db:            db,
		notifications: notifications,
		mailer:        mailer,
		validator:     validation.NewValidator(),
	}
}

// SubmitRequest carries the full field set of a new application
type SubmitRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,max=20"`
	DOB       string `json:"dob" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required,max=100"`
	State     string `json:"state" validate:"required,max=100"`
	ZipCode   string `json:"zip_code" validate:"required,max=20"`

	Course        string `json:"course" validate:"required,course"`
	AdmissionYear int    `json:"admission_year" validate:"required,gte=2000,lte=2100"`

	MatricSchool      string  `json:"matric_school"`
	MatricBoard       string  `json:"matric_board"`
	MatricPassingYear int     `json:"matric_passing_year"`
	MatricPercentage  float64 `json:"matric_percentage"`
	InterCollege      string  `json:"inter_college"`
	InterBoard        string  `json:"inter_board"`
	InterPassingYear  int     `json:"inter_passing_year"`
	InterPercentage   float64 `json:"inter_percentage"`

	PhotoURL           string `json:"photo_url" validate:"required,max=512"`
	IDProofURL         string `json:"id_proof_url" validate:"required,max=512"`
	MatricMarksheetURL string `json:"matric_marksheet_url" validate:"omitempty,max=512"`
	InterMarksheetURL  string `json:"inter_marksheet_url" validate:"omitempty,max=512"`
}

// Submit validates and stores a new application with status pending, then
// records an admin notification and attempts an acknowledgment email. The
// only guaranteed side effect is persistence; the trailing steps are
// best-effort and logged on failure.
func (s *AdmissionService) Submit(ctx context.Context, req SubmitRequest) (*model.Admission, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	dob, err := validation.ParseDate(req.DOB)
	if err != nil {
		return nil, apperrors.NewValidationError("dob", "must be a valid date in YYYY-MM-DD format")
	}

	admission := &model.Admission{
		ReferenceNo:        uuid.New().String(),
		FirstName:          validation.SanitizeString(req.FirstName),
		LastName:           validation.SanitizeString(req.LastName),
		Email:              validation.SanitizeString(req.Email),
		Phone:              validation.SanitizeString(req.Phone),
		DOB:                dob,
		Address:            validation.SanitizeString(req.Address),
		City:               validation.SanitizeString(req.City),
		State:              validation.SanitizeString(req.State),
		ZipCode:            validation.SanitizeString(req.ZipCode),
		Course:             req.Course,
		AdmissionYear:      req.AdmissionYear,
		MatricSchool:       req.MatricSchool,
		MatricBoard:        req.MatricBoard,
		MatricPassingYear:  req.MatricPassingYear,
		MatricPercentage:   req.MatricPercentage,
		InterCollege:       req.InterCollege,
		InterBoard:         req.InterBoard,
		InterPassingYear:   req.InterPassingYear,
		InterPercentage:    req.InterPercentage,
		PhotoURL:           req.PhotoURL,
		IDProofURL:         req.IDProofURL,
		MatricMarksheetURL: req.MatricMarksheetURL,
		InterMarksheetURL:  req.InterMarksheetURL,
		Status:             model.AdmissionStatusPending,
	}

	if err := s.db.WithContext(ctx).Create(admission).Error; err != nil {
		return nil, apperrors.NewPersistenceError("create admission", err)
	}

	// The application is durably stored; nothing past this point may fail
	// the operation.
	s.notifyAdmins(ctx, admission.ID,
		fmt.Sprintf("New admission application received from %s", admission.FullName()))

	s.sendEmail(ctx, admission, func(ctx context.Context, to string, data EmailData) bool {
		return s.mailer.SendAcknowledgment(ctx, to, data)
	}, "")

	return admission, nil
}

// UpdateStatus applies an administrative decision to an application.
// Transitions are intentionally permissive (any status may overwrite any
// other, re-applying a status re-notifies). Persistence failure is fatal;
// notification and email failures are logged and swallowed.
func (s *AdmissionService) UpdateStatus(ctx context.Context, id uint, status model.AdmissionStatus, message string, reviewerID *uint) (*model.Admission, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "must be one of: pending, approved, rejected")
	}

	var admission model.Admission
	if err := s.db.WithContext(ctx).First(&admission, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("admission", id)
		}
		return nil, apperrors.NewPersistenceError("load admission", err)
	}

	now := time.Now()
	admission.Status = status
	admission.StatusMessage = message
	admission.ReviewedBy = reviewerID
	admission.ReviewedAt = &now

	if err := s.db.WithContext(ctx).Save(&admission).Error; err != nil {
		return nil, apperrors.NewPersistenceError("update admission status", err)
	}

	s.notifyAdmins(ctx, admission.ID,
		fmt.Sprintf("Admission application %s for %s", status, admission.FullName()))

	switch status {
	case model.AdmissionStatusApproved:
		s.sendEmail(ctx, &admission, func(ctx context.Context, to string, data EmailData) bool {
			return s.mailer.SendApproval(ctx, to, data)
		}, "")
	case model.AdmissionStatusRejected:
		s.sendEmail(ctx, &admission, func(ctx context.Context, to string, data EmailData) bool {
			return s.mailer.SendRejection(ctx, to, data)
		}, message)
	}

	return &admission, nil
}

// notifyAdmins records an inbox notification; failure is logged, never fatal
func (s *AdmissionService) notifyAdmins(ctx context.Context, admissionID uint, message string) {
	if _, err := s.notifications.Create(ctx, model.NotificationTypeAdmission, message, &admissionID); err != nil {
		log.Println(&apperrors.NotificationError{Event: message, Err: err})
	}
}

// sendEmail attempts a bounded, best-effort applicant email. A successful
// decision send flips the is_notified flag; that write is itself
// best-effort.
func (s *AdmissionService) sendEmail(ctx context.Context, admission *model.Admission, send func(context.Context, string, EmailData) bool, reason string) {
	mailCtx, cancel := context.WithTimeout(ctx, emailTimeout)
	defer cancel()

	ok := send(mailCtx, admission.Email, EmailData{
		FirstName:   admission.FirstName,
		LastName:    admission.LastName,
		Course:      admission.Course,
		ReferenceNo: admission.ReferenceNo,
		Reason:      reason,
	})
	if !ok {
		return
	}

	if admission.Status == model.AdmissionStatusPending {
		return
	}

	if err := s.db.WithContext(ctx).Model(admission).Update("is_notified", true).Error; err != nil {
		log.Printf("failed to record applicant email delivery for admission %d: %v", admission.ID, err)
	}
}

// GetByID returns a single application
func (s *AdmissionService) GetByID(ctx context.Context, id uint) (*model.Admission, error) {
	var admission model.Admission
	if err := s.db.WithContext(ctx).First(&admission, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("admission", id)
		}
		return nil, apperrors.NewPersistenceError("load admission", err)
	}
	return &admission, nil
}

// List returns all applications, newest first
func (s *AdmissionService) List(ctx context.Context) ([]model.Admission, error) {
	var admissions []model.Admission
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&admissions).Error; err != nil {
		return nil, apperrors.NewPersistenceError("list admissions", err)
	}
	return admissions, nil
}

// GetStats aggregates per-status counts plus the five most recent
// applications for the admin dashboard. Pure read, no caching.
func (s *AdmissionService) GetStats(ctx context.Context) (*model.AdmissionStats, error) {
	stats := &model.AdmissionStats{}

	if err := s.db.WithContext(ctx).Model(&model.Admission{}).Count(&stats.Total).Error; err != nil {
		return nil, apperrors.NewPersistenceError("count admissions", err)
	}

	counts := []struct {
		status model.AdmissionStatus
		dest   *int64
	}{
		{model.AdmissionStatusPending, &stats.Pending},
		{model.AdmissionStatusApproved, &stats.Approved},
		{model.AdmissionStatusRejected, &stats.Rejected},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(&model.Admission{}).
			Where("status = ?", c.status).
			Count(c.dest).Error; err != nil {
			return nil, apperrors.NewPersistenceError(fmt.Sprintf("count %s admissions", c.status), err)
		}
	}

	if err := s.db.WithContext(ctx).Model(&model.Admission{}).
		Select("id", "reference_no", "first_name", "last_name", "course", "status", "created_at").
		Order("created_at DESC").
		Limit(5).
		Find(&stats.Recent).Error; err != nil {
		return nil, apperrors.NewPersistenceError("fetch recent admissions", err)
	}

	return stats, nil
}
