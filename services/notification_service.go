package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gcgpws/backend-portal/model"
	"github.com/gcgpws/backend-portal/utils/apperrors"
	"gorm.io/gorm"
)

// NotificationService handles the admin notification inbox
type NotificationService struct {
	db *gorm.DB
}

// NewNotificationService creates a new notification service
func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// NotificationPage is one page of the admin inbox plus its counters
type NotificationPage struct {
	Items       []model.Notification `json:"notifications"`
	Total       int64                `json:"total"`
	UnreadCount int64                `json:"unread_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
}

// Create persists a new notification record
func (s *NotificationService) Create(ctx context.Context, notifType model.NotificationType, message string, admissionID *uint) (*model.Notification, error) {
	notification := &model.Notification{
		Type:        notifType,
		Message:     message,
		AdmissionID: admissionID,
		Read:        false,
	}

	if err := s.db.WithContext(ctx).Create(notification).Error; err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification, nil
}

// List returns one page of notifications sorted newest-first, each populated
// with the current snapshot of its related admission.
func (s *NotificationService) List(ctx context.Context, page, limit int, readFilter *bool) (*NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	query := s.db.WithContext(ctx).Model(&model.Notification{})
	if readFilter != nil {
		query = query.Where("read = ?", *readFilter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.NewPersistenceError("count notifications", err)
	}

	var items []model.Notification
	if err := query.Preload("Admission").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&items).Error; err != nil {
		return nil, apperrors.NewPersistenceError("fetch notifications", err)
	}

	unread, err := s.UnreadCount(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return &NotificationPage{
		Items:       items,
		Total:       total,
		UnreadCount: unread,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
	}, nil
}

// MarkRead marks a single notification as read
func (s *NotificationService) MarkRead(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ?", id).
		Update("read", true)

	if result.Error != nil {
		return apperrors.NewPersistenceError("mark notification read", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("notification", id)
	}

	return nil
}

// MarkAllRead marks every unread notification as read. Idempotent: a second
// call affects zero rows and still succeeds.
func (s *NotificationService) MarkAllRead(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("read = ?", false).
		Update("read", true)

	if result.Error != nil {
		return 0, apperrors.NewPersistenceError("mark all notifications read", result.Error)
	}

	return result.RowsAffected, nil
}

// UnreadCount returns the count of unread notifications
func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("read = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.NewPersistenceError("count unread notifications", err)
	}
	return count, nil
}

// CleanupOld removes read notifications older than the given age. Used by the
// nightly cron job; unread notifications are never removed.
func (s *NotificationService) CleanupOld(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	result := s.db.WithContext(ctx).
		Where("created_at < ? AND read = ?", cutoff, true).
		Delete(&model.Notification{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to cleanup old notifications: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		log.Printf("Cleaned up %d old notifications", result.RowsAffected)
	}

	return result.RowsAffected, nil
}
