package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/gcgpws/backend-portal/model"
)

const (
	notificationRetention = 90 * 24 * time.Hour
	stalePendingAge       = 7 * 24 * time.Hour
	cronLogRetention      = 30 * 24 * time.Hour
)

// CleanupOldNotifications deletes read notifications past the retention
// window. Unread notifications are kept regardless of age.
func (m *CronManager) CleanupOldNotifications() {
	jobName := "cleanup_old_notifications"
	ctx := context.Background()

	deleted, err := m.notifications.CleanupOld(ctx, notificationRetention)
	if err != nil {
		m.logJobError(jobName, err)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("deleted %d old notifications", deleted))
}

// RemindStalePendingAdmissions creates a system notification when
// applications have sat in pending review for too long.
func (m *CronManager) RemindStalePendingAdmissions() {
	jobName := "stale_pending_reminder"
	ctx := context.Background()

	cutoff := time.Now().Add(-stalePendingAge)

	var stale int64
	err := m.db.WithContext(ctx).Model(&model.Admission{}).
		Where("status = ? AND created_at < ?", model.AdmissionStatusPending, cutoff).
		Count(&stale).Error
	if err != nil {
		m.logJobError(jobName, err)
		return
	}

	if stale == 0 {
		m.logJobComplete(jobName, "no stale pending applications")
		return
	}

	message := fmt.Sprintf("%d admission application(s) have been pending review for over 7 days", stale)
	if _, err := m.notifications.Create(ctx, model.NotificationTypeSystem, message, nil); err != nil {
		m.logJobError(jobName, err)
		return
	}

	m.logJobComplete(jobName, message)
}

// CleanupCronLogs prunes old job execution logs
func (m *CronManager) CleanupCronLogs() {
	jobName := "cleanup_cron_logs"

	cutoff := time.Now().Add(-cronLogRetention)

	result := m.db.Unscoped().
		Where("started_at < ? AND status <> ?", cutoff, "running").
		Delete(&model.CronJobLog{})
	if result.Error != nil {
		m.logJobError(jobName, result.Error)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("deleted %d old cron logs", result.RowsAffected))
}
