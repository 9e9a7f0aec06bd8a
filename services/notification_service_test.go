package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gcgpws/backend-portal/model"
	"github.com/gcgpws/backend-portal/utils/apperrors"
)

func TestNotificationListPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		if _, err := svc.Create(ctx, model.NotificationTypeSystem, fmt.Sprintf("event %d", i), nil); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	page, err := svc.List(ctx, 1, 10, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(page.Items) != 10 {
		t.Errorf("expected 10 items on first page, got %d", len(page.Items))
	}
	if page.Total != 25 {
		t.Errorf("expected total 25, got %d", page.Total)
	}
	if page.UnreadCount != 25 {
		t.Errorf("expected 25 unread, got %d", page.UnreadCount)
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", page.TotalPages)
	}

	// Newest first
	if page.Items[0].Message != "event 24" {
		t.Errorf("expected newest notification first, got %q", page.Items[0].Message)
	}

	last, err := svc.List(ctx, 3, 10, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(last.Items) != 5 {
		t.Errorf("expected 5 items on last page, got %d", len(last.Items))
	}
}

func TestNotificationReadFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	ctx := context.Background()

	first, _ := svc.Create(ctx, model.NotificationTypeAdmission, "application received", nil)
	svc.Create(ctx, model.NotificationTypeAdmission, "application approved", nil)

	if err := svc.MarkRead(ctx, first.ID); err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}

	read := true
	page, err := svc.List(ctx, 1, 10, &read)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("expected exactly 1 read notification, got %d", page.Total)
	}
	if page.Items[0].ID != first.ID {
		t.Error("read filter returned the wrong notification")
	}

	unread := false
	page, err = svc.List(ctx, 1, 10, &unread)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("expected exactly 1 unread notification, got %d", page.Total)
	}
}

func TestMarkReadMissingNotification(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)

	err := svc.MarkRead(context.Background(), 12345)
	if !apperrors.IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestMarkAllReadIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	ctx := context.Background()

	svc.Create(ctx, model.NotificationTypeSystem, "one", nil)
	svc.Create(ctx, model.NotificationTypeSystem, "two", nil)

	count, err := svc.MarkAllRead(ctx)
	if err != nil {
		t.Fatalf("MarkAllRead returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 notifications marked, got %d", count)
	}

	count, err = svc.MarkAllRead(ctx)
	if err != nil {
		t.Fatalf("repeated MarkAllRead returned error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected second call to affect 0 rows, got %d", count)
	}

	unread, _ := svc.UnreadCount(ctx)
	if unread != 0 {
		t.Errorf("expected 0 unread after MarkAllRead, got %d", unread)
	}
}

func TestCleanupOldKeepsUnread(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	ctx := context.Background()

	oldRead, _ := svc.Create(ctx, model.NotificationTypeSystem, "old read", nil)
	oldUnread, _ := svc.Create(ctx, model.NotificationTypeSystem, "old unread", nil)
	svc.Create(ctx, model.NotificationTypeSystem, "fresh", nil)

	svc.MarkRead(ctx, oldRead.ID)

	// Age the first two past the retention cutoff
	aged := time.Now().Add(-120 * 24 * time.Hour)
	for _, id := range []uint{oldRead.ID, oldUnread.ID} {
		if err := db.Model(&model.Notification{}).Where("id = ?", id).
			Update("created_at", aged).Error; err != nil {
			t.Fatalf("failed to age notification: %v", err)
		}
	}

	deleted, err := svc.CleanupOld(ctx, 90*24*time.Hour)
	if err != nil {
		t.Fatalf("CleanupOld returned error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected exactly 1 notification deleted, got %d", deleted)
	}

	var remaining int64
	db.Model(&model.Notification{}).Count(&remaining)
	if remaining != 2 {
		t.Errorf("expected 2 notifications to remain, got %d", remaining)
	}
}
