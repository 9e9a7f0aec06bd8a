package notification

import (
	"strconv"

	"github.com/gcgpws/backend-portal/services"
	"github.com/gcgpws/backend-portal/utils/response"
	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles admin notification inbox endpoints
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GetNotifications handles GET /api/v1/notifications
// Returns a page of notifications, newest first. The read query parameter
// filters by read state when present.
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	var readFilter *bool
	if v := c.Query("read"); v != "" {
		read := v == "true"
		readFilter = &read
	}

	result, err := h.notificationService.List(c.Context(), page, limit, readFilter)
	if err != nil {
		return response.FromServiceError(c, err)
	}

	return response.Success(c, result)
}

// GetUnreadCount handles GET /api/v1/notifications/unread-count
func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	count, err := h.notificationService.UnreadCount(c.Context())
	if err != nil {
		return response.FromServiceError(c, err)
	}

	return response.Success(c, fiber.Map{
		"unread_count": count,
	})
}

// MarkAsRead handles PATCH /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	notificationID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid notification ID")
	}

	if err := h.notificationService.MarkRead(c.Context(), uint(notificationID)); err != nil {
		return response.FromServiceError(c, err)
	}

	return response.SuccessWithMessage(c, "Notification marked as read", nil)
}

// MarkAllAsRead handles PATCH /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	count, err := h.notificationService.MarkAllRead(c.Context())
	if err != nil {
		return response.FromServiceError(c, err)
	}

	return response.SuccessWithMessage(c, "All notifications marked as read", fiber.Map{
		"count": count,
	})
}
