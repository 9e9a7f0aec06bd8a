package contact

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gcgpws/backend-portal/model"
	"github.com/gcgpws/backend-portal/services"
	"github.com/gcgpws/backend-portal/utils/response"
	"github.com/gcgpws/backend-portal/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ContactHandler handles contact form endpoints
type ContactHandler struct {
	db                  *gorm.DB
	notificationService *services.NotificationService
	validator           *validation.Validator
}

// NewContactHandler creates a new contact handler
func NewContactHandler(db *gorm.DB, notificationService *services.NotificationService) *ContactHandler {
	return &ContactHandler{
		db:                  db,
		notificationService: notificationService,
		validator:           validation.NewValidator(),
	}
}

// SubmitContactRequest represents a contact form submission
type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// Submit handles POST /api/v1/contact
// Public endpoint, stores the message and notifies admins
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req SubmitContactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	message := model.ContactMessage{
		Name:    validation.SanitizeString(req.Name),
		Email:   validation.SanitizeString(req.Email),
		Message: req.Message,
	}

	if err := h.db.Create(&message).Error; err != nil {
		return response.InternalServerError(c, "Failed to store message")
	}

	// Inbox notification is best-effort, the message is already stored
	if _, err := h.notificationService.Create(c.Context(), model.NotificationTypeOther,
		fmt.Sprintf("New contact message from %s", message.Name), nil); err != nil {
		log.Printf("failed to create contact notification: %v", err)
	}

	return response.Created(c, "Message sent successfully", fiber.Map{
		"id": message.ID,
	})
}

// List handles GET /api/v1/contact (admin)
func (h *ContactHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	page, limit = response.ClampPageLimit(page, limit)

	var total int64
	if err := h.db.Model(&model.ContactMessage{}).Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count messages")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var messages []model.ContactMessage
	if err := h.db.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch messages")
	}

	return response.Paginated(c, messages, pagination)
}

// Delete handles DELETE /api/v1/contact/:id (admin)
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var message model.ContactMessage
	if err := h.db.First(&message, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Message not found")
		}
		return response.InternalServerError(c, "Failed to fetch message")
	}

	if err := h.db.Delete(&message).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete message")
	}

	return response.SuccessWithMessage(c, "Message deleted successfully", nil)
}
