package newsevent

import (
	"strconv"
	"time"

	"github.com/gcgpws/backend-portal/model"
	"github.com/gcgpws/backend-portal/utils/response"
	"github.com/gcgpws/backend-portal/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NewsEventHandler handles news, event and cultural activity endpoints
type NewsEventHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewNewsEventHandler creates a new news/event handler
func NewNewsEventHandler(db *gorm.DB) *NewsEventHandler {
	return &NewsEventHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateNewsEventRequest represents the request body for creating an entry
type CreateNewsEventRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Type        string `json:"type" validate:"required,oneof=news event cultural"`
	Description string `json:"description" validate:"omitempty"`
	Content     string `json:"content" validate:"required"`
	Date        string `json:"date" validate:"omitempty"`
	ImageURL    string `json:"image_url" validate:"omitempty,max=512"`
	VideoURL    string `json:"video_url" validate:"omitempty,max=512"`
	Venue       string `json:"venue" validate:"omitempty,max=255"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive upcoming completed"`
}

// UpdateNewsEventRequest represents the request body for updating an entry
type UpdateNewsEventRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=255"`
	Type        string `json:"type" validate:"omitempty,oneof=news event cultural"`
	Description string `json:"description" validate:"omitempty"`
	Content     string `json:"content" validate:"omitempty"`
	Date        string `json:"date" validate:"omitempty"`
	ImageURL    string `json:"image_url" validate:"omitempty,max=512"`
	VideoURL    string `json:"video_url" validate:"omitempty,max=512"`
	Venue       string `json:"venue" validate:"omitempty,max=255"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive upcoming completed"`
}

// ListNewsEvents handles GET /api/v1/news-events
func (h *NewsEventHandler) ListNewsEvents(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	page, limit = response.ClampPageLimit(page, limit)
	entryType := c.Query("type", "")
	status := c.Query("status", "")

	query := h.db.Model(&model.NewsEvent{})

	if entryType != "" {
		query = query.Where("type = ?", entryType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count news and events")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var entries []model.NewsEvent
	if err := query.Order("date DESC NULLS LAST, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch news and events")
	}

	return response.Paginated(c, entries, pagination)
}

// GetNewsEvent handles GET /api/v1/news-events/:id
func (h *NewsEventHandler) GetNewsEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var entry model.NewsEvent
	if err := h.db.First(&entry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "News or event not found")
		}
		return response.InternalServerError(c, "Failed to fetch news or event")
	}

	return response.Success(c, entry)
}

// CreateNewsEvent handles POST /api/v1/news-events (admin)
func (h *NewsEventHandler) CreateNewsEvent(c *fiber.Ctx) error {
	var req CreateNewsEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var date *time.Time
	if req.Date != "" {
		parsed, err := validation.ParseDate(req.Date)
		if err != nil {
			return response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		}
		date = &parsed
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	entry := model.NewsEvent{
		Title:       validation.SanitizeString(req.Title),
		Type:        req.Type,
		Description: req.Description,
		Content:     req.Content,
		Date:        date,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		Venue:       validation.SanitizeString(req.Venue),
		Status:      status,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		return response.InternalServerError(c, "Failed to create news or event")
	}

	return response.Created(c, "News or event created successfully", entry)
}

// UpdateNewsEvent handles PUT /api/v1/news-events/:id (admin)
func (h *NewsEventHandler) UpdateNewsEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateNewsEventRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var entry model.NewsEvent
	if err := h.db.First(&entry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "News or event not found")
		}
		return response.InternalServerError(c, "Failed to fetch news or event")
	}

	if req.Title != "" {
		entry.Title = validation.SanitizeString(req.Title)
	}
	if req.Type != "" {
		entry.Type = req.Type
	}
	if req.Description != "" {
		entry.Description = req.Description
	}
	if req.Content != "" {
		entry.Content = req.Content
	}
	if req.Date != "" {
		parsed, err := validation.ParseDate(req.Date)
		if err != nil {
			return response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		}
		entry.Date = &parsed
	}
	if req.ImageURL != "" {
		entry.ImageURL = req.ImageURL
	}
	if req.VideoURL != "" {
		entry.VideoURL = req.VideoURL
	}
	if req.Venue != "" {
		entry.Venue = validation.SanitizeString(req.Venue)
	}
	if req.Status != "" {
		entry.Status = req.Status
	}

	if err := h.db.Save(&entry).Error; err != nil {
		return response.InternalServerError(c, "Failed to update news or event")
	}

	return response.SuccessWithMessage(c, "News or event updated successfully", entry)
}

// DeleteNewsEvent handles DELETE /api/v1/news-events/:id (admin)
func (h *NewsEventHandler) DeleteNewsEvent(c *fiber.Ctx) error {
	id := c.Params("id")

	var entry model.NewsEvent
	if err := h.db.First(&entry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "News or event not found")
		}
		return response.InternalServerError(c, "Failed to fetch news or event")
	}

	if err := h.db.Delete(&entry).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete news or event")
	}

	return response.SuccessWithMessage(c, "News or event deleted successfully", nil)
}
