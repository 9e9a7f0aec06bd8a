package studentresource

import (
	"strconv"

	"github.com/gcgpws/backend-portal/model"
	"github.com/gcgpws/backend-portal/utils/response"
	"github.com/gcgpws/backend-portal/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StudentResourceHandler handles student portal resource endpoints
// (books, notes, recorded lectures).
type StudentResourceHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewStudentResourceHandler creates a new student resource handler
func NewStudentResourceHandler(db *gorm.DB) *StudentResourceHandler {
	return &StudentResourceHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateResourceRequest represents the request body for creating a resource
type CreateResourceRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Type        string `json:"type" validate:"required,oneof=book note lecture"`
	Description string `json:"description" validate:"omitempty"`
	ImageURL    string `json:"image_url" validate:"required,max=512"`
	FileURL     string `json:"file_url" validate:"required,max=512"`
	Author      string `json:"author" validate:"omitempty,max=255"`
	Subject     string `json:"subject" validate:"omitempty,max=255"`
	Category    string `json:"category" validate:"omitempty,max=255"`
	Duration    int    `json:"duration" validate:"omitempty,gte=0"`
	Level       string `json:"level" validate:"omitempty,max=20"`
}

// UpdateResourceRequest represents the request body for updating a resource
type UpdateResourceRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=255"`
	Type        string `json:"type" validate:"omitempty,oneof=book note lecture"`
	Description string `json:"description" validate:"omitempty"`
	ImageURL    string `json:"image_url" validate:"omitempty,max=512"`
	FileURL     string `json:"file_url" validate:"omitempty,max=512"`
	Author      string `json:"author" validate:"omitempty,max=255"`
	Subject     string `json:"subject" validate:"omitempty,max=255"`
	Category    string `json:"category" validate:"omitempty,max=255"`
	Duration    int    `json:"duration" validate:"omitempty,gte=0"`
	Level       string `json:"level" validate:"omitempty,max=20"`
}

// ListResources handles GET /api/v1/student-resources
func (h *StudentResourceHandler) ListResources(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	page, limit = response.ClampPageLimit(page, limit)
	resourceType := c.Query("type", "")
	subject := c.Query("subject", "")

	query := h.db.Model(&model.StudentResource{})

	if resourceType != "" {
		query = query.Where("type = ?", resourceType)
	}
	if subject != "" {
		query = query.Where("subject ILIKE ?", "%"+subject+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count resources")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var resources []model.StudentResource
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&resources).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch resources")
	}

	return response.Paginated(c, resources, pagination)
}

// GetResource handles GET /api/v1/student-resources/:id
func (h *StudentResourceHandler) GetResource(c *fiber.Ctx) error {
	id := c.Params("id")

	var resource model.StudentResource
	if err := h.db.First(&resource, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Resource not found")
		}
		return response.InternalServerError(c, "Failed to fetch resource")
	}

	return response.Success(c, resource)
}

// CreateResource handles POST /api/v1/student-resources (admin)
func (h *StudentResourceHandler) CreateResource(c *fiber.Ctx) error {
	var req CreateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	resource := model.StudentResource{
		Title:       validation.SanitizeString(req.Title),
		Type:        req.Type,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		FileURL:     req.FileURL,
		Author:      validation.SanitizeString(req.Author),
		Subject:     validation.SanitizeString(req.Subject),
		Category:    validation.SanitizeString(req.Category),
		Duration:    req.Duration,
		Level:       req.Level,
	}

	if err := h.db.Create(&resource).Error; err != nil {
		return response.InternalServerError(c, "Failed to create resource")
	}

	return response.Created(c, "Resource created successfully", resource)
}

// UpdateResource handles PUT /api/v1/student-resources/:id (admin)
func (h *StudentResourceHandler) UpdateResource(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var resource model.StudentResource
	if err := h.db.First(&resource, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Resource not found")
		}
		return response.InternalServerError(c, "Failed to fetch resource")
	}

	if req.Title != "" {
		resource.Title = validation.SanitizeString(req.Title)
	}
	if req.Type != "" {
		resource.Type = req.Type
	}
	if req.Description != "" {
		resource.Description = req.Description
	}
	if req.ImageURL != "" {
		resource.ImageURL = req.ImageURL
	}
	if req.FileURL != "" {
		resource.FileURL = req.FileURL
	}
	if req.Author != "" {
		resource.Author = validation.SanitizeString(req.Author)
	}
	if req.Subject != "" {
		resource.Subject = validation.SanitizeString(req.Subject)
	}
	if req.Category != "" {
		resource.Category = validation.SanitizeString(req.Category)
	}
	if req.Duration > 0 {
		resource.Duration = req.Duration
	}
	if req.Level != "" {
		resource.Level = req.Level
	}

	if err := h.db.Save(&resource).Error; err != nil {
		return response.InternalServerError(c, "Failed to update resource")
	}

	return response.SuccessWithMessage(c, "Resource updated successfully", resource)
}

// DeleteResource handles DELETE /api/v1/student-resources/:id (admin)
func (h *StudentResourceHandler) DeleteResource(c *fiber.Ctx) error {
	id := c.Params("id")

	var resource model.StudentResource
	if err := h.db.First(&resource, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Resource not found")
		}
		return response.InternalServerError(c, "Failed to fetch resource")
	}

	if err := h.db.Delete(&resource).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete resource")
	}

	return response.SuccessWithMessage(c, "Resource deleted successfully", nil)
}
