package academic

import (
	"strconv"

	"github.com/gcgpws/backend-portal/model"
	"github.com/gcgpws/backend-portal/utils/response"
	"github.com/gcgpws/backend-portal/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AcademicHandler handles academic catalog endpoints (departments,
// programs, academic calendar entries).
type AcademicHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewAcademicHandler creates a new academic handler
func NewAcademicHandler(db *gorm.DB) *AcademicHandler {
	return &AcademicHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateProgramRequest represents the request body for creating an entry
type CreateProgramRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Type        string `json:"type" validate:"required,oneof=department program calendar"`
	Description string `json:"description" validate:"omitempty"`
	Duration    string `json:"duration" validate:"omitempty,max=50"`
	Eligibility string `json:"eligibility" validate:"omitempty"`
	ImageURL    string `json:"image_url" validate:"omitempty,max=512"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateProgramRequest represents the request body for updating an entry
type UpdateProgramRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=255"`
	Type        string `json:"type" validate:"omitempty,oneof=department program calendar"`
	Description string `json:"description" validate:"omitempty"`
	Duration    string `json:"duration" validate:"omitempty,max=50"`
	Eligibility string `json:"eligibility" validate:"omitempty"`
	ImageURL    string `json:"image_url" validate:"omitempty,max=512"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ListPrograms handles GET /api/v1/academics
func (h *AcademicHandler) ListPrograms(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	page, limit = response.ClampPageLimit(page, limit)
	entryType := c.Query("type", "")
	status := c.Query("status", "")

	query := h.db.Model(&model.AcademicProgram{})

	if entryType != "" {
		query = query.Where("type = ?", entryType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count academic entries")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var programs []model.AcademicProgram
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&programs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch academic entries")
	}

	return response.Paginated(c, programs, pagination)
}

// GetProgram handles GET /api/v1/academics/:id
func (h *AcademicHandler) GetProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var program model.AcademicProgram
	if err := h.db.First(&program, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Academic entry not found")
		}
		return response.InternalServerError(c, "Failed to fetch academic entry")
	}

	return response.Success(c, program)
}

// CreateProgram handles POST /api/v1/academics (admin)
func (h *AcademicHandler) CreateProgram(c *fiber.Ctx) error {
	var req CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	program := model.AcademicProgram{
		Title:       validation.SanitizeString(req.Title),
		Type:        req.Type,
		Description: req.Description,
		Duration:    req.Duration,
		Eligibility: req.Eligibility,
		ImageURL:    req.ImageURL,
		Status:      status,
	}

	if err := h.db.Create(&program).Error; err != nil {
		return response.InternalServerError(c, "Failed to create academic entry")
	}

	return response.Created(c, "Academic entry created successfully", program)
}

// UpdateProgram handles PUT /api/v1/academics/:id (admin)
func (h *AcademicHandler) UpdateProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var program model.AcademicProgram
	if err := h.db.First(&program, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Academic entry not found")
		}
		return response.InternalServerError(c, "Failed to fetch academic entry")
	}

	if req.Title != "" {
		program.Title = validation.SanitizeString(req.Title)
	}
	if req.Type != "" {
		program.Type = req.Type
	}
	if req.Description != "" {
		program.Description = req.Description
	}
	if req.Duration != "" {
		program.Duration = req.Duration
	}
	if req.Eligibility != "" {
		program.Eligibility = req.Eligibility
	}
	if req.ImageURL != "" {
		program.ImageURL = req.ImageURL
	}
	if req.Status != "" {
		program.Status = req.Status
	}

	if err := h.db.Save(&program).Error; err != nil {
		return response.InternalServerError(c, "Failed to update academic entry")
	}

	return response.SuccessWithMessage(c, "Academic entry updated successfully", program)
}

// DeleteProgram handles DELETE /api/v1/academics/:id (admin)
func (h *AcademicHandler) DeleteProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var program model.AcademicProgram
	if err := h.db.First(&program, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Academic entry not found")
		}
		return response.InternalServerError(c, "Failed to fetch academic entry")
	}

	if err := h.db.Delete(&program).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete academic entry")
	}

	return response.SuccessWithMessage(c, "Academic entry deleted successfully", nil)
}
