package facility

import (
	"strconv"

	"github.com/gcgpws/backend-portal/model"
	"github.com/gcgpws/backend-portal/utils/response"
	"github.com/gcgpws/backend-portal/utils/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// FacilityHandler handles campus facility content endpoints
type FacilityHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewFacilityHandler creates a new facility handler
func NewFacilityHandler(db *gorm.DB) *FacilityHandler {
	return &FacilityHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateFacilityRequest represents the request body for creating a facility
type CreateFacilityRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=255"`
	Type        string   `json:"type" validate:"required,oneof=transport sports masjid library hostel dispensary computerLab canteen"`
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images" validate:"omitempty,dive,max=512"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateFacilityRequest represents the request body for updating a facility
type UpdateFacilityRequest struct {
	Title       string   `json:"title" validate:"omitempty,min=3,max=255"`
	Type        string   `json:"type" validate:"omitempty,oneof=transport sports masjid library hostel dispensary computerLab canteen"`
	Description string   `json:"description" validate:"omitempty"`
	Images      []string `json:"images" validate:"omitempty,dive,max=512"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ListFacilities handles GET /api/v1/facilities
func (h *FacilityHandler) ListFacilities(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	page, limit = response.ClampPageLimit(page, limit)
	facilityType := c.Query("type", "")
	status := c.Query("status", "")

	query := h.db.Model(&model.Facility{})

	if facilityType != "" {
		query = query.Where("type = ?", facilityType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count facilities")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var facilities []model.Facility
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&facilities).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch facilities")
	}

	return response.Paginated(c, facilities, pagination)
}

// GetFacility handles GET /api/v1/facilities/:id
func (h *FacilityHandler) GetFacility(c *fiber.Ctx) error {
	id := c.Params("id")

	var facility model.Facility
	if err := h.db.First(&facility, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Facility not found")
		}
		return response.InternalServerError(c, "Failed to fetch facility")
	}

	return response.Success(c, facility)
}

// CreateFacility handles POST /api/v1/facilities (admin)
func (h *FacilityHandler) CreateFacility(c *fiber.Ctx) error {
	var req CreateFacilityRequest
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

	facility := model.Facility{
		Title:       validation.SanitizeString(req.Title),
		Type:        model.FacilityType(req.Type),
		Description: req.Description,
		Images:      pq.StringArray(req.Images),
		Status:      status,
	}

	if err := h.db.Create(&facility).Error; err != nil {
		return response.InternalServerError(c, "Failed to create facility")
	}

	return response.Created(c, "Facility created successfully", facility)
}

// UpdateFacility handles PUT /api/v1/facilities/:id (admin)
func (h *FacilityHandler) UpdateFacility(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateFacilityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var facility model.Facility
	if err := h.db.First(&facility, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Facility not found")
		}
		return response.InternalServerError(c, "Failed to fetch facility")
	}

	if req.Title != "" {
		facility.Title = validation.SanitizeString(req.Title)
	}
	if req.Type != "" {
		facility.Type = model.FacilityType(req.Type)
	}
	if req.Description != "" {
		facility.Description = req.Description
	}
	if req.Images != nil {
		facility.Images = pq.StringArray(req.Images)
	}
	if req.Status != "" {
		facility.Status = req.Status
	}

	if err := h.db.Save(&facility).Error; err != nil {
		return response.InternalServerError(c, "Failed to update facility")
	}

	return response.SuccessWithMessage(c, "Facility updated successfully", facility)
}

// DeleteFacility handles DELETE /api/v1/facilities/:id (admin)
func (h *FacilityHandler) DeleteFacility(c *fiber.Ctx) error {
	id := c.Params("id")

	var facility model.Facility
	if err := h.db.First(&facility, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Facility not found")
		}
		return response.InternalServerError(c, "Failed to fetch facility")
	}

	if err := h.db.Delete(&facility).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete facility")
	}

	return response.SuccessWithMessage(c, "Facility deleted successfully", nil)
}
