package pagecontent

import (
	"github.com/gcgpws/backend-portal/model"
	"github.com/gcgpws/backend-portal/utils/response"
	"github.com/gcgpws/backend-portal/utils/validation"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PageContentHandler handles editable page section content
// (homepage hero, principal's message, stats tiles and similar).
type PageContentHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewPageContentHandler creates a new page content handler
func NewPageContentHandler(db *gorm.DB) *PageContentHandler {
	return &PageContentHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// UpsertSectionRequest represents the request body for writing a section.
// A section is addressed by page plus section name; writing an existing
// pair overwrites it.
type UpsertSectionRequest struct {
	Page        string         `json:"page" validate:"required,max=50"`
	Section     string         `json:"section" validate:"required,max=50"`
	Title       string         `json:"title" validate:"omitempty,max=255"`
	Subtitle    string         `json:"subtitle" validate:"omitempty,max=255"`
	Description string         `json:"description" validate:"omitempty"`
	ImageURL    string         `json:"image_url" validate:"omitempty,max=512"`
	Items       datatypes.JSON `json:"items" validate:"omitempty"`
}

// GetPage handles GET /api/v1/pages/:page
// Returns every section of the named page
func (h *PageContentHandler) GetPage(c *fiber.Ctx) error {
	page := c.Params("page")

	var sections []model.PageSection
	if err := h.db.Where("page = ?", page).
		Order("section ASC").
		Find(&sections).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch page content")
	}

	return response.Success(c, fiber.Map{
		"page":     page,
		"sections": sections,
	})
}

// GetSection handles GET /api/v1/pages/:page/:section
func (h *PageContentHandler) GetSection(c *fiber.Ctx) error {
	page := c.Params("page")
	section := c.Params("section")

	var pageSection model.PageSection
	if err := h.db.Where("page = ? AND section = ?", page, section).
		First(&pageSection).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Page section not found")
		}
		return response.InternalServerError(c, "Failed to fetch page section")
	}

	return response.Success(c, pageSection)
}

// UpsertSection handles PUT /api/v1/pages (admin)
func (h *PageContentHandler) UpsertSection(c *fiber.Ctx) error {
	var req UpsertSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var section model.PageSection
	err := h.db.Where("page = ? AND section = ?", req.Page, req.Section).
		First(&section).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return response.InternalServerError(c, "Failed to fetch page section")
	}

	section.Page = req.Page
	section.Section = req.Section
	section.Title = validation.SanitizeString(req.Title)
	section.Subtitle = validation.SanitizeString(req.Subtitle)
	section.Description = req.Description
	section.ImageURL = req.ImageURL
	if req.Items != nil {
		section.Items = req.Items
	}

	if err := h.db.Save(&section).Error; err != nil {
		return response.InternalServerError(c, "Failed to save page section")
	}

	return response.SuccessWithMessage(c, "Page section saved successfully", section)
}

// DeleteSection handles DELETE /api/v1/pages/:page/:section (admin)
func (h *PageContentHandler) DeleteSection(c *fiber.Ctx) error {
	page := c.Params("page")
	sectionName := c.Params("section")

	var section model.PageSection
	if err := h.db.Where("page = ? AND section = ?", page, sectionName).
		First(&section).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Page section not found")
		}
		return response.InternalServerError(c, "Failed to fetch page section")
	}

	if err := h.db.Delete(&section).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete page section")
	}

	return response.SuccessWithMessage(c, "Page section deleted successfully", nil)
}
