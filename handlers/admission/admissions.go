package admission

import (
	"strconv"

	"github.com/gcgpws/backend-portal/model"
	"github.com/gcgpws/backend-portal/services"
	"github.com/gcgpws/backend-portal/utils/middleware"
	"github.com/gcgpws/backend-portal/utils/response"
	"github.com/gofiber/fiber/v2"
)

// AdmissionHandler handles admission application endpoints
type AdmissionHandler struct {
	admissionService *services.AdmissionService
}

// NewAdmissionHandler creates a new admission handler
func NewAdmissionHandler(admissionService *services.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{
		admissionService: admissionService,
	}
}

// Submit handles POST /api/v1/admissions
// Public endpoint accepting a new application
func (h *AdmissionHandler) Submit(c *fiber.Ctx) error {
	var req services.SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	admission, err := h.admissionService.Submit(c.Context(), req)
	if err != nil {
		return response.FromServiceError(c, err)
	}

	return response.Created(c, "Application submitted successfully", fiber.Map{
		"id":           admission.ID,
		"reference_no": admission.ReferenceNo,
		"status":       admission.Status,
	})
}

// List handles GET /api/v1/admissions (admin)
func (h *AdmissionHandler) List(c *fiber.Ctx) error {
	admissions, err := h.admissionService.List(c.Context())
	if err != nil {
		return response.FromServiceError(c, err)
	}

	return response.Success(c, fiber.Map{
		"admissions": admissions,
		"total":      len(admissions),
	})
}

// GetByID handles GET /api/v1/admissions/:id (admin)
func (h *AdmissionHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid admission ID")
	}

	admission, err := h.admissionService.GetByID(c.Context(), uint(id))
	if err != nil {
		return response.FromServiceError(c, err)
	}

	return response.Success(c, admission)
}

type updateStatusRequest struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UpdateStatus handles PATCH /api/v1/admissions/:id/status (admin)
// Applies an approval or rejection decision, or resets to pending
func (h *AdmissionHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid admission ID")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var reviewerID *uint
	if uid, ok := middleware.GetUserID(c); ok {
		reviewerID = &uid
	}

	admission, err := h.admissionService.UpdateStatus(
		c.Context(), uint(id), model.AdmissionStatus(req.Status), req.Message, reviewerID)
	if err != nil {
		return response.FromServiceError(c, err)
	}

	return response.SuccessWithMessage(c, "Application status updated", admission)
}

// GetStats handles GET /api/v1/admissions/stats (admin)
// Returns per-status counts and the five most recent applications
func (h *AdmissionHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.admissionService.GetStats(c.Context())
	if err != nil {
		return response.FromServiceError(c, err)
	}

	return response.Success(c, stats)
}
