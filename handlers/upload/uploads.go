package upload

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gcgpws/backend-portal/services/storage"
	"github.com/gcgpws/backend-portal/utils/pdfvalidation"
	"github.com/gcgpws/backend-portal/utils/response"
	"github.com/gofiber/fiber/v2"
)

const maxImageSizeMB = 5

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

var uploadCategories = map[string]bool{
	"admissions": true,
	"facilities": true,
	"news":       true,
	"resources":  true,
	"pages":      true,
	"misc":       true,
}

// UploadHandler handles file uploads to object storage. Applicants upload
// photos and PDF documents here before submitting an application; admins
// upload site media through the same endpoint.
type UploadHandler struct {
	spaces *storage.SpacesClient
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(spaces *storage.SpacesClient) *UploadHandler {
	return &UploadHandler{
		spaces: spaces,
	}
}

// Upload handles POST /api/v1/uploads
// Accepts a multipart file plus a category form field. PDFs are validated
// for size and page count before storage.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.ServiceUnavailable(c, "File storage is not configured")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "No file provided")
	}

	category := c.FormValue("category", "misc")
	if !uploadCategories[category] {
		return response.BadRequest(c, "Invalid upload category")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch {
	case ext == ".pdf":
		docType := c.FormValue("document_type", "marksheet")
		limits := pdfvalidation.MarksheetLimits
		if docType == "id_proof" {
			limits = pdfvalidation.IDProofLimits
		}

		result, err := pdfvalidation.ValidatePDFFile(file, limits)
		if err != nil {
			return response.InternalServerError(c, "Failed to validate PDF")
		}
		if !result.Valid {
			return response.BadRequest(c, result.Error)
		}

	case imageExtensions[ext]:
		if file.Size > maxImageSizeMB*1024*1024 {
			return response.BadRequest(c,
				fmt.Sprintf("Image exceeds maximum allowed size of %dMB", maxImageSizeMB))
		}

	default:
		return response.BadRequest(c, "Unsupported file type, expected an image or PDF")
	}

	src, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	key := storage.ObjectKey(category, file.Filename)
	url, err := h.spaces.Upload(c.Context(), key, src, storage.ContentType(file.Filename))
	if err != nil {
		return response.InternalServerError(c, "Failed to store file")
	}

	return response.Created(c, "File uploaded successfully", fiber.Map{
		"key":  key,
		"url":  url,
		"size": file.Size,
	})
}

// DeleteFile handles DELETE /api/v1/uploads (admin)
// Removes a stored object so replaced media does not accumulate in the
// bucket. The key must be one this service issued.
func (h *UploadHandler) DeleteFile(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.ServiceUnavailable(c, "File storage is not configured")
	}

	key := c.Query("key")
	if !validObjectKey(key) {
		return response.BadRequest(c, "Invalid object key")
	}

	if err := h.spaces.Delete(c.Context(), key); err != nil {
		return response.InternalServerError(c, "Failed to delete file")
	}

	return response.Success(c, fiber.Map{"key": key})
}

// validObjectKey accepts only category/filename keys in the categories this
// service issues, with no path traversal.
func validObjectKey(key string) bool {
	parts := strings.SplitN(key, "/", 2)
	if len(parts) != 2 || !uploadCategories[parts[0]] {
		return false
	}
	name := parts[1]
	return name != "" && !strings.Contains(name, "/") && !strings.Contains(name, "..")
}
