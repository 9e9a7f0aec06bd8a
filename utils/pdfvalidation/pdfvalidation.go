package pdfvalidation

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFLimits defines the validation limits for PDF uploads
type PDFLimits struct {
	MaxFileSizeMB    int
	MaxPages         int
	DocumentTypeName string // For error messages (e.g., "marksheet", "id proof")
}

// Limits per admission document kind
var (
	MarksheetLimits = PDFLimits{
		MaxFileSizeMB:    10,
		MaxPages:         10,
		DocumentTypeName: "marksheet",
	}

	IDProofLimits = PDFLimits{
		MaxFileSizeMB:    5,
		MaxPages:         4,
		DocumentTypeName: "id proof",
	}
)

// ValidationResult contains the result of PDF validation
type ValidationResult struct {
	Valid     bool
	PageCount int
	FileSize  int64
	Error     string
}

// ValidatePDFFile validates an uploaded PDF against the given limits.
// A malformed or oversized file yields Valid=false with a reason; only I/O
// failures return an error.
func ValidatePDFFile(file *multipart.FileHeader, limits PDFLimits) (*ValidationResult, error) {
	result := &ValidationResult{
		FileSize: file.Size,
	}

	// 1. Validate file size
	maxSize := int64(limits.MaxFileSizeMB) * 1024 * 1024
	if file.Size > maxSize {
		result.Error = fmt.Sprintf("File size exceeds maximum allowed size of %dMB", limits.MaxFileSizeMB)
		return result, nil
	}

	// 2. Validate file extension
	filename := strings.ToLower(file.Filename)
	if !strings.HasSuffix(filename, ".pdf") {
		result.Error = fmt.Sprintf("Only PDF files are accepted for %s uploads", limits.DocumentTypeName)
		return result, nil
	}

	// 3. Parse the PDF to confirm it is well formed and count pages
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		result.Error = fmt.Sprintf("The uploaded %s is not a readable PDF", limits.DocumentTypeName)
		return result, nil
	}

	result.PageCount = reader.NumPage()
	if result.PageCount > limits.MaxPages {
		result.Error = fmt.Sprintf("The %s must have at most %d pages", limits.DocumentTypeName, limits.MaxPages)
		return result, nil
	}

	result.Valid = true
	return result, nil
}
