package upload

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestValidObjectKey(t *testing.T) {
	valid := []string{
		"admissions/2f8a7c1e-9f1d-4a6b-8f2a-1c3d5e7f9a0b.pdf",
		"facilities/photo.jpg",
		"misc/a.png",
	}
	for _, key := range valid {
		if !validObjectKey(key) {
			t.Errorf("expected %q to be accepted", key)
		}
	}

	invalid := []string{
		"",
		"photo.jpg",
		"unknown/photo.jpg",
		"admissions/",
		"admissions/../secrets",
		"admissions/a/b.jpg",
	}
	for _, key := range invalid {
		if validObjectKey(key) {
			t.Errorf("expected %q to be rejected", key)
		}
	}
}

func TestUploadsUnavailableWithoutStorage(t *testing.T) {
	h := NewUploadHandler(nil)

	app := fiber.New()
	app.Post("/uploads", h.Upload)
	app.Delete("/uploads", h.DeleteFile)

	for _, method := range []string{http.MethodPost, http.MethodDelete} {
		req := httptest.NewRequest(method, "/uploads", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("%s /uploads status = %d, want %d", method, resp.StatusCode, http.StatusServiceUnavailable)
		}
	}
}
