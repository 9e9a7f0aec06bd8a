package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gcgpws/backend-portal/utils/apperrors"
	"github.com/gofiber/fiber/v2"
)

func TestCalculatePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPage  int
		wantLimit int
		wantPages int
	}{
		{"exact division", 1, 10, 30, 1, 10, 3},
		{"remainder adds page", 2, 10, 25, 2, 10, 3},
		{"zero total", 1, 10, 0, 1, 10, 0},
		{"page floor", 0, 10, 10, 1, 10, 1},
		{"limit floor", 1, 0, 10, 1, 10, 1},
		{"limit cap", 1, 500, 1000, 1, 100, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculatePagination(tc.page, tc.limit, tc.total)
			if got.CurrentPage != tc.wantPage {
				t.Errorf("CurrentPage = %d, want %d", got.CurrentPage, tc.wantPage)
			}
			if got.PerPage != tc.wantLimit {
				t.Errorf("PerPage = %d, want %d", got.PerPage, tc.wantLimit)
			}
			if got.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tc.wantPages)
			}
			if got.Total != tc.total {
				t.Errorf("Total = %d, want %d", got.Total, tc.total)
			}
		})
	}
}

func TestClampPageLimit(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"in range", 2, 20, 2, 20},
		{"negative limit", 1, -1, 1, 10},
		{"zero limit", 1, 0, 1, 10},
		{"limit cap", 1, 500, 1, 100},
		{"negative page", -3, 20, 1, 20},
		{"zero page", 0, 20, 1, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := ClampPageLimit(tc.page, tc.limit)
			if page != tc.wantPage || limit != tc.wantLimit {
				t.Errorf("ClampPageLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
			}
			// A clamped limit is always positive so the query's LIMIT and
			// OFFSET clauses can never be cancelled by client input.
			if limit < 1 || page < 1 {
				t.Errorf("ClampPageLimit(%d, %d) returned non-positive values", tc.page, tc.limit)
			}
		})
	}
}

func TestFromServiceErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", apperrors.NewValidationError("email", "bad"), http.StatusBadRequest},
		{"not found", apperrors.NewNotFoundError("admission", 7), http.StatusNotFound},
		{"persistence", apperrors.NewPersistenceError("save", errors.New("down")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return FromServiceError(c, tc.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
		})
	}
}
