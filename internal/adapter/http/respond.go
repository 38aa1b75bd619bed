package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"adbudget/internal/core/domain"
)

// TaskResponse is returned by every mutating endpoint.
type TaskResponse struct {
	TaskID string                `json:"task_id"`
	Brand  *domain.BrandSnapshot `json:"brand,omitempty"`
}

// SpendRequest is the body of POST /brands/{name}/spend.
type SpendRequest struct {
	Amount *float64 `json:"amount"`
}

// StatusRequest is the optional body of POST /campaigns/status. A missing
// At means now.
type StatusRequest struct {
	At *time.Time `json:"at,omitempty"`
}

// BrandsResponse wraps GET /brands.
type BrandsResponse struct {
	Brands []domain.BrandSnapshot `json:"brands"`
}

func newTaskID() string {
	return uuid.NewString()
}

// writeJSON encodes v with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors onto status codes. Unknown brands produce
// 404, validation failures 400 and anything else a logged 500.
func (h *Handler) writeError(w http.ResponseWriter, taskID string, err error) {
	switch {
	case errors.Is(err, domain.ErrBrandNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidBudget),
		errors.Is(err, domain.ErrInvalidDayparting),
		errors.Is(err, domain.ErrEmptyName):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error("task failed", slog.String("task_id", taskID), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
