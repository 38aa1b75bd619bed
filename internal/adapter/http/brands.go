package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"adbudget/internal/core/port"
)

// handleInitBrand creates or replaces a brand from a JSON definition and
// returns its initial state with HTTP 201.
func (h *Handler) handleInitBrand(w http.ResponseWriter, r *http.Request) {
	var def port.BrandDefinition
	if err := json.NewDecoder(r.Body).Decode(&def); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	taskID := newTaskID()
	name, err := h.svc.InitializeBrand(r.Context(), def)
	if err != nil {
		h.writeError(w, taskID, err)
		return
	}
	snap, err := h.svc.GetBrand(r.Context(), name)
	if err != nil {
		h.writeError(w, taskID, err)
		return
	}
	h.logger.Info("brand initialized", slog.String("task_id", taskID), slog.String("brand", name))
	h.writeJSON(w, http.StatusCreated, TaskResponse{TaskID: taskID, Brand: &snap})
}

func (h *Handler) handleListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.svc.ListBrands(r.Context())
	if err != nil {
		h.writeError(w, "", err)
		return
	}
	h.writeJSON(w, http.StatusOK, BrandsResponse{Brands: brands})
}

func (h *Handler) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.GetBrand(r.Context(), brandName(r))
	if err != nil {
		h.writeError(w, "", err)
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}

// handleUpdateSpend records spend against both budgets of a brand. The
// amount is required; unknown brands produce HTTP 404.
func (h *Handler) handleUpdateSpend(w http.ResponseWriter, r *http.Request) {
	var req SpendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Amount == nil {
		http.Error(w, "missing amount", http.StatusBadRequest)
		return
	}
	taskID := newTaskID()
	snap, err := h.svc.UpdateBrandSpend(r.Context(), brandName(r), *req.Amount)
	if err != nil {
		h.writeError(w, taskID, err)
		return
	}
	h.writeJSON(w, http.StatusOK, TaskResponse{TaskID: taskID, Brand: &snap})
}

func (h *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	name := brandName(r)
	taskID := newTaskID()
	if err := h.svc.DeactivateBrandCampaigns(r.Context(), name); err != nil {
		h.writeError(w, taskID, err)
		return
	}
	snap, err := h.svc.GetBrand(r.Context(), name)
	if err != nil {
		h.writeError(w, taskID, err)
		return
	}
	h.writeJSON(w, http.StatusOK, TaskResponse{TaskID: taskID, Brand: &snap})
}

// brandName returns the decoded {name} parameter. chi matches against the
// raw path when the request carries escaped characters such as %2F.
func brandName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}
