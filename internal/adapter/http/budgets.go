package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

func (h *Handler) handleResetDaily(w http.ResponseWriter, r *http.Request) {
	taskID := newTaskID()
	if err := h.svc.ResetDailyBudgets(r.Context()); err != nil {
		h.writeError(w, taskID, err)
		return
	}
	h.logger.Info("daily budgets reset", slog.String("task_id", taskID))
	h.writeJSON(w, http.StatusOK, TaskResponse{TaskID: taskID})
}

func (h *Handler) handleResetMonthly(w http.ResponseWriter, r *http.Request) {
	taskID := newTaskID()
	if err := h.svc.ResetMonthlyBudgets(r.Context()); err != nil {
		h.writeError(w, taskID, err)
		return
	}
	h.logger.Info("monthly budgets reset", slog.String("task_id", taskID))
	h.writeJSON(w, http.StatusOK, TaskResponse{TaskID: taskID})
}

// handleCheckStatus re-evaluates every campaign. The body is optional; when
// it carries an RFC3339 "at" the evaluation uses that instant in its own
// offset, otherwise the current time in the handler's location.
func (h *Handler) handleCheckStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	at := h.now().In(h.loc)
	if req.At != nil {
		at = *req.At
	}
	taskID := newTaskID()
	if err := h.svc.CheckCampaignStatus(r.Context(), at); err != nil {
		h.writeError(w, taskID, err)
		return
	}
	h.logger.Info("campaign status checked", slog.String("task_id", taskID), slog.Time("at", at))
	h.writeJSON(w, http.StatusOK, TaskResponse{TaskID: taskID})
}
