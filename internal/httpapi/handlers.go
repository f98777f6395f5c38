package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sven-0414/nhl-data-service/internal/domain"
	"github.com/sven-0414/nhl-data-service/internal/poller"
	"github.com/sven-0414/nhl-data-service/internal/timeutil"
)

// ScheduleSource serves games for a calendar date. The schedule cache
// satisfies this.
type ScheduleSource interface {
	GamesByDate(ctx context.Context, date string) ([]domain.Game, error)
}

// Handler wires HTTP routes to the schedule cache.
type Handler struct {
	source   ScheduleSource
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil when no backfill
// poller is running; readiness then reports ready.
func NewHandler(source ScheduleSource, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		source:   source,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the service is ready to serve traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		return
	}
	status := h.statusFn()
	if !status.IsReady() {
		h.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  status.LastError,
		})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// GamesByDate returns the games for a calendar date. An invalid date is a
// 400, a date with no games is a 204, anything else is the JSON game list.
func (h *Handler) GamesByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := timeutil.ParseDate(date); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	games, err := h.source.GamesByDate(r.Context(), date)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "failed to load games")
		return
	}
	if len(games) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeJSON(w, http.StatusOK, games)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
