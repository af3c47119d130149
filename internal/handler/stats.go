package handler

import (
	"log/slog"
	"net/http"

	"github.com/nikita1503agarwal/perma-backend/internal/ctxkeys"
	"github.com/nikita1503agarwal/perma-backend/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	days, err := parseBoundedInt(r.URL.Query().Get("days"), 30, 1, 365)
	if err != nil {
		writeError(w, http.StatusBadRequest, "days "+err.Error())
		return
	}

	summary, err := h.statsService.Summary(identity, days)
	if err != nil {
		slog.Error("failed to compute summary", "error", err, "user_id", identity.UserID)
		writeError(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
