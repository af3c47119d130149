package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nikita1503agarwal/perma-backend/internal/ctxkeys"
	"github.com/nikita1503agarwal/perma-backend/internal/model"
	"github.com/nikita1503agarwal/perma-backend/internal/service"
	"github.com/nikita1503agarwal/perma-backend/internal/validation"
)

type CheckInHandler struct {
	checkInService *service.CheckInService
}

func NewCheckInHandler(checkInService *service.CheckInService) *CheckInHandler {
	return &CheckInHandler{
		checkInService: checkInService,
	}
}

func (h *CheckInHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	var payload model.CheckIn
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = validation.ValidateCheckIn(&payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	checkIn, err := h.checkInService.Submit(identity, &payload)
	if err != nil {
		slog.Error("failed to submit check-in", "error", err, "user_id", identity.UserID)
		writeError(w, http.StatusInternalServerError, "failed to save check-in")
		return
	}

	writeJSON(w, http.StatusOK, checkIn)
}

func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	if err := validation.ValidateDate(start); err != nil {
		writeError(w, http.StatusBadRequest, "start "+err.Error())
		return
	}
	if err := validation.ValidateDate(end); err != nil {
		writeError(w, http.StatusBadRequest, "end "+err.Error())
		return
	}

	limit, err := parseBoundedInt(r.URL.Query().Get("limit"), 30, 1, 365)
	if err != nil {
		writeError(w, http.StatusBadRequest, "limit "+err.Error())
		return
	}

	checkIns, err := h.checkInService.List(identity, start, end, limit)
	if err != nil {
		slog.Error("failed to list check-ins", "error", err, "user_id", identity.UserID)
		writeError(w, http.StatusInternalServerError, "failed to load check-ins")
		return
	}

	writeJSON(w, http.StatusOK, checkIns)
}
