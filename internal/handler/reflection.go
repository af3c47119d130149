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

type ReflectionHandler struct {
	reflectionService *service.ReflectionService
}

func NewReflectionHandler(reflectionService *service.ReflectionService) *ReflectionHandler {
	return &ReflectionHandler{
		reflectionService: reflectionService,
	}
}

func (h *ReflectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	var payload model.Reflection
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = validation.ValidateReflection(&payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reflection, err := h.reflectionService.Create(identity, &payload)
	if err != nil {
		slog.Error("failed to create reflection", "error", err, "user_id", identity.UserID)
		writeError(w, http.StatusInternalServerError, "failed to create reflection")
		return
	}

	writeJSON(w, http.StatusOK, reflection)
}

func (h *ReflectionHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	tag := r.URL.Query().Get("tag")

	limit, err := parseBoundedInt(r.URL.Query().Get("limit"), 50, 1, 200)
	if err != nil {
		writeError(w, http.StatusBadRequest, "limit "+err.Error())
		return
	}

	reflections, err := h.reflectionService.Reflections(identity, tag, limit)
	if err != nil {
		slog.Error("failed to list reflections", "error", err, "user_id", identity.UserID)
		writeError(w, http.StatusInternalServerError, "failed to load reflections")
		return
	}

	writeJSON(w, http.StatusOK, reflections)
}
