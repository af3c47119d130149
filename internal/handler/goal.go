package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/nikita1503agarwal/perma-backend/internal/ctxkeys"
	"github.com/nikita1503agarwal/perma-backend/internal/model"
	"github.com/nikita1503agarwal/perma-backend/internal/repository"
	"github.com/nikita1503agarwal/perma-backend/internal/service"
	"github.com/nikita1503agarwal/perma-backend/internal/validation"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	var payload model.Goal
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = validateGoal(&payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Create(identity, &payload)
	if err != nil {
		slog.Error("failed to create goal", "error", err, "user_id", identity.UserID)
		writeError(w, http.StatusInternalServerError, "failed to create goal")
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	status := r.URL.Query().Get("status")
	err := validation.ValidateGoalStatus(status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	goals, err := h.goalService.Goals(identity, status)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "user_id", identity.UserID)
		writeError(w, http.StatusInternalServerError, "failed to load goals")
		return
	}

	writeJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Patch(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	goalID := r.PathValue("id")
	_, err := uuid.Parse(goalID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	var patch service.GoalPatch
	err = json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = validateGoalPatch(patch)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	goal, err := h.goalService.Patch(identity, goalID, patch)
	if errors.Is(err, service.ErrNoFields) {
		writeError(w, http.StatusBadRequest, "no updates provided")
		return
	}
	if errors.Is(err, repository.ErrGoalNotFound) {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to update goal", "error", err, "user_id", identity.UserID, "goal_id", goalID)
		writeError(w, http.StatusInternalServerError, "failed to update goal")
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := ctxkeys.Identity(r.Context())

	goalID := r.PathValue("id")
	_, err := uuid.Parse(goalID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	err = h.goalService.Delete(identity, goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete goal", "error", err, "user_id", identity.UserID, "goal_id", goalID)
		writeError(w, http.StatusInternalServerError, "failed to delete goal")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func validateGoal(goal *model.Goal) error {
	err := validation.ValidateTitle(goal.Title)
	if err != nil {
		return err
	}
	err = validation.ValidateDimension(goal.Dimension)
	if err != nil {
		return err
	}
	err = validation.ValidateCadence(goal.Cadence)
	if err != nil {
		return err
	}
	err = validation.ValidateGoalStatus(goal.Status)
	if err != nil {
		return err
	}
	return validation.ValidateProgress(goal.Progress)
}

// validateGoalPatch checks only the fields present. An explicit empty
// string is rejected for enum fields; the blank default is reserved for
// create, where it means "use the default".
func validateGoalPatch(patch service.GoalPatch) error {
	if patch.Title != nil {
		err := validation.ValidateTitle(*patch.Title)
		if err != nil {
			return err
		}
	}
	if patch.Dimension != nil {
		err := validation.ValidateDimension(*patch.Dimension)
		if err != nil {
			return err
		}
	}
	if patch.Cadence != nil {
		if *patch.Cadence == "" {
			return errors.New("cadence must be daily, weekly or adhoc")
		}
		err := validation.ValidateCadence(*patch.Cadence)
		if err != nil {
			return err
		}
	}
	if patch.Status != nil {
		if *patch.Status == "" {
			return errors.New("status must be active, done or archived")
		}
		err := validation.ValidateGoalStatus(*patch.Status)
		if err != nil {
			return err
		}
	}
	if patch.Progress != nil {
		err := validation.ValidateProgress(*patch.Progress)
		if err != nil {
			return err
		}
	}
	return nil
}
