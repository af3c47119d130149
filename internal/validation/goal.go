package validation

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/nikita1503agarwal/perma-backend/internal/model"
)

// ValidateTitle validates a goal title.
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if len(trimmed) > 200 {
		return errors.New("title is too long (max 200 characters)")
	}

	return nil
}

// ValidateDimension checks a PERMA dimension code (P, E, R, M or A).
func ValidateDimension(dimension string) error {
	if !slices.Contains(model.Dimensions, dimension) {
		return fmt.Errorf("dimension must be one of %s", strings.Join(model.Dimensions, ", "))
	}
	return nil
}

// ValidateCadence checks a goal cadence. Empty is allowed; callers default
// it to daily.
func ValidateCadence(cadence string) error {
	switch cadence {
	case "", model.CadenceDaily, model.CadenceWeekly, model.CadenceAdhoc:
		return nil
	}
	return errors.New("cadence must be daily, weekly or adhoc")
}

// ValidateGoalStatus checks a goal status. Empty is allowed; callers
// default it to active.
func ValidateGoalStatus(status string) error {
	switch status {
	case "", model.GoalStatusActive, model.GoalStatusDone, model.GoalStatusArchived:
		return nil
	}
	return errors.New("status must be active, done or archived")
}

// ValidateProgress checks goal progress against the 0-100 scale.
func ValidateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return errors.New("progress must be between 0 and 100")
	}
	return nil
}
