package validation

import (
	"errors"
	"strings"

	"github.com/nikita1503agarwal/perma-backend/internal/model"
)

// ValidateReflection validates a reflection payload.
func ValidateReflection(r *model.Reflection) error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("text is required")
	}

	for _, tag := range r.Tags {
		if strings.TrimSpace(tag) == "" {
			return errors.New("tags must not be blank")
		}
	}

	return ValidateDate(r.Date)
}
