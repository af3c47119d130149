package validation

import (
	"errors"
	"fmt"
	"time"

	"github.com/nikita1503agarwal/perma-backend/internal/model"
)

// ValidateScore checks a single PERMA score against the 0-10 scale.
func ValidateScore(name string, value int) error {
	if value < 0 || value > 10 {
		return fmt.Errorf("score %q must be between 0 and 10", name)
	}
	return nil
}

// ValidateDate checks an ISO date string (YYYY-MM-DD). Empty is allowed;
// callers default empty dates to today.
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}
	_, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return errors.New("date must be formatted YYYY-MM-DD")
	}
	return nil
}

// ValidateCheckIn validates a check-in payload's scores and date.
func ValidateCheckIn(c *model.CheckIn) error {
	scores := map[string]int{"p": c.P, "e": c.E, "r": c.R, "m": c.M, "a": c.A}
	for _, name := range []string{"p", "e", "r", "m", "a"} {
		err := ValidateScore(name, scores[name])
		if err != nil {
			return err
		}
	}
	return ValidateDate(c.Date)
}
