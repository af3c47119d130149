package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikita1503agarwal/perma-backend/internal/model"
	"github.com/nikita1503agarwal/perma-backend/internal/repository"
)

type CheckInService struct {
	repo repository.CheckInRepository
	now  func() time.Time
}

func NewCheckInService(repo repository.CheckInRepository) *CheckInService {
	return &CheckInService{
		repo: repo,
		now:  time.Now,
	}
}

// Submit upserts a check-in keyed by (user, date). A resubmission for a date
// that already has a check-in overwrites its scores and note, keeping the
// original id and creation time. Concurrent submissions for the same date
// resolve last-write-wins; no lock is taken.
func (s *CheckInService) Submit(identity model.Identity, payload *model.CheckIn) (*model.CheckIn, error) {
	now := s.now()

	userID := payload.UserID
	if userID == "" {
		userID = identity.UserID
	}

	date := payload.Date
	if date == "" {
		date = now.Format(model.DateLayout)
	}

	existing, err := s.repo.ByUserAndDate(userID, date)
	if err != nil && err != repository.ErrCheckInNotFound {
		return nil, fmt.Errorf("failed to look up check-in: %w", err)
	}

	if existing != nil {
		existing.P = payload.P
		existing.E = payload.E
		existing.R = payload.R
		existing.M = payload.M
		existing.A = payload.A
		existing.Note = payload.Note
		existing.UpdatedAt = now

		err = s.repo.Update(existing)
		if err != nil {
			return nil, fmt.Errorf("failed to update check-in: %w", err)
		}
		return existing, nil
	}

	checkIn := &model.CheckIn{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      date,
		P:         payload.P,
		E:         payload.E,
		R:         payload.R,
		M:         payload.M,
		A:         payload.A,
		Note:      payload.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.repo.Create(checkIn)
	if err != nil {
		return nil, fmt.Errorf("failed to create check-in: %w", err)
	}

	return checkIn, nil
}

// List returns the user's check-ins in date order, bounded by optional
// inclusive start/end dates.
func (s *CheckInService) List(identity model.Identity, start, end string, limit int) ([]*model.CheckIn, error) {
	checkIns, err := s.repo.Range(identity.UserID, start, end, limit)
	if err != nil {
		return nil, err
	}

	if checkIns == nil {
		checkIns = []*model.CheckIn{}
	}
	return checkIns, nil
}
