package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikita1503agarwal/perma-backend/internal/model"
	"github.com/nikita1503agarwal/perma-backend/internal/repository"
)

var (
	ErrNoFields = errors.New("no fields to update")
)

// GoalPatch carries a partial goal update; nil fields are left untouched.
type GoalPatch struct {
	Title     *string `json:"title"`
	Dimension *string `json:"dimension"`
	Cadence   *string `json:"cadence"`
	Status    *string `json:"status"`
	Progress  *int    `json:"progress"`
}

func (p GoalPatch) Empty() bool {
	return p.Title == nil && p.Dimension == nil && p.Cadence == nil && p.Status == nil && p.Progress == nil
}

type GoalService struct {
	repo repository.GoalRepository
	now  func() time.Time
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *GoalService) Create(identity model.Identity, payload *model.Goal) (*model.Goal, error) {
	now := s.now()

	userID := payload.UserID
	if userID == "" {
		userID = identity.UserID
	}

	cadence := payload.Cadence
	if cadence == "" {
		cadence = model.CadenceDaily
	}

	status := payload.Status
	if status == "" {
		status = model.GoalStatusActive
	}

	goal := &model.Goal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     payload.Title,
		Dimension: payload.Dimension,
		Cadence:   cadence,
		Status:    status,
		Progress:  payload.Progress,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Goals(identity model.Identity, status string) ([]*model.Goal, error) {
	goals, err := s.repo.Goals(identity.UserID, status)
	if err != nil {
		return nil, err
	}

	if goals == nil {
		goals = []*model.Goal{}
	}
	return goals, nil
}

// Patch applies the non-nil fields of patch to the goal and stamps
// updated_at. The lookup is scoped to the caller, so a goal owned by
// someone else surfaces as not-found.
func (s *GoalService) Patch(identity model.Identity, goalID string, patch GoalPatch) (*model.Goal, error) {
	if patch.Empty() {
		return nil, ErrNoFields
	}

	goal, err := s.repo.ByID(identity.UserID, goalID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		goal.Title = *patch.Title
	}
	if patch.Dimension != nil {
		goal.Dimension = *patch.Dimension
	}
	if patch.Cadence != nil {
		goal.Cadence = *patch.Cadence
	}
	if patch.Status != nil {
		goal.Status = *patch.Status
	}
	if patch.Progress != nil {
		goal.Progress = *patch.Progress
	}
	goal.UpdatedAt = s.now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Delete(identity model.Identity, goalID string) error {
	return s.repo.Delete(identity.UserID, goalID)
}
