package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikita1503agarwal/perma-backend/internal/model"
	"github.com/nikita1503agarwal/perma-backend/internal/repository"
)

type ReflectionService struct {
	repo repository.ReflectionRepository
	now  func() time.Time
}

func NewReflectionService(repo repository.ReflectionRepository) *ReflectionService {
	return &ReflectionService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *ReflectionService) Create(identity model.Identity, payload *model.Reflection) (*model.Reflection, error) {
	now := s.now()

	userID := payload.UserID
	if userID == "" {
		userID = identity.UserID
	}

	date := payload.Date
	if date == "" {
		date = now.Format(model.DateLayout)
	}

	tags := payload.Tags
	if tags == nil {
		tags = model.Tags{}
	}

	reflection := &model.Reflection{
		ID:        uuid.New().String(),
		UserID:    userID,
		Text:      payload.Text,
		Tags:      tags,
		Date:      date,
		CreatedAt: now,
	}

	err := s.repo.Create(reflection)
	if err != nil {
		return nil, fmt.Errorf("failed to create reflection: %w", err)
	}

	return reflection, nil
}

func (s *ReflectionService) Reflections(identity model.Identity, tag string, limit int) ([]*model.Reflection, error) {
	reflections, err := s.repo.Reflections(identity.UserID, tag, limit)
	if err != nil {
		return nil, err
	}

	if reflections == nil {
		reflections = []*model.Reflection{}
	}
	return reflections, nil
}
