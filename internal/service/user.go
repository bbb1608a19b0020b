package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skinwise/skinwise/internal/domain"
)

// CreatedUser is returned when a profile is created from a description.
type CreatedUser struct {
	UserID            string                   `json:"user_id"`
	Profile           domain.ProfileExtraction `json:"profile"`
	FollowUpQuestions []string                 `json:"follow_up_questions"`
}

// CreateUserFromDescription extracts a structured profile from a natural
// language skin description and persists it. This is the only path that
// writes profiles; the router never does.
func (s *Service) CreateUserFromDescription(ctx context.Context, name string, age int, description string) (*CreatedUser, error) {
	extraction := s.profileAgent.AnalyzeDescription(ctx, description)

	user := &domain.UserProfile{
		UserID:    uuid.New().String(),
		Name:      name,
		Age:       age,
		SkinType:  extraction.SkinType,
		Concerns:  extraction.Concerns,
		Allergies: []string{},
		Climate:   "temperate",
		CreatedAt: time.Now(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreatedUser{
		UserID:            user.UserID,
		Profile:           extraction,
		FollowUpQuestions: extraction.FollowUpQuestions,
	}, nil
}

// GetUser retrieves a stored profile.
func (s *Service) GetUser(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return s.store.GetUser(ctx, userID)
}
