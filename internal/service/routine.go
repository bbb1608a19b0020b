package service

import (
	"context"
	"fmt"

	"github.com/skinwise/skinwise/internal/domain"
)

// GenerateRoutine builds a personalized routine for the user. The
// returned Routine may carry an Error tag when generation failed;
// callers must check it before use.
func (s *Service) GenerateRoutine(ctx context.Context, userID string, budget domain.Budget) (*domain.Routine, error) {
	profile, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	routine := s.recommendation.BuildRoutine(ctx, *profile, budget)
	return &routine, nil
}
