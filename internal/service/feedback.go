package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skinwise/skinwise/internal/domain"
)

// feedbackPoints is the fixed reward for submitting product feedback.
const feedbackPoints = 10

// SubmitFeedback stores a user's product feedback and returns the points
// earned.
func (s *Service) SubmitFeedback(ctx context.Context, feedback domain.Feedback) (int, error) {
	feedback.ID = uuid.New().String()
	feedback.Timestamp = time.Now()

	if err := s.store.CreateFeedback(ctx, &feedback); err != nil {
		return 0, fmt.Errorf("failed to store feedback: %w", err)
	}

	return feedbackPoints, nil
}
