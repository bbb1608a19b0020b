package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/skinwise/skinwise/internal/domain"
)

// Chat routes a user message through the orchestrator and records both
// sides of the exchange. Persistence failures on the turns are logged
// but do not fail the chat; the reply has already been produced.
func (s *Service) Chat(ctx context.Context, userID, message string) (*domain.RouteResult, error) {
	profile, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	history, err := s.store.RecentTurns(ctx, userID, s.config.HistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	result := s.router.Route(ctx, message, *profile, history)

	now := time.Now()
	userTurn := &domain.ConversationTurn{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      domain.RoleUser,
		Message:   message,
		Timestamp: now,
	}
	assistantTurn := &domain.ConversationTurn{
		ID:        uuid.New().String(),
		UserID:    userID,
		Role:      domain.RoleAssistant,
		Message:   result.Response,
		AgentUsed: result.AgentUsed,
		Timestamp: now,
	}

	if err := s.store.AppendTurn(ctx, userTurn); err != nil {
		log.Printf("WARN: failed to record user turn: %v", err)
	}
	if err := s.store.AppendTurn(ctx, assistantTurn); err != nil {
		log.Printf("WARN: failed to record assistant turn: %v", err)
	}

	return &result, nil
}
