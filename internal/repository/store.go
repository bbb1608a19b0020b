// Package repository defines the storage interface and implementations.
package repository

import (
	"context"
	"errors"

	"github.com/skinwise/skinwise/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for data persistence.
type Store interface {
	// User operations
	CreateUser(ctx context.Context, user *domain.UserProfile) error
	GetUser(ctx context.Context, userID string) (*domain.UserProfile, error)

	// Product operations
	CreateProduct(ctx context.Context, product *domain.Product) error
	GetProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error)

	// Feedback operations
	CreateFeedback(ctx context.Context, feedback *domain.Feedback) error

	// Conversation operations
	AppendTurn(ctx context.Context, turn *domain.ConversationTurn) error
	// RecentTurns returns up to limit turns for the user in
	// chronological order.
	RecentTurns(ctx context.Context, userID string, limit int) ([]domain.ConversationTurn, error)

	// Lifecycle
	Close() error
}
