package repositories

import (
	"context"
	"time"

	"rentmap-backend/internal/models"
)

type DecisionRepository interface {
	FindByURL(ctx context.Context, userID, listingURL string) (*models.Decision, error)
	FindAllByUser(ctx context.Context, userID string) ([]models.Decision, error)
	Upsert(ctx context.Context, userID string, decision *models.Decision) error
}

type DecisionCache interface {
	GetDecision(ctx context.Context, key string) (*models.Decision, error)
	SetDecision(ctx context.Context, key string, decision *models.Decision, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
