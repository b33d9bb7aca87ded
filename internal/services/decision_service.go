package services

import (
	"context"
	"fmt"
	"time"

	"rentmap-backend/internal/models"
	"rentmap-backend/internal/repositories"
	"rentmap-backend/internal/validators"
	"rentmap-backend/pkg/cache"
	"rentmap-backend/pkg/logger"
	"rentmap-backend/pkg/metrics"
)

const decisionCacheTTL = 30 * 24 * time.Hour

// DecisionService tracks per-user verdicts (like/no/maybe + note) about
// listings, keyed by listing URL. MySQL is the source of truth; Redis is a
// write-through cache in front of single-decision reads.
type DecisionService struct {
	repo      repositories.DecisionRepository
	cache     repositories.DecisionCache
	validator validators.DecisionValidator
}

func NewDecisionService(
	repo repositories.DecisionRepository,
	decisionCache repositories.DecisionCache,
	validator validators.DecisionValidator,
) *DecisionService {
	return &DecisionService{
		repo:      repo,
		cache:     decisionCache,
		validator: validator,
	}
}

func (s *DecisionService) Get(ctx context.Context, userID, listingURL string) (*models.Decision, error) {
	key := cache.DecisionKey(userID, listingURL)
	if decision, err := s.cache.GetDecision(ctx, key); err == nil && decision != nil {
		metrics.CacheHitsTotal.Inc()
		return decision, nil
	}
	metrics.CacheMissesTotal.Inc()

	decision, err := s.repo.FindByURL(ctx, userID, listingURL)
	if err != nil {
		logger.GlobalLogger.Errorf("Decision lookup failed: user=%s, url=%s, error=%v", userID, listingURL, err)
		return nil, fmt.Errorf("database query failed: %v", err)
	}
	if decision == nil {
		return nil, nil
	}

	if err := s.cache.SetDecision(ctx, key, decision, decisionCacheTTL); err != nil {
		logger.GlobalLogger.Errorf("Failed to cache decision: user=%s, error=%v", userID, err)
	}
	return decision, nil
}

func (s *DecisionService) List(ctx context.Context, userID string) ([]models.Decision, error) {
	decisions, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		logger.GlobalLogger.Errorf("Decision list failed: user=%s, error=%v", userID, err)
		return nil, fmt.Errorf("database query failed: %v", err)
	}
	return decisions, nil
}

func (s *DecisionService) Upsert(ctx context.Context, userID string, decision *models.Decision) error {
	if err := s.validator.ValidateUpsert(decision); err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, userID, decision); err != nil {
		logger.GlobalLogger.Errorf("Decision upsert failed: user=%s, url=%s, error=%v", userID, decision.ListingURL, err)
		return fmt.Errorf("database query failed: %v", err)
	}
	decision.UpdatedAt = time.Now()

	key := cache.DecisionKey(userID, decision.ListingURL)
	if err := s.cache.SetDecision(ctx, key, decision, decisionCacheTTL); err != nil {
		logger.GlobalLogger.Errorf("Failed to cache decision: user=%s, error=%v", userID, err)
		_ = s.cache.Delete(ctx, key)
	}
	return nil
}
