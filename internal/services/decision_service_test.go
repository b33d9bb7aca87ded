package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"rentmap-backend/internal/models"
	"rentmap-backend/internal/validators"
)

type fakeDecisionRepo struct {
	rows    map[string]models.Decision // userID + "\n" + url
	failing bool
}

func newFakeDecisionRepo() *fakeDecisionRepo {
	return &fakeDecisionRepo{rows: make(map[string]models.Decision)}
}

func (r *fakeDecisionRepo) key(userID, url string) string { return userID + "\n" + url }

func (r *fakeDecisionRepo) FindByURL(ctx context.Context, userID, listingURL string) (*models.Decision, error) {
	if r.failing {
		return nil, fmt.Errorf("connection refused")
	}
	if d, ok := r.rows[r.key(userID, listingURL)]; ok {
		return &d, nil
	}
	return nil, nil
}

func (r *fakeDecisionRepo) FindAllByUser(ctx context.Context, userID string) ([]models.Decision, error) {
	if r.failing {
		return nil, fmt.Errorf("connection refused")
	}
	var out []models.Decision
	for key, d := range r.rows {
		if key[:len(userID)] == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDecisionRepo) Upsert(ctx context.Context, userID string, decision *models.Decision) error {
	if r.failing {
		return fmt.Errorf("connection refused")
	}
	r.rows[r.key(userID, decision.ListingURL)] = *decision
	return nil
}

type fakeDecisionCache struct {
	entries map[string]models.Decision
	gets    int
	hits    int
}

func newFakeDecisionCache() *fakeDecisionCache {
	return &fakeDecisionCache{entries: make(map[string]models.Decision)}
}

func (c *fakeDecisionCache) GetDecision(ctx context.Context, key string) (*models.Decision, error) {
	c.gets++
	if d, ok := c.entries[key]; ok {
		c.hits++
		return &d, nil
	}
	return nil, nil
}

func (c *fakeDecisionCache) SetDecision(ctx context.Context, key string, decision *models.Decision, expiration time.Duration) error {
	c.entries[key] = *decision
	return nil
}

func (c *fakeDecisionCache) Delete(ctx context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func newDecisionService(repo *fakeDecisionRepo, cache *fakeDecisionCache) *DecisionService {
	return NewDecisionService(repo, cache, validators.NewDecisionValidator())
}

const testListingURL = "https://www.leboncoin.fr/ad/locations/42"

func TestDecisionUpsert_WritesThroughCache(t *testing.T) {
	repo := newFakeDecisionRepo()
	cache := newFakeDecisionCache()
	svc := newDecisionService(repo, cache)
	ctx := context.Background()

	decision := &models.Decision{ListingURL: testListingURL, State: models.DecisionLike, Note: "jardin"}
	if err := svc.Upsert(ctx, "u1", decision); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 stored row, got %d", len(repo.rows))
	}
	if len(cache.entries) != 1 {
		t.Fatalf("expected 1 cached entry, got %d", len(cache.entries))
	}

	got, err := svc.Get(ctx, "u1", testListingURL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.State != models.DecisionLike || got.Note != "jardin" {
		t.Fatalf("got %+v", got)
	}
	if cache.hits != 1 {
		t.Fatalf("expected the read to hit the cache, hits=%d", cache.hits)
	}
}

func TestDecisionUpsert_RejectsUnknownState(t *testing.T) {
	svc := newDecisionService(newFakeDecisionRepo(), newFakeDecisionCache())

	decision := &models.Decision{ListingURL: testListingURL, State: "love"}
	if err := svc.Upsert(context.Background(), "u1", decision); err == nil {
		t.Fatal("expected an error for unknown state")
	}
}

func TestDecisionUpsert_RejectsMissingURL(t *testing.T) {
	svc := newDecisionService(newFakeDecisionRepo(), newFakeDecisionCache())

	decision := &models.Decision{State: models.DecisionMaybe}
	if err := svc.Upsert(context.Background(), "u1", decision); err == nil {
		t.Fatal("expected an error for missing listing url")
	}
}

func TestDecisionGet_FallsBackToRepository(t *testing.T) {
	repo := newFakeDecisionRepo()
	cache := newFakeDecisionCache()
	svc := newDecisionService(repo, cache)
	ctx := context.Background()

	repo.rows[repo.key("u1", testListingURL)] = models.Decision{
		ListingURL: testListingURL,
		State:      models.DecisionMaybe,
	}

	got, err := svc.Get(ctx, "u1", testListingURL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.State != models.DecisionMaybe {
		t.Fatalf("got %+v", got)
	}
	// The miss should have populated the cache.
	if len(cache.entries) != 1 {
		t.Fatalf("expected cache population on miss, entries=%d", len(cache.entries))
	}
}

func TestDecisionGet_UnknownURLReturnsNil(t *testing.T) {
	svc := newDecisionService(newFakeDecisionRepo(), newFakeDecisionCache())

	got, err := svc.Get(context.Background(), "u1", "https://www.leboncoin.fr/ad/locations/404")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestDecisionList_RepositoryErrorSurfaces(t *testing.T) {
	repo := newFakeDecisionRepo()
	repo.failing = true
	svc := newDecisionService(repo, newFakeDecisionCache())

	if _, err := svc.List(context.Background(), "u1"); err == nil {
		t.Fatal("expected an error when the repository fails")
	}
}
