package repositories

import (
	"context"
	"encoding/json"
	"time"

	"rentmap-backend/internal/models"
	"rentmap-backend/pkg/cache"
	"rentmap-backend/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

type decisionCache struct {
	client *redis.Client
}

func NewDecisionCache() DecisionCache {
	return &decisionCache{
		client: cache.RedisClient,
	}
}

func (c *decisionCache) GetDecision(ctx context.Context, key string) (*models.Decision, error) {
	start := time.Now()
	data, err := c.client.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		return nil, err
	}
	var decision models.Decision
	if err := json.Unmarshal([]byte(data), &decision); err != nil {
		return nil, err
	}
	return &decision, nil
}

func (c *decisionCache) SetDecision(ctx context.Context, key string, decision *models.Decision, expiration time.Duration) error {
	data, err := json.Marshal(decision)
	if err != nil {
		return err
	}
	start := time.Now()
	err = c.client.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		return err
	}
	return nil
}

func (c *decisionCache) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := c.client.Del(ctx, key).Err()
	metrics.RedisOperationDuration.WithLabelValues("del").Observe(time.Since(start).Seconds())
	if err != nil && err != redis.Nil {
		metrics.RedisErrorsTotal.WithLabelValues("del").Inc()
		return err
	}
	return nil
}
