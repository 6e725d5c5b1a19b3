// Package cache keeps read-mostly store results in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

const categoriesKey = "trivia:categories"

// CategoryCache is a read-through Redis cache in front of a CategoryRepository.
// Redis faults are logged and the request falls through to the repository.
type CategoryCache struct {
	redis *redis.Client
	next  domain.CategoryRepository
	ttl   time.Duration
}

// NewCategoryCache creates a category cache whose entries expire after ttl
func NewCategoryCache(redis *redis.Client, next domain.CategoryRepository, ttl time.Duration) *CategoryCache {
	return &CategoryCache{
		redis: redis,
		next:  next,
		ttl:   ttl,
	}
}

// List retrieves all categories, from Redis when cached
func (c *CategoryCache) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := c.load(ctx)
	if err == nil {
		return categories, nil
	}
	if !errors.Is(err, redis.Nil) {
		log.Printf("category cache read failed: %v", err)
	}

	categories, err = c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.store(ctx, categories); err != nil {
		log.Printf("category cache write failed: %v", err)
	}
	return categories, nil
}

// GetByID looks the category up in the cached list, asking the repository
// when the list does not have it
func (c *CategoryCache) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	categories, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		if category.ID == id {
			return &category, nil
		}
	}
	return c.next.GetByID(ctx, id)
}

// Invalidate drops the cached category list
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	if err := c.redis.Del(ctx, categoriesKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate categories: %w", err)
	}
	return nil
}

func (c *CategoryCache) load(ctx context.Context) ([]domain.Category, error) {
	data, err := c.redis.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		return nil, err
	}

	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

func (c *CategoryCache) store(ctx context.Context, categories []domain.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	return c.redis.Set(ctx, categoriesKey, data, c.ttl).Err()
}
