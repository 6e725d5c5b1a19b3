package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
)

type countingRepo struct {
	domain.CategoryRepository
	lists int
	gets  int
}

func (r *countingRepo) List(ctx context.Context) ([]domain.Category, error) {
	r.lists++
	return r.CategoryRepository.List(ctx)
}

func (r *countingRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	r.gets++
	return r.CategoryRepository.GetByID(ctx, id)
}

func setup(t *testing.T) (*miniredis.Miniredis, *countingRepo, *CategoryCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := &countingRepo{CategoryRepository: memory.NewCategoryRepository(memory.DefaultCategories())}
	return mr, repo, NewCategoryCache(client, repo, time.Minute)
}

func TestCategoryCacheReadThrough(t *testing.T) {
	mr, repo, c := setup(t)
	ctx := context.Background()

	first, err := c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 6)
	assert.True(t, mr.Exists(categoriesKey))

	second, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.lists)
}

func TestCategoryCacheExpires(t *testing.T) {
	mr, repo, c := setup(t)
	ctx := context.Background()

	_, err := c.List(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lists)
}

func TestCategoryCacheGetByID(t *testing.T) {
	_, repo, c := setup(t)
	ctx := context.Background()

	category, err := c.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "History", category.Type)
	assert.Equal(t, 0, repo.gets)

	_, err = c.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Equal(t, 1, repo.gets)
}

func TestCategoryCacheCorruptEntry(t *testing.T) {
	mr, repo, c := setup(t)
	require.NoError(t, mr.Set(categoriesKey, "not json"))

	categories, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 6)
	assert.Equal(t, 1, repo.lists)
}

func TestCategoryCacheRedisDown(t *testing.T) {
	mr, repo, c := setup(t)
	mr.Close()

	categories, err := c.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 6)
	assert.Equal(t, 1, repo.lists)
}

func TestCategoryCacheInvalidate(t *testing.T) {
	mr, repo, c := setup(t)
	ctx := context.Background()

	_, err := c.List(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, mr.Exists(categoriesKey))

	_, err = c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.lists)
}
