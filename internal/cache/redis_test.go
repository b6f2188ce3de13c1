package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/meal-aggregator/internal/config"
	"github.com/magabrotheeeer/meal-aggregator/internal/models"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache, mr
}

func TestSetAndGet(t *testing.T) {
	cache, _ := setupTestCache(t)

	expected := models.Meal{
		ID:    "b2c8a1de-4f6a-4f4e-9f6a-2f1f7f4b9a10",
		Name:  "Plov",
		Price: 12.5,
		Likes: 3,
	}
	err := cache.Set("meal:"+expected.ID, expected, time.Minute)
	require.NoError(t, err)

	var actual models.Meal
	found, err := cache.Get("meal:"+expected.ID, &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache, _ := setupTestCache(t)

	var out models.Meal
	found, err := cache.Get("meal:no-such-id", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetExpired(t *testing.T) {
	cache, mr := setupTestCache(t)

	err := cache.Set("meal:expiring", models.Meal{Name: "Lagman"}, time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	var out models.Meal
	found, err := cache.Get("meal:expiring", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache, _ := setupTestCache(t)

	err := cache.Set("membership_plans", []string{"standard", "premium"}, time.Minute)
	require.NoError(t, err)

	err = cache.Invalidate("membership_plans")
	require.NoError(t, err)

	var out []string
	found, err := cache.Get("membership_plans", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetInvalidJSON(t *testing.T) {
	cache, _ := setupTestCache(t)

	err := cache.DB.Set(context.Background(), "meal:bad", []byte("not-json"), time.Minute).Err()
	require.NoError(t, err)

	var out models.Meal
	found, err := cache.Get("meal:bad", &out)
	assert.False(t, found)
	assert.Error(t, err)
}

func TestInitServerInvalidAddr(t *testing.T) {
	cfg := config.RedisConnection{
		AddressRedis: "127.0.0.1:9999",
	}

	cache, err := InitServer(context.Background(), cfg)
	assert.Nil(t, cache)
	assert.Error(t, err)
}
