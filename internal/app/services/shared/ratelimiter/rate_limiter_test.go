package ratelimiter

import (
	"context"
	"errors"
	"plantao-service/internal/app/contracts/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResourceLimiter_ApplyResourceLimiter(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 30, 0, time.UTC)
	ctx := context.Background()

	t.Run("allows within quota", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("IncrementWithTTL", ctx, mock.MatchedBy(func(key string) bool {
			return key == "ratelimit:FORGOT-PASSWORD:doctor@example.com:29159040"
		}), 61*time.Second).Return(2, nil)

		limiter := NewResourceLimiter(redisRepo, zap.NewNop())
		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			ResourceName:     " Doctor@Example.com ",
			LimiterGroupName: "forgot-password",
			WindowDuration:   time.Minute,
			MaxQuota:         3,
			NowUTC:           now,
		})
		require.NoError(t, err)
		assert.True(t, out.Allowed)
		redisRepo.AssertExpectations(t)
	})

	t.Run("blocks over quota until next window", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("IncrementWithTTL", ctx, mock.Anything, mock.Anything).Return(4, nil)

		limiter := NewResourceLimiter(redisRepo, zap.NewNop())
		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			ResourceName:     "doctor@example.com",
			LimiterGroupName: "forgot-password",
			WindowDuration:   time.Minute,
			MaxQuota:         3,
			NowUTC:           now,
		})
		require.NoError(t, err)
		assert.False(t, out.Allowed)
		assert.Equal(t, 30*time.Second, out.RetryAfter)
	})

	t.Run("zero quota disables the limiter", func(t *testing.T) {
		limiter := NewResourceLimiter(new(mocks.RedisRepository), zap.NewNop())
		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			ResourceName:     "doctor@example.com",
			LimiterGroupName: "forgot-password",
		})
		require.NoError(t, err)
		assert.True(t, out.Allowed)
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("IncrementWithTTL", ctx, mock.Anything, mock.Anything).Return(0, errors.New("down"))

		limiter := NewResourceLimiter(redisRepo, zap.NewNop())
		_, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			ResourceName:     "doctor@example.com",
			LimiterGroupName: "forgot-password",
			MaxQuota:         1,
			NowUTC:           now,
		})
		assert.Error(t, err)
	})
}
