package locker

import (
	"context"
	"plantao-service/internal/app/contracts/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLocker(repo *mocks.RedisRepository) *lockService {
	return &lockService{redisRepo: repo, Log: zap.NewNop()}
}

func TestLockService_TryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquired", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("TrySetNX", ctx, "availability:lock:doc-1", mock.AnythingOfType("string"), 15*time.Second).Return(true, nil)

		acquired, value, err := newTestLocker(repo).TryLock(ctx, "availability:lock:doc-1", 15*time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)
	})

	t.Run("held by someone else", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("TrySetNX", ctx, "availability:lock:doc-1", mock.Anything, mock.Anything).Return(false, nil)

		acquired, value, err := newTestLocker(repo).TryLock(ctx, "availability:lock:doc-1", 15*time.Second)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})
}

func TestLockService_Unlock(t *testing.T) {
	ctx := context.Background()

	t.Run("owner releases", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("Get", ctx, "k").Return(`"v1"`, nil)
		repo.On("Delete", ctx, "k").Return(nil)

		require.NoError(t, newTestLocker(repo).Unlock(ctx, "k", "v1"))
		repo.AssertExpectations(t)
	})

	t.Run("already expired", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("Get", ctx, "k").Return("", nil)

		require.NoError(t, newTestLocker(repo).Unlock(ctx, "k", "v1"))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("not the owner", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("Get", ctx, "k").Return(`"v2"`, nil)

		assert.Error(t, newTestLocker(repo).Unlock(ctx, "k", "v1"))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestLockService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("owner extends", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("Get", ctx, "k").Return(`"v1"`, nil)
		repo.On("Expire", ctx, "k", time.Minute).Return(true, nil)

		require.NoError(t, newTestLocker(repo).Refresh(ctx, "k", "v1", time.Minute))
	})

	t.Run("ownership lost", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("Get", ctx, "k").Return(`"v2"`, nil)

		assert.Error(t, newTestLocker(repo).Refresh(ctx, "k", "v1", time.Minute))
		repo.AssertNotCalled(t, "Expire", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("key vanished between get and expire", func(t *testing.T) {
		repo := new(mocks.RedisRepository)
		repo.On("Get", ctx, "k").Return(`"v1"`, nil)
		repo.On("Expire", ctx, "k", time.Minute).Return(false, nil)

		assert.Error(t, newTestLocker(repo).Refresh(ctx, "k", "v1", time.Minute))
	})
}
