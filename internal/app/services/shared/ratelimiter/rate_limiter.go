package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"plantao-service/internal/app/contracts"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed-window counter stored in redis, with a TTL equal
// to the window length. It is shared by every instance of the service.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log}
}

type ApplyResourceLimiterInput struct {
	// ResourceName is the limited entity, e.g. an email address.
	ResourceName string
	// LimiterGroupName namespaces the key, e.g. forgot-password.
	LimiterGroupName string
	WindowDuration   time.Duration
	MaxQuota         int
	// NowUTC defaults to time.Now().UTC().
	NowUTC time.Time
}

type ApplyResourceLimiterOutput struct {
	Allowed    bool
	RetryAfter time.Duration
}

func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error) {
	if in == nil {
		return nil, errors.New("nil limiter input")
	}

	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	window := in.WindowDuration
	if window < time.Second {
		window = time.Minute
	}
	if in.MaxQuota <= 0 {
		return &ApplyResourceLimiterOutput{Allowed: true}, nil
	}
	if resource == "" || group == "" {
		return &ApplyResourceLimiterOutput{Allowed: false, RetryAfter: window}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowSeconds := int64(window / time.Second)
	windowID := now.Unix() / windowSeconds
	key := fmt.Sprintf("ratelimit:%s:%s:%d", group, resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, window+time.Second)
	if err != nil {
		l.log.Error("ResourceLimiter.ApplyResourceLimiter increment failed",
			zap.String("key", key),
			zap.Error(err))
		return nil, err
	}

	if count > in.MaxQuota {
		nextWindowStart := time.Unix((windowID+1)*windowSeconds, 0)
		return &ApplyResourceLimiterOutput{Allowed: false, RetryAfter: nextWindowStart.Sub(now)}, nil
	}
	return &ApplyResourceLimiterOutput{Allowed: true}, nil
}
