package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginLimiter bounds login attempts per username+address over a fixed
// window, backed by Redis so the bound holds across replicas. Redis being
// unreachable fails open: losing brute-force throttling must not take the
// login endpoint down with it.
type LoginLimiter struct {
	client   *redis.Client
	logger   *zap.Logger
	attempts int
	window   time.Duration
}

// NewLoginLimiter builds a limiter. Non-positive settings disable it.
func NewLoginLimiter(client *redis.Client, logger *zap.Logger, attempts, windowSeconds int) *LoginLimiter {
	if attempts <= 0 || windowSeconds <= 0 {
		return &LoginLimiter{}
	}
	return &LoginLimiter{
		client:   client,
		logger:   logger,
		attempts: attempts,
		window:   time.Duration(windowSeconds) * time.Second,
	}
}

// Allow reports whether another attempt is permitted for the key.
func (l *LoginLimiter) Allow(ctx context.Context, username, addr string) bool {
	if l == nil || l.client == nil {
		return true
	}
	key := fmt.Sprintf("login_attempts:%s:%s", username, addr)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		if l.logger != nil {
			l.logger.Warn("login limiter unavailable", zap.Error(err))
		}
		return true
	}
	if count == 1 {
		l.client.Expire(ctx, key, l.window)
	}
	return count <= int64(l.attempts)
}
