package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/fairstyle/internal/config"
)

const keyGenerateStyle = "generate:style:%s"

// GenerateLimiter bounds generation throughput per style. It is nil
// unless rate limiting is configured; a nil limiter allows everything.
type GenerateLimiter struct {
	bucket *TokenBucket
	rate   float64
	burst  int
}

func NewGenerateLimiter(cfg config.Config) (*GenerateLimiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(limitCfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if limitCfg.GenerateRate <= 0 || limitCfg.GenerateBurst <= 0 {
		return nil, errors.New("generate rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: limitCfg.RedisPassword,
		DB:       limitCfg.RedisDB,
	})

	return &GenerateLimiter{
		bucket: NewTokenBucket(client),
		rate:   limitCfg.GenerateRate,
		burst:  limitCfg.GenerateBurst,
	}, nil
}

func (l *GenerateLimiter) Enabled() bool {
	return l != nil && l.bucket != nil
}

func (l *GenerateLimiter) Allow(ctx context.Context, styleID string) (bool, error) {
	if !l.Enabled() {
		return true, nil
	}
	return l.bucket.Allow(ctx, fmt.Sprintf(keyGenerateStyle, strings.TrimSpace(styleID)), l.rate, l.burst)
}
