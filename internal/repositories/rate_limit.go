package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gradewatch/gradewatch/internal/logger"
)

// RateLimitRepository counts requests per key in fixed windows using Redis.
type RateLimitRepository struct {
	client *redis.Client
}

// NewRateLimitRepository creates a repository over the shared counter store.
func NewRateLimitRepository(client *redis.Client) *RateLimitRepository {
	return &RateLimitRepository{client: client}
}

// Incr increments the counter for key and returns the count within the
// current window. The window TTL is set when the counter is created, so all
// hits within it share one expiry.
func (r *RateLimitRepository) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	_, err := pipe.Exec(ctx)

	count := incr.Val()

	logger.Log.Infow("rate limit incr",
		"key", key,
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return count, nil
}
