package notify

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deduper suppresses re-publishing the same notification event on every scan
// cycle while its condition keeps holding, via a redis SetNX window.
type Deduper struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewDeduper(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Deduper {
	return &Deduper{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

// AcquireOnce returns true the first time a notification id is seen within the
// TTL window, false for a duplicate.
func (d *Deduper) AcquireOnce(ctx context.Context, notificationID string) bool {
	key := "dedup:notify:" + notificationID

	ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		// When redis is unavailable, publishing twice beats publishing never.
		if d.logger != nil {
			d.logger.Warn("Redis dedup check failed, allowing publish",
				zap.String("notification_id", notificationID),
				zap.Error(err),
			)
		}
		return true
	}

	if !ok && d.logger != nil {
		d.logger.Debug("Skipped duplicated notification event",
			zap.String("notification_id", notificationID),
			zap.String("dedup_key", key),
		)
	}

	return ok
}
