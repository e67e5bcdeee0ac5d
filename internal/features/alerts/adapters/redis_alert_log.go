package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rahulphari/eye/internal/core/cache"
	"github.com/rahulphari/eye/internal/features/alerts/domain"
)

// RedisAlertLog implements ports.AlertLog with expiring marker keys.
type RedisAlertLog struct {
	cache cache.Cache
}

// NewRedisAlertLog creates a new RedisAlertLog.
func NewRedisAlertLog(c cache.Cache) *RedisAlertLog {
	return &RedisAlertLog{
		cache: c,
	}
}

// MarkFired records the alert marker and reports whether this call was
// the first to fire it within the retention window.
func (l *RedisAlertLog) MarkFired(ctx context.Context, centerID, vehicleID string, kind domain.AlertKind, retention time.Duration) (bool, error) {
	key := fmt.Sprintf("alert_fired:%s:%s:%s", centerID, vehicleID, kind)

	_, err := l.cache.Get(ctx, key)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		return false, fmt.Errorf("failed to check alert marker: %w", err)
	}

	if err := l.cache.Set(ctx, key, []byte("1"), retention); err != nil {
		return false, fmt.Errorf("failed to set alert marker: %w", err)
	}
	return true, nil
}
