package weekRepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"studyplanner/models"
	"studyplanner/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// cachedWeekRepo is a read-through Redis cache in front of another WeekRepository.
// Cache failures never fail a request; they fall back to the wrapped repository.
type cachedWeekRepo struct {
	next   WeekRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedWeekRepo wraps next with a Redis cache whose entries live for ttl.
func NewCachedWeekRepo(next WeekRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) WeekRepository {
	if client == nil {
		return next
	}
	return &cachedWeekRepo{next: next, client: client, ttl: ttl, logger: logger}
}

func cacheKey(userID string) string {
	return utils.WeekCachePrefix + userID
}

func (r *cachedWeekRepo) GetByUserID(ctx context.Context, userID string) (*models.WeeklyTemplate, error) {
	key := cacheKey(userID)

	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var tpl models.WeeklyTemplate
		if jsonErr := json.Unmarshal(raw, &tpl); jsonErr == nil {
			return &tpl, nil
		}
		r.logger.Warn("discarding corrupt week cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		r.logger.Warn("week cache read failed", zap.String("key", key), zap.Error(err))
	}

	tpl, err := r.next.GetByUserID(ctx, userID)
	if err != nil || tpl == nil {
		return tpl, err
	}

	if data, jsonErr := json.Marshal(tpl); jsonErr == nil {
		if setErr := r.client.Set(ctx, key, data, r.ttl).Err(); setErr != nil {
			r.logger.Warn("week cache write failed", zap.String("key", key), zap.Error(setErr))
		}
	}
	return tpl, nil
}

func (r *cachedWeekRepo) Upsert(ctx context.Context, tpl *models.WeeklyTemplate) error {
	if err := r.next.Upsert(ctx, tpl); err != nil {
		return err
	}
	if err := r.client.Del(ctx, cacheKey(tpl.UserID)).Err(); err != nil {
		r.logger.Warn("week cache invalidation failed", zap.String("userId", tpl.UserID), zap.Error(err))
	}
	return nil
}
