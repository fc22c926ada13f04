package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"ivac-core/internal/domain"
	"ivac-core/pkg/apperrors"
	"ivac-core/pkg/redis"

	"go.uber.org/zap"
)

// activityRepository persists one JSON blob per activity plus an index set
// for listing.
type activityRepository struct {
	store  *redis.Client
	logger *zap.Logger
}

// NewActivityRepository creates a blob-store-backed activity repository.
func NewActivityRepository(store *redis.Client, logger *zap.Logger) ActivityRepository {
	return &activityRepository{store: store, logger: logger}
}

func (r *activityRepository) Save(ctx context.Context, activity *domain.Activity) error {
	data, err := json.Marshal(activity)
	if err != nil {
		return apperrors.NewInfrastructure("failed to encode activity record", err)
	}

	pipe := r.store.Pipeline()
	pipe.Set(ctx, r.store.KeyBuilder.KeyActivity(activity.ID), string(data), 0)
	pipe.SAdd(ctx, r.store.KeyBuilder.KeyActivityIndex(), activity.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.NewInfrastructure("failed to persist activity record", err)
	}

	r.logger.Debug("activity saved",
		zap.String("activity_id", activity.ID),
		zap.Int("participants", len(activity.Participants)),
		zap.Int("attendees", len(activity.Attendees)))

	return nil
}

func (r *activityRepository) Get(ctx context.Context, id string) (*domain.Activity, error) {
	raw, err := r.store.Get(ctx, r.store.KeyBuilder.KeyActivity(id))
	if err == redis.Nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("activity %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to read activity record", err)
	}

	var activity domain.Activity
	if err := json.Unmarshal([]byte(raw), &activity); err != nil {
		return nil, apperrors.NewInfrastructure("failed to decode activity record", err)
	}
	return &activity, nil
}

func (r *activityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	ids, err := r.store.SMembers(ctx, r.store.KeyBuilder.KeyActivityIndex())
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to read activity index", err)
	}
	sort.Strings(ids)

	activities := make([]domain.Activity, 0, len(ids))
	for _, id := range ids {
		activity, err := r.Get(ctx, id)
		if err != nil {
			// An index entry without a record means a half-finished delete;
			// skip it rather than failing the whole listing.
			if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
				r.logger.Warn("activity index entry without record", zap.String("activity_id", id))
				continue
			}
			return nil, err
		}
		activities = append(activities, *activity)
	}
	return activities, nil
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	pipe := r.store.Pipeline()
	pipe.Del(ctx, r.store.KeyBuilder.KeyActivity(id))
	pipe.SRem(ctx, r.store.KeyBuilder.KeyActivityIndex(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.NewInfrastructure("failed to delete activity record", err)
	}
	return nil
}
