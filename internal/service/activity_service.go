package service

import (
	"context"
	"fmt"

	"ivac-core/internal/domain"
	"ivac-core/internal/repository"
	"ivac-core/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	lock         *ActivityLock
	branches     map[string]struct{}
	logger       *zap.Logger
}

// NewActivityService creates the activity store facade. branches is the
// enumerated set of valid branch values.
func NewActivityService(activityRepo repository.ActivityRepository, lock *ActivityLock, branches []string, logger *zap.Logger) ActivityService {
	set := make(map[string]struct{}, len(branches))
	for _, b := range branches {
		set[b] = struct{}{}
	}
	return &activityService{
		activityRepo: activityRepo,
		lock:         lock,
		branches:     set,
		logger:       logger,
	}
}

func (s *activityService) Create(ctx context.Context, activity *domain.Activity) (string, error) {
	if err := s.validate(activity); err != nil {
		return "", err
	}

	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if activity.Participants == nil {
		activity.Participants = []domain.Participant{}
	}
	if activity.Attendees == nil {
		activity.Attendees = []domain.Attendee{}
	}

	if err := s.activityRepo.Save(ctx, activity); err != nil {
		return "", err
	}

	s.logger.Info("activity created",
		zap.String("activity_id", activity.ID),
		zap.String("branch", activity.Branch),
		zap.String("date", activity.Date))

	return activity.ID, nil
}

func (s *activityService) Update(ctx context.Context, id string, patch domain.ActivityPatch) (*domain.Activity, error) {
	// The patch is a read-modify-write against the same record the
	// registration and attendance flows mutate, so it serializes with them.
	unlock := s.lock.Lock(id)
	defer unlock()

	activity, err := s.activityRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(activity)
	if err := s.validate(activity); err != nil {
		return nil, err
	}

	if err := s.activityRepo.Save(ctx, activity); err != nil {
		return nil, err
	}

	s.logger.Info("activity updated", zap.String("activity_id", id))
	return activity, nil
}

func (s *activityService) Get(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activityRepo.Get(ctx, id)
}

func (s *activityService) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Activity, 0, len(activities))
	for i := range activities {
		if filter.Matches(&activities[i]) {
			filtered = append(filtered, activities[i])
		}
	}
	return filtered, nil
}

func (s *activityService) validate(activity *domain.Activity) error {
	if activity.Name == "" {
		return apperrors.NewValidation("activity name is required", nil)
	}
	if _, ok := s.branches[activity.Branch]; !ok {
		return apperrors.NewValidation(
			fmt.Sprintf("branch %q is not a known branch", activity.Branch),
			map[string]interface{}{"branch": activity.Branch},
		)
	}
	if err := activity.ValidateTimes(); err != nil {
		return apperrors.NewValidation(err.Error(), nil)
	}
	if activity.Points < 0 {
		return apperrors.NewValidation("points must not be negative", nil)
	}
	return nil
}
