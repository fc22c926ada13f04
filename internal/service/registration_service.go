package service

import (
	"context"
	"time"

	"ivac-core/internal/clock"
	"ivac-core/internal/domain"
	"ivac-core/internal/repository"
	"ivac-core/pkg/apperrors"

	"go.uber.org/zap"
)

type registrationService struct {
	activityRepo repository.ActivityRepository
	memberRepo   repository.MemberRepository
	lock         *ActivityLock
	clk          clock.Clock
	lockWindow   time.Duration
	logger       *zap.Logger
}

// NewRegistrationService creates the registration manager. lockWindow is
// how long before start registration changes freeze (24h in production).
func NewRegistrationService(
	activityRepo repository.ActivityRepository,
	memberRepo repository.MemberRepository,
	lock *ActivityLock,
	clk clock.Clock,
	lockWindow time.Duration,
	logger *zap.Logger,
) RegistrationService {
	return &registrationService{
		activityRepo: activityRepo,
		memberRepo:   memberRepo,
		lock:         lock,
		clk:          clk,
		lockWindow:   lockWindow,
		logger:       logger,
	}
}

// Toggle registers the member when absent from the participant list and
// unregisters when present. Both directions are blocked inside the lock
// window, which opens lockWindow before start and never closes again.
func (s *registrationService) Toggle(ctx context.Context, activityID, memberID string) (*domain.ToggleResult, error) {
	unlock := s.lock.Lock(activityID)
	defer unlock()

	activity, err := s.activityRepo.Get(ctx, activityID)
	if err != nil {
		return nil, err
	}

	member, err := s.memberRepo.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	if activity.RegistrationLocked(now, s.lockWindow) {
		return nil, apperrors.NewRegistrationLocked(
			"registration changes are frozen this close to the activity start")
	}

	joined := !activity.HasParticipant(member.ID)
	if joined {
		activity.AddParticipant(member.ID, now)
	} else {
		activity.RemoveParticipant(member.ID)
	}

	if err := s.activityRepo.Save(ctx, activity); err != nil {
		return nil, err
	}

	s.logger.Info("registration toggled",
		zap.String("activity_id", activityID),
		zap.String("member_id", memberID),
		zap.Bool("joined", joined))

	return &domain.ToggleResult{
		ActivityID: activityID,
		MemberID:   memberID,
		Joined:     joined,
	}, nil
}
