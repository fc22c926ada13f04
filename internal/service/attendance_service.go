package service

import (
	"context"
	"fmt"

	"ivac-core/internal/clock"
	"ivac-core/internal/domain"
	"ivac-core/internal/repository"
	"ivac-core/pkg/apperrors"

	"go.uber.org/zap"
)

type attendanceService struct {
	activityRepo repository.ActivityRepository
	memberRepo   repository.MemberRepository
	lock         *ActivityLock
	clk          clock.Clock
	logger       *zap.Logger
}

// NewAttendanceService creates the attendance matcher.
func NewAttendanceService(
	activityRepo repository.ActivityRepository,
	memberRepo repository.MemberRepository,
	lock *ActivityLock,
	clk clock.Clock,
	logger *zap.Logger,
) AttendanceService {
	return &attendanceService{
		activityRepo: activityRepo,
		memberRepo:   memberRepo,
		lock:         lock,
		clk:          clk,
		logger:       logger,
	}
}

// Confirm resolves a scanned or typed code and records attendance.
//
// A self-service payload (IVAC_ACT_<id>) targets the scanning member and
// its decoded activity id overrides the caller-selected one. Any other
// code is a raw member code-or-id lookup, used by staff confirming on
// behalf of others.
func (s *attendanceService) Confirm(ctx context.Context, activityID, code string, verifier domain.Verifier) (*domain.AttendanceResult, error) {
	selfService := false
	if decodedID, ok := domain.ParseActivityCode(code); ok {
		activityID = decodedID
		selfService = true
	}

	unlock := s.lock.Lock(activityID)
	defer unlock()

	activity, err := s.activityRepo.Get(ctx, activityID)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	if now.Before(activity.StartDateTime()) {
		return nil, apperrors.NewTooEarly("the activity has not started yet")
	}
	if now.After(activity.EndDateTime()) {
		return nil, apperrors.NewTooLate("the attendance list is already closed")
	}

	member, err := s.resolveMember(ctx, code, selfService, verifier)
	if err != nil {
		return nil, err
	}

	if !selfService && member.ID != verifier.MemberID && !verifier.Role.CanVerifyOthers() {
		return nil, apperrors.NewNotPermitted("only staff may confirm attendance for another member")
	}

	if !activity.HasParticipant(member.ID) {
		return nil, apperrors.NewNotRegistered(
			fmt.Sprintf("member %s never registered for this activity", member.ID))
	}

	if activity.HasAttendee(member.ID) {
		s.logger.Debug("duplicate attendance scan",
			zap.String("activity_id", activity.ID),
			zap.String("member_id", member.ID))
		return s.result(activity, member.ID, domain.StatusAlreadyConfirmed), nil
	}

	activity.AddAttendee(member.ID, now, verifier.MemberID)
	if err := s.activityRepo.Save(ctx, activity); err != nil {
		return nil, err
	}

	s.logger.Info("attendance confirmed",
		zap.String("activity_id", activity.ID),
		zap.String("member_id", member.ID),
		zap.String("verified_by", verifier.MemberID),
		zap.Bool("self_service", selfService))

	return s.result(activity, member.ID, domain.StatusConfirmed), nil
}

// resolveMember finds the target member. Self-service scans target the
// scanning member; raw codes resolve by organizational code first, then by
// member id.
func (s *attendanceService) resolveMember(ctx context.Context, code string, selfService bool, verifier domain.Verifier) (*domain.Member, error) {
	if selfService {
		member, err := s.memberRepo.Get(ctx, verifier.MemberID)
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
				return nil, apperrors.NewUnknownCode(
					fmt.Sprintf("scanning member %s is unknown", verifier.MemberID))
			}
			return nil, err
		}
		return member, nil
	}

	member, err := s.memberRepo.GetByCode(ctx, code)
	if err == nil {
		return member, nil
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return nil, err
	}

	member, err = s.memberRepo.Get(ctx, code)
	if err == nil {
		return member, nil
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
		return nil, err
	}

	return nil, apperrors.NewUnknownCode(fmt.Sprintf("code %q matches no member", code))
}

func (s *attendanceService) result(activity *domain.Activity, memberID string, status domain.AttendanceStatus) *domain.AttendanceResult {
	res := &domain.AttendanceResult{
		Status:     status,
		ActivityID: activity.ID,
		MemberID:   memberID,
		Points:     activity.Points,
	}
	for _, att := range activity.Attendees {
		if att.MemberID == memberID {
			res.ConfirmedAt = att.ConfirmedAt
			res.VerifiedBy = att.VerifiedBy
			break
		}
	}
	return res
}
