package service

import (
	"context"
	"sort"
	"time"

	"ivac-core/internal/clock"
	"ivac-core/internal/domain"
	"ivac-core/internal/repository"

	"go.uber.org/zap"
)

type analyticsService struct {
	activityRepo repository.ActivityRepository
	memberRepo   repository.MemberRepository
	clk          clock.Clock
	lockWindow   time.Duration
	logger       *zap.Logger
}

// NewAnalyticsService creates the read-side aggregator. It never writes:
// every figure is recomputed from the stores on each call.
func NewAnalyticsService(
	activityRepo repository.ActivityRepository,
	memberRepo repository.MemberRepository,
	clk clock.Clock,
	lockWindow time.Duration,
	logger *zap.Logger,
) AnalyticsService {
	return &analyticsService{
		activityRepo: activityRepo,
		memberRepo:   memberRepo,
		clk:          clk,
		lockWindow:   lockWindow,
		logger:       logger,
	}
}

// ComputeMemberStats aggregates per member over the activities matching the
// period/branch filter. A violation is a registered member missing from the
// attendee list of an activity that has definitively ended; in-progress and
// future activities never contribute.
func (s *analyticsService) ComputeMemberStats(ctx context.Context, period domain.Period, branch string) ([]domain.MemberStat, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filter := domain.ActivityFilter{Branch: branch, Period: period}
	matching := make([]domain.Activity, 0, len(activities))
	for i := range activities {
		if filter.Matches(&activities[i]) {
			matching = append(matching, activities[i])
		}
	}

	now := s.clk.Now()
	stats := make([]domain.MemberStat, 0, len(members))
	for _, member := range members {
		stat := domain.MemberStat{MemberID: member.ID, MemberName: member.Name}
		for i := range matching {
			act := &matching[i]
			if !act.HasParticipant(member.ID) {
				continue
			}
			stat.RegisteredCount++
			if act.HasAttendee(member.ID) {
				stat.AttendedCount++
				stat.TotalPoints += act.Points
			} else if act.Phase(now, s.lockWindow) == domain.PhaseClosed {
				stat.ViolationCount++
			}
		}
		stats = append(stats, stat)
	}

	s.logger.Debug("member stats computed",
		zap.Int("members", len(stats)),
		zap.Int("activities", len(matching)),
		zap.String("branch", branch))

	return stats, nil
}

// Leaderboard returns members with points, highest first. The sort is
// stable so identical inputs always produce identical orderings.
func (s *analyticsService) Leaderboard(stats []domain.MemberStat) []domain.MemberStat {
	board := make([]domain.MemberStat, 0, len(stats))
	for _, stat := range stats {
		if stat.TotalPoints > 0 {
			board = append(board, stat)
		}
	}
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].TotalPoints > board[j].TotalPoints
	})
	return board
}

// ComputeWarnings picks one candidate per category. Categories are
// independent; ties go to the first member in input order.
func (s *analyticsService) ComputeWarnings(stats []domain.MemberStat) domain.Warnings {
	var warnings domain.Warnings

	for i := range stats {
		stat := &stats[i]

		if stat.ViolationCount > domain.ViolationThreshold {
			if warnings.MostViolations == nil || stat.ViolationCount > warnings.MostViolations.ViolationCount {
				warnings.MostViolations = stat
			}
		}

		if stat.AttendedCount > 0 {
			if warnings.LowestAttendance == nil || stat.AttendedCount < warnings.LowestAttendance.AttendedCount {
				warnings.LowestAttendance = stat
			}
		}

		if stat.TotalPoints > 0 {
			if warnings.LowestPoints == nil || stat.TotalPoints < warnings.LowestPoints.TotalPoints {
				warnings.LowestPoints = stat
			}
		}
	}

	return warnings
}
