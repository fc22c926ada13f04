package service

import (
	"context"

	"ivac-core/internal/domain"
	"ivac-core/internal/repository"

	"go.uber.org/zap"
)

// topMemberLimit caps the report's leaderboard excerpt.
const topMemberLimit = 10

type reportService struct {
	activitySvc  ActivityService
	analyticsSvc AnalyticsService
	memberRepo   repository.MemberRepository
	logger       *zap.Logger
}

// NewReportService creates the report generator. Pure composition over the
// activity store and the aggregator; correctness rests entirely on theirs.
func NewReportService(
	activitySvc ActivityService,
	analyticsSvc AnalyticsService,
	memberRepo repository.MemberRepository,
	logger *zap.Logger,
) ReportService {
	return &reportService{
		activitySvc:  activitySvc,
		analyticsSvc: analyticsSvc,
		memberRepo:   memberRepo,
		logger:       logger,
	}
}

func (s *reportService) Generate(ctx context.Context, period domain.Period, branch string) (*domain.ReportBundle, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	bundle := &domain.ReportBundle{
		Branch: branch,
		Period: period,
	}

	cutoff := period.To
	priorCutoff := cutoff.AddDate(-1, 0, 0)

	for _, member := range members {
		if branch != "" && member.Branch != branch {
			continue
		}
		if !cutoff.IsZero() && !member.JoinedAt.Before(cutoff) {
			continue
		}

		bundle.HeadcountCurrent++
		switch member.Gender {
		case domain.GenderMale:
			bundle.GenderSplit.Male++
		case domain.GenderFemale:
			bundle.GenderSplit.Female++
		default:
			bundle.GenderSplit.Other++
		}

		if !cutoff.IsZero() && member.JoinedAt.Before(priorCutoff) {
			bundle.HeadcountPriorYear++
		}
		if period.Contains(member.JoinedAt) {
			bundle.NewMembersInPeriod++
		}
	}

	activities, err := s.activitySvc.List(ctx, domain.ActivityFilter{Branch: branch, Period: period})
	if err != nil {
		return nil, err
	}
	bundle.ActivitiesInPeriod = activities

	stats, err := s.analyticsSvc.ComputeMemberStats(ctx, period, branch)
	if err != nil {
		return nil, err
	}
	board := s.analyticsSvc.Leaderboard(stats)
	if len(board) > topMemberLimit {
		board = board[:topMemberLimit]
	}
	bundle.TopMembers = board

	s.logger.Info("report generated",
		zap.String("branch", branch),
		zap.Int("headcount", bundle.HeadcountCurrent),
		zap.Int("activities", len(bundle.ActivitiesInPeriod)))

	return bundle, nil
}
