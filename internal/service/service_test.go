package service

import (
	"context"
	"testing"
	"time"

	"ivac-core/internal/clock"
	"ivac-core/internal/domain"
	"ivac-core/internal/repository"
	"ivac-core/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testBranches = []string{"central", "north", "south"}

// testEnv wires miniredis-backed repositories, a fake clock and every
// service the way the container does in production.
type testEnv struct {
	clk          *clock.Fake
	activityRepo repository.ActivityRepository
	memberRepo   repository.MemberRepository
	lock         *ActivityLock
	activity     ActivityService
	registration RegistrationService
	attendance   AttendanceService
	analytics    AnalyticsService
	report       ReportService
}

func newTestEnv(t *testing.T, now time.Time) *testEnv {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store, err := redis.NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	log := zap.NewNop()
	clk := clock.NewFake(now)
	lock := NewActivityLock()
	activityRepo := repository.NewActivityRepository(store, log)
	memberRepo := repository.NewMemberRepository(store, log)

	lockWindow := 24 * time.Hour
	activitySvc := NewActivityService(activityRepo, lock, testBranches, log)
	analyticsSvc := NewAnalyticsService(activityRepo, memberRepo, clk, lockWindow, log)

	return &testEnv{
		clk:          clk,
		activityRepo: activityRepo,
		memberRepo:   memberRepo,
		lock:         lock,
		activity:     activitySvc,
		registration: NewRegistrationService(activityRepo, memberRepo, lock, clk, lockWindow, log),
		attendance:   NewAttendanceService(activityRepo, memberRepo, lock, clk, log),
		analytics:    analyticsSvc,
		report:       NewReportService(activitySvc, analyticsSvc, memberRepo, log),
	}
}

func (e *testEnv) seedMember(t *testing.T, member *domain.Member) {
	t.Helper()
	require.NoError(t, e.memberRepo.Save(context.Background(), member))
}

func (e *testEnv) seedActivity(t *testing.T, activity *domain.Activity) {
	t.Helper()
	if activity.Participants == nil {
		activity.Participants = []domain.Participant{}
	}
	if activity.Attendees == nil {
		activity.Attendees = []domain.Attendee{}
	}
	require.NoError(t, e.activityRepo.Save(context.Background(), activity))
}

func (e *testEnv) getActivity(t *testing.T, id string) *domain.Activity {
	t.Helper()
	activity, err := e.activityRepo.Get(context.Background(), id)
	require.NoError(t, err)
	return activity
}

func localTime(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func marchActivity() *domain.Activity {
	return &domain.Activity{
		ID:        "act1",
		Name:      "Community service day",
		Branch:    "central",
		Location:  "Hall A",
		Date:      "2024-03-26",
		StartTime: "08:00",
		EndTime:   "11:00",
		Points:    10,
	}
}

func regularMember(id, code string) *domain.Member {
	return &domain.Member{
		ID:       id,
		Code:     code,
		Name:     "Member " + id,
		Branch:   "central",
		Role:     domain.RoleMember,
		Gender:   domain.GenderFemale,
		JoinedAt: localTime("2023-06-01 00:00:00"),
	}
}

func staffMember(id, code string) *domain.Member {
	m := regularMember(id, code)
	m.Role = domain.RoleStaff
	return m
}
