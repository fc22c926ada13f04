package service

import (
	"context"

	"ivac-core/internal/domain"
)

// ActivityService owns activity CRUD. It holds no time-window logic; it is
// a keyed collection with referential-integrity checks on the branch set.
type ActivityService interface {
	// Create stores a new activity, generating an id when none is given.
	Create(ctx context.Context, activity *domain.Activity) (string, error)

	// Update patches descriptive fields and points. Participants and
	// attendees are out of reach here.
	Update(ctx context.Context, id string, patch domain.ActivityPatch) (*domain.Activity, error)

	Get(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error)
}

// RegistrationService toggles a member's participation in an activity,
// enforcing the registration lock window.
type RegistrationService interface {
	Toggle(ctx context.Context, activityID, memberID string) (*domain.ToggleResult, error)
}

// AttendanceService resolves a scanned or typed code against a member and
// activity and idempotently records attendance.
type AttendanceService interface {
	Confirm(ctx context.Context, activityID, code string, verifier domain.Verifier) (*domain.AttendanceResult, error)
}

// AnalyticsService derives per-member statistics, leaderboards and warning
// candidates. Read-only; everything is recomputed on demand.
type AnalyticsService interface {
	ComputeMemberStats(ctx context.Context, period domain.Period, branch string) ([]domain.MemberStat, error)
	Leaderboard(stats []domain.MemberStat) []domain.MemberStat
	ComputeWarnings(stats []domain.MemberStat) domain.Warnings
}

// ReportService assembles period/branch-scoped summaries for export.
type ReportService interface {
	Generate(ctx context.Context, period domain.Period, branch string) (*domain.ReportBundle, error)
}

// Services aggregates the engine's collaborator-facing operations.
type Services struct {
	Activity     ActivityService
	Registration RegistrationService
	Attendance   AttendanceService
	Analytics    AnalyticsService
	Report       ReportService
}
