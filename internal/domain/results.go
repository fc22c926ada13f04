package domain

import "time"

// ActivityFilter scopes List operations. Zero values match everything.
type ActivityFilter struct {
	Branch string `json:"branch,omitempty"`
	Period Period `json:"period,omitempty"`
}

// Matches reports whether the activity satisfies the filter. Period
// filtering compares the activity's calendar day.
func (f ActivityFilter) Matches(a *Activity) bool {
	if f.Branch != "" && a.Branch != f.Branch {
		return false
	}
	return f.Period.Contains(a.Day())
}

// ActivityPatch carries the fields an administrator may edit after
// creation. Participants and attendees are never patchable: only the
// registration and attendance flows mutate them.
type ActivityPatch struct {
	Name      *string `json:"name,omitempty"`
	Branch    *string `json:"branch,omitempty"`
	Location  *string `json:"location,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Points    *int    `json:"points,omitempty"`
}

// Apply copies the set fields onto the activity.
func (p ActivityPatch) Apply(a *Activity) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Branch != nil {
		a.Branch = *p.Branch
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.StartTime != nil {
		a.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		a.EndTime = *p.EndTime
	}
	if p.Points != nil {
		a.Points = *p.Points
	}
}

// ToggleResult is the outcome of a registration toggle.
type ToggleResult struct {
	ActivityID string `json:"activityId"`
	MemberID   string `json:"memberId"`
	// Joined is the resulting membership: true after registering, false
	// after unregistering.
	Joined bool `json:"joined"`
}

// AttendanceStatus distinguishes a fresh confirmation from an idempotent
// re-scan. Both are successes.
type AttendanceStatus string

const (
	StatusConfirmed        AttendanceStatus = "confirmed"
	StatusAlreadyConfirmed AttendanceStatus = "already_confirmed"
)

// AttendanceResult is the outcome of an attendance confirmation.
type AttendanceResult struct {
	Status      AttendanceStatus `json:"status"`
	ActivityID  string           `json:"activityId"`
	MemberID    string           `json:"memberId"`
	ConfirmedAt time.Time        `json:"confirmedAt"`
	VerifiedBy  string           `json:"verifiedBy"`
	// Points is the activity's current reward value, informational only:
	// credit is always recomputed from the activity at aggregation time.
	Points int `json:"points"`
}
