package domain

import "time"

// Period is a half-open time interval [From, To) used to scope analytics
// and reports.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the period. A zero period
// contains everything.
func (p Period) Contains(t time.Time) bool {
	if p.From.IsZero() && p.To.IsZero() {
		return true
	}
	if !p.From.IsZero() && t.Before(p.From) {
		return false
	}
	if !p.To.IsZero() && !t.Before(p.To) {
		return false
	}
	return true
}

// MonthPeriod returns the period covering one calendar month.
func MonthPeriod(year int, month time.Month) Period {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return Period{From: from, To: from.AddDate(0, 1, 0)}
}

// YearPeriod returns the period covering one calendar year.
func YearPeriod(year int) Period {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	return Period{From: from, To: from.AddDate(1, 0, 0)}
}

// MemberStat is the per-member aggregate over the activities matching a
// period/branch filter. Points are recomputed from the current activity
// points value at aggregation time, never stored per attendee.
type MemberStat struct {
	MemberID        string `json:"memberId"`
	MemberName      string `json:"memberName"`
	RegisteredCount int    `json:"registeredCount"`
	AttendedCount   int    `json:"attendedCount"`
	TotalPoints     int    `json:"totalPoints"`
	ViolationCount  int    `json:"violationCount"`
}

// Warnings holds one candidate per category. Categories are independent: a
// member can appear in more than one.
type Warnings struct {
	// MostViolations is the member with the highest violation count among
	// those with more than two violations.
	MostViolations *MemberStat `json:"mostViolations,omitempty"`
	// LowestAttendance is the member with the fewest attended activities
	// among those who attended at least one.
	LowestAttendance *MemberStat `json:"lowestAttendance,omitempty"`
	// LowestPoints is the member with the fewest points among those with
	// any points at all.
	LowestPoints *MemberStat `json:"lowestPoints,omitempty"`
}

// ViolationThreshold is the minimum violation count (exclusive) before a
// member surfaces in the warnings list.
const ViolationThreshold = 2
