package domain

import (
	"fmt"
	"time"
)

// Layouts for the persisted calendar-day and wall-clock fields.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Phase is the derived lifecycle phase of an activity. It is a pure
// function of the clock and the activity's time fields and is never
// persisted: a stored status and wall-clock truth would drift.
type Phase string

const (
	PhaseRegistrationOpen   Phase = "registration_open"
	PhaseRegistrationLocked Phase = "registration_locked"
	PhaseInProgress         Phase = "in_progress"
	PhaseClosed             Phase = "closed"
)

// Participant records a member's registered intent to attend.
type Participant struct {
	MemberID     string    `json:"memberId"`
	RegisteredAt time.Time `json:"timestamp"`
}

// Attendee records a participant whose on-site presence was confirmed.
type Attendee struct {
	MemberID    string    `json:"memberId"`
	ConfirmedAt time.Time `json:"timestamp"`
	VerifiedBy  string    `json:"verifiedBy"`
}

// Activity is a scheduled organizational event. Participants and attendees
// are mutated only through the registration and attendance services, which
// preserve the invariant that attendees are always a subset of participants.
type Activity struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Branch       string        `json:"branch"`
	Location     string        `json:"location"`
	Date         string        `json:"date"`      // calendar day, DateLayout
	StartTime    string        `json:"startTime"` // wall-clock, TimeLayout, same day
	EndTime      string        `json:"endTime"`
	Points       int           `json:"points"` // credited per confirmed attendee
	Participants []Participant `json:"participants"`
	Attendees    []Attendee    `json:"attendees"`
}

// ValidateTimes checks the date and wall-clock fields parse and that the
// activity ends after it starts. Called once at create/update; the
// StartDateTime/EndDateTime accessors rely on it.
func (a *Activity) ValidateTimes() error {
	if _, err := time.ParseInLocation(DateLayout, a.Date, time.Local); err != nil {
		return fmt.Errorf("invalid date %q: %w", a.Date, err)
	}
	start, err := time.ParseInLocation(TimeLayout, a.StartTime, time.Local)
	if err != nil {
		return fmt.Errorf("invalid start time %q: %w", a.StartTime, err)
	}
	end, err := time.ParseInLocation(TimeLayout, a.EndTime, time.Local)
	if err != nil {
		return fmt.Errorf("invalid end time %q: %w", a.EndTime, err)
	}
	if !end.After(start) {
		return fmt.Errorf("end time %s is not after start time %s", a.EndTime, a.StartTime)
	}
	return nil
}

// StartDateTime combines the calendar day and start wall-clock time.
// Fields are validated at create time.
func (a *Activity) StartDateTime() time.Time {
	t, _ := time.ParseInLocation(DateLayout+" "+TimeLayout, a.Date+" "+a.StartTime, time.Local)
	return t
}

// EndDateTime combines the calendar day and end wall-clock time.
func (a *Activity) EndDateTime() time.Time {
	t, _ := time.ParseInLocation(DateLayout+" "+TimeLayout, a.Date+" "+a.EndTime, time.Local)
	return t
}

// Day returns the activity's calendar day at midnight local time.
func (a *Activity) Day() time.Time {
	t, _ := time.ParseInLocation(DateLayout, a.Date, time.Local)
	return t
}

// Phase computes the lifecycle phase at the given instant. lockWindow is
// how long before start registration freezes (24h in production).
func (a *Activity) Phase(now time.Time, lockWindow time.Duration) Phase {
	start := a.StartDateTime()
	end := a.EndDateTime()

	switch {
	case now.After(end):
		return PhaseClosed
	case !now.Before(start):
		return PhaseInProgress
	case !now.Before(start.Add(-lockWindow)):
		return PhaseRegistrationLocked
	default:
		return PhaseRegistrationOpen
	}
}

// RegistrationLocked reports whether registration changes are frozen at the
// given instant. The lock triggers lockWindow before start and never
// re-opens for this activity, including after it ends.
func (a *Activity) RegistrationLocked(now time.Time, lockWindow time.Duration) bool {
	return !now.Before(a.StartDateTime().Add(-lockWindow))
}

// HasParticipant reports whether the member is registered.
func (a *Activity) HasParticipant(memberID string) bool {
	for _, p := range a.Participants {
		if p.MemberID == memberID {
			return true
		}
	}
	return false
}

// HasAttendee reports whether the member's attendance was confirmed.
func (a *Activity) HasAttendee(memberID string) bool {
	for _, att := range a.Attendees {
		if att.MemberID == memberID {
			return true
		}
	}
	return false
}

// AddParticipant appends a registration, keeping memberId unique.
func (a *Activity) AddParticipant(memberID string, at time.Time) {
	if a.HasParticipant(memberID) {
		return
	}
	a.Participants = append(a.Participants, Participant{MemberID: memberID, RegisteredAt: at})
}

// RemoveParticipant drops a registration, preserving order.
func (a *Activity) RemoveParticipant(memberID string) {
	out := a.Participants[:0]
	for _, p := range a.Participants {
		if p.MemberID != memberID {
			out = append(out, p)
		}
	}
	a.Participants = out
}

// AddAttendee appends a confirmed attendance, keeping memberId unique.
func (a *Activity) AddAttendee(memberID string, at time.Time, verifiedBy string) {
	if a.HasAttendee(memberID) {
		return
	}
	a.Attendees = append(a.Attendees, Attendee{MemberID: memberID, ConfirmedAt: at, VerifiedBy: verifiedBy})
}
