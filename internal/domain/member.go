package domain

import "time"

// Role classifies what a member may do on behalf of others.
type Role string

const (
	RoleMember Role = "member"
	RoleStaff  Role = "staff"
	RoleAdmin  Role = "admin"
)

// CanVerifyOthers reports whether this role may confirm attendance for a
// member other than itself. Replaces ad hoc string comparisons at call
// sites with a single capability check.
func (r Role) CanVerifyOthers() bool {
	return r == RoleStaff || r == RoleAdmin
}

// Gender is carried for the report's gender split.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Member is an identity record. Created by administrative CRUD outside the
// engine; read-only here except as a lookup key.
type Member struct {
	ID       string    `json:"id"`
	Code     string    `json:"code"` // human-readable organizational code, unique
	Name     string    `json:"name"`
	Branch   string    `json:"branch"`
	Role     Role      `json:"role"`
	Gender   Gender    `json:"gender"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Verifier is the identity that confirms an attendance record, either the
// scanning member itself or a staff member entering codes manually.
type Verifier struct {
	MemberID string `json:"memberId"`
	Role     Role   `json:"role"`
}
