package domain

// GenderSplit is the member headcount by gender for a report scope.
type GenderSplit struct {
	Male   int `json:"male"`
	Female int `json:"female"`
	Other  int `json:"other"`
}

// ReportBundle is the period/branch-scoped summary assembled for export or
// print. Pure composition over the activity store and the aggregator; no
// derived state is persisted.
type ReportBundle struct {
	Branch             string       `json:"branch"`
	Period             Period       `json:"period"`
	HeadcountCurrent   int          `json:"headcountCurrent"`
	HeadcountPriorYear int          `json:"headcountPriorYear"`
	GenderSplit        GenderSplit  `json:"genderSplit"`
	NewMembersInPeriod int          `json:"newMembersInPeriod"`
	ActivitiesInPeriod []Activity   `json:"activitiesInPeriod"`
	TopMembers         []MemberStat `json:"topMembers"`
}
