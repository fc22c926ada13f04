package domain

import "strings"

// ActivityCodePrefix tags self-service scan payloads rendered as QR codes.
// Anything without the prefix is treated as a raw member code or id.
const ActivityCodePrefix = "IVAC_ACT_"

// ParseActivityCode extracts the activity id from a self-service scan
// payload. ok is false when the code is not a self-service payload.
func ParseActivityCode(code string) (activityID string, ok bool) {
	if !strings.HasPrefix(code, ActivityCodePrefix) {
		return "", false
	}
	id := strings.TrimPrefix(code, ActivityCodePrefix)
	if id == "" {
		return "", false
	}
	return id, true
}

// FormatActivityCode renders the self-service payload for an activity,
// the inverse of ParseActivityCode.
func FormatActivityCode(activityID string) string {
	return ActivityCodePrefix + activityID
}
