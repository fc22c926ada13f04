package redis

import "fmt"

// Record key patterns. One JSON blob per activity/member, index sets for
// listing, and a code lookup key per member.
const (
	KeyActivity      = "activity:%s"
	KeyActivityIndex = "activities:index"
	KeyMember        = "member:%s"
	KeyMemberIndex   = "members:index"
	KeyMemberByCode  = "member:code:%s"
)

// KeyBuilder provides environment-aware key building so staging and
// production records never collide in a shared store.
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = environment
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

// Activity record keys

func (kb *KeyBuilder) KeyActivity(activityID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyActivity, activityID))
}

func (kb *KeyBuilder) KeyActivityIndex() string {
	return kb.BuildKey(KeyActivityIndex)
}

// Member record keys

func (kb *KeyBuilder) KeyMember(memberID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyMember, memberID))
}

func (kb *KeyBuilder) KeyMemberIndex() string {
	return kb.BuildKey(KeyMemberIndex)
}

func (kb *KeyBuilder) KeyMemberByCode(code string) string {
	return kb.BuildKey(fmt.Sprintf(KeyMemberByCode, code))
}

// KeyCustom builds a key from an arbitrary pattern
func (kb *KeyBuilder) KeyCustom(pattern string, args ...interface{}) string {
	return kb.BuildKey(fmt.Sprintf(pattern, args...))
}
