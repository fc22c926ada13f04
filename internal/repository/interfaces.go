package repository

import (
	"context"

	"ivac-core/internal/domain"
)

// ActivityRepository owns the authoritative activity collection in the
// blob store. Writes replace the whole record in a single operation so
// readers never observe a half-applied mutation.
type ActivityRepository interface {
	// Save creates or replaces the activity record.
	Save(ctx context.Context, activity *domain.Activity) error

	// Get returns the activity or a not-found error.
	Get(ctx context.Context, id string) (*domain.Activity, error)

	// List returns all activities in deterministic (id) order.
	List(ctx context.Context) ([]domain.Activity, error)

	// Delete removes the activity record. Administrative use only.
	Delete(ctx context.Context, id string) error
}

// MemberRepository reads the member collection. Members are created by an
// administrative collaborator outside the engine; Save exists for that
// collaborator and for seeding.
type MemberRepository interface {
	Save(ctx context.Context, member *domain.Member) error

	// Get returns the member by id or a not-found error.
	Get(ctx context.Context, id string) (*domain.Member, error)

	// GetByCode returns the member matching the organizational code.
	GetByCode(ctx context.Context, code string) (*domain.Member, error)

	// List returns all members in deterministic (id) order.
	List(ctx context.Context) ([]domain.Member, error)

	// Delete removes the member record and its code mapping.
	Delete(ctx context.Context, id string) error
}
