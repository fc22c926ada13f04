package service

import (
	"context"
	"testing"

	"ivac-core/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationService_Register(t *testing.T) {
	env := newTestEnv(t, localTime("2024-03-20 10:00:00"))
	env.seedActivity(t, marchActivity())
	env.seedMember(t, regularMember("m1", "IV-001"))

	result, err := env.registration.Toggle(context.Background(), "act1", "m1")
	require.NoError(t, err)
	assert.True(t, result.Joined)

	act := env.getActivity(t, "act1")
	require.Len(t, act.Participants, 1)
	assert.Equal(t, "m1", act.Participants[0].MemberID)
	assert.True(t, act.Participants[0].RegisteredAt.Equal(localTime("2024-03-20 10:00:00")))
}

func TestRegistrationService_ToggleFlipFlop(t *testing.T) {
	env := newTestEnv(t, localTime("2024-03-20 10:00:00"))
	env.seedActivity(t, marchActivity())
	env.seedMember(t, regularMember("m1", "IV-001"))

	ctx := context.Background()

	first, err := env.registration.Toggle(ctx, "act1", "m1")
	require.NoError(t, err)
	assert.True(t, first.Joined)

	second, err := env.registration.Toggle(ctx, "act1", "m1")
	require.NoError(t, err)
	assert.False(t, second.Joined)

	third, err := env.registration.Toggle(ctx, "act1", "m1")
	require.NoError(t, err)
	assert.True(t, third.Joined)

	act := env.getActivity(t, "act1")
	assert.Len(t, act.Participants, 1)
}

func TestRegistrationService_LockWindow(t *testing.T) {
	tests := []struct {
		name   string
		now    string
		locked bool
	}{
		{
			name:   "One second before the window",
			now:    "2024-03-25 07:59:59",
			locked: false,
		},
		{
			name:   "Exactly at the window boundary",
			now:    "2024-03-25 08:00:00",
			locked: true,
		},
		{
			name:   "Morning before the activity",
			now:    "2024-03-25 09:00:00",
			locked: true,
		},
		{
			name:   "Just before start",
			now:    "2024-03-26 07:59:59",
			locked: true,
		},
		{
			name:   "After start the lock holds",
			now:    "2024-03-26 09:00:00",
			locked: true,
		},
		{
			name:   "After the activity ended the lock still holds",
			now:    "2024-03-27 09:00:00",
			locked: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, localTime(tt.now))
			env.seedActivity(t, marchActivity())
			env.seedMember(t, regularMember("m1", "IV-001"))

			result, err := env.registration.Toggle(context.Background(), "act1", "m1")
			if tt.locked {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeRegistrationLocked))
				assert.Nil(t, result)
				assert.Empty(t, env.getActivity(t, "act1").Participants)
			} else {
				require.NoError(t, err)
				assert.True(t, result.Joined)
			}
		})
	}
}

func TestRegistrationService_UnregisterBlockedInWindow(t *testing.T) {
	// Scenario: registered well in advance, then tries to back out within
	// 24h of start. The window is symmetric: unregistration is blocked too.
	env := newTestEnv(t, localTime("2024-03-20 10:00:00"))
	env.seedActivity(t, marchActivity())
	env.seedMember(t, regularMember("m1", "IV-001"))

	ctx := context.Background()

	_, err := env.registration.Toggle(ctx, "act1", "m1")
	require.NoError(t, err)

	env.clk.Set(localTime("2024-03-25 09:00:00"))

	_, err = env.registration.Toggle(ctx, "act1", "m1")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeRegistrationLocked))

	act := env.getActivity(t, "act1")
	require.Len(t, act.Participants, 1)
	assert.Equal(t, "m1", act.Participants[0].MemberID)
}

func TestRegistrationService_UnknownActivityOrMember(t *testing.T) {
	env := newTestEnv(t, localTime("2024-03-20 10:00:00"))
	env.seedActivity(t, marchActivity())
	env.seedMember(t, regularMember("m1", "IV-001"))

	ctx := context.Background()

	_, err := env.registration.Toggle(ctx, "missing", "m1")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	_, err = env.registration.Toggle(ctx, "act1", "ghost")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
