package repository

import (
	"context"
	"testing"
	"time"

	"ivac-core/internal/domain"
	"ivac-core/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleMember(id, code string) *domain.Member {
	return &domain.Member{
		ID:       id,
		Code:     code,
		Name:     "Member " + id,
		Branch:   "central",
		Role:     domain.RoleMember,
		Gender:   domain.GenderFemale,
		JoinedAt: time.Date(2023, 6, 1, 0, 0, 0, 0, time.Local),
	}
}

func TestMemberRepository_SaveAndGet(t *testing.T) {
	repo := NewMemberRepository(setupStore(t), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleMember("m1", "IV-001")))

	got, err := repo.Get(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "IV-001", got.Code)
	assert.Equal(t, domain.RoleMember, got.Role)
}

func TestMemberRepository_GetByCode(t *testing.T) {
	repo := NewMemberRepository(setupStore(t), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleMember("m1", "IV-001")))

	got, err := repo.GetByCode(ctx, "IV-001")
	require.NoError(t, err)
	assert.Equal(t, "m1", got.ID)

	_, err = repo.GetByCode(ctx, "IV-999")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}

func TestMemberRepository_List(t *testing.T) {
	repo := NewMemberRepository(setupStore(t), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleMember("m2", "IV-002")))
	require.NoError(t, repo.Save(ctx, sampleMember("m1", "IV-001")))

	members, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "m1", members[0].ID)
	assert.Equal(t, "m2", members[1].ID)
}

func TestMemberRepository_Delete(t *testing.T) {
	repo := NewMemberRepository(setupStore(t), zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleMember("m1", "IV-001")))
	require.NoError(t, repo.Delete(ctx, "m1"))

	_, err := repo.Get(ctx, "m1")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	_, err = repo.GetByCode(ctx, "IV-001")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = repo.Delete(ctx, "m1")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
