package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"ivac-core/internal/domain"
	"ivac-core/pkg/apperrors"
	"ivac-core/pkg/redis"

	"go.uber.org/zap"
)

type memberRepository struct {
	store  *redis.Client
	logger *zap.Logger
}

// NewMemberRepository creates a blob-store-backed member repository.
func NewMemberRepository(store *redis.Client, logger *zap.Logger) MemberRepository {
	return &memberRepository{store: store, logger: logger}
}

func (r *memberRepository) Save(ctx context.Context, member *domain.Member) error {
	data, err := json.Marshal(member)
	if err != nil {
		return apperrors.NewInfrastructure("failed to encode member record", err)
	}

	pipe := r.store.Pipeline()
	pipe.Set(ctx, r.store.KeyBuilder.KeyMember(member.ID), string(data), 0)
	pipe.SAdd(ctx, r.store.KeyBuilder.KeyMemberIndex(), member.ID)
	if member.Code != "" {
		pipe.Set(ctx, r.store.KeyBuilder.KeyMemberByCode(member.Code), member.ID, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.NewInfrastructure("failed to persist member record", err)
	}

	r.logger.Debug("member saved", zap.String("member_id", member.ID))
	return nil
}

func (r *memberRepository) Get(ctx context.Context, id string) (*domain.Member, error) {
	raw, err := r.store.Get(ctx, r.store.KeyBuilder.KeyMember(id))
	if err == redis.Nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("member %s not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to read member record", err)
	}

	var member domain.Member
	if err := json.Unmarshal([]byte(raw), &member); err != nil {
		return nil, apperrors.NewInfrastructure("failed to decode member record", err)
	}
	return &member, nil
}

func (r *memberRepository) GetByCode(ctx context.Context, code string) (*domain.Member, error) {
	id, err := r.store.Get(ctx, r.store.KeyBuilder.KeyMemberByCode(code))
	if err == redis.Nil {
		return nil, apperrors.NewNotFound(fmt.Sprintf("no member with code %s", code))
	}
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to read member code lookup", err)
	}
	return r.Get(ctx, id)
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	member, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.store.Pipeline()
	pipe.Del(ctx, r.store.KeyBuilder.KeyMember(id))
	pipe.SRem(ctx, r.store.KeyBuilder.KeyMemberIndex(), id)
	if member.Code != "" {
		pipe.Del(ctx, r.store.KeyBuilder.KeyMemberByCode(member.Code))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.NewInfrastructure("failed to delete member record", err)
	}

	r.logger.Debug("member deleted", zap.String("member_id", id))
	return nil
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	ids, err := r.store.SMembers(ctx, r.store.KeyBuilder.KeyMemberIndex())
	if err != nil {
		return nil, apperrors.NewInfrastructure("failed to read member index", err)
	}
	sort.Strings(ids)

	members := make([]domain.Member, 0, len(ids))
	for _, id := range ids {
		member, err := r.Get(ctx, id)
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
				r.logger.Warn("member index entry without record", zap.String("member_id", id))
				continue
			}
			return nil, err
		}
		members = append(members, *member)
	}
	return members, nil
}
