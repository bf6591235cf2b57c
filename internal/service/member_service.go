package service

import (
	"context"
	"errors"
	"time"

	"Community_API/internal/model"
	"Community_API/internal/pkg"
	"Community_API/internal/repository"
)

type MemberService struct {
	members     repository.MemberRepository
	communities repository.CommunityRepository
	users       repository.UserRepository
	roles       repository.RoleRepository
	ids         *pkg.IDGenerator
	events      EventSink
}

func NewMemberService(
	members repository.MemberRepository,
	communities repository.CommunityRepository,
	users repository.UserRepository,
	roles repository.RoleRepository,
	ids *pkg.IDGenerator,
	events EventSink,
) *MemberService {
	return &MemberService{
		members:     members,
		communities: communities,
		users:       users,
		roles:       roles,
		ids:         ids,
		events:      events,
	}
}

// Add 只有社区 owner 能加成员；user/role 引用写入前先校验存在
func (s *MemberService) Add(ctx context.Context, callerID, communityID, userID, roleID string) (*model.Member, error) {
	community, err := s.communities.FindByID(ctx, communityID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCommunityNotFound
	}
	if err != nil {
		return nil, err
	}
	if community.Owner != callerID {
		return nil, ErrNotAllowed
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	member := &model.Member{
		ID:        s.ids.Generate(),
		User:      userID,
		Community: communityID,
		Role:      roleID,
		CreatedAt: time.Now(),
	}
	if err := s.members.Create(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrMemberExists
		}
		return nil, err
	}

	publish(ctx, s.events, EventMemberAdded, member.ID)
	return member, nil
}

// Remove 先解析成员所属社区，再比对 owner
func (s *MemberService) Remove(ctx context.Context, callerID, memberID string) error {
	member, err := s.members.FindByID(ctx, memberID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMemberNotFound
	}
	if err != nil {
		return err
	}

	community, err := s.communities.FindByID(ctx, member.Community)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCommunityNotFound
	}
	if err != nil {
		return err
	}
	if community.Owner != callerID {
		return ErrNotAllowed
	}

	if err := s.members.Delete(ctx, memberID); err != nil {
		return err
	}

	publish(ctx, s.events, EventMemberRemoved, memberID)
	return nil
}
