package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Community_API/internal/model"
	"Community_API/internal/pkg"
	"Community_API/internal/repository"
)

// AdminRoleName 建社区时自动补齐的角色
const AdminRoleName = "Community Admin"

const (
	userTable = "user"
	roleTable = "role"
)

type CommunityService struct {
	communities repository.CommunityRepository
	members     repository.MemberRepository
	users       repository.UserRepository
	roles       repository.RoleRepository
	cache       repository.SummaryCache // 可为 nil
	ids         *pkg.IDGenerator
	events      EventSink
}

func NewCommunityService(
	communities repository.CommunityRepository,
	members repository.MemberRepository,
	users repository.UserRepository,
	roles repository.RoleRepository,
	cache repository.SummaryCache,
	ids *pkg.IDGenerator,
	events EventSink,
) *CommunityService {
	return &CommunityService{
		communities: communities,
		members:     members,
		users:       users,
		roles:       roles,
		cache:       cache,
		ids:         ids,
		events:      events,
	}
}

// Create 创建社区，创建者即 owner，自动成为 Community Admin 成员
func (s *CommunityService) Create(ctx context.Context, ownerID, name string) (*model.Community, error) {
	now := time.Now()
	community := &model.Community{
		ID:        s.ids.Generate(),
		Name:      name,
		Slug:      pkg.Slugify(name),
		Owner:     ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.communities.Create(ctx, community); err != nil {
		return nil, err
	}

	adminRole, err := s.adminRole(ctx)
	if err != nil {
		return nil, err
	}

	ownerMember := &model.Member{
		ID:        s.ids.Generate(),
		User:      ownerID,
		Community: community.ID,
		Role:      adminRole.ID,
		CreatedAt: now,
	}
	if err := s.members.Create(ctx, ownerMember); err != nil {
		return nil, err
	}

	publish(ctx, s.events, EventCommunityCreated, community.ID)
	return community, nil
}

// adminRole 取 Community Admin 角色，没有则建
func (s *CommunityService) adminRole(ctx context.Context) (*model.Role, error) {
	role, err := s.roles.FindByName(ctx, AdminRoleName)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	role = &model.Role{
		ID:        s.ids.Generate(),
		Name:      AdminRoleName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if createErr := s.roles.Create(ctx, role); createErr != nil {
		// 并发首建时撞唯一索引，重查即可
		if errors.Is(createErr, repository.ErrDuplicate) {
			return s.roles.FindByName(ctx, AdminRoleName)
		}
		return nil, createErr
	}
	return role, nil
}

// List 全量社区分页，owner 填充为 {id, name}
func (s *CommunityService) List(ctx context.Context, page int) ([]model.CommunityWithOwner, pkg.PageMeta, error) {
	total, err := s.communities.Count(ctx)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	list, err := s.communities.List(ctx, pkg.Offset(page), pkg.PerPage)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}

	populated, err := s.populateOwners(ctx, list)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return populated, pkg.NewPageMeta(total, page), nil
}

// Members 指定社区的成员分页，user/role 填充为 {id, name}
func (s *CommunityService) Members(ctx context.Context, communityID string, page int) ([]model.MemberDetail, pkg.PageMeta, error) {
	total, err := s.members.CountByCommunity(ctx, communityID)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	list, err := s.members.ListByCommunity(ctx, communityID, pkg.Offset(page), pkg.PerPage)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}

	details := make([]model.MemberDetail, 0, len(list))
	for _, m := range list {
		user, err := s.summary(ctx, userTable, m.User, s.users.SummaryByID)
		if err != nil {
			return nil, pkg.PageMeta{}, err
		}
		role, err := s.summary(ctx, roleTable, m.Role, s.roles.SummaryByID)
		if err != nil {
			return nil, pkg.PageMeta{}, err
		}
		details = append(details, model.MemberDetail{
			ID:        m.ID,
			Community: m.Community,
			User:      *user,
			Role:      *role,
			CreatedAt: m.CreatedAt,
		})
	}
	return details, pkg.NewPageMeta(total, page), nil
}

// Owned 当前用户名下的社区分页，不做填充
func (s *CommunityService) Owned(ctx context.Context, ownerID string, page int) ([]model.Community, pkg.PageMeta, error) {
	total, err := s.communities.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	list, err := s.communities.ListByOwner(ctx, ownerID, pkg.Offset(page), pkg.PerPage)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return list, pkg.NewPageMeta(total, page), nil
}

// Joined 当前用户加入的社区：按成员关系分页，再解析社区行并填充 owner。
// total 按成员关系计数，与来源行为一致
func (s *CommunityService) Joined(ctx context.Context, userID string, page int) ([]model.CommunityWithOwner, pkg.PageMeta, error) {
	total, err := s.members.CountByUser(ctx, userID)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	memberships, err := s.members.ListByUser(ctx, userID, pkg.Offset(page), pkg.PerPage)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}

	seen := make(map[string]struct{}, len(memberships))
	ids := make([]string, 0, len(memberships))
	for _, m := range memberships {
		if _, ok := seen[m.Community]; ok {
			continue
		}
		seen[m.Community] = struct{}{}
		ids = append(ids, m.Community)
	}

	list, err := s.communities.ListByIDs(ctx, ids)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}

	populated, err := s.populateOwners(ctx, list)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return populated, pkg.NewPageMeta(total, page), nil
}

func (s *CommunityService) populateOwners(ctx context.Context, list []model.Community) ([]model.CommunityWithOwner, error) {
	populated := make([]model.CommunityWithOwner, 0, len(list))
	for _, c := range list {
		owner, err := s.summary(ctx, userTable, c.Owner, s.users.SummaryByID)
		if err != nil {
			return nil, err
		}
		populated = append(populated, model.CommunityWithOwner{
			ID:        c.ID,
			Name:      c.Name,
			Slug:      c.Slug,
			Owner:     *owner,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return populated, nil
}

// summary 填充用点查，先走缓存；引用悬空时整页报错而不是崩
func (s *CommunityService) summary(ctx context.Context, table, id string, find func(context.Context, string) (*model.Summary, error)) (*model.Summary, error) {
	if s.cache != nil {
		if hit := s.cache.Get(ctx, table, id); hit != nil {
			return hit, nil
		}
	}

	sum, err := find(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s:%s", ErrDanglingReference, table, id)
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, table, id, sum)
	}
	return sum, nil
}
