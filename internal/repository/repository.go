package repository

import (
	"context"
	"errors"

	"Community_API/internal/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// 聚合层按实体仓储接口取数，连带 {id,name} 摘要点查能力，
// 跨集合的视图在应用层拼装。

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	SummaryByID(ctx context.Context, id string) (*model.Summary, error)
}

type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	FindByID(ctx context.Context, id string) (*model.Role, error)
	FindByName(ctx context.Context, name string) (*model.Role, error)
	SummaryByID(ctx context.Context, id string) (*model.Summary, error)
	List(ctx context.Context, offset, limit int) ([]model.Role, error)
	Count(ctx context.Context) (int, error)
}

type CommunityRepository interface {
	Create(ctx context.Context, community *model.Community) error
	FindByID(ctx context.Context, id string) (*model.Community, error)
	List(ctx context.Context, offset, limit int) ([]model.Community, error)
	Count(ctx context.Context) (int, error)
	ListByOwner(ctx context.Context, owner string, offset, limit int) ([]model.Community, error)
	CountByOwner(ctx context.Context, owner string) (int, error)
	ListByIDs(ctx context.Context, ids []string) ([]model.Community, error)
}

type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, id string) (*model.Member, error)
	ListByCommunity(ctx context.Context, community string, offset, limit int) ([]model.Member, error)
	CountByCommunity(ctx context.Context, community string) (int, error)
	ListByUser(ctx context.Context, user string, offset, limit int) ([]model.Member, error)
	CountByUser(ctx context.Context, user string) (int, error)
	Delete(ctx context.Context, id string) error
}

// SummaryCache 摘要缓存，纯优化，出错按未命中处理
type SummaryCache interface {
	Get(ctx context.Context, table, id string) *model.Summary
	Set(ctx context.Context, table, id string, s *model.Summary)
}
