package surreal

import (
	"context"
	"fmt"
	"time"

	"Community_API/internal/model"
	"Community_API/internal/repository"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

const memberTable = "member"

type MemberRepository struct {
	db *surrealdb.DB
}

func NewMemberRepository(db *surrealdb.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

type memberRecord struct {
	ID        *models.RecordID `json:"id,omitempty"`
	User      models.RecordID  `json:"user"`      // ref: user
	Community models.RecordID  `json:"community"` // ref: community
	Role      models.RecordID  `json:"role"`      // ref: role
	CreatedAt time.Time        `json:"created_at"`
}

func (rec *memberRecord) toModel() *model.Member {
	return &model.Member{
		ID:        ridString(rec.ID),
		User:      fmt.Sprint(rec.User.ID),
		Community: fmt.Sprint(rec.Community.ID),
		Role:      fmt.Sprint(rec.Role.ID),
		CreatedAt: rec.CreatedAt,
	}
}

func (r *MemberRepository) Create(ctx context.Context, member *model.Member) error {
	rec := memberRecord{
		User:      rid(userTable, member.User),
		Community: rid(communityTable, member.Community),
		Role:      rid(roleTable, member.Role),
		CreatedAt: member.CreatedAt,
	}
	_, err := surrealdb.Create[memberRecord](ctx, r.db, rid(memberTable, member.ID), rec)
	if isDuplicate(err) {
		return repository.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id string) (*model.Member, error) {
	rec, err := surrealdb.Select[memberRecord](ctx, r.db, rid(memberTable, id))
	if isNotFound(err) || (err == nil && (rec == nil || rec.ID == nil)) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find member %s: %w", id, err)
	}
	return rec.toModel(), nil
}

func (r *MemberRepository) ListByCommunity(ctx context.Context, community string, offset, limit int) ([]model.Member, error) {
	res, err := surrealdb.Query[[]memberRecord](ctx, r.db,
		"SELECT * FROM member WHERE community = $community LIMIT $limit START $start", map[string]any{
			"community": rid(communityTable, community),
			"limit":     limit,
			"start":     offset,
		})
	if err != nil {
		return nil, fmt.Errorf("list members by community: %w", err)
	}
	return memberList(res), nil
}

func (r *MemberRepository) CountByCommunity(ctx context.Context, community string) (int, error) {
	n, err := count(ctx, r.db, "SELECT count() FROM member WHERE community = $community GROUP ALL", map[string]any{
		"community": rid(communityTable, community),
	})
	if err != nil {
		return 0, fmt.Errorf("count members by community: %w", err)
	}
	return n, nil
}

func (r *MemberRepository) ListByUser(ctx context.Context, user string, offset, limit int) ([]model.Member, error) {
	res, err := surrealdb.Query[[]memberRecord](ctx, r.db,
		"SELECT * FROM member WHERE user = $user LIMIT $limit START $start", map[string]any{
			"user":  rid(userTable, user),
			"limit": limit,
			"start": offset,
		})
	if err != nil {
		return nil, fmt.Errorf("list members by user: %w", err)
	}
	return memberList(res), nil
}

func (r *MemberRepository) CountByUser(ctx context.Context, user string) (int, error) {
	n, err := count(ctx, r.db, "SELECT count() FROM member WHERE user = $user GROUP ALL", map[string]any{
		"user": rid(userTable, user),
	})
	if err != nil {
		return 0, fmt.Errorf("count members by user: %w", err)
	}
	return n, nil
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	if _, err := surrealdb.Delete[memberRecord](ctx, r.db, rid(memberTable, id)); err != nil {
		return fmt.Errorf("delete member %s: %w", id, err)
	}
	return nil
}

func memberList(res *[]surrealdb.QueryResult[[]memberRecord]) []model.Member {
	recs := rows(res)
	list := make([]model.Member, 0, len(recs))
	for i := range recs {
		list = append(list, *recs[i].toModel())
	}
	return list
}
