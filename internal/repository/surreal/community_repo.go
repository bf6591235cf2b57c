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

const communityTable = "community"

type CommunityRepository struct {
	db *surrealdb.DB
}

func NewCommunityRepository(db *surrealdb.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

type communityRecord struct {
	ID        *models.RecordID `json:"id,omitempty"`
	Name      string           `json:"name"`
	Slug      string           `json:"slug"`
	Owner     models.RecordID  `json:"owner"` // ref: user
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (rec *communityRecord) toModel() *model.Community {
	return &model.Community{
		ID:        ridString(rec.ID),
		Name:      rec.Name,
		Slug:      rec.Slug,
		Owner:     fmt.Sprint(rec.Owner.ID),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func (r *CommunityRepository) Create(ctx context.Context, community *model.Community) error {
	rec := communityRecord{
		Name:      community.Name,
		Slug:      community.Slug,
		Owner:     rid(userTable, community.Owner),
		CreatedAt: community.CreatedAt,
		UpdatedAt: community.UpdatedAt,
	}
	_, err := surrealdb.Create[communityRecord](ctx, r.db, rid(communityTable, community.ID), rec)
	if err != nil {
		return fmt.Errorf("create community: %w", err)
	}
	return nil
}

func (r *CommunityRepository) FindByID(ctx context.Context, id string) (*model.Community, error) {
	rec, err := surrealdb.Select[communityRecord](ctx, r.db, rid(communityTable, id))
	if isNotFound(err) || (err == nil && (rec == nil || rec.ID == nil)) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find community %s: %w", id, err)
	}
	return rec.toModel(), nil
}

func (r *CommunityRepository) List(ctx context.Context, offset, limit int) ([]model.Community, error) {
	res, err := surrealdb.Query[[]communityRecord](ctx, r.db, "SELECT * FROM community LIMIT $limit START $start", map[string]any{
		"limit": limit,
		"start": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list communities: %w", err)
	}
	return communityList(res), nil
}

func (r *CommunityRepository) Count(ctx context.Context) (int, error) {
	n, err := count(ctx, r.db, "SELECT count() FROM community GROUP ALL", nil)
	if err != nil {
		return 0, fmt.Errorf("count communities: %w", err)
	}
	return n, nil
}

func (r *CommunityRepository) ListByOwner(ctx context.Context, owner string, offset, limit int) ([]model.Community, error) {
	res, err := surrealdb.Query[[]communityRecord](ctx, r.db,
		"SELECT * FROM community WHERE owner = $owner LIMIT $limit START $start", map[string]any{
			"owner": rid(userTable, owner),
			"limit": limit,
			"start": offset,
		})
	if err != nil {
		return nil, fmt.Errorf("list communities by owner: %w", err)
	}
	return communityList(res), nil
}

func (r *CommunityRepository) CountByOwner(ctx context.Context, owner string) (int, error) {
	n, err := count(ctx, r.db, "SELECT count() FROM community WHERE owner = $owner GROUP ALL", map[string]any{
		"owner": rid(userTable, owner),
	})
	if err != nil {
		return 0, fmt.Errorf("count communities by owner: %w", err)
	}
	return n, nil
}

func (r *CommunityRepository) ListByIDs(ctx context.Context, ids []string) ([]model.Community, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	things := make([]models.RecordID, 0, len(ids))
	for _, id := range ids {
		things = append(things, rid(communityTable, id))
	}
	res, err := surrealdb.Query[[]communityRecord](ctx, r.db, "SELECT * FROM community WHERE id IN $ids", map[string]any{
		"ids": things,
	})
	if err != nil {
		return nil, fmt.Errorf("list communities by ids: %w", err)
	}
	return communityList(res), nil
}

func communityList(res *[]surrealdb.QueryResult[[]communityRecord]) []model.Community {
	recs := rows(res)
	list := make([]model.Community, 0, len(recs))
	for i := range recs {
		list = append(list, *recs[i].toModel())
	}
	return list
}
