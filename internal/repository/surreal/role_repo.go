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

const roleTable = "role"

type RoleRepository struct {
	db *surrealdb.DB
}

func NewRoleRepository(db *surrealdb.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

type roleRecord struct {
	ID        *models.RecordID `json:"id,omitempty"`
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (rec *roleRecord) toModel() *model.Role {
	return &model.Role{
		ID:        ridString(rec.ID),
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func (r *RoleRepository) Create(ctx context.Context, role *model.Role) error {
	rec := roleRecord{
		Name:      role.Name,
		CreatedAt: role.CreatedAt,
		UpdatedAt: role.UpdatedAt,
	}
	_, err := surrealdb.Create[roleRecord](ctx, r.db, rid(roleTable, role.ID), rec)
	if isDuplicate(err) {
		return repository.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("create role: %w", err)
	}
	return nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id string) (*model.Role, error) {
	rec, err := surrealdb.Select[roleRecord](ctx, r.db, rid(roleTable, id))
	if isNotFound(err) || (err == nil && (rec == nil || rec.ID == nil)) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find role %s: %w", id, err)
	}
	return rec.toModel(), nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	res, err := surrealdb.Query[[]roleRecord](ctx, r.db, "SELECT * FROM role WHERE name = $name", map[string]any{
		"name": name,
	})
	if err != nil {
		return nil, fmt.Errorf("find role by name: %w", err)
	}
	rec, ok := first(res)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return rec.toModel(), nil
}

func (r *RoleRepository) SummaryByID(ctx context.Context, id string) (*model.Summary, error) {
	return summaryByID(ctx, r.db, roleTable, id)
}

func (r *RoleRepository) List(ctx context.Context, offset, limit int) ([]model.Role, error) {
	res, err := surrealdb.Query[[]roleRecord](ctx, r.db, "SELECT * FROM role LIMIT $limit START $start", map[string]any{
		"limit": limit,
		"start": offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	recs := rows(res)
	list := make([]model.Role, 0, len(recs))
	for i := range recs {
		list = append(list, *recs[i].toModel())
	}
	return list, nil
}

func (r *RoleRepository) Count(ctx context.Context) (int, error) {
	n, err := count(ctx, r.db, "SELECT count() FROM role GROUP ALL", nil)
	if err != nil {
		return 0, fmt.Errorf("count roles: %w", err)
	}
	return n, nil
}
