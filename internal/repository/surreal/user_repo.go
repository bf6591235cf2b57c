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

const userTable = "user"

type UserRepository struct {
	db *surrealdb.DB
}

func NewUserRepository(db *surrealdb.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRecord struct {
	ID        *models.RecordID `json:"id,omitempty"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Password  string           `json:"password"`
	CreatedAt time.Time        `json:"created_at"`
}

func (rec *userRecord) toModel() *model.User {
	return &model.User{
		ID:        ridString(rec.ID),
		Name:      rec.Name,
		Email:     rec.Email,
		Password:  rec.Password,
		CreatedAt: rec.CreatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	rec := userRecord{
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
		CreatedAt: user.CreatedAt,
	}
	_, err := surrealdb.Create[userRecord](ctx, r.db, rid(userTable, user.ID), rec)
	if isDuplicate(err) {
		return repository.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	rec, err := surrealdb.Select[userRecord](ctx, r.db, rid(userTable, id))
	if isNotFound(err) || (err == nil && (rec == nil || rec.ID == nil)) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return rec.toModel(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	res, err := surrealdb.Query[[]userRecord](ctx, r.db, "SELECT * FROM user WHERE email = $email", map[string]any{
		"email": email,
	})
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	rec, ok := first(res)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return rec.toModel(), nil
}

func (r *UserRepository) SummaryByID(ctx context.Context, id string) (*model.Summary, error) {
	return summaryByID(ctx, r.db, userTable, id)
}
