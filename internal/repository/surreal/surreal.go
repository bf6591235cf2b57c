// Package surreal implements the entity repositories on SurrealDB.
// Records carry snowflake string ids as their record id, so point lookups
// go through the record id and default ordering is insertion order.
package surreal

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"Community_API/internal/model"
	"Community_API/internal/repository"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	"github.com/surrealdb/surrealdb.go/pkg/models"
	"github.com/surrealdb/surrealdb.go/surrealcbor"
)

type Config struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// Connect 建立 websocket 连接，使用 surrealcbor 编解码保证
// time.Time / RecordID 的序列化正确
func Connect(ctx context.Context, cfg Config) (*surrealdb.DB, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse surreal url: %w", err)
	}

	conf := connection.NewConfig(u)
	codec := surrealcbor.New()
	conf.Marshaler = codec
	conf.Unmarshaler = codec

	db, err := surrealdb.FromConnection(ctx, gorillaws.New(conf))
	if err != nil {
		return nil, fmt.Errorf("connect surrealdb: %w", err)
	}

	if cfg.Username != "" && cfg.Password != "" {
		if _, err := db.SignIn(ctx, map[string]any{
			"user": cfg.Username,
			"pass": cfg.Password,
		}); err != nil {
			return nil, fmt.Errorf("signin surrealdb: %w", err)
		}
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		return nil, fmt.Errorf("use %s/%s: %w", cfg.Namespace, cfg.Database, err)
	}

	return db, nil
}

// Migrate 声明唯一索引，作为先查后写竞态的库侧兜底
func Migrate(ctx context.Context, db *surrealdb.DB) error {
	const schema = `
		DEFINE TABLE IF NOT EXISTS user;
		DEFINE INDEX IF NOT EXISTS user_email ON TABLE user COLUMNS email UNIQUE;
		DEFINE TABLE IF NOT EXISTS role;
		DEFINE INDEX IF NOT EXISTS role_name ON TABLE role COLUMNS name UNIQUE;
		DEFINE TABLE IF NOT EXISTS community;
		DEFINE TABLE IF NOT EXISTS member;
		DEFINE INDEX IF NOT EXISTS member_user_community ON TABLE member COLUMNS user, community UNIQUE;
	`
	if _, err := surrealdb.Query[any](ctx, db, schema, nil); err != nil {
		return fmt.Errorf("define schema: %w", err)
	}
	return nil
}

func rid(table, id string) models.RecordID {
	return models.RecordID{Table: table, ID: id}
}

func ridString(r *models.RecordID) string {
	if r == nil {
		return ""
	}
	return fmt.Sprint(r.ID)
}

// isNotFound 按驱动约定把空结果归一成未找到
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Expected a single or multiple results but got 0") ||
		strings.Contains(msg, "cannot unmarshal array into Go value")
}

// isDuplicate 唯一索引冲突
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already contains")
}

// first 取多语句结果里第一条语句的首行
func first[T any](res *[]surrealdb.QueryResult[[]T]) (*T, bool) {
	if res == nil || len(*res) == 0 || len((*res)[0].Result) == 0 {
		return nil, false
	}
	return &(*res)[0].Result[0], true
}

func rows[T any](res *[]surrealdb.QueryResult[[]T]) []T {
	if res == nil || len(*res) == 0 {
		return nil
	}
	return (*res)[0].Result
}

type countRow struct {
	Count int `json:"count"`
}

type summaryRecord struct {
	ID   *models.RecordID `json:"id"`
	Name string           `json:"name"`
}

// summaryByID 点查 {id, name} 摘要，聚合层填充用
func summaryByID(ctx context.Context, db *surrealdb.DB, table, id string) (*model.Summary, error) {
	res, err := surrealdb.Query[[]summaryRecord](ctx, db, "SELECT id, name FROM $thing", map[string]any{
		"thing": rid(table, id),
	})
	if err != nil {
		return nil, fmt.Errorf("summary %s:%s: %w", table, id, err)
	}
	row, ok := first(res)
	if !ok || row.ID == nil {
		return nil, repository.ErrNotFound
	}
	return &model.Summary{ID: ridString(row.ID), Name: row.Name}, nil
}

func count(ctx context.Context, db *surrealdb.DB, query string, vars map[string]any) (int, error) {
	res, err := surrealdb.Query[[]countRow](ctx, db, query, vars)
	if err != nil {
		return 0, err
	}
	if row, ok := first(res); ok {
		return row.Count, nil
	}
	return 0, nil
}
