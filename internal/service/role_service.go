package service

import (
	"context"
	"errors"
	"time"

	"Community_API/internal/model"
	"Community_API/internal/pkg"
	"Community_API/internal/repository"
)

type RoleService struct {
	roles repository.RoleRepository
	ids   *pkg.IDGenerator
}

func NewRoleService(roles repository.RoleRepository, ids *pkg.IDGenerator) *RoleService {
	return &RoleService{roles: roles, ids: ids}
}

// Create 角色是全局命名空间，重名拒绝
func (s *RoleService) Create(ctx context.Context, name string) (*model.Role, error) {
	if _, err := s.roles.FindByName(ctx, name); err == nil {
		return nil, ErrRoleExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	role := &model.Role{
		ID:        s.ids.Generate(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrRoleExists
		}
		return nil, err
	}
	return role, nil
}

func (s *RoleService) List(ctx context.Context, page int) ([]model.Role, pkg.PageMeta, error) {
	total, err := s.roles.Count(ctx)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	list, err := s.roles.List(ctx, pkg.Offset(page), pkg.PerPage)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return list, pkg.NewPageMeta(total, page), nil
}
