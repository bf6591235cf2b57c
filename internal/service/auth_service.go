package service

import (
	"context"
	"errors"
	"time"

	"Community_API/internal/model"
	"Community_API/internal/pkg"
	"Community_API/internal/repository"
)

type AuthService struct {
	users  repository.UserRepository
	tokens *pkg.TokenMaker
	ids    *pkg.IDGenerator
	events EventSink
}

func NewAuthService(users repository.UserRepository, tokens *pkg.TokenMaker, ids *pkg.IDGenerator, events EventSink) *AuthService {
	return &AuthService{users: users, tokens: tokens, ids: ids, events: events}
}

func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (*model.User, string, error) {
	// 先查后写，唯一索引兜底并发重复
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:        s.ids.Generate(),
		Name:      name,
		Email:     email,
		Password:  hash,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	publish(ctx, s.events, EventUserSignup, user.ID)
	return user, token, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrUserNotExists
	}
	if err != nil {
		return nil, "", err
	}

	if !pkg.CheckPassword(password, user.Password) {
		return nil, "", ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
