package service

import (
	"context"
	"testing"

	"Community_API/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, *pkg.TokenMaker, *fakeEventSink) {
	t.Helper()
	users := &fakeUserRepo{}
	maker := pkg.NewTokenMaker("test-secret", 0)
	ids, err := pkg.NewIDGenerator(1)
	require.NoError(t, err)
	events := &fakeEventSink{}
	return NewAuthService(users, maker, ids, events), users, maker, events
}

func TestSignUp(t *testing.T) {
	svc, users, maker, events := newAuthFixture(t)
	ctx := context.Background()

	user, token, err := svc.SignUp(ctx, "Ada", "ada@example.com", "secret-password")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "secret-password", user.Password, "password must be stored hashed")
	assert.True(t, pkg.CheckPassword("secret-password", user.Password))

	// 令牌要能解回刚建的用户
	subject, err := maker.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)

	require.Len(t, events.events, 1)
	assert.Equal(t, user.ID, events.events[0].Key)
	evt, ok := events.events[0].Payload.(Event)
	require.True(t, ok)
	assert.Equal(t, EventUserSignup, evt.Type)
	assert.Len(t, users.users, 1)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := svc.SignUp(ctx, "Ada", "ada@example.com", "secret-password")
	require.NoError(t, err)

	_, _, err = svc.SignUp(ctx, "Other Ada", "ada@example.com", "another-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, users.users, 1, "conflict must not add a second row")
}

func TestSignIn(t *testing.T) {
	svc, _, maker, _ := newAuthFixture(t)
	ctx := context.Background()

	created, _, err := svc.SignUp(ctx, "Ada", "ada@example.com", "secret-password")
	require.NoError(t, err)

	user, token, err := svc.SignIn(ctx, "ada@example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	subject, err := maker.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, subject)
}

func TestSignInUnknownEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, _, err := svc.SignIn(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrUserNotExists)
}

func TestSignInWrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := svc.SignUp(ctx, "Ada", "ada@example.com", "secret-password")
	require.NoError(t, err)

	_, _, err = svc.SignIn(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestMe(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	created, _, err := svc.SignUp(ctx, "Ada", "ada@example.com", "secret-password")
	require.NoError(t, err)

	user, err := svc.Me(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, user.Email)

	_, err = svc.Me(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
