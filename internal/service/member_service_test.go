package service

import (
	"context"
	"testing"
	"time"

	"Community_API/internal/model"
	"Community_API/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memberFixture struct {
	svc     *MemberService
	members *fakeMemberRepo
	users   *fakeUserRepo
	roles   *fakeRoleRepo
	events  *fakeEventSink

	owner     *model.User
	guest     *model.User
	community *model.Community
	role      *model.Role
}

func newMemberFixture(t *testing.T) *memberFixture {
	t.Helper()
	ids, err := pkg.NewIDGenerator(1)
	require.NoError(t, err)

	f := &memberFixture{
		members: &fakeMemberRepo{},
		users:   &fakeUserRepo{},
		roles:   &fakeRoleRepo{},
		events:  &fakeEventSink{},
	}
	communities := &fakeCommunityRepo{}
	f.svc = NewMemberService(f.members, communities, f.users, f.roles, ids, f.events)

	now := time.Now()
	f.owner = &model.User{ID: ids.Generate(), Name: "ada", Email: "ada@example.com", CreatedAt: now}
	f.guest = &model.User{ID: ids.Generate(), Name: "brian", Email: "brian@example.com", CreatedAt: now}
	f.users.users = append(f.users.users, *f.owner, *f.guest)

	f.community = &model.Community{ID: ids.Generate(), Name: "Gophers", Slug: "gophers", Owner: f.owner.ID, CreatedAt: now, UpdatedAt: now}
	communities.communities = append(communities.communities, *f.community)

	f.role = &model.Role{ID: ids.Generate(), Name: "Editor", CreatedAt: now, UpdatedAt: now}
	f.roles.roles = append(f.roles.roles, *f.role)
	return f
}

func TestMemberAdd(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	member, err := f.svc.Add(ctx, f.owner.ID, f.community.ID, f.guest.ID, f.role.ID)
	require.NoError(t, err)
	assert.Equal(t, f.guest.ID, member.User)
	assert.Equal(t, f.community.ID, member.Community)
	assert.Equal(t, f.role.ID, member.Role)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, member.ID, f.events.events[0].Key)
	evt, ok := f.events.events[0].Payload.(Event)
	require.True(t, ok)
	assert.Equal(t, EventMemberAdded, evt.Type)
}

func TestMemberAddNotOwner(t *testing.T) {
	f := newMemberFixture(t)

	_, err := f.svc.Add(context.Background(), f.guest.ID, f.community.ID, f.guest.ID, f.role.ID)
	assert.ErrorIs(t, err, ErrNotAllowed)
	assert.Empty(t, f.members.members)
}

func TestMemberAddMissingReferences(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	_, err := f.svc.Add(ctx, f.owner.ID, "missing-community", f.guest.ID, f.role.ID)
	assert.ErrorIs(t, err, ErrCommunityNotFound)

	_, err = f.svc.Add(ctx, f.owner.ID, f.community.ID, "missing-user", f.role.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = f.svc.Add(ctx, f.owner.ID, f.community.ID, f.guest.ID, "missing-role")
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestMemberAddDuplicate(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	_, err := f.svc.Add(ctx, f.owner.ID, f.community.ID, f.guest.ID, f.role.ID)
	require.NoError(t, err)

	_, err = f.svc.Add(ctx, f.owner.ID, f.community.ID, f.guest.ID, f.role.ID)
	assert.ErrorIs(t, err, ErrMemberExists)
	assert.Len(t, f.members.members, 1)
}

func TestMemberRemove(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	member, err := f.svc.Add(ctx, f.owner.ID, f.community.ID, f.guest.ID, f.role.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Remove(ctx, f.owner.ID, member.ID))
	assert.Empty(t, f.members.members)

	require.Len(t, f.events.events, 2)
	evt, ok := f.events.events[1].Payload.(Event)
	require.True(t, ok)
	assert.Equal(t, EventMemberRemoved, evt.Type)
}

func TestMemberRemoveNotOwner(t *testing.T) {
	f := newMemberFixture(t)
	ctx := context.Background()

	member, err := f.svc.Add(ctx, f.owner.ID, f.community.ID, f.guest.ID, f.role.ID)
	require.NoError(t, err)

	err = f.svc.Remove(ctx, f.guest.ID, member.ID)
	assert.ErrorIs(t, err, ErrNotAllowed)
	assert.Len(t, f.members.members, 1, "member must survive a forbidden removal")
}

func TestMemberRemoveUnknown(t *testing.T) {
	f := newMemberFixture(t)

	err := f.svc.Remove(context.Background(), f.owner.ID, "missing-member")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
