package service

import (
	"context"
	"sync"

	"Community_API/internal/model"
	"Community_API/internal/repository"
)

// 内存假仓储，保序，语义对齐 surreal 实现

func pageSlice[T any](list []T, offset, limit int) []T {
	if offset >= len(list) {
		return nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	out := make([]T, end-offset)
	copy(out, list[offset:end])
	return out
}

type fakeUserRepo struct {
	users []model.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	for _, e := range f.users {
		if e.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) SummaryByID(ctx context.Context, id string) (*model.Summary, error) {
	u, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.Summary{ID: u.ID, Name: u.Name}, nil
}

func (f *fakeUserRepo) remove(id string) {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return
		}
	}
}

type fakeRoleRepo struct {
	roles []model.Role
}

func (f *fakeRoleRepo) Create(_ context.Context, r *model.Role) error {
	for _, e := range f.roles {
		if e.Name == r.Name {
			return repository.ErrDuplicate
		}
	}
	f.roles = append(f.roles, *r)
	return nil
}

func (f *fakeRoleRepo) FindByID(_ context.Context, id string) (*model.Role, error) {
	for i := range f.roles {
		if f.roles[i].ID == id {
			r := f.roles[i]
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRoleRepo) FindByName(_ context.Context, name string) (*model.Role, error) {
	for i := range f.roles {
		if f.roles[i].Name == name {
			r := f.roles[i]
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRoleRepo) SummaryByID(ctx context.Context, id string) (*model.Summary, error) {
	r, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.Summary{ID: r.ID, Name: r.Name}, nil
}

func (f *fakeRoleRepo) List(_ context.Context, offset, limit int) ([]model.Role, error) {
	return pageSlice(f.roles, offset, limit), nil
}

func (f *fakeRoleRepo) Count(_ context.Context) (int, error) {
	return len(f.roles), nil
}

type fakeCommunityRepo struct {
	communities []model.Community
}

func (f *fakeCommunityRepo) Create(_ context.Context, c *model.Community) error {
	f.communities = append(f.communities, *c)
	return nil
}

func (f *fakeCommunityRepo) FindByID(_ context.Context, id string) (*model.Community, error) {
	for i := range f.communities {
		if f.communities[i].ID == id {
			c := f.communities[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCommunityRepo) List(_ context.Context, offset, limit int) ([]model.Community, error) {
	return pageSlice(f.communities, offset, limit), nil
}

func (f *fakeCommunityRepo) Count(_ context.Context) (int, error) {
	return len(f.communities), nil
}

func (f *fakeCommunityRepo) ListByOwner(_ context.Context, owner string, offset, limit int) ([]model.Community, error) {
	var owned []model.Community
	for _, c := range f.communities {
		if c.Owner == owner {
			owned = append(owned, c)
		}
	}
	return pageSlice(owned, offset, limit), nil
}

func (f *fakeCommunityRepo) CountByOwner(_ context.Context, owner string) (int, error) {
	n := 0
	for _, c := range f.communities {
		if c.Owner == owner {
			n++
		}
	}
	return n, nil
}

func (f *fakeCommunityRepo) ListByIDs(_ context.Context, ids []string) ([]model.Community, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []model.Community
	for _, c := range f.communities {
		if _, ok := want[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeMemberRepo struct {
	members []model.Member
}

func (f *fakeMemberRepo) Create(_ context.Context, m *model.Member) error {
	for _, e := range f.members {
		if e.User == m.User && e.Community == m.Community {
			return repository.ErrDuplicate
		}
	}
	f.members = append(f.members, *m)
	return nil
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id string) (*model.Member, error) {
	for i := range f.members {
		if f.members[i].ID == id {
			m := f.members[i]
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMemberRepo) ListByCommunity(_ context.Context, community string, offset, limit int) ([]model.Member, error) {
	var out []model.Member
	for _, m := range f.members {
		if m.Community == community {
			out = append(out, m)
		}
	}
	return pageSlice(out, offset, limit), nil
}

func (f *fakeMemberRepo) CountByCommunity(_ context.Context, community string) (int, error) {
	n := 0
	for _, m := range f.members {
		if m.Community == community {
			n++
		}
	}
	return n, nil
}

func (f *fakeMemberRepo) ListByUser(_ context.Context, user string, offset, limit int) ([]model.Member, error) {
	var out []model.Member
	for _, m := range f.members {
		if m.User == user {
			out = append(out, m)
		}
	}
	return pageSlice(out, offset, limit), nil
}

func (f *fakeMemberRepo) CountByUser(_ context.Context, user string) (int, error) {
	n := 0
	for _, m := range f.members {
		if m.User == user {
			n++
		}
	}
	return n, nil
}

func (f *fakeMemberRepo) Delete(_ context.Context, id string) error {
	for i := range f.members {
		if f.members[i].ID == id {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeSummaryCache struct {
	mu    sync.Mutex
	store map[string]model.Summary
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{store: make(map[string]model.Summary)}
}

func (f *fakeSummaryCache) Get(_ context.Context, table, id string) *model.Summary {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.store[table+":"+id]; ok {
		cp := s
		return &cp
	}
	return nil
}

func (f *fakeSummaryCache) Set(_ context.Context, table, id string, s *model.Summary) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[table+":"+id] = *s
}

type recordedEvent struct {
	Key     string
	Payload any
}

type fakeEventSink struct {
	events []recordedEvent
}

func (f *fakeEventSink) Publish(_ context.Context, key string, payload any) error {
	f.events = append(f.events, recordedEvent{Key: key, Payload: payload})
	return nil
}
