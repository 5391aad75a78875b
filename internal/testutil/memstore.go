package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	dom "github.com/thefueley/sonic-poc/internal/domain"
	"github.com/thefueley/sonic-poc/internal/repo"
)

// MemStore is an in-memory stand-in for the users and posts tables.
// Unique collisions are reported the way Postgres reports them.
type MemStore struct {
	mu     sync.Mutex
	users  map[int64]dom.User
	posts  map[int64]dom.Post
	nextID int64
	now    func() time.Time
}

// NewMemStore returns an empty store whose clock advances one second per insert.
func NewMemStore() *MemStore {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var tick int
	return &MemStore{
		users: map[int64]dom.User{},
		posts: map[int64]dom.Post{},
		now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
	}
}

// Users returns a repo.UserRepo over the store.
func (s *MemStore) Users() repo.UserRepo { return memUsers{s} }

// Posts returns a repo.PostRepo over the store.
func (s *MemStore) Posts() repo.PostRepo { return memPosts{s} }

// UserCount returns the number of stored users.
func (s *MemStore) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

type memUsers struct{ s *MemStore }

func (r memUsers) GetByID(_ context.Context, id int64) (dom.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return dom.User{}, dom.ErrNotFound
	}
	return u, nil
}

func (r memUsers) GetByUsername(_ context.Context, username string) (dom.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return dom.User{}, dom.ErrNotFound
}

func (r memUsers) Create(_ context.Context, username, email, passwordHash string) (dom.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return dom.User{}, fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_username"})
		}
		if u.Email == email {
			return dom.User{}, fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})
		}
	}
	r.s.nextID++
	u := dom.User{
		ID:           r.s.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    r.s.now(),
	}
	r.s.users[u.ID] = u
	return u, nil
}

type memPosts struct{ s *MemStore }

func (r memPosts) List(_ context.Context) ([]dom.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]dom.Post, 0, len(r.s.posts))
	for _, p := range r.s.posts {
		list = append(list, r.s.withAuthor(p))
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Created.Equal(list[j].Created) {
			return list[i].Created.After(list[j].Created)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

func (r memPosts) GetByID(_ context.Context, id int64) (dom.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return dom.Post{}, dom.ErrNotFound
	}
	return r.s.withAuthor(p), nil
}

func (r memPosts) Create(_ context.Context, authorID int64, title, body string) (dom.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[authorID]; !ok {
		return dom.Post{}, fmt.Errorf("create post: %w", &pgconn.PgError{Code: "23503"})
	}
	r.s.nextID++
	p := dom.Post{ID: r.s.nextID, AuthorID: authorID, Title: title, Body: body, Created: r.s.now()}
	r.s.posts[p.ID] = p
	return r.s.withAuthor(p), nil
}

func (r memPosts) Update(_ context.Context, id int64, title, body string) (dom.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return dom.Post{}, dom.ErrNotFound
	}
	p.Title = title
	p.Body = body
	r.s.posts[id] = p
	return r.s.withAuthor(p), nil
}

func (r memPosts) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[id]; !ok {
		return dom.ErrNotFound
	}
	delete(r.s.posts, id)
	return nil
}

func (s *MemStore) withAuthor(p dom.Post) dom.Post {
	p.Username = s.users[p.AuthorID].Username
	return p
}
