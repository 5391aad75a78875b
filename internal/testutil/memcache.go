package testutil

import (
	"context"
	"sync"

	dom "github.com/thefueley/sonic-poc/internal/domain"
)

// MemCache is an in-memory generational post list cache with the same
// semantics as the Redis one.
type MemCache struct {
	mu    sync.Mutex
	gen   int64
	lists map[int64][]dom.Post
}

func NewMemCache() *MemCache {
	return &MemCache{lists: map[int64][]dom.Post{}}
}

func (c *MemCache) GetList(_ context.Context) ([]dom.Post, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lists[c.gen], c.gen, nil
}

func (c *MemCache) SetList(_ context.Context, gen int64, list []dom.Post) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]dom.Post, len(list))
	copy(cp, list)
	c.lists[gen] = cp
	return nil
}

func (c *MemCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return nil
}
