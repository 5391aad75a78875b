package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	dom "github.com/thefueley/sonic-poc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyGeneration = "post:list:gen"
	keyListPrefix = "post:list:"
)

func listKey(gen int64) string {
	return keyListPrefix + strconv.FormatInt(gen, 10)
}

// PostCache caches the public post list in Redis.
// Ownership lookups never go through it.
//
// Lists are stored per generation. Invalidate bumps the generation, so a
// fill computed from a read that raced a write lands under a key no reader
// asks for again and expires with its TTL.
type PostCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewPostCache returns a new PostCache.
func NewPostCache(rdb *redis.Client, ttl time.Duration) *PostCache {
	return &PostCache{rdb: rdb, ttl: ttl}
}

// GetList returns the list cached for the current generation together with
// that generation. The list is nil on a miss.
func (c *PostCache) GetList(ctx context.Context) ([]dom.Post, int64, error) {
	gen, err := c.rdb.Get(ctx, keyGeneration).Int64()
	if errors.Is(err, redis.Nil) {
		gen = 0
	} else if err != nil {
		return nil, 0, err
	}

	b, err := c.rdb.Get(ctx, listKey(gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, nil
	}
	if err != nil {
		return nil, 0, err
	}
	list := []dom.Post{}
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, 0, err
	}
	return list, gen, nil
}

// SetList stores the list for generation gen, as returned by GetList
// before the list was loaded.
func (c *PostCache) SetList(ctx context.Context, gen int64, list []dom.Post) error {
	if list == nil {
		list = []dom.Post{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(gen), b, c.ttl).Err()
}

// Invalidate starts a new generation. Called after every post write.
func (c *PostCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, keyGeneration).Err()
}
