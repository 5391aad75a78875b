//go:build integration

package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	dom "github.com/thefueley/sonic-poc/internal/domain"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestPostCache(t *testing.T) {
	ctx := context.Background()
	c := NewPostCache(startRedis(t), time.Minute)

	list, gen, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.Nil(t, list)
	assert.Equal(t, int64(0), gen)

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	want := []dom.Post{{ID: 1, AuthorID: 2, Username: "alice", Title: "Hi", Created: created}}
	require.NoError(t, c.SetList(ctx, gen, want))

	got, _, err := c.GetList(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Hi", got[0].Title)
	assert.True(t, created.Equal(got[0].Created))

	require.NoError(t, c.SetList(ctx, gen, nil))
	got, _, err = c.GetList(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	require.NoError(t, c.Invalidate(ctx))
	got, gen, err = c.GetList(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, int64(1), gen)
}

func TestPostCache_FillFromBeforeInvalidateIsIgnored(t *testing.T) {
	ctx := context.Background()
	c := NewPostCache(startRedis(t), time.Minute)

	_, staleGen, err := c.GetList(ctx)
	require.NoError(t, err)

	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.SetList(ctx, staleGen, []dom.Post{{ID: 1, Title: "deleted"}}))

	got, gen, err := c.GetList(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Greater(t, gen, staleGen)
}
