package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewClient("redis://"+mr.Addr(), "test", zap.NewNop())
	require.NoError(t, err)

	return mr, client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		environment string
		expectError bool
	}{
		{
			name:        "Invalid URL",
			url:         "invalid://url",
			environment: "test",
			expectError: true,
		},
		{
			name:        "Empty URL",
			url:         "",
			environment: "test",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.url, tt.environment, zap.NewNop())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, client)
			}
		})
	}
}

func TestClient_GetSet(t *testing.T) {
	mr, client := setupTestRedis(t)

	ctx := context.Background()

	err := client.Set(ctx, "test:key1", "value1", time.Minute)
	require.NoError(t, err)

	value, err := client.Get(ctx, "test:key1")
	assert.NoError(t, err)
	assert.Equal(t, "value1", value)

	// TTL is carried through to the store
	assert.Greater(t, mr.TTL("test:key1"), time.Duration(0))

	// Missing key surfaces the store's nil sentinel
	_, err = client.Get(ctx, "test:missing")
	assert.ErrorIs(t, err, Nil)
}

func TestClient_SetNX(t *testing.T) {
	_, client := setupTestRedis(t)

	ctx := context.Background()

	ok, err := client.SetNX(ctx, "test:lock", "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SetNX(ctx, "test:lock", "1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_Delete(t *testing.T) {
	mr, client := setupTestRedis(t)

	ctx := context.Background()

	mr.Set("test:key1", "value1")
	mr.Set("test:key2", "value2")

	err := client.Delete(ctx, "test:key1", "test:key2", "test:missing")
	require.NoError(t, err)

	for _, key := range []string{"test:key1", "test:key2"} {
		val, _ := mr.Get(key)
		assert.Empty(t, val)
	}
}

func TestClient_Exists(t *testing.T) {
	mr, client := setupTestRedis(t)

	ctx := context.Background()

	mr.Set("test:exists1", "value1")

	tests := []struct {
		name          string
		keys          []string
		expectedCount int64
	}{
		{
			name:          "Existing key",
			keys:          []string{"test:exists1"},
			expectedCount: 1,
		},
		{
			name:          "Missing key",
			keys:          []string{"test:missing"},
			expectedCount: 0,
		},
		{
			name:          "Mixed existing and missing",
			keys:          []string{"test:exists1", "test:missing"},
			expectedCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := client.Exists(ctx, tt.keys...)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
		})
	}
}

func TestClient_IndexSets(t *testing.T) {
	_, client := setupTestRedis(t)

	ctx := context.Background()

	require.NoError(t, client.SAdd(ctx, "test:index", "a", "b", "c"))
	require.NoError(t, client.SAdd(ctx, "test:index", "b")) // duplicate is a no-op

	members, err := client.SMembers(ctx, "test:index")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, members)

	require.NoError(t, client.SRem(ctx, "test:index", "b"))

	members, err = client.SMembers(ctx, "test:index")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, members)
}

func TestClient_Pipeline(t *testing.T) {
	mr, client := setupTestRedis(t)

	ctx := context.Background()

	pipe := client.Pipeline()
	require.NotNil(t, pipe)

	pipe.Set(ctx, "test:pipe1", "value1", time.Minute)
	pipe.SAdd(ctx, "test:pipe:index", "pipe1")

	cmds, err := pipe.Exec(ctx)
	assert.NoError(t, err)
	assert.Len(t, cmds, 2)

	val, _ := mr.Get("test:pipe1")
	assert.Equal(t, "value1", val)
}

func TestClient_Health(t *testing.T) {
	mr, client := setupTestRedis(t)

	ctx := context.Background()

	err := client.Health(ctx)
	assert.NoError(t, err)

	mr.Close()
	err = client.Health(ctx)
	assert.Error(t, err)
}
