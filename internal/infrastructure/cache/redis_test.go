package cache

import (
	"context"
	"testing"
	"time"

	"alignr/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis_DisabledBypasses(t *testing.T) {
	r := NewRedis(config.CacheConfig{Enabled: false, TTL: time.Minute}, nil)
	ctx := context.Background()

	require.NoError(t, r.SetJSON(ctx, "k", []string{"sql"}, 0))

	var out []string
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, out)

	assert.Equal(t, "disabled", r.Status(ctx))
	assert.NoError(t, r.Close())
}

func TestNilRedisIsSafe(t *testing.T) {
	var r *Redis
	ctx := context.Background()

	hit, err := r.GetJSON(ctx, "k", &struct{}{})
	assert.False(t, hit)
	assert.NoError(t, err)
	assert.NoError(t, r.SetJSON(ctx, "k", 1, time.Second))
	assert.Equal(t, "disabled", r.Status(ctx))
}
