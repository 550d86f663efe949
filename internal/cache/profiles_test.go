package cache

import (
	"context"
	"testing"
	"time"

	"amity/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		rdb.Close()
	})
	return mr
}

func TestProfileCacheRoundTrip(t *testing.T) {
	setupTestCache(t)
	ctx := context.Background()
	id := uuid.New()

	_, ok := GetUserDTO(ctx, id)
	assert.False(t, ok, "cold cache must miss")

	dto := models.UserDTO{ID: id, UID: "alice1", Nickname: "alice"}
	SetUserDTO(ctx, id, dto)

	got, ok := GetUserDTO(ctx, id)
	require.True(t, ok)
	assert.Equal(t, dto.UID, got.UID)
	assert.Equal(t, dto.Nickname, got.Nickname)
}

func TestProfileCacheShapesAreIndependent(t *testing.T) {
	setupTestCache(t)
	ctx := context.Background()
	id := uuid.New()

	SetShortUserDTO(ctx, id, models.ShortUserDTO{ID: id, Nickname: "alice"})

	_, ok := GetUserDTO(ctx, id)
	assert.False(t, ok, "short entry must not serve the full shape")

	short, ok := GetShortUserDTO(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "alice", short.Nickname)
}

func TestInvalidateUserDropsBothShapes(t *testing.T) {
	setupTestCache(t)
	ctx := context.Background()
	id := uuid.New()

	SetUserDTO(ctx, id, models.UserDTO{ID: id, UID: "inv1"})
	SetShortUserDTO(ctx, id, models.ShortUserDTO{ID: id, Nickname: "inv"})

	InvalidateUser(ctx, id)

	_, ok := GetUserDTO(ctx, id)
	assert.False(t, ok)
	_, ok = GetShortUserDTO(ctx, id)
	assert.False(t, ok)
}

func TestProfileCacheExpires(t *testing.T) {
	mr := setupTestCache(t)
	ctx := context.Background()
	id := uuid.New()

	SetUserDTO(ctx, id, models.UserDTO{ID: id, UID: "ttl1"})
	mr.FastForward(UserTTL + time.Second)

	_, ok := GetUserDTO(ctx, id)
	assert.False(t, ok)
}

func TestProfileCacheNilClientIsAMiss(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()
	id := uuid.New()

	SetUserDTO(ctx, id, models.UserDTO{ID: id})
	_, ok := GetUserDTO(ctx, id)
	assert.False(t, ok)
	InvalidateUser(ctx, id)
}
