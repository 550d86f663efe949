package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"amity/internal/models"

	"github.com/google/uuid"
)

const (
	UserKeyPrefix      = "user:%s"
	UserShortKeyPrefix = "user:%s:short"
)

const (
	UserTTL      = 5 * time.Minute
	UserShortTTL = 5 * time.Minute
)

func UserKey(userID uuid.UUID) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func UserShortKey(userID uuid.UUID) string {
	return fmt.Sprintf(UserShortKeyPrefix, userID)
}

// GetUserDTO returns a cached full profile, or false on miss.
// Cache errors count as misses so a flaky Redis never fails a read path.
func GetUserDTO(ctx context.Context, userID uuid.UUID) (models.UserDTO, bool) {
	var dto models.UserDTO
	if client == nil {
		return dto, false
	}
	raw, err := client.Get(ctx, UserKey(userID)).Bytes()
	if err != nil {
		return dto, false
	}
	if err := json.Unmarshal(raw, &dto); err != nil {
		return dto, false
	}
	return dto, true
}

// SetUserDTO stores a full profile with the standard TTL. Best effort.
func SetUserDTO(ctx context.Context, userID uuid.UUID, dto models.UserDTO) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(dto)
	if err != nil {
		return
	}
	client.Set(ctx, UserKey(userID), raw, UserTTL)
}

// GetShortUserDTO returns a cached short profile, or false on miss.
func GetShortUserDTO(ctx context.Context, userID uuid.UUID) (models.ShortUserDTO, bool) {
	var dto models.ShortUserDTO
	if client == nil {
		return dto, false
	}
	raw, err := client.Get(ctx, UserShortKey(userID)).Bytes()
	if err != nil {
		return dto, false
	}
	if err := json.Unmarshal(raw, &dto); err != nil {
		return dto, false
	}
	return dto, true
}

// SetShortUserDTO stores a short profile with the standard TTL. Best effort.
func SetShortUserDTO(ctx context.Context, userID uuid.UUID, dto models.ShortUserDTO) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(dto)
	if err != nil {
		return
	}
	client.Set(ctx, UserShortKey(userID), raw, UserShortTTL)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser drops both cached profile shapes for the user.
func InvalidateUser(ctx context.Context, userID uuid.UUID) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, UserShortKey(userID))
}
