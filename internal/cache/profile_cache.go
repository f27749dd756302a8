package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"freelance-dashboard/internal/model"
)

// ProfileCache keeps public profiles in Redis so the dashboard endpoint does
// not hit MySQL on every request. Entries are invalidated on login because
// lastLogin changes there.
type ProfileCache struct {
	client     *redisv9.Client
	profileTTL time.Duration
}

func NewProfileCache(client *redisv9.Client, profileTTL time.Duration) *ProfileCache {
	if profileTTL <= 0 {
		profileTTL = 5 * time.Minute
	}
	return &ProfileCache{
		client:     client,
		profileTTL: profileTTL,
	}
}

func (c *ProfileCache) GetProfile(ctx context.Context, userID uint) (*model.PublicProfile, bool, error) {
	key := c.profileKey(userID)
	raw, err := c.client.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get profile failed: %w", err)
	}

	var profile model.PublicProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached profile failed: %w", err)
	}
	return &profile, true, nil
}

func (c *ProfileCache) SetProfile(ctx context.Context, userID uint, profile model.PublicProfile) error {
	key := c.profileKey(userID)
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile cache failed: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.profileTTL).Err(); err != nil {
		return fmt.Errorf("redis set profile failed: %w", err)
	}
	return nil
}

func (c *ProfileCache) DeleteProfile(ctx context.Context, userID uint) error {
	key := c.profileKey(userID)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete profile failed: %w", err)
	}
	return nil
}

func (c *ProfileCache) profileKey(userID uint) string {
	return fmt.Sprintf("user:profile:%d", userID)
}
