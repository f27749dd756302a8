package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"

	"freelance-dashboard/internal/model"
)

// ErrUserNotFound means a verified token no longer resolves to a stored
// account.
var ErrUserNotFound = errors.New("user not found")

type DashboardService struct {
	store UserStore
	cache ProfileCache
}

func NewDashboardService(store UserStore, cache ProfileCache) *DashboardService {
	return &DashboardService{store: store, cache: cache}
}

// GetDashboard merges the account's public profile into the fixed demo
// payload. The profile goes through the Redis cache; a cache failure falls
// back to the store.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uint) (*DashboardData, error) {
	profile, err := s.resolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := demoDashboard()
	data.User = DashboardUser{
		Name:   profile.Username,
		Avatar: avatarURL(profile.Username, "6366f1"),
	}
	return data, nil
}

func (s *DashboardService) resolveProfile(ctx context.Context, userID uint) (*model.PublicProfile, error) {
	cached, ok, err := s.cache.GetProfile(ctx, userID)
	if err != nil {
		log.Printf("profile cache read for user %d failed: %v", userID, err)
	}
	if ok {
		return cached, nil
	}

	user, err := s.store.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := user.PublicProfile()
	if err := s.cache.SetProfile(ctx, userID, profile); err != nil {
		log.Printf("profile cache write for user %d failed: %v", userID, err)
	}
	return &profile, nil
}

func avatarURL(name, background string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=%s&color=fff",
		url.QueryEscape(name), background)
}
