package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"freelance-dashboard/internal/model"
)

type mapCache struct {
	profiles map[uint]model.PublicProfile
}

func newMapCache() *mapCache {
	return &mapCache{profiles: map[uint]model.PublicProfile{}}
}

func (c *mapCache) GetProfile(ctx context.Context, userID uint) (*model.PublicProfile, bool, error) {
	p, ok := c.profiles[userID]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (c *mapCache) SetProfile(ctx context.Context, userID uint, profile model.PublicProfile) error {
	c.profiles[userID] = profile
	return nil
}

func (c *mapCache) DeleteProfile(ctx context.Context, userID uint) error {
	delete(c.profiles, userID)
	return nil
}

func registerTestUser(t *testing.T, store *memStore, username string) *model.User {
	t.Helper()
	service := NewAuthService(store, &stubCache{}, &captureEvents{}, testSecret, time.Hour, bcrypt.MinCost)
	user, err := service.Register(RegisterInput{Username: username, Password: "secret9"})
	require.NoError(t, err)
	return user
}

func TestGetDashboardMergesProfileIntoDemoData(t *testing.T) {
	store := newMemStore()
	user := registerTestUser(t, store, "alice1")
	service := NewDashboardService(store, newMapCache())

	data, err := service.GetDashboard(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, "alice1", data.User.Name)
	assert.Contains(t, data.User.Avatar, "name=alice1")

	assert.Equal(t, 8350, data.Earnings.Amount)
	assert.Equal(t, 98, data.Rank.Position)
	assert.Equal(t, 32, data.Projects.Total)
	require.Len(t, data.RecentInvoices, 2)
	assert.Equal(t, "Alexander Williams", data.RecentInvoices[0].Client)
	require.Len(t, data.YourProjects, 2)
	assert.Equal(t, "Upside Designs", data.RecommendedProject.Company)
}

func TestGetDashboardUnknownUser(t *testing.T) {
	service := NewDashboardService(newMemStore(), newMapCache())

	_, err := service.GetDashboard(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetDashboardServesFromCache(t *testing.T) {
	store := newMemStore()
	user := registerTestUser(t, store, "alice1")
	cache := newMapCache()
	service := NewDashboardService(store, cache)

	_, err := service.GetDashboard(context.Background(), user.ID)
	require.NoError(t, err)
	require.Contains(t, cache.profiles, user.ID)

	// Remove the backing record; the cached profile still serves the request.
	delete(store.users, user.ID)

	data, err := service.GetDashboard(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice1", data.User.Name)
}
