package app

import (
	"context"
	"time"

	"freelance-dashboard/internal/model"
)

// UserStore is the account store the services depend on. The GORM repository
// implements it in production; tests use an in-memory fake.
type UserStore interface {
	FindByUsernameOrEmail(identifier string) (*model.User, error)
	ExistsConflict(username, email string) (string, error)
	Create(user *model.User) error
	UpdateLastLogin(id uint, at time.Time) error
	GetByID(id uint) (*model.User, error)
}

// ProfileCache holds public profiles for the dashboard endpoint.
type ProfileCache interface {
	GetProfile(ctx context.Context, userID uint) (*model.PublicProfile, bool, error)
	SetProfile(ctx context.Context, userID uint, profile model.PublicProfile) error
	DeleteProfile(ctx context.Context, userID uint) error
}

// LoginEventPublisher hands successful logins to the audit trail.
type LoginEventPublisher interface {
	PublishLogin(ctx context.Context, event model.LoginAudit) error
}
