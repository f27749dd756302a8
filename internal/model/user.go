package model

import "time"

// User is the stored account record. Username and email are unique and kept
// lowercase; the store's unique indexes are the final word on duplicates.
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"size:20;not null;uniqueIndex" json:"username"`
	PasswordHash   string     `gorm:"size:255;not null" json:"-"`
	Email          *string    `gorm:"size:128;uniqueIndex" json:"email"`
	CreatedAt      time.Time  `gorm:"<-:create" json:"createdAt"`
	LastLogin      *time.Time `json:"lastLogin"`
	IsActive       bool       `gorm:"default:true" json:"isActive"`
	EmailVerified  bool       `gorm:"default:false" json:"emailVerified"`
	RegistrationIP *string    `gorm:"size:45" json:"-"`
}

// PublicProfile is the client-safe view of a user. The password hash never
// leaves this package in any response shape.
type PublicProfile struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Email     *string    `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
	IsActive  bool       `json:"isActive"`
}

func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
		IsActive:  u.IsActive,
	}
}
