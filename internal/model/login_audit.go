package model

import "time"

// LoginAudit records one successful authentication. Rows are written
// asynchronously by the audit worker; the login path only publishes the event.
type LoginAudit struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Username string    `gorm:"size:20;not null" json:"username"`
	IP       string    `gorm:"size:45" json:"ip"`
	LoginAt  time.Time `json:"login_at"`
}
