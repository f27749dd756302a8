package repository

import (
	"fmt"

	"gorm.io/gorm"

	"freelance-dashboard/internal/model"
)

type LoginAuditRepository struct {
	db *gorm.DB
}

func NewLoginAuditRepository(db *gorm.DB) *LoginAuditRepository {
	return &LoginAuditRepository{db: db}
}

func (r *LoginAuditRepository) Create(audit *model.LoginAudit) error {
	if err := r.db.Create(audit).Error; err != nil {
		return fmt.Errorf("create login audit failed: %w", err)
	}
	return nil
}
