package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"freelance-dashboard/internal/model"
)

// DuplicateKeyError reports which unique field an insert collided on. The
// message doubles as the client-facing text.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return e.Field + " already exists"
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsernameOrEmail resolves a login identifier case-insensitively
// against both unique columns. Returns nil, nil when nothing matches.
func (r *UserRepository) FindByUsernameOrEmail(identifier string) (*model.User, error) {
	ident := strings.ToLower(strings.TrimSpace(identifier))
	var user model.User
	if err := r.db.Where("username = ? OR email = ?", ident, ident).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by identifier failed: %w", err)
	}
	return &user, nil
}

// ExistsConflict reports which field an intended registration would collide
// on: "Username", "Email", or "" when the pair is free. Username takes
// precedence when both conflict. The unique indexes remain the source of
// truth; this is the pre-insert check, Create handles the race.
func (r *UserRepository) ExistsConflict(username, email string) (string, error) {
	query := r.db.Where("username = ?", username)
	if email != "" {
		query = r.db.Where("username = ? OR email = ?", username, email)
	}

	var users []model.User
	if err := query.Find(&users).Error; err != nil {
		return "", fmt.Errorf("query conflicts failed: %w", err)
	}

	conflict := ""
	for i := range users {
		if users[i].Username == username {
			return "Username", nil
		}
		if email != "" && users[i].Email != nil && *users[i].Email == email {
			conflict = "Email"
		}
	}
	return conflict, nil
}

func (r *UserRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if dup := mapDuplicateKey(err); dup != nil {
			return dup
		}
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

// UpdateLastLogin is best-effort; callers log failures and carry on.
func (r *UserRepository) UpdateLastLogin(id uint, at time.Time) error {
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Update("last_login", at).Error; err != nil {
		return fmt.Errorf("update last login failed: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

// mapDuplicateKey turns a MySQL duplicate-entry error (1062) into a
// DuplicateKeyError naming the conflicting field, or nil for anything else.
func mapDuplicateKey(err error) error {
	var mysqlErr *mysqldrv.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != 1062 {
		return nil
	}
	msg := strings.ToLower(mysqlErr.Message)
	if strings.Contains(msg, "email") {
		return &DuplicateKeyError{Field: "Email"}
	}
	return &DuplicateKeyError{Field: "Username"}
}
