package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"freelance-dashboard/internal/model"
	"freelance-dashboard/internal/pkg/jwtutil"
	"freelance-dashboard/internal/repository"
)

// ErrInvalidCredentials covers both an unknown identifier and a wrong
// password so login responses cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("Invalid credentials")

type AuthService struct {
	store         UserStore
	cache         ProfileCache
	events        LoginEventPublisher
	jwtSecret     string
	jwtExpiration time.Duration
	bcryptCost    int
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
	IP       string
}

type LoginInput struct {
	Identifier string
	Password   string
	IP         string
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAuthService(store UserStore, cache ProfileCache, events LoginEventPublisher, jwtSecret string, jwtExpiration time.Duration, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = 12
	}
	return &AuthService{
		store:         store,
		cache:         cache,
		events:        events,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		bcryptCost:    bcryptCost,
	}
}

// Register validates the input, normalizes username and email to lowercase,
// and creates the account. The store's unique indexes decide the race when
// two registrations carry the same name; the pre-insert probe only exists to
// name the conflicting field in the common case.
func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	password := input.Password

	if err := validateRegistration(username, password, email); err != nil {
		return nil, err
	}

	username = strings.ToLower(username)
	email = strings.ToLower(email)

	conflict, err := s.store.ExistsConflict(username, email)
	if err != nil {
		return nil, err
	}
	if conflict != "" {
		return nil, &repository.DuplicateKeyError{Field: conflict}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}
	if email != "" {
		user.Email = &email
	}
	if input.IP != "" {
		ip := input.IP
		user.RegistrationIP = &ip
	}

	if err := s.store.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by username or email. The lastLogin update and the
// audit event are best-effort and never block a successful response.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	identifier := strings.TrimSpace(input.Identifier)
	password := input.Password
	if identifier == "" || password == "" {
		return nil, &ValidationError{msg: "Username and password are required"}
	}

	user, err := s.store.FindByUsernameOrEmail(identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.store.UpdateLastLogin(user.ID, now); err != nil {
		log.Printf("update last login for user %d failed: %v", user.ID, err)
	} else {
		user.LastLogin = &now
	}

	if err := s.cache.DeleteProfile(ctx, user.ID); err != nil {
		log.Printf("invalidate profile cache for user %d failed: %v", user.ID, err)
	}

	if err := s.events.PublishLogin(ctx, model.LoginAudit{
		UserID:   user.ID,
		Username: user.Username,
		IP:       input.IP,
		LoginAt:  now,
	}); err != nil {
		log.Printf("publish login audit for user %d failed: %v", user.ID, err)
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}
