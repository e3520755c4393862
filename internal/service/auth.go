package service

import (
	"context"
	"errors"

	"prd_manager/internal/apperror"
	"prd_manager/internal/domain"
	"prd_manager/internal/utils"

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"
)

// AuthService owns user identity and credential verification.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

// NewAuthService constructs the service with its dependencies.
func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

// Register hashes the password and persists a new user.
// A taken username is a Conflict; the password is never stored in plaintext.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperror.NewValidationError("Missing required fields")
	}
	var existing domain.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, apperror.NewConflictError("Username already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewInternalError("failed to check username", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}
	user := domain.User{Username: username, Email: email, PasswordHash: string(hash)}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// Unique indexes are the backstop for races on username/email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Username already exists")
		}
		return nil, apperror.NewInternalError("failed to create user", err)
	}
	return &user, nil
}

// Login verifies the credentials and issues a signed 24h token.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, "", apperror.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.NewUnauthorizedError("Invalid credentials")
	}
	token, err := utils.GenerateJWT(user.ID, s.jwtSecret)
	if err != nil {
		return nil, "", apperror.NewInternalError("failed to generate token", err)
	}
	return &user, token, nil
}

// GetUserByID fetches a user by its primary key.
func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("User not found")
		}
		return nil, apperror.NewInternalError("failed to fetch user", err)
	}
	return &user, nil
}
