package service

import (
	"context"
	"errors"

	"boundless-api/internal/models"
	"boundless-api/internal/store"
	"boundless-api/internal/util"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies admin credentials. Unknown usernames and wrong
// passwords produce the same error so the endpoint cannot be used to probe
// for accounts.
type AuthService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(store *store.Store) *AuthService {
	return &AuthService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// Login returns the user record on a correct username/password pair and
// models.ErrInvalidCredentials otherwise.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	ctx, span := util.StartSpan(ctx, "AuthService.Login")
	defer span.End()

	user, err := s.store.GetUserByUsername(ctx, username)
	if errors.Is(err, models.ErrNotFound) {
		util.LoginFailuresTotal.Inc()
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		util.LoginFailuresTotal.Inc()
		s.logger.Info("Login rejected", zap.String("username", username))
		return nil, models.ErrInvalidCredentials
	}

	return user, nil
}

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a stored bcrypt hash against a supplied password
func VerifyPassword(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
