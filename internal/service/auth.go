package service

import (
	"context"
	"errors"
	"time"

	"tokrecharge_api/internal/domain"
	"tokrecharge_api/internal/logger"
	"tokrecharge_api/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers every login failure (unknown user, wrong
// password, disabled account) so responses never reveal which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned for missing, malformed, tampered or expired
// bearer tokens.
var ErrInvalidToken = errors.New("invalid token")

// AuthService issues and verifies admin bearer tokens. Constructed in main
// and injected; no package-level secret.
type AuthService struct {
	store      storage.Store
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(store storage.Store, secret string, ttlHours, bcryptCost int) *AuthService {
	return &AuthService{
		store:      store,
		secret:     []byte(secret),
		tokenTTL:   time.Duration(ttlHours) * time.Hour,
		bcryptCost: bcryptCost,
	}
}

// Login checks the password against the stored bcrypt hash and returns a
// signed token plus the user record on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.AdminUser, error) {
	user, err := s.store.GetAdminUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", domain.AdminUser{}, ErrInvalidCredentials
		}
		return "", domain.AdminUser{}, err
	}
	if !user.IsActive {
		return "", domain.AdminUser{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.AdminUser{}, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", domain.AdminUser{}, err
	}

	if err := s.store.UpdateAdminUserLastLogin(ctx, user.ID); err != nil {
		logger.Warn("failed to update last login", "user", user.Username, "error", err)
	}
	now := time.Now().UTC()
	user.LastLogin = &now

	return token, user, nil
}

// Verify parses a bearer token and resolves it to the current user record.
func (s *AuthService) Verify(ctx context.Context, token string) (domain.AdminUser, error) {
	username, err := s.parseToken(token)
	if err != nil {
		return domain.AdminUser{}, ErrInvalidToken
	}
	user, err := s.store.GetAdminUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.AdminUser{}, ErrInvalidToken
		}
		return domain.AdminUser{}, err
	}
	if !user.IsActive {
		return domain.AdminUser{}, ErrInvalidToken
	}
	return user, nil
}

// HashPassword bcrypt-hashes a plaintext admin password.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) generateToken(user domain.AdminUser) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *AuthService) parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", ErrInvalidToken
	}
	return username, nil
}
