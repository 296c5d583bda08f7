package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gogomedia/internal/auth"
	apperrors "gogomedia/internal/errors"
	"gogomedia/internal/model"
	"gogomedia/internal/repository"
)

const bcryptCost = 10

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// dummyPasswordHash is compared against when the user does not exist so
// both login failure paths cost one bcrypt comparison.
func dummyPasswordHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("gogomedia-dummy-password"), bcryptCost)
	})
	return dummyHash
}

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, string, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	log        zerolog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, log zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
		log:        log.With().Str("component", "auth").Logger(),
	}
}

// Register creates a user with a hashed password and returns an access token.
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, string, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrDuplicateUsername
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperrors.ErrDuplicateUsername
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("generate access token: %w", err)
	}

	s.log.Info().Uint("user_id", user.ID).Str("username", username).Msg("user registered")
	return user, token, nil
}

// Login verifies the password and returns an access token. Unknown users and
// wrong passwords both return apperrors.ErrAuthenticationFailed; only the
// log tells them apart.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyPasswordHash(), []byte(password))
			s.log.Warn().Str("username", username).Str("reason", "user_not_found").Msg("login failed")
			return nil, "", apperrors.ErrAuthenticationFailed
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.Warn().Str("username", username).Str("reason", "password_mismatch").Msg("login failed")
		return nil, "", apperrors.ErrAuthenticationFailed
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("generate access token: %w", err)
	}

	s.log.Info().Uint("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

// Logout revokes token until it expires. Missing, invalid and already
// revoked tokens are not errors.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.tokenStore.RevokeToken(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.log.Info().Str("subject", claims.Subject).Msg("user logged out")
	return nil
}

// Authenticate verifies token and that it has not been logged out.
func (s *authService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.tokenStore.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, auth.ErrTokenRevoked
	}
	return claims, nil
}
