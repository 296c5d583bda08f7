package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gogomedia/internal/cache"
	apperrors "gogomedia/internal/errors"
	"gogomedia/internal/model"
	"gogomedia/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user lookups.
type UserService interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(username string) string {
	return fmt.Sprintf("user:%s", username)
}

// FindByUsername resolves username, returning apperrors.ErrUserNotFound when
// it is unknown. Hits are cached; misses are not, so a later registration is
// seen immediately. The cached copy carries no password hash.
func (s *userService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(username)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil && cached.ID != 0 {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(username), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
