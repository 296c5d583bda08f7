package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	apperrors "gogomedia/internal/errors"
	"gogomedia/internal/model"
	"gogomedia/internal/repository"
)

// MediaService maintains each user's media list.
type MediaService interface {
	Upsert(ctx context.Context, username, name string, patch model.MediaPatch) (*model.Media, error)
	Add(ctx context.Context, userID uint, name string, patch model.MediaPatch) (*model.Media, error)
	Update(ctx context.Context, userID uint, name string, patch model.MediaPatch) (*model.Media, error)
	Remove(ctx context.Context, username, name string) error
	GetFiltered(ctx context.Context, username string, filter model.MediaFilter) ([]model.Media, error)
}

// UserFinder resolves owners by username.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type mediaService struct {
	users UserFinder
	repo  repository.MediaRepository
	log   zerolog.Logger
}

// NewMediaService creates a new media service.
func NewMediaService(users UserFinder, repo repository.MediaRepository, log zerolog.Logger) MediaService {
	return &mediaService{
		users: users,
		repo:  repo,
		log:   log.With().Str("component", "media").Logger(),
	}
}

// Upsert creates name for username with defaults, or patches the supplied
// fields of the existing item. The persisted row is returned.
func (s *mediaService) Upsert(ctx context.Context, username, name string, patch model.MediaPatch) (*model.Media, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	media, err := s.repo.Upsert(ctx, user.ID, name, patch)
	if err != nil {
		return nil, fmt.Errorf("upsert media: %w", err)
	}

	s.log.Debug().Uint("user_id", user.ID).Str("name", name).
		Str("medium", string(media.Medium)).Str("consumed_state", string(media.ConsumedState)).
		Msg("media upserted")
	return media, nil
}

// Add inserts without an existence check. Use Upsert for idempotent writes.
func (s *mediaService) Add(ctx context.Context, userID uint, name string, patch model.MediaPatch) (*model.Media, error) {
	media := model.NewMedia(userID, name, patch)
	if err := s.repo.Create(ctx, media); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrMediaExists
		}
		return nil, fmt.Errorf("add media: %w", err)
	}
	return media, nil
}

// Update patches an existing item and fails with ErrMediaNotFound otherwise.
func (s *mediaService) Update(ctx context.Context, userID uint, name string, patch model.MediaPatch) (*model.Media, error) {
	var media *model.Media
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, tx repository.MediaRepository) error {
		var err error
		media, err = tx.Update(ctx, userID, name, patch)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMediaNotFound
		}
		return nil, fmt.Errorf("update media: %w", err)
	}
	return media, nil
}

// Remove deletes name from username's list. Removing an absent item succeeds.
func (s *mediaService) Remove(ctx context.Context, username, name string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	n, err := s.repo.DeleteByName(ctx, user.ID, name)
	if err != nil {
		return fmt.Errorf("remove media: %w", err)
	}

	s.log.Debug().Uint("user_id", user.ID).Str("name", name).Int64("rows", n).Msg("media removed")
	return nil
}

// GetFiltered lists username's media narrowed by filter. Never nil.
func (s *mediaService) GetFiltered(ctx context.Context, username string, filter model.MediaFilter) ([]model.Media, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	media, err := s.repo.ListByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	if media == nil {
		media = []model.Media{}
	}
	return media, nil
}
