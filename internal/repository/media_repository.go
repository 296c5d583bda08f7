package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gogomedia/internal/model"
)

// MediaRepository defines media persistence operations. Rows are addressed
// by (name, owner) which is unique per user.
type MediaRepository interface {
	Create(ctx context.Context, media *model.Media) error
	FindByName(ctx context.Context, userID uint, name string) (*model.Media, error)
	Upsert(ctx context.Context, userID uint, name string, patch model.MediaPatch) (*model.Media, error)
	Update(ctx context.Context, userID uint, name string, patch model.MediaPatch) (*model.Media, error)
	DeleteByName(ctx context.Context, userID uint, name string) (int64, error)
	ListByUser(ctx context.Context, userID uint, filter model.MediaFilter) ([]model.Media, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MediaRepository) error) error
}

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new media repository.
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

// Create inserts media unconditionally. A duplicate (name, owner) pair fails
// with gorm.ErrDuplicatedKey.
func (r *mediaRepository) Create(ctx context.Context, media *model.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

// FindByName finds the media named name owned by userID.
func (r *mediaRepository) FindByName(ctx context.Context, userID uint, name string) (*model.Media, error) {
	var media model.Media
	if err := r.db.WithContext(ctx).
		Where("name = ? AND user_id = ?", name, userID).
		First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

// Upsert inserts the row with defaults for unsupplied fields, or, when the
// pair already exists, overwrites only the supplied fields. It is a single
// statement against the (name, user_id) unique index, then a re-read.
func (r *mediaRepository) Upsert(ctx context.Context, userID uint, name string, patch model.MediaPatch) (*model.Media, error) {
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "user_id"}},
		DoNothing: true,
	}
	if !patch.Empty() {
		onConflict.DoNothing = false
		cols := patch.Columns()
		cols["updated_at"] = time.Now()
		onConflict.DoUpdates = clause.Assignments(cols)
	}

	row := model.NewMedia(userID, name, patch)
	if err := r.db.WithContext(ctx).Clauses(onConflict).Create(row).Error; err != nil {
		return nil, err
	}
	return r.FindByName(ctx, userID, name)
}

// Update applies patch to an existing row. A missing row returns
// gorm.ErrRecordNotFound. It reads, writes and re-reads, so callers run it
// inside WithTransaction.
func (r *mediaRepository) Update(ctx context.Context, userID uint, name string, patch model.MediaPatch) (*model.Media, error) {
	media, err := r.FindByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return media, nil
	}
	if err := r.db.WithContext(ctx).Model(media).Updates(patch.Columns()).Error; err != nil {
		return nil, err
	}
	return r.FindByName(ctx, userID, name)
}

// DeleteByName removes every row for (name, userID) and reports how many went.
func (r *mediaRepository) DeleteByName(ctx context.Context, userID uint, name string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("name = ? AND user_id = ?", name, userID).
		Delete(&model.Media{})
	return res.RowsAffected, res.Error
}

// ListByUser returns userID's media matching filter in insertion order.
func (r *mediaRepository) ListByUser(ctx context.Context, userID uint, filter model.MediaFilter) ([]model.Media, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Medium != nil {
		query = query.Where("medium = ?", string(*filter.Medium))
	}
	if filter.ConsumedState != nil {
		query = query.Where("consumed_state = ?", string(*filter.ConsumedState))
	}

	media := make([]model.Media, 0)
	if err := query.Order("id").Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

// WithTransaction executes a function within a database transaction.
func (r *mediaRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MediaRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &mediaRepository{db: tx})
	})
}
