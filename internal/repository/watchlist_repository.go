package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "wolfstreet/internal/errors"
	"wolfstreet/internal/model"
)

// WatchlistRepository defines watchlist persistence operations.
type WatchlistRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.WatchlistItem, error)
	Create(ctx context.Context, item *model.WatchlistItem) error
	DeleteByID(ctx context.Context, userID, itemID uuid.UUID) error
}

type watchlistRepository struct {
	db *gorm.DB
}

// NewWatchlistRepository builds a GORM-backed repository.
func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.WatchlistItem, error) {
	var items []model.WatchlistItem
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *watchlistRepository) Create(ctx context.Context, item *model.WatchlistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// DeleteByID removes the row only if it belongs to the user. Zero rows
// affected means the item does not exist or is owned by someone else.
func (r *watchlistRepository) DeleteByID(ctx context.Context, userID, itemID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&model.WatchlistItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrWatchlistItemNotFound
	}
	return nil
}
