package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"wolfstreet/internal/model"
	"wolfstreet/internal/repository"
)

// WatchlistService handles per-user watchlist operations.
type WatchlistService interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.WatchlistItem, error)
	Add(ctx context.Context, userID uuid.UUID, symbol string, note *string) (*model.WatchlistItem, error)
	Remove(ctx context.Context, userID, itemID uuid.UUID) error
}

type watchlistService struct {
	repo repository.WatchlistRepository
}

// NewWatchlistService creates a new watchlist service.
func NewWatchlistService(repo repository.WatchlistRepository) WatchlistService {
	return &watchlistService{repo: repo}
}

func (s *watchlistService) List(ctx context.Context, userID uuid.UUID) ([]model.WatchlistItem, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	return items, nil
}

// Add stores a tracked symbol, normalized to upper case.
func (s *watchlistService) Add(ctx context.Context, userID uuid.UUID, symbol string, note *string) (*model.WatchlistItem, error) {
	item := &model.WatchlistItem{
		UserID: userID,
		Symbol: strings.ToUpper(symbol),
		Note:   note,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("add watchlist item: %w", err)
	}
	return item, nil
}

// Remove deletes the item if it belongs to the user; otherwise the
// repository reports ErrWatchlistItemNotFound.
func (s *watchlistService) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	return s.repo.DeleteByID(ctx, userID, itemID)
}
