package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WatchlistItem represents a symbol a user is tracking.
type WatchlistItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Symbol    string    `json:"symbol" gorm:"size:32;not null"`
	Note      *string   `json:"note,omitempty" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (w *WatchlistItem) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
