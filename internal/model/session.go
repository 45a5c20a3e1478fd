package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the fixed lifetime of an issued session.
const SessionTTL = 7 * 24 * time.Hour

// Session represents an issued bearer token. The token itself is the primary
// key, so uniqueness is enforced by the store.
type Session struct {
	Token     string    `json:"-" gorm:"size:64;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}

// Expired reports whether the session lifetime has elapsed at the given time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
