package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Plan is a subscription tier.
type Plan string

const (
	PlanFree  Plan = "free"
	PlanPro   Plan = "pro"
	PlanElite Plan = "elite"
)

// User represents a registered account in the system.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	AvatarURL    *string   `json:"avatar_url,omitempty" gorm:"size:512"`
	Plan         Plan      `json:"plan" gorm:"type:varchar(20);not null;default:'free'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// PublicUser is the subset of user fields safe to return to clients.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Public returns the client-safe view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
