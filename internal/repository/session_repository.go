package repository

import (
	"context"

	"gorm.io/gorm"

	"wolfstreet/internal/model"
)

// SessionRepository defines session persistence operations. Sessions are
// never updated or revoked; there is no logout path.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	FindByToken(ctx context.Context, token string) (*model.Session, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository builds a GORM-backed repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create inserts the session. The token is the primary key, so a collision
// surfaces as gorm.ErrDuplicatedKey and the caller can re-issue.
func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// FindByToken looks a session up by exact token match.
func (r *sessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
