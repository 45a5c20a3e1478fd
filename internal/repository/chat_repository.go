package repository

import (
	"context"

	"gorm.io/gorm"

	"wolfstreet/internal/model"
)

// ChatRepository defines chat message persistence operations.
type ChatRepository interface {
	Create(ctx context.Context, message *model.ChatMessage) error
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository builds a GORM-backed repository.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(ctx context.Context, message *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}
