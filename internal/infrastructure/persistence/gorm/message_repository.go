package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/askahmah/v1/internal/domain/chat"
	"github.com/askahmah/v1/internal/ports/outbound"
)

// MessageRepository implements the message repository interface using GORM
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) outbound.MessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message to the user's log
func (r *MessageRepository) Create(ctx context.Context, message *chat.Message) error {
	model := MessageToModel(message)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	message.ID = model.ID
	return nil
}

// FindByUser returns the user's full message log, oldest first
func (r *MessageRepository) FindByUser(ctx context.Context, userID string) ([]chat.Message, error) {
	var models []MessageModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	messages := make([]chat.Message, 0, len(models))
	for i := range models {
		messages = append(messages, *ModelToMessage(&models[i]))
	}

	return messages, nil
}
