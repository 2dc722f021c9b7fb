package repository

import (
	"context"

	"roomshub/internal/http-api/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListByRoom(ctx context.Context, roomID int64, offset, limit int) ([]models.Message, error)
	CountByRoom(ctx context.Context, roomID int64) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts one message row. CreatedAt/UpdatedAt are stamped by the
// store, never taken from the caller.
func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListByRoom retrieves a page of a room's messages, newest first
func (r *messageRepository) ListByRoom(ctx context.Context, roomID int64, offset, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// CountByRoom returns the total message count of a room. Not atomic with
// ListByRoom; a message landing between the two reads skews the count by
// one, which is tolerable for a history view.
func (r *messageRepository) CountByRoom(ctx context.Context, roomID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("room_id = ?", roomID).
		Count(&total).Error
	return total, err
}
