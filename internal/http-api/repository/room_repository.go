package repository

import (
	"context"
	"errors"

	"roomshub/internal/http-api/models"

	"gorm.io/gorm"
)

var ErrSenderNotFound = errors.New("sender not found")

type RoomRepository interface {
	ListBySubject(ctx context.Context, subject string) ([]models.Room, error)
	GetByName(ctx context.Context, subject, name string) (*models.Room, error)
	GetByID(ctx context.Context, roomID int64) (*models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	AddSender(ctx context.Context, sender *models.RoomSender) error
	RemoveSender(ctx context.Context, roomID, user int64) error
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

// ListBySubject retrieves all rooms of a subject with their sender sets loaded
func (r *roomRepository) ListBySubject(ctx context.Context, subject string) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Where("subject = ?", subject).
		Preload("Senders").
		Find(&rooms).Error
	return rooms, err
}

// GetByName retrieves one room by its (subject, name) pair
func (r *roomRepository) GetByName(ctx context.Context, subject, name string) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).
		Where("subject = ? AND name = ?", subject, name).
		Preload("Senders").
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByID retrieves one room by primary key with its sender set loaded
func (r *roomRepository) GetByID(ctx context.Context, roomID int64) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).
		Where("id = ?", roomID).
		Preload("Senders").
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// Create inserts the room row together with its initial senders. GORM
// persists the association rows inside the same transaction as the room, so
// a room can never be left with a partial initial sender set.
func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// AddSender appends one sender row. The unique index on (room_id, user)
// backs up the caller's in-memory membership check under concurrency.
func (r *roomRepository) AddSender(ctx context.Context, sender *models.RoomSender) error {
	return r.db.WithContext(ctx).Create(sender).Error
}

// RemoveSender deletes the matching sender row
func (r *roomRepository) RemoveSender(ctx context.Context, roomID, user int64) error {
	result := r.db.WithContext(ctx).
		Where("room_id = ? AND user = ?", roomID, user).
		Delete(&models.RoomSender{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSenderNotFound
	}
	return nil
}
