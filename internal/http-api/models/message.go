package models

import "time"

// Message is append-only: rows are inserted once and never mutated by any
// business operation. Timestamps are stamped server-side at insert time.
type Message struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID    int64     `gorm:"not null;index:idx_messages_room_id" json:"room_id"`
	User      int64     `gorm:"not null;index" json:"user"`
	Message   string    `gorm:"not null;type:text" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Message) TableName() string {
	return "messages"
}
