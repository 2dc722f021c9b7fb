package models

import "time"

type RoomSender struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID      int64     `gorm:"not null;uniqueIndex:idx_room_senders_room_user" json:"room_id"`
	User        int64     `gorm:"not null;uniqueIndex:idx_room_senders_room_user" json:"user"`
	DisplayName string    `gorm:"size:250;not null" json:"display_name"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (RoomSender) TableName() string {
	return "room_senders"
}
