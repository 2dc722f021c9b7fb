package models

import "time"

type Room struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:250;not null;uniqueIndex:idx_rooms_name_subject" json:"name"`
	Subject   string    `gorm:"size:250;not null;uniqueIndex:idx_rooms_name_subject" json:"subject"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Senders []RoomSender `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE;" json:"senders"`
}

func (Room) TableName() string {
	return "rooms"
}

// HasSender reports whether the user is in the room's loaded sender set.
// Membership lists are small, so a linear scan is fine.
func (r *Room) HasSender(user int64) bool {
	for _, s := range r.Senders {
		if s.User == user {
			return true
		}
	}
	return false
}

// SenderIDs returns the user ids of the loaded sender set, used as the
// notification audience.
func (r *Room) SenderIDs() []int64 {
	ids := make([]int64, 0, len(r.Senders))
	for _, s := range r.Senders {
		ids = append(ids, s.User)
	}
	return ids
}
