package dto

import (
	"roomshub/internal/http-api/models"
)

// CreateRoomDTO for creating a room with its initial sender whitelist
type CreateRoomDTO struct {
	Name    string            `json:"name" binding:"required,min=1,max=250"`
	Senders []CreateSenderDTO `json:"senders"`
}

// CreateSenderDTO for registering one sender against a room
type CreateSenderDTO struct {
	User        int64  `json:"user" binding:"required"`
	DisplayName string `json:"displayName" binding:"required,min=1,max=250"`
}

// SenderResponse is the wire form of a room sender. Timestamps travel as
// Unix milliseconds.
type SenderResponse struct {
	User        int64  `json:"user"`
	DisplayName string `json:"displayName"`
	Timestamp   int64  `json:"timestamp"`
}

// RoomResponse is the wire form of a room, including its sender whitelist.
type RoomResponse struct {
	Name      string           `json:"name"`
	Subject   string           `json:"subject"`
	Timestamp int64            `json:"timestamp"`
	Senders   []SenderResponse `json:"senders"`
}

// SubjectResponse is the wire form of a subject. Only the name is public,
// the owner stays server-side.
type SubjectResponse struct {
	Name string `json:"name"`
}

// FromModelToSenderResponse converts a RoomSender model to its wire form
func FromModelToSenderResponse(sender *models.RoomSender) *SenderResponse {
	return &SenderResponse{
		User:        sender.User,
		DisplayName: sender.DisplayName,
		Timestamp:   sender.CreatedAt.UnixMilli(),
	}
}

// FromModelToRoomResponse converts a Room model to its wire form
func FromModelToRoomResponse(room *models.Room) *RoomResponse {
	senders := make([]SenderResponse, 0, len(room.Senders))
	for i := range room.Senders {
		senders = append(senders, *FromModelToSenderResponse(&room.Senders[i]))
	}

	return &RoomResponse{
		Name:      room.Name,
		Subject:   room.Subject,
		Timestamp: room.CreatedAt.UnixMilli(),
		Senders:   senders,
	}
}
