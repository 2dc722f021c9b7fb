package dto

import (
	"roomshub/internal/http-api/models"
)

// CreateMessageDTO for posting a message. User is only honored on the
// trusted-service path; on the bearer path the acting user always posts as
// themselves.
type CreateMessageDTO struct {
	Message string `json:"message" binding:"required"`
	User    *int64 `json:"user"`
}

// MessageResponse is the wire form of a message
type MessageResponse struct {
	User      int64  `json:"user"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// FromModelToMessageResponse converts a Message model to its wire form
func FromModelToMessageResponse(message *models.Message) *MessageResponse {
	return &MessageResponse{
		User:      message.User,
		Message:   message.Message,
		Timestamp: message.CreatedAt.UnixMilli(),
	}
}
