package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"roomshub/internal/http-api/dto"
	"roomshub/internal/http-api/models"
	"roomshub/internal/http-api/repository"
	"roomshub/internal/notify"

	"gorm.io/gorm"
)

type MessageService interface {
	Create(ctx context.Context, ident Identity, subjectName, roomName string, req dto.CreateMessageDTO) (*dto.MessageResponse, error)
	List(ctx context.Context, subjectName, roomName string, offset, limit int) (*dto.PaginatedResponse[dto.MessageResponse], error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	roomRepo    repository.RoomRepository
	subjects    SubjectService
	policy      AccessPolicy
	publisher   notify.Publisher
	namespace   string
	logger      *slog.Logger
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	roomRepo repository.RoomRepository,
	subjects SubjectService,
	policy AccessPolicy,
	publisher notify.Publisher,
	namespace string,
	logger *slog.Logger,
) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		roomRepo:    roomRepo,
		subjects:    subjects,
		policy:      policy,
		publisher:   publisher,
		namespace:   namespace,
		logger:      logger,
	}
}

// Create posts a message into a room and fans it out to interested
// parties. The persisted row is the source of truth: a publish failure is
// logged and swallowed, never surfaced to the caller.
func (s *messageService) Create(ctx context.Context, ident Identity, subjectName, roomName string, req dto.CreateMessageDTO) (*dto.MessageResponse, error) {
	room, err := s.loadRoom(ctx, subjectName, roomName)
	if err != nil {
		return nil, err
	}

	poster, err := s.policy.ResolvePoster(ident, req.User)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		RoomID:  room.ID,
		User:    poster,
		Message: req.Message,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	response := dto.FromModelToMessageResponse(message)

	routingKey := fmt.Sprintf("%s:messageRoom:%s", s.namespace, room.Name)
	if err := s.publisher.Publish(ctx, room.SenderIDs(), routingKey, response); err != nil {
		s.logger.Error("failed to publish message notification",
			"routing_key", routingKey,
			"room_id", room.ID,
			"error", err)
	}

	return response, nil
}

// List returns a page of a room's history, newest first, wrapped in the
// pagination envelope. List and count are two separate reads; a message
// inserted in between skews the count by one at most.
func (s *messageService) List(ctx context.Context, subjectName, roomName string, offset, limit int) (*dto.PaginatedResponse[dto.MessageResponse], error) {
	room, err := s.loadRoom(ctx, subjectName, roomName)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListByRoom(ctx, room.ID, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.messageRepo.CountByRoom(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *dto.FromModelToMessageResponse(&messages[i]))
	}

	return dto.NewPaginatedResponse(responses, total, offset, limit), nil
}

func (s *messageService) loadRoom(ctx context.Context, subjectName, roomName string) (*models.Room, error) {
	if _, err := s.subjects.Get(subjectName); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByName(ctx, subjectName, roomName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}
