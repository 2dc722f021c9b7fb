package service

import (
	"context"
	"errors"
	"fmt"

	"roomshub/internal/http-api/dto"
	"roomshub/internal/http-api/models"
	"roomshub/internal/http-api/repository"

	"gorm.io/gorm"
)

type RoomService interface {
	List(ctx context.Context, subjectName string) ([]dto.RoomResponse, error)
	Get(ctx context.Context, subjectName, roomName string) (*dto.RoomResponse, error)
	Create(ctx context.Context, ident Identity, subjectName string, req dto.CreateRoomDTO) (*dto.RoomResponse, error)
	AddSender(ctx context.Context, ident Identity, subjectName, roomName string, req dto.CreateSenderDTO) (*dto.RoomResponse, error)
	RemoveSender(ctx context.Context, ident Identity, subjectName, roomName string, user int64) (*dto.RoomResponse, error)
}

type roomService struct {
	roomRepo repository.RoomRepository
	subjects SubjectService
	policy   AccessPolicy
}

func NewRoomService(roomRepo repository.RoomRepository, subjects SubjectService, policy AccessPolicy) RoomService {
	return &roomService{
		roomRepo: roomRepo,
		subjects: subjects,
		policy:   policy,
	}
}

// List returns all rooms of a subject with their sender sets
func (s *roomService) List(ctx context.Context, subjectName string) ([]dto.RoomResponse, error) {
	if _, err := s.subjects.Get(subjectName); err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.ListBySubject(ctx, subjectName)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, *dto.FromModelToRoomResponse(&rooms[i]))
	}
	return responses, nil
}

// Get returns one room of a subject by name
func (s *roomService) Get(ctx context.Context, subjectName, roomName string) (*dto.RoomResponse, error) {
	room, err := s.loadRoom(ctx, subjectName, roomName)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToRoomResponse(room), nil
}

// Create creates a room with its initial sender whitelist. Only the
// subject's owner or a trusted service may create rooms.
func (s *roomService) Create(ctx context.Context, ident Identity, subjectName string, req dto.CreateRoomDTO) (*dto.RoomResponse, error) {
	owner, err := s.subjects.Owner(subjectName)
	if err != nil {
		return nil, err
	}

	if err := s.policy.CanCreateRoom(owner, ident); err != nil {
		return nil, err
	}

	if _, err := s.roomRepo.GetByName(ctx, subjectName, req.Name); err == nil {
		return nil, ErrRoomExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room := &models.Room{
		Name:    req.Name,
		Subject: subjectName,
		Senders: make([]models.RoomSender, 0, len(req.Senders)),
	}
	for _, sender := range req.Senders {
		room.Senders = append(room.Senders, models.RoomSender{
			User:        sender.User,
			DisplayName: sender.DisplayName,
		})
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoomExists
		}
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	return dto.FromModelToRoomResponse(room), nil
}

// AddSender registers a user as a sender of a room. Trusted services only;
// the duplicate check runs in-memory against the loaded sender set, with
// the (room_id, user) unique index catching concurrent inserts.
func (s *roomService) AddSender(ctx context.Context, ident Identity, subjectName, roomName string, req dto.CreateSenderDTO) (*dto.RoomResponse, error) {
	if err := s.policy.CanManageSenders(ident); err != nil {
		return nil, err
	}

	room, err := s.loadRoom(ctx, subjectName, roomName)
	if err != nil {
		return nil, err
	}

	if room.HasSender(req.User) {
		return nil, ErrSenderExists
	}

	sender := &models.RoomSender{
		RoomID:      room.ID,
		User:        req.User,
		DisplayName: req.DisplayName,
	}
	if err := s.roomRepo.AddSender(ctx, sender); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSenderExists
		}
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	return s.refreshRoom(ctx, room.ID)
}

// RemoveSender removes a user from a room's sender whitelist. Trusted
// services only.
func (s *roomService) RemoveSender(ctx context.Context, ident Identity, subjectName, roomName string, user int64) (*dto.RoomResponse, error) {
	if err := s.policy.CanManageSenders(ident); err != nil {
		return nil, err
	}

	room, err := s.loadRoom(ctx, subjectName, roomName)
	if err != nil {
		return nil, err
	}

	if !room.HasSender(user) {
		return nil, ErrNotASender
	}

	if err := s.roomRepo.RemoveSender(ctx, room.ID, user); err != nil {
		if errors.Is(err, repository.ErrSenderNotFound) {
			return nil, ErrNotASender
		}
		return nil, err
	}

	return s.refreshRoom(ctx, room.ID)
}

func (s *roomService) loadRoom(ctx context.Context, subjectName, roomName string) (*models.Room, error) {
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

func (s *roomService) refreshRoom(ctx context.Context, roomID int64) (*dto.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToRoomResponse(room), nil
}
