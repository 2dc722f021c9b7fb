package service

import "errors"

var (
	ErrSubjectNotFound = errors.New("subject does not exist")
	ErrRoomNotFound    = errors.New("room does not exist")
	ErrForbidden       = errors.New("operation not allowed")
	ErrRoomExists      = errors.New("room already exists for this subject")
	ErrSenderExists    = errors.New("user is already a sender of this room")
	ErrNotASender      = errors.New("user is not a sender of this room")
	ErrUserRequired    = errors.New("service callers must specify the posting user")
	ErrCreateFailed    = errors.New("persistence rejected the write")
)
