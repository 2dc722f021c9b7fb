package service

import (
	"roomshub/internal/config"
	"roomshub/internal/http-api/dto"
)

// SubjectService is the read-only registry of subjects. Subjects are the
// top-level items of the rooms architecture: each one names exactly one
// user allowed to create rooms inside it. The registry is built once from
// configuration and never mutated, so concurrent reads need no locking.
type SubjectService interface {
	List() []dto.SubjectResponse
	Get(name string) (*dto.SubjectResponse, error)
	Owner(name string) (int64, error)
}

type subjectService struct {
	owners map[string]int64
	order  []string
}

func NewSubjectService(subjects []config.SubjectConfig) SubjectService {
	s := &subjectService{
		owners: make(map[string]int64, len(subjects)),
		order:  make([]string, 0, len(subjects)),
	}
	for _, subject := range subjects {
		s.owners[subject.Name] = subject.Owner
		s.order = append(s.order, subject.Name)
	}
	return s
}

// List returns all subjects in configuration order
func (s *subjectService) List() []dto.SubjectResponse {
	subjects := make([]dto.SubjectResponse, 0, len(s.order))
	for _, name := range s.order {
		subjects = append(subjects, dto.SubjectResponse{Name: name})
	}
	return subjects
}

// Get returns one subject by name
func (s *subjectService) Get(name string) (*dto.SubjectResponse, error) {
	if _, ok := s.owners[name]; !ok {
		return nil, ErrSubjectNotFound
	}
	return &dto.SubjectResponse{Name: name}, nil
}

// Owner returns the owning user of a subject
func (s *subjectService) Owner(name string) (int64, error) {
	owner, ok := s.owners[name]
	if !ok {
		return 0, ErrSubjectNotFound
	}
	return owner, nil
}
