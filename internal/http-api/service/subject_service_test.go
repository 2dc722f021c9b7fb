package service

import (
	"testing"

	"roomshub/internal/config"

	"github.com/stretchr/testify/assert"
)

func registry() SubjectService {
	return NewSubjectService([]config.SubjectConfig{
		{Name: "alpha", Owner: 1},
		{Name: "beta", Owner: 2},
	})
}

func TestSubjectService_List(t *testing.T) {
	subjects := registry().List()

	assert.Len(t, subjects, 2)
	assert.Equal(t, "alpha", subjects[0].Name)
	assert.Equal(t, "beta", subjects[1].Name)
}

func TestSubjectService_Get(t *testing.T) {
	s := registry()

	t.Run("Known", func(t *testing.T) {
		subject, err := s.Get("alpha")
		assert.NoError(t, err)
		assert.Equal(t, "alpha", subject.Name)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := s.Get("gamma")
		assert.ErrorIs(t, err, ErrSubjectNotFound)
	})
}

func TestSubjectService_Owner(t *testing.T) {
	s := registry()

	owner, err := s.Owner("beta")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), owner)

	_, err = s.Owner("gamma")
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}
