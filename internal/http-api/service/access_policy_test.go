package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessPolicy_CanCreateRoom(t *testing.T) {
	policy := NewAccessPolicy()

	t.Run("OwnerAllowed", func(t *testing.T) {
		assert.NoError(t, policy.CanCreateRoom(1, Identity{UserID: 1}))
	})

	t.Run("OtherUserForbidden", func(t *testing.T) {
		assert.ErrorIs(t, policy.CanCreateRoom(1, Identity{UserID: 2}), ErrForbidden)
	})

	t.Run("ServiceBypassesOwnership", func(t *testing.T) {
		assert.NoError(t, policy.CanCreateRoom(1, Identity{Service: true}))
	})
}

func TestAccessPolicy_ResolvePoster(t *testing.T) {
	policy := NewAccessPolicy()

	t.Run("UserPostsAsSelf", func(t *testing.T) {
		poster, err := policy.ResolvePoster(Identity{UserID: 7}, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), poster)
	})

	t.Run("UserMayNameThemselves", func(t *testing.T) {
		self := int64(7)
		poster, err := policy.ResolvePoster(Identity{UserID: 7}, &self)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), poster)
	})

	t.Run("UserCannotImpersonate", func(t *testing.T) {
		other := int64(8)
		_, err := policy.ResolvePoster(Identity{UserID: 7}, &other)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("ServicePostsOnBehalfVerbatim", func(t *testing.T) {
		target := int64(42)
		poster, err := policy.ResolvePoster(Identity{Service: true}, &target)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), poster)
	})

	t.Run("ServiceMustNameAUser", func(t *testing.T) {
		_, err := policy.ResolvePoster(Identity{Service: true}, nil)
		assert.ErrorIs(t, err, ErrUserRequired)
	})
}

func TestAccessPolicy_CanManageSenders(t *testing.T) {
	policy := NewAccessPolicy()

	t.Run("ServiceOnly", func(t *testing.T) {
		assert.NoError(t, policy.CanManageSenders(Identity{Service: true}))
	})

	t.Run("RegularUserForbidden", func(t *testing.T) {
		assert.ErrorIs(t, policy.CanManageSenders(Identity{UserID: 1}), ErrForbidden)
	})
}
