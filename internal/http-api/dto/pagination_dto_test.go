package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPagination(t *testing.T) {
	t.Run("PassThrough", func(t *testing.T) {
		offset, limit := ClampPagination(5, 25)
		assert.Equal(t, 5, offset)
		assert.Equal(t, 25, limit)
	})

	t.Run("NegativesFallBackToDefaults", func(t *testing.T) {
		offset, limit := ClampPagination(-1, -1)
		assert.Equal(t, DefaultOffset, offset)
		assert.Equal(t, DefaultLimit, limit)
	})

	t.Run("LimitCapped", func(t *testing.T) {
		_, limit := ClampPagination(0, 10000)
		assert.Equal(t, MaxLimit, limit)
	})

	t.Run("ZeroLimitAllowed", func(t *testing.T) {
		_, limit := ClampPagination(0, 0)
		assert.Equal(t, 0, limit)
	})
}

func TestNewPaginatedResponse(t *testing.T) {
	t.Run("WrapsSlice", func(t *testing.T) {
		page := NewPaginatedResponse([]string{"a", "b"}, 5, 0, 2)
		assert.Equal(t, 0, page.Offset)
		assert.Equal(t, 2, page.Limit)
		assert.Equal(t, int64(5), page.Count)
		assert.Equal(t, []string{"a", "b"}, page.Data)
	})

	t.Run("NilDataBecomesEmptySlice", func(t *testing.T) {
		page := NewPaginatedResponse[string](nil, 0, 0, 10)
		assert.NotNil(t, page.Data)
		assert.Empty(t, page.Data)
	})
}
