package dto

const (
	DefaultLimit  = 10
	DefaultOffset = 0

	// MaxLimit caps caller-supplied page sizes at the boundary. The stores
	// themselves accept any non-negative limit.
	MaxLimit = 100
)

// PaginatedResponse wraps a contiguous slice of any ordered, countable
// collection. Count is the full collection size independent of the slice.
type PaginatedResponse[T any] struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Count  int64 `json:"count"`
	Data   []T   `json:"data"`
}

// NewPaginatedResponse builds the envelope around an already-sliced page
func NewPaginatedResponse[T any](data []T, count int64, offset, limit int) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse[T]{
		Offset: offset,
		Limit:  limit,
		Count:  count,
		Data:   data,
	}
}

// ClampPagination normalizes caller-supplied offset/limit: negatives fall
// back to the defaults and limit is capped at MaxLimit.
func ClampPagination(offset, limit int) (int, int) {
	if offset < 0 {
		offset = DefaultOffset
	}
	if limit < 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return offset, limit
}
