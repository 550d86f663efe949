package models

// MaxPageLimit caps the page size for every listing endpoint.
const MaxPageLimit = 20

// DefaultPageLimit is the page size applied when the caller omits limit.
const DefaultPageLimit = 10

// Paged is the response envelope for every paginated listing.
type Paged[T any] struct {
	Data   []T   `json:"data"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

// NewPaged wraps items in the list envelope. Total is the full row count
// independent of the page size.
func NewPaged[T any](data []T, offset, limit int, total int64) Paged[T] {
	if data == nil {
		data = []T{}
	}
	return Paged[T]{
		Data:   data,
		Offset: offset,
		Limit:  limit,
		Total:  total,
	}
}

// ValidatePagination enforces the shared listing contract:
// offset must be non-negative and limit must be in (0, MaxPageLimit].
func ValidatePagination(offset, limit int) error {
	if offset < 0 {
		return NewValidationError("Offset cannot be negative")
	}
	if limit <= 0 {
		return NewValidationError("Limit must be greater than zero")
	}
	if limit > MaxPageLimit {
		return NewValidationError("Limit cannot exceed 20")
	}
	return nil
}
