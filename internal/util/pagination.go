package util

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageQuery carries the pagination contract shared by every list endpoint.
type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// Normalize validates and defaults the page window: page >= 1,
// 1 <= pageSize <= 100.
func (q *PageQuery) Normalize() error {
	if q.Page == 0 {
		q.Page = DefaultPage
	}
	if q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Page < 1 {
		return Invalid("page", "must be at least 1")
	}
	if q.PageSize < 1 || q.PageSize > MaxPageSize {
		return Invalid("pageSize", "must be between 1 and %d", MaxPageSize)
	}
	return nil
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}
