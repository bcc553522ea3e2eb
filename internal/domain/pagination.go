package domain

// Pagination is the listing metadata shared by all paged endpoints.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewPagination clamps page/pageSize to sane bounds and computes the
// metadata for a listing of total rows. Returns the clamped values so
// callers can derive the SQL offset from the same numbers the client sees.
func NewPagination(page, pageSize int, total int64) Pagination {
	page, pageSize = ClampPage(page, pageSize)
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     int64(page*pageSize) < total,
		HasPrev:     page > 1,
	}
}

// ClampPage normalizes paging parameters: page >= 1, 1 <= pageSize <= 100
// with a default of 10.
func ClampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
