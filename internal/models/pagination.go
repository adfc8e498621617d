package models

// Pagination is the envelope returned alongside paged collections.
// Pages are 1-based.
type Pagination struct {
	Current int  `json:"current"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// ClampPagination normalizes page/limit query values: pages are 1-based, the
// default page size is 10, capped at 100.
func ClampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// NewPagination computes the envelope for a page of size limit over total items.
func NewPagination(page, limit int, total int64) Pagination {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return Pagination{
		Current: page,
		Total:   pages,
		HasNext: int64(page*limit) < total,
		HasPrev: page > 1,
	}
}
