package common

// Pagination holds pagination metadata for list responses.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NewPagination derives pagination metadata from a total item count.
func NewPagination(page, perPage, total int) Pagination {
	if perPage < 1 {
		perPage = 1
	}
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	return Pagination{Page: page, PerPage: perPage, TotalItems: total, TotalPages: pages}
}

// PageSlice returns start/end bounds of a page over a collection of length total.
func PageSlice(page, perPage, total int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	start = (page - 1) * perPage
	if start > total {
		start = total
	}
	end = start + perPage
	if end > total {
		end = total
	}
	return start, end
}
