package model

// PaginationMeta describes the position of one page inside the
// filtered result set.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPaginationMeta computes pagination metadata for a page of a result
// set. TotalPages is ceil(totalItems/pageSize), zero when the set is
// empty. HasPrevious is page > 1 even when the requested page is past
// the end; callers get an empty page, not an error.
func NewPaginationMeta(totalItems, page, pageSize int) PaginationMeta {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}
	return PaginationMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
