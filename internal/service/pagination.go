package service

// Pagination holds the computed values for one page of a bounded list.
type Pagination struct {
	// Page is the effective page number after clamping.
	Page int

	// Skip is the number of items to skip before the page starts.
	Skip int

	// TotalPages is ceil(totalCount / pageSize); zero when the list is empty.
	TotalPages int
}

// Paginate computes skip/page/totalPages for a list of totalCount items with
// the given page size. A non-positive requestedPage is clamped to 1. There is
// no upper clamp: requesting a page beyond the last one legitimately yields
// an empty slice rather than an error.
func Paginate(totalCount int64, requestedPage, pageSize int) Pagination {
	page := requestedPage
	if page < 1 {
		page = 1
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	return Pagination{
		Page:       page,
		Skip:       (page - 1) * pageSize,
		TotalPages: totalPages,
	}
}
