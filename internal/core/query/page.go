package query

// Page carries the optional user-supplied pagination parameters
// page numbering starts at 0
type Page struct {
	Page     *int `form:"page" validate:"omitempty,min=0"`
	PageSize *int `form:"page_size" validate:"omitempty,min=0"`
}

// maxOffset bounds the resolved store offset; oversized page numbers clamp
// here instead of overflowing into a negative range
const maxOffset = 1<<31 - 1

// Normalize resolves missing values and clamps page_size to max
// A page_size of 0 is legal and yields an empty range
func (p Page) Normalize(def, max int) (page, pageSize int) {
	if p.Page != nil {
		page = *p.Page
	}
	pageSize = def
	if p.PageSize != nil {
		pageSize = *p.PageSize
	}
	if pageSize > max {
		pageSize = max
	}
	if pageSize > 0 && page > maxOffset/pageSize {
		page = maxOffset / pageSize
	}
	return page, pageSize
}

// PageRange maps a normalized (page, page_size) onto the inclusive store
// row range [offset, offset+page_size-1]
func PageRange(page, pageSize int) (lo, hi int) {
	lo = page * pageSize
	hi = lo + pageSize - 1
	return lo, hi
}
