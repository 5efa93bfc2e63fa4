package query

// List wraps one page of records with paging metadata
// Count is the number of records in this page, not a total across pages
type List[T any] struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Count    int `json:"count"`
	Data     []T `json:"data"`
}

// NewList assembles the response envelope for a page of records
func NewList[T any](page, pageSize int, data []T) List[T] {
	if data == nil {
		data = []T{}
	}
	return List[T]{
		Page:     page,
		PageSize: pageSize,
		Count:    len(data),
		Data:     data,
	}
}
