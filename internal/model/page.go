package model

// Page is one bounded slice of a larger ordered result set.
type Page struct {
	Content       []Product `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
}

// NewPage computes the page counters; totalPages is ceil(total/size),
// so an empty result set reports zero pages.
func NewPage(content []Product, page, size int, total int64) *Page {
	if content == nil {
		content = []Product{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &Page{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// PageRequest carries pagination and sort parameters down to the store.
type PageRequest struct {
	Page int
	Size int
	Sort string
	Desc bool
}
