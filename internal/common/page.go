package common

type Page[T any] struct {
	Items       []T  `json:"items"`
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// MapPage converts the items of a page while keeping its pagination metadata.
func MapPage[T any, U any](page Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(page.Items))
	for i, item := range page.Items {
		items[i] = fn(item)
	}
	return Page[U]{
		Items:       items,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		HasNextPage: page.HasNextPage,
		HasPrevPage: page.HasPrevPage,
	}
}
