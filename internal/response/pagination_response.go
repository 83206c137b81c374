package response

// List is the envelope for paginated collections:
// {success, count, total, page, pages, data}. Count is the number of items on
// this page, Total the number of matches before pagination.
type List struct {
	Success bool  `json:"success"`
	Count   int   `json:"count"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	Data    any   `json:"data"`
}

func NewList(data any, count int, total int64, page, limit int) List {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return List{
		Success: true,
		Count:   count,
		Total:   total,
		Page:    page,
		Pages:   pages,
		Data:    data,
	}
}
