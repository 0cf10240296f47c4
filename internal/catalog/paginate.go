package catalog

// Page is one slice of a filtered result list. Total always reports the
// full count before slicing.
type Page[T any] struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
	Items    []T `json:"items"`
}

// Paginate slices items for a 1-based page number. A page past the end of
// the data yields an empty Items slice, never an error, including page
// numbers so large that the offset arithmetic would overflow.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	out := Page[T]{
		Page:     page,
		PageSize: pageSize,
		Total:    len(items),
		Items:    []T{},
	}

	start := (page - 1) * pageSize
	if pageSize > 0 && start/pageSize != page-1 {
		// (page-1)*pageSize overflowed; the page is past any real data.
		return out
	}
	if start < 0 {
		start = 0
	}
	if start >= len(items) {
		return out
	}

	end := start + pageSize
	if end < start || end > len(items) {
		end = len(items)
	}
	out.Items = items[start:end]
	return out
}
