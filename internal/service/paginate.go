package service

import "propertyfinder/internal/model"

// DefaultPageSize is the number of listings shown per page
const DefaultPageSize = 9

// TotalPages returns ceil(n / pageSize), 0 for an empty result set
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// ClampPage pulls a requested page index back into [1, totalPages].
// With no pages at all the index is 1.
func ClampPage(requested, totalPages int) int {
	if totalPages == 0 || requested < 1 {
		return 1
	}
	if requested > totalPages {
		return totalPages
	}
	return requested
}

// Paginate slices one page out of the result set, clamping the page index
// so it never points past the last page.
func Paginate(results []model.Listing, pageSize, requestedPage int) model.Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(results)
	totalPages := TotalPages(total, pageSize)
	page := ClampPage(requestedPage, totalPages)

	items := []model.Listing{}
	if totalPages > 0 {
		start := (page - 1) * pageSize
		end := min(start+pageSize, total)
		items = results[start:end]
	}

	return model.Page{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      total,
		HasMore:    page < totalPages,
	}
}
