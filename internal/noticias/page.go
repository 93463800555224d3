package noticias

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// normalizePage coerces page and limit to positive values with the defaults
// the listing endpoints use. No upper bound is enforced here; callers clamp
// if they need to.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// totalPages is ceil(count/pageSize), computed from a count of the full
// match set.
func totalPages(count, pageSize int) int {
	return (count + pageSize - 1) / pageSize
}
