package pagination

import "math"

// MaxLimit caps the page size of a listing.
const MaxLimit = 100

// Offset returns the number of rows to skip for a 1-based page.
// Callers validate page and limit beforehand; non-positive values yield 0.
// ok is false when the offset does not fit in an int, so the page lies past any store.
func Offset(page, limit int) (offset int, ok bool) {
	if page < 1 || limit < 1 {
		return 0, true
	}
	if page-1 > math.MaxInt/limit {
		return 0, false
	}
	return (page - 1) * limit, true
}

// TotalPages returns ceil(total/limit), and 0 when there is nothing to page.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit < 1 {
		return 0
	}
	l := int64(limit)
	return int((total + l - 1) / l)
}
