package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateRange is a half-open [From, To) window over Transaction.Date.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the window.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// MonthRange returns the window covering one calendar month in UTC.
// December rolls over into January of the following year.
func MonthRange(year int, month time.Month) DateRange {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{From: from, To: from.AddDate(0, 1, 0)}
}

// YearRange returns the window covering one calendar year in UTC.
func YearRange(year int) DateRange {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{From: from, To: from.AddDate(1, 0, 0)}
}

// TransactionFilter narrows a listing. A nil Range means no date filter and an
// empty Search means no text filter; when both are set they combine with AND.
type TransactionFilter struct {
	Range  *DateRange
	Search string // Case-insensitive substring of category, status or user_id
}

// Matches applies the filter to a single record. Store adapters that cannot push
// the filter down use this to stay consistent with the SQL implementation.
func (f TransactionFilter) Matches(t Transaction) bool {
	if f.Range != nil && !f.Range.Contains(t.Date) {
		return false
	}
	if f.Search == "" {
		return true
	}
	return containsFold(string(t.Category), f.Search) ||
		containsFold(string(t.Status), f.Search) ||
		containsFold(t.UserID, f.Search)
}

// Pagination is an offset window.
type Pagination struct {
	Limit  int
	Offset int
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// MonthlyQuery selects a monthly series. Month 0 means the whole year.
type MonthlyQuery struct {
	Year  int
	Month int
}

// SearchQuery is the input of a filtered listing. StartDate and EndDate are
// whole UTC days and only applied when both are present.
type SearchQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
	Page      int
	Limit     int
}

// ParseDate accepts an RFC3339 timestamp or a YYYY-MM-DD day and returns it in UTC.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", raw)
	}
	return t, nil
}
