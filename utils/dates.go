// File: /utils/dates.go
package utils

import (
	"time"
)

// Date filter buckets accepted by the event listing endpoint.
const (
	DateFilterToday    = "today"
	DateFilterTomorrow = "tomorrow"
	DateFilterThisWeek = "thisWeek"
)

// DateFilterBounds resolves a date filter bucket into an inclusive
// [from, to] range of YYYY-MM-DD dates relative to now. Buckets are computed
// against the UTC calendar date. Returns ok=false for unknown filters.
func DateFilterBounds(filter string, now time.Time) (from, to string, ok bool) {
	today := now.UTC().Format("2006-01-02")

	switch filter {
	case DateFilterToday:
		return today, today, true
	case DateFilterTomorrow:
		tomorrow := now.UTC().AddDate(0, 0, 1).Format("2006-01-02")
		return tomorrow, tomorrow, true
	case DateFilterThisWeek:
		weekEnd := now.UTC().AddDate(0, 0, 7).Format("2006-01-02")
		return today, weekEnd, true
	}
	return "", "", false
}
