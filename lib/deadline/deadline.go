// Package deadline holds the calendar arithmetic behind statutory enforcement deadlines.
package deadline

import (
	"fmt"
	"time"
)

const (
	longDateLayout  = "2 January 2006"
	shortDateLayout = "02/01/2006"
)

// Today truncates now to the calendar date in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}

func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// AddWorkingDays counts n business days forward, skipping Saturday and Sunday.
// Bank holidays are not taken into account.
func AddWorkingDays(date time.Time, n int) time.Time {
	result := date
	added := 0
	for added < n {
		result = result.AddDate(0, 0, 1)
		if IsWorkingDay(result) {
			added++
		}
	}
	return result
}

func IsWorkingDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// DaysBetween is the number of calendar days from a to b, negative when b is before a.
func DaysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func FormatDate(date time.Time) string {
	return date.Format(longDateLayout)
}

func FormatShortDate(date time.Time) string {
	return date.Format(shortDateLayout)
}

// GenerateReferenceNumber is not unique: two notices of the same type for the same
// provider within one year share a reference.
func GenerateReferenceNumber(caseType, providerID string, now time.Time) string {
	return fmt.Sprintf("%s/%s/%d", caseType, providerID, now.Year())
}
