// file: internals/features/members/service/birthday_service.go
package service

import (
	"math"
	"time"
)

// Birthday proximity buckets.
const (
	BirthdayToday    = "today"
	BirthdayTomorrow = "tomorrow"
	BirthdaySoon     = "soon"      // within 3 days
	BirthdayThisWeek = "this_week" // within 7 days
	BirthdayLater    = "later"
)

// DaysUntilBirthday returns whole days until the next occurrence of the
// birth month/day, counted from now's calendar date in now's location.
// Same month/day as today is always 0, regardless of birth year.
//
// Feb 29 births: time.Date normalizes Feb 29 to Mar 1 in non-leap years,
// so those birthdays land on Mar 1 there. That normalization is the
// documented behavior, not something we correct for.
func DaysUntilBirthday(birth, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	next := time.Date(now.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(today) {
		next = time.Date(now.Year()+1, birth.Month(), birth.Day(), 0, 0, 0, 0, now.Location())
	}

	// Round instead of truncating so DST transitions (23h/25h days)
	// don't shift the count.
	return int(math.Round(next.Sub(today).Hours() / 24))
}

// BirthdayBucket classifies a days-until value.
func BirthdayBucket(days int) string {
	switch {
	case days <= 0:
		return BirthdayToday
	case days == 1:
		return BirthdayTomorrow
	case days <= 3:
		return BirthdaySoon
	case days <= 7:
		return BirthdayThisWeek
	default:
		return BirthdayLater
	}
}
