package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysUntilBirthdayTodayRegardlessOfYear(t *testing.T) {
	now := time.Date(2026, time.June, 15, 23, 30, 0, 0, time.UTC) // late in the day
	for _, birthYear := range []int{1950, 1988, 2004} {
		assert.Equal(t, 0, DaysUntilBirthday(date(birthYear, time.June, 15), now),
			"birth year %d", birthYear)
	}
}

func TestDaysUntilBirthdayUpcomingSameYear(t *testing.T) {
	now := date(2026, time.June, 15)
	assert.Equal(t, 1, DaysUntilBirthday(date(1990, time.June, 16), now))
	assert.Equal(t, 10, DaysUntilBirthday(date(1990, time.June, 25), now))
}

func TestDaysUntilBirthdayWrapsToNextYear(t *testing.T) {
	now := date(2026, time.June, 15)
	// June 14 already passed: next occurrence is 2027-06-14
	assert.Equal(t, 364, DaysUntilBirthday(date(1990, time.June, 14), now))

	// New Year wrap
	now = date(2026, time.December, 31)
	assert.Equal(t, 1, DaysUntilBirthday(date(1990, time.January, 1), now))
}

func TestDaysUntilBirthdayFeb29NormalizesToMar1(t *testing.T) {
	// 2026 is not a leap year: Feb 29 normalizes to Mar 1
	now := date(2026, time.February, 28)
	assert.Equal(t, 1, DaysUntilBirthday(date(1996, time.February, 29), now))

	now = date(2026, time.March, 1)
	assert.Equal(t, 0, DaysUntilBirthday(date(1996, time.February, 29), now))

	// 2028 is a leap year: the real Feb 29 exists
	now = date(2028, time.February, 28)
	assert.Equal(t, 1, DaysUntilBirthday(date(1996, time.February, 29), now))
}

func TestBirthdayBucket(t *testing.T) {
	cases := map[int]string{
		0:   BirthdayToday,
		1:   BirthdayTomorrow,
		2:   BirthdaySoon,
		3:   BirthdaySoon,
		4:   BirthdayThisWeek,
		7:   BirthdayThisWeek,
		8:   BirthdayLater,
		200: BirthdayLater,
	}
	for days, want := range cases {
		assert.Equal(t, want, BirthdayBucket(days), "days=%d", days)
	}
}
