package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"churchhub_backend/internals/features/events/model"
)

func newEventTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.EventModel{}))
	return db
}

func seedEvent(t *testing.T, db *gorm.DB, churchID uuid.UUID, title string, startsAt time.Time) *model.EventModel {
	t.Helper()
	e := &model.EventModel{
		EventChurchID: churchID,
		EventTitle:    title,
		EventStartsAt: startsAt,
	}
	require.NoError(t, db.Create(e).Error)
	return e
}

func TestClassifyScheduleStatus(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, loc) // 3pm

	cases := []struct {
		name     string
		startsAt time.Time
		want     string
	}{
		{"same day earlier hour is still today", time.Date(2026, 3, 10, 8, 0, 0, 0, loc), ScheduleToday},
		{"same day later hour", time.Date(2026, 3, 10, 23, 0, 0, 0, loc), ScheduleToday},
		{"tomorrow", time.Date(2026, 3, 11, 9, 0, 0, 0, loc), ScheduleUpcoming},
		{"two days out", time.Date(2026, 3, 12, 9, 0, 0, 0, loc), ScheduleUpcoming},
		{"three days out", time.Date(2026, 3, 13, 9, 0, 0, 0, loc), ScheduleThisWeek},
		{"seven days out", time.Date(2026, 3, 17, 9, 0, 0, 0, loc), ScheduleThisWeek},
		{"eight days out", time.Date(2026, 3, 18, 9, 0, 0, 0, loc), ScheduleFuture},
		{"yesterday", time.Date(2026, 3, 9, 23, 59, 0, 0, loc), SchedulePast},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyScheduleStatus(tc.startsAt, now, loc))
		})
	}
}

func TestCountSameDayConflicts(t *testing.T) {
	db := newEventTestDB(t)
	church, other := uuid.New(), uuid.New()
	loc := time.UTC

	day := time.Date(2026, 5, 3, 0, 0, 0, 0, loc)
	a := seedEvent(t, db, church, "Morning Service", day.Add(9*time.Hour))
	seedEvent(t, db, church, "Evening Service", day.Add(19*time.Hour))
	seedEvent(t, db, church, "Next Day", day.AddDate(0, 0, 1).Add(9*time.Hour))
	seedEvent(t, db, other, "Other Tenant Same Day", day.Add(9*time.Hour))

	cnt, err := CountSameDayConflicts(db, church, day.Add(15*time.Hour), loc, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, cnt, "only same-tenant same-day events count")

	// editing one of them must not count itself
	cnt, err = CountSameDayConflicts(db, church, a.EventStartsAt, loc, &a.EventID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)
}

func TestGuardDuplicate(t *testing.T) {
	db := newEventTestDB(t)
	church, other := uuid.New(), uuid.New()

	start := time.Date(2026, 5, 3, 9, 0, 0, 0, time.UTC)
	e := seedEvent(t, db, church, "Morning Service", start)

	assert.ErrorIs(t, GuardDuplicate(db, church, "Morning Service", start, nil), ErrDuplicateEvent)

	// same title, different start → allowed
	assert.NoError(t, GuardDuplicate(db, church, "Morning Service", start.Add(time.Hour), nil))
	// same start, different title → allowed
	assert.NoError(t, GuardDuplicate(db, church, "Prayer Meeting", start, nil))
	// same pair in another tenant → allowed
	assert.NoError(t, GuardDuplicate(db, other, "Morning Service", start, nil))
	// editing the event itself → allowed
	assert.NoError(t, GuardDuplicate(db, church, "Morning Service", start, &e.EventID))
}
