// file: internals/features/events/service/event_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/events/model"
)

var ErrDuplicateEvent = errors.New("an event with the same title and start time already exists")

// schedule status labels used across events and liturgies
const (
	ScheduleToday    = "today"
	ScheduleUpcoming = "upcoming"
	ScheduleThisWeek = "this_week"
	ScheduleFuture   = "future"
	SchedulePast     = "past"
)

// ClassifyScheduleStatus labels a start time relative to now in loc.
// The same calendar day is always "today", even when the start time has
// already passed; "upcoming" covers the next 2 days, "this_week" up to 7.
func ClassifyScheduleStatus(startsAt, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	s := startsAt.In(loc)
	n := now.In(loc)

	sDay := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc)
	nDay := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)

	days := int(sDay.Sub(nDay).Hours() / 24)
	switch {
	case days == 0:
		return ScheduleToday
	case days < 0:
		return SchedulePast
	case days <= 2:
		return ScheduleUpcoming
	case days <= 7:
		return ScheduleThisWeek
	default:
		return ScheduleFuture
	}
}

// DayBounds returns [start, end) of the calendar day containing t in loc.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	d := t.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// CountSameDayConflicts counts the tenant's events on the same local calendar
// day as startsAt, excluding excludeID (for edits). A conflict is a warning,
// never a rejection: double-booking a sanctuary is the office's call.
func CountSameDayConflicts(db *gorm.DB, churchID uuid.UUID, startsAt time.Time, loc *time.Location, excludeID *uuid.UUID) (int64, error) {
	dayStart, dayEnd := DayBounds(startsAt, loc)

	q := db.Model(&model.EventModel{}).
		Where("event_church_id = ?", churchID).
		Where("event_starts_at >= ? AND event_starts_at < ?", dayStart, dayEnd)
	if excludeID != nil {
		q = q.Where("event_id <> ?", *excludeID)
	}

	var cnt int64
	err := q.Count(&cnt).Error
	return cnt, err
}

// GuardDuplicate rejects a second event with the identical title AND exact
// start timestamp in the same tenant.
func GuardDuplicate(db *gorm.DB, churchID uuid.UUID, title string, startsAt time.Time, excludeID *uuid.UUID) error {
	q := db.Model(&model.EventModel{}).
		Where("event_church_id = ? AND event_title = ? AND event_starts_at = ?", churchID, title, startsAt)
	if excludeID != nil {
		q = q.Where("event_id <> ?", *excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return ErrDuplicateEvent
	}
	return nil
}

// ChurchLocation loads the tenant's timezone, falling back to the server's.
func ChurchLocation(db *gorm.DB, churchID uuid.UUID) *time.Location {
	var tz string
	if err := db.Table("churches").
		Select("church_timezone").
		Where("church_id = ? AND church_deleted_at IS NULL", churchID).
		Scan(&tz).Error; err != nil || tz == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return loc
}
