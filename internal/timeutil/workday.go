// Package timeutil models the calendar arithmetic shared by every wage
// computation: the minutes-from-midnight representation, the 08:00 work-day
// boundary, and Sabbath-window classification.
package timeutil

import "time"

// MinutesPerDay is the number of minutes in a day (1440).
const MinutesPerDay = 1440

// NormalizeCrossMidnight handles a report whose end-minute is at or before
// its start-minute by reinterpreting it as spanning into the next civil day
// (spec §4.1: end-minute <= start-minute adds 1440). A report with
// end == start becomes a full 24h interval rather than a zero-length one.
func NormalizeCrossMidnight(startMinutes, endMinutes int) int {
	if endMinutes <= startMinutes {
		return endMinutes + MinutesPerDay
	}
	return endMinutes
}

// WorkDayStartMinutes is the minute-of-day at which a work-day begins (08:00).
// A work-day spans [WorkDayStartMinutes, WorkDayStartMinutes+MinutesPerDay) of
// wall-clock time, i.e. 08:00 on its civil date through 08:00 the next day.
const WorkDayStartMinutes = 480

// WorkDayFor returns the civil date a report is attributed to, given the
// report's civil date and its end-minute (already normalized so end > start,
// but still expressed relative to the report's own start date: an end of
// 1500 means 01:00 the next day).
//
// A report whose end-minute falls at or before 08:00 on date D belongs to
// work-day D-1; a report starting at or after 08:00 on D belongs to D.
func WorkDayFor(date time.Time, endMinutes int) time.Time {
	if endMinutes <= WorkDayStartMinutes {
		return date.AddDate(0, 0, -1)
	}
	return date
}

// Weekday is the civil day of week used for Sabbath detection. It is an
// alias of time.Weekday, so the two types are interchangeable.
type Weekday = time.Weekday

// SabbathWindow is the pair of minute-of-day boundaries (Friday entry,
// Saturday exit) in effect for one calendar week.
type SabbathWindow struct {
	EntryMinute int
	ExitMinute  int
}

// Default Sabbath boundaries used when no calendar-week row is on file
// (SHABBAT_ENTER_DEFAULT / SHABBAT_EXIT_DEFAULT).
const (
	DefaultSabbathEntryMinute = 960
	DefaultSabbathExitMinute  = 1320
)

// IsSabbathMinute reports whether the given absolute minute-in-day, on the
// given civil date, falls inside the Sabbath window.
//
// minuteInDay may be >= MinutesPerDay, representing the early hours of the
// civil date following `date`; in that case the day-of-week used for the
// classification is the *next* day's, per spec.
//
// Rules: Friday before entry is non-Sabbath; Friday at/after entry is
// Sabbath; Saturday before exit is Sabbath; Saturday at/after exit is
// non-Sabbath. Every other day of week is never Sabbath.
func IsSabbathMinute(date time.Time, minuteInDay int, window SabbathWindow) bool {
	effectiveDate := date
	effectiveMinute := minuteInDay
	for effectiveMinute >= MinutesPerDay {
		effectiveDate = effectiveDate.AddDate(0, 0, 1)
		effectiveMinute -= MinutesPerDay
	}

	switch effectiveDate.Weekday() {
	case time.Friday:
		return effectiveMinute >= window.EntryMinute
	case time.Saturday:
		return effectiveMinute < window.ExitMinute
	default:
		return false
	}
}
