package domain

import (
	"fmt"
	"time"
)

// ScheduleStatus classifies how urgent a scheduled date is relative to today.
type ScheduleStatus string

// Schedule classifications. Unscheduled covers both "nothing planned" and
// "attempt concluded", depending on the record type.
const (
	ScheduleUnscheduled ScheduleStatus = "unscheduled"
	ScheduleOverdue     ScheduleStatus = "overdue"
	ScheduleDueSoon     ScheduleStatus = "due_soon"
	ScheduleUpcoming    ScheduleStatus = "upcoming"
)

// DueSoonWindowDays is the inclusive upper bound of the due-soon band.
const DueSoonWindowDays = 7

// midnight reconstructs the calendar day of t as a UTC midnight so that
// differences between two values are always whole multiples of 24h.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the whole number of calendar days from today until the
// target date. Both sides are truncated to their calendar day, so a target
// later the same day yields 0 and any earlier day yields a negative count.
// A nil or zero target returns nil.
func DaysUntil(target *time.Time, today time.Time) *int {
	if target == nil || target.IsZero() {
		return nil
	}
	days := int(midnight(*target).Sub(midnight(today)).Hours() / 24)
	return &days
}

// ClassifySchedule maps a day count to its urgency band. A nil count means
// there is nothing scheduled.
func ClassifySchedule(days *int) ScheduleStatus {
	switch {
	case days == nil:
		return ScheduleUnscheduled
	case *days < 0:
		return ScheduleOverdue
	case *days <= DueSoonWindowDays:
		return ScheduleDueSoon
	default:
		return ScheduleUpcoming
	}
}

// HealthStatus classifies a health record by its next scheduled date. Records
// without one are unscheduled (the event is complete).
func HealthStatus(rec HealthRecord, today time.Time) ScheduleStatus {
	return ClassifySchedule(DaysUntil(rec.NextScheduledDate, today))
}

// BreedingStatus classifies a breeding record by its expected due date.
// A concluded attempt (successful or unsuccessful) is never urgent,
// regardless of its due date.
func BreedingStatus(rec BreedingRecord, today time.Time) ScheduleStatus {
	if rec.SuccessStatus != BreedingPending {
		return ScheduleUnscheduled
	}
	return ClassifySchedule(DaysUntil(rec.ExpectedDueDate, today))
}

// Age is an approximate age broken into display units. Months are 30 days and
// years are 365 days; the approximation is deliberate and matches how ages
// are quoted on the farm, not the civil calendar.
type Age struct {
	Years  int
	Months int
	Days   int
}

// AgeAt computes the approximate age of something born at birth, as of now.
// A birth date in the future yields the zero Age.
func AgeAt(birth, now time.Time) Age {
	days := int(midnight(now).Sub(midnight(birth)).Hours() / 24)
	if days < 0 {
		return Age{}
	}
	switch {
	case days < 30:
		return Age{Days: days}
	case days < 365:
		return Age{Months: days / 30}
	default:
		return Age{Years: days / 365, Months: (days % 365) / 30}
	}
}

// String renders the age in its most significant units, e.g. "3 days",
// "2 months", "1 year" or "1 year, 2 months".
func (a Age) String() string {
	switch {
	case a.Years > 0 && a.Months > 0:
		return fmt.Sprintf("%s, %s", plural(a.Years, "year"), plural(a.Months, "month"))
	case a.Years > 0:
		return plural(a.Years, "year")
	case a.Months > 0:
		return plural(a.Months, "month")
	default:
		return plural(a.Days, "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
