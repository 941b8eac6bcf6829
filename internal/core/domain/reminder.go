package domain

import "time"

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// ComposeReminder merges a date-only part and a time-only part into the
// single datetime literal stored in the reminderTime column.
//
//   - both parts: date + "T" + time + ":00"
//   - date only:  midnight of that date
//   - time only:  the date of the stored reminder when one exists,
//     otherwise today, combined with the new time
//   - neither:    nil (caller decides between "clear" and "untouched")
func ComposeReminder(datePart, timePart string, existing *time.Time, now time.Time) *string {
	switch {
	case datePart != "" && timePart != "":
		value := datePart + "T" + timePart + ":00"
		return &value
	case datePart != "":
		value := datePart + "T00:00:00"
		return &value
	case timePart != "":
		day := now.Format(DateLayout)
		if existing != nil {
			day = existing.Format(DateLayout)
		}
		value := day + "T" + timePart + ":00"
		return &value
	default:
		return nil
	}
}
