package remotework

import (
	"time"

	"go-attendance/internal/calendar"
	remoteworkerrors "go-attendance/internal/remotework/errors"
)

// MaxWindowDays is the longest window, counting both ends.
const MaxWindowDays = 7

// ResolveWindowBounds applies the default end (start + 6 days) and rejects
// reversed or overlong windows.
func ResolveWindowBounds(start time.Time, end *time.Time) (calendar.Period, error) {
	s := calendar.Normalize(start)
	e := calendar.AddDays(s, MaxWindowDays-1)
	if end != nil {
		e = calendar.Normalize(*end)
	}

	if e.Before(s) {
		return calendar.Period{}, remoteworkerrors.ErrWindowEndBeforeStart
	}
	if calendar.DaysInclusive(s, e) > MaxWindowDays {
		return calendar.Period{}, remoteworkerrors.ErrWindowTooLong
	}
	return calendar.Period{Start: s, End: e}, nil
}

func lockKey(employeeID string) string {
	return "remote_work:" + employeeID
}
