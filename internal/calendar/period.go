package calendar

import (
	"strings"
	"time"

	calendarerrors "go-attendance/internal/calendar/errors"
)

type Frequency string

const (
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(strings.ToUpper(strings.TrimSpace(s))) {
	case FrequencyWeekly:
		return FrequencyWeekly, nil
	case FrequencyMonthly:
		return FrequencyMonthly, nil
	default:
		return "", calendarerrors.ErrInvalidFrequency
	}
}

// Period is an inclusive range of calendar days.
type Period struct {
	Start time.Time
	End   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	p := Period{Start: Normalize(start), End: Normalize(end)}
	if p.End.Before(p.Start) {
		return Period{}, calendarerrors.ErrInvalidDateRange
	}
	return p, nil
}

func (p Period) Contains(day time.Time) bool {
	d := Normalize(day)
	return !d.Before(Normalize(p.Start)) && !d.After(Normalize(p.End))
}

func (p Period) Len() int {
	return DaysInclusive(p.Start, p.End)
}

// Days lists every day of the period in order.
func (p Period) Days() []time.Time {
	days := make([]time.Time, 0, p.Len())
	for d := Normalize(p.Start); !d.After(Normalize(p.End)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (p Period) String() string {
	return "[" + FormatDate(p.Start) + ", " + FormatDate(p.End) + "]"
}

// PeriodBounds returns the quota period containing date: Monday..Sunday for
// weekly, first..last day of the month for monthly.
func PeriodBounds(date time.Time, freq Frequency) Period {
	d := Normalize(date)
	switch freq {
	case FrequencyMonthly:
		start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Period{Start: start, End: start.AddDate(0, 1, -1)}
	default:
		// Go counts Sunday as 0; shift so Monday is the first day.
		offset := (int(d.Weekday()) + 6) % 7
		start := d.AddDate(0, 0, -offset)
		return Period{Start: start, End: start.AddDate(0, 0, 6)}
	}
}
