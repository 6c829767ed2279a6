package compliance

import (
	"time"

	"go-attendance/internal/calendar"
)

// DefaultLookbackDays is the trailing window used when no start is requested.
const DefaultLookbackDays = 30

// Range is the span a missing report count walks. Empty means there is
// nothing to count, e.g. a person with no hire date and no submissions.
type Range struct {
	Start time.Time
	End   time.Time
	Empty bool
}

// ResolveRange picks the span to count. The start is the latest of the
// requested start (default today-30), the hire date and the earliest
// submission. The end is the requested end capped at yesterday; today is
// never counted because its deadline has not passed.
func ResolveRange(requestedStart, requestedEnd, hireDate, earliestSubmission *time.Time, today time.Time) Range {
	return resolveRange(requestedStart, requestedEnd, hireDate, earliestSubmission, today, DefaultLookbackDays)
}

func resolveRange(requestedStart, requestedEnd, hireDate, earliestSubmission *time.Time, today time.Time, lookbackDays int) Range {
	today = calendar.Normalize(today)
	if hireDate == nil && earliestSubmission == nil {
		return Range{Empty: true}
	}

	start := calendar.AddDays(today, -lookbackDays)
	if requestedStart != nil {
		start = calendar.Normalize(*requestedStart)
	}
	if hireDate != nil {
		start = calendar.MaxDate(start, calendar.Normalize(*hireDate))
	}
	if earliestSubmission != nil {
		start = calendar.MaxDate(start, calendar.Normalize(*earliestSubmission))
	}

	yesterday := calendar.AddDays(today, -1)
	end := yesterday
	if requestedEnd != nil {
		end = calendar.MinDate(calendar.Normalize(*requestedEnd), yesterday)
	}

	if end.Before(start) {
		return Range{Start: start, End: end, Empty: true}
	}
	return Range{Start: start, End: end}
}

// MissingDates walks [start, min(end, today-1)] and returns the working days
// that have no submission, in order.
func MissingDates(start, end, today time.Time, isWorkingDay func(time.Time) bool, submitted []time.Time) []time.Time {
	start = calendar.Normalize(start)
	end = calendar.MinDate(calendar.Normalize(end), calendar.AddDays(today, -1))

	done := make(map[time.Time]struct{}, len(submitted))
	for _, d := range submitted {
		done[calendar.Normalize(d)] = struct{}{}
	}

	var missing []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !isWorkingDay(d) {
			continue
		}
		if _, ok := done[d]; ok {
			continue
		}
		missing = append(missing, d)
	}
	return missing
}

func CountMissing(start, end, today time.Time, isWorkingDay func(time.Time) bool, submitted []time.Time) int {
	return len(MissingDates(start, end, today, isWorkingDay, submitted))
}
