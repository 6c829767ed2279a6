package eodreport

import (
	"time"

	"go-attendance/internal/calendar"
	"go-attendance/internal/settings"
)

// EffectiveDeadline is the last instant a report for reportDate counts as on
// time: the configured time of day, to the end of that minute, moved forward
// by the grace days. Grace is at least one day and weekends are not skipped.
func EffectiveDeadline(reportDate time.Time, p settings.SubmissionPolicy) time.Time {
	d := calendar.Normalize(reportDate)
	grace := p.GraceDays
	if grace < 1 {
		grace = 1
	}
	return time.Date(
		d.Year(), d.Month(), d.Day()+grace,
		p.DeadlineHour, p.DeadlineMinute, 59, int(999*time.Millisecond),
		time.UTC,
	)
}

func IsLate(reportDate, submittedAt time.Time, p settings.SubmissionPolicy) bool {
	return submittedAt.After(EffectiveDeadline(reportDate, p))
}

// OwnerEditDeadline is measured from the submission itself, not the report
// date. Zero grace days means no edits once submitted.
func OwnerEditDeadline(submittedAt time.Time, p settings.SubmissionPolicy) time.Time {
	return submittedAt.UTC().AddDate(0, 0, p.GraceDays)
}

// CanOwnerEdit reports whether the owner may still change a report. Drafts
// are always editable.
func CanOwnerEdit(submittedAt *time.Time, now time.Time, p settings.SubmissionPolicy) bool {
	if submittedAt == nil {
		return true
	}
	return !now.After(OwnerEditDeadline(*submittedAt, p))
}
