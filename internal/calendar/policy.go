package calendar

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LeaveSource yields the approved leave intervals of one person that overlap
// [start, end]. Pending and rejected leave never reaches the policy.
type LeaveSource interface {
	ApprovedIntervals(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]Period, error)
}

// Policy decides whether a day is a working day for a person. Errors are
// infrastructure failures only; every date has an answer.
//
//go:generate mockgen -source=policy.go -destination=mock/policy_mock.go -package=mock
type Policy interface {
	IsWorkingDay(ctx context.Context, companyID, employeeID string, day time.Time) (bool, error)
	Snapshot(ctx context.Context, companyID, employeeID string, start, end time.Time) (*Snapshot, error)
}

type policy struct {
	holidays HolidayRepository
	leaves   LeaveSource
	region   string
	logger   *zap.Logger
}

func NewPolicy(holidays HolidayRepository, leaves LeaveSource, region string, logger ...*zap.Logger) Policy {
	l := zap.L().Named("calendar.policy")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("calendar.policy")
	}
	return &policy{holidays: holidays, leaves: leaves, region: region, logger: l}
}

func (p *policy) IsWorkingDay(ctx context.Context, companyID, employeeID string, day time.Time) (bool, error) {
	d := Normalize(day)
	if IsWeekend(d) {
		return false, nil
	}

	snap, err := p.Snapshot(ctx, companyID, employeeID, d, d)
	if err != nil {
		return false, err
	}
	return snap.IsWorkingDay(d), nil
}

func (p *policy) Snapshot(ctx context.Context, companyID, employeeID string, start, end time.Time) (*Snapshot, error) {
	period, err := NewPeriod(start, end)
	if err != nil {
		return nil, err
	}

	holidays, err := p.holidays.FindBetween(ctx, companyID, p.region, period.Start, period.End)
	if err != nil {
		p.logger.Error("load holidays failed",
			zap.String("company_id", companyID),
			zap.String("region", p.region),
			zap.Error(err),
		)
		return nil, err
	}

	var leaves []Period
	if employeeID != "" && p.leaves != nil {
		leaves, err = p.leaves.ApprovedIntervals(ctx, companyID, employeeID, period.Start, period.End)
		if err != nil {
			p.logger.Error("load approved leave failed",
				zap.String("company_id", companyID),
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	return NewSnapshot(period, holidays, leaves), nil
}

// Snapshot holds the holiday set and approved leave of one person for a
// range, so a range walk answers every day without further queries.
type Snapshot struct {
	period   Period
	holidays map[string]struct{}
	leaves   []Period
}

func NewSnapshot(period Period, holidays []Holiday, leaves []Period) *Snapshot {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[FormatDate(Normalize(h.Date))] = struct{}{}
	}
	return &Snapshot{period: period, holidays: set, leaves: leaves}
}

func (s *Snapshot) Period() Period {
	return s.period
}

// IsWorkingDay answers for days inside the snapshot period. Days outside it
// are judged on the weekday alone because nothing was loaded for them.
func (s *Snapshot) IsWorkingDay(day time.Time) bool {
	d := Normalize(day)
	_, holiday := s.holidays[FormatDate(d)]
	return isWorkingDay(d, holiday, s.leaves)
}

// WorkingDays lists the working days of the snapshot period in order.
func (s *Snapshot) WorkingDays() []time.Time {
	out := make([]time.Time, 0, s.period.Len())
	for _, d := range s.period.Days() {
		if s.IsWorkingDay(d) {
			out = append(out, d)
		}
	}
	return out
}

func isWorkingDay(day time.Time, holiday bool, leaves []Period) bool {
	if IsWeekend(day) || holiday {
		return false
	}
	for _, l := range leaves {
		if l.Contains(day) {
			return false
		}
	}
	return true
}
