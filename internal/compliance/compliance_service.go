package compliance

import (
	"context"
	"time"

	"go-attendance/internal/calendar"
	calendarerrors "go-attendance/internal/calendar/errors"
	"go-attendance/internal/domain"
	"go-attendance/internal/employee"
	"go-attendance/internal/shared/apperror"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRangeDays    = 366
	teamConcurrency = 4
)

type EmployeeDirectory interface {
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error)
	FindActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error)
}

// SubmissionSource is the read side of EOD reports. Drafts never count as
// submitted.
type SubmissionSource interface {
	SubmittedDates(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]time.Time, error)
	EarliestSubmittedDate(ctx context.Context, companyID, employeeID string) (*time.Time, error)
}

//go:generate mockgen -source=compliance_service.go -destination=mock/compliance_service_mock.go -package=mock
type Service interface {
	MissingReports(ctx context.Context, companyID string, actor domain.Actor, employeeID string, q MissingReportsQuery, canReadAll bool) (MissingReportsResponse, error)
	TeamMissingReports(ctx context.Context, companyID string, q MissingReportsQuery) ([]MissingReportsResponse, error)
}

type service struct {
	employees    EmployeeDirectory
	submissions  SubmissionSource
	calendar     calendar.Policy
	lookbackDays int
	now          func() time.Time
	logger       *zap.Logger
}

// NewService counts over the trailing lookbackDays when no start is
// requested; a non-positive value means DefaultLookbackDays.
func NewService(employees EmployeeDirectory, submissions SubmissionSource, policy calendar.Policy, lookbackDays int, logger ...*zap.Logger) Service {
	return NewServiceWithClock(employees, submissions, policy, lookbackDays, time.Now, logger...)
}

func NewServiceWithClock(employees EmployeeDirectory, submissions SubmissionSource, policy calendar.Policy, lookbackDays int, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("compliance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("compliance.service")
	}
	if lookbackDays < 1 {
		lookbackDays = DefaultLookbackDays
	}
	return &service{
		employees:    employees,
		submissions:  submissions,
		calendar:     policy,
		lookbackDays: lookbackDays,
		now:          now,
		logger:       l,
	}
}

type requestedRange struct {
	start *time.Time
	end   *time.Time
}

// parseQuery rejects spans the caller asked for that exceed the cap. A start
// without an end is measured up to yesterday, where the count stops.
func parseQuery(q MissingReportsQuery, today time.Time) (requestedRange, error) {
	start, err := calendar.ParseOptionalDate(q.Start)
	if err != nil {
		return requestedRange{}, err
	}
	end, err := calendar.ParseOptionalDate(q.End)
	if err != nil {
		return requestedRange{}, err
	}
	if start != nil && end != nil {
		if end.Before(*start) {
			return requestedRange{}, calendarerrors.ErrInvalidDateRange
		}
		if calendar.DaysInclusive(*start, *end) > maxRangeDays {
			return requestedRange{}, calendarerrors.ErrDateRangeTooLong
		}
	}
	if start != nil && end == nil {
		yesterday := calendar.AddDays(today, -1)
		if !yesterday.Before(*start) && calendar.DaysInclusive(*start, yesterday) > maxRangeDays {
			return requestedRange{}, calendarerrors.ErrDateRangeTooLong
		}
	}
	return requestedRange{start: start, end: end}, nil
}

func (s *service) MissingReports(ctx context.Context, companyID string, actor domain.Actor, employeeID string, q MissingReportsQuery, canReadAll bool) (MissingReportsResponse, error) {
	employeeID = actor.TargetEmployee(employeeID)
	if !canReadAll && !actor.CanActFor(employeeID) {
		return MissingReportsResponse{}, apperror.ErrForbidden
	}

	today := calendar.Today(s.now())
	req, err := parseQuery(q, today)
	if err != nil {
		return MissingReportsResponse{}, err
	}

	emp, err := s.employees.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		return MissingReportsResponse{}, err
	}

	return s.countFor(ctx, companyID, *emp, req, today)
}

func (s *service) TeamMissingReports(ctx context.Context, companyID string, q MissingReportsQuery) ([]MissingReportsResponse, error) {
	today := calendar.Today(s.now())
	req, err := parseQuery(q, today)
	if err != nil {
		return nil, err
	}

	employees, err := s.employees.FindActiveByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("load active employees failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	out := make([]MissingReportsResponse, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(teamConcurrency)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			resp, err := s.countFor(gctx, companyID, emp, req, today)
			if err != nil {
				return err
			}
			out[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("team missing reports computed",
		zap.String("company_id", companyID),
		zap.Int("employees", len(employees)),
	)
	return out, nil
}

func (s *service) countFor(ctx context.Context, companyID string, emp employee.Employee, req requestedRange, today time.Time) (MissingReportsResponse, error) {
	employeeID := emp.ID.String()
	resp := MissingReportsResponse{
		EmployeeID:   employeeID,
		FullName:     emp.FullName,
		MissingDates: []string{},
	}

	earliest, err := s.submissions.EarliestSubmittedDate(ctx, companyID, employeeID)
	if err != nil {
		s.logger.Error("load earliest submission failed", zap.String("employee_id", employeeID), zap.Error(err))
		return MissingReportsResponse{}, err
	}

	rng := resolveRange(req.start, req.end, emp.HireDate, earliest, today, s.lookbackDays)
	if rng.Empty {
		return resp, nil
	}
	// Only a configured lookback longer than the cap gets here.
	if calendar.DaysInclusive(rng.Start, rng.End) > maxRangeDays {
		rng.Start = calendar.AddDays(rng.End, -(maxRangeDays - 1))
	}

	snap, err := s.calendar.Snapshot(ctx, companyID, employeeID, rng.Start, rng.End)
	if err != nil {
		return MissingReportsResponse{}, err
	}
	submitted, err := s.submissions.SubmittedDates(ctx, companyID, employeeID, rng.Start, rng.End)
	if err != nil {
		s.logger.Error("load submitted dates failed", zap.String("employee_id", employeeID), zap.Error(err))
		return MissingReportsResponse{}, err
	}

	missing := MissingDates(rng.Start, rng.End, today, snap.IsWorkingDay, submitted)

	start := calendar.FormatDate(rng.Start)
	end := calendar.FormatDate(rng.End)
	resp.Start = &start
	resp.End = &end
	resp.Missing = len(missing)
	for _, d := range missing {
		resp.MissingDates = append(resp.MissingDates, calendar.FormatDate(d))
	}
	return resp, nil
}
