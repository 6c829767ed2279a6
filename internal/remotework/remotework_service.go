package remotework

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"go-attendance/internal/calendar"
	"go-attendance/internal/domain"
	"go-attendance/internal/employee"
	remoteworkerrors "go-attendance/internal/remotework/errors"
	"go-attendance/internal/settings"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/counter"
	"go-attendance/internal/shared/dberr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const notifyTimeout = 10 * time.Second

// WindowStore owns the window state and the quota settings.
type WindowStore interface {
	Get(ctx context.Context, companyID string) (settings.Settings, error)
	OpenRemoteWindow(ctx context.Context, companyID, actorID string, window calendar.Period) (settings.Settings, error)
	CloseRemoteWindow(ctx context.Context, companyID, actorID string) (settings.Settings, error)
	HardCap() int
}

type EmployeeLookup interface {
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error)
}

//go:generate mockgen -source=remotework_service.go -destination=mock/remotework_service_mock.go -package=mock
type Service interface {
	GetWindow(ctx context.Context, companyID string) (WindowResponse, error)
	OpenWindow(ctx context.Context, companyID string, actor domain.Actor, req OpenWindowRequest) (WindowResponse, error)
	CloseWindow(ctx context.Context, companyID string, actor domain.Actor) (WindowResponse, error)
	LogDay(ctx context.Context, companyID string, actor domain.Actor, req LogDayRequest) (RemoteWorkLogResponse, error)
	SetPreferences(ctx context.Context, companyID string, actor domain.Actor, req SetPreferencesRequest) (PreferencesResponse, error)
	ListLogs(ctx context.Context, companyID string, actor domain.Actor, q ListLogsQuery) ([]RemoteWorkLogResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	counters  counter.Repository
	windows   WindowStore
	calendar  calendar.Policy
	employees EmployeeLookup
	notifier  Notifier
	now       func() time.Time
	logger    *zap.Logger
}

type Deps struct {
	DB        *sql.DB
	Repo      Repository
	Counters  counter.Repository
	Windows   WindowStore
	Calendar  calendar.Policy
	Employees EmployeeLookup
	Notifier  Notifier
	Now       func() time.Time
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("remotework.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("remotework.service")
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		db:        deps.DB,
		repo:      deps.Repo,
		counters:  deps.Counters,
		windows:   deps.Windows,
		calendar:  deps.Calendar,
		employees: deps.Employees,
		notifier:  deps.Notifier,
		now:       now,
		logger:    l,
	}
}

func (s *service) today() time.Time {
	return calendar.Today(s.now().UTC())
}

func (s *service) GetWindow(ctx context.Context, companyID string) (WindowResponse, error) {
	st, err := s.windows.Get(ctx, companyID)
	if err != nil {
		return WindowResponse{}, err
	}
	return mapWindowResponse(st.RemoteWindow(), s.windows.HardCap(), s.today()), nil
}

func (s *service) OpenWindow(ctx context.Context, companyID string, actor domain.Actor, req OpenWindowRequest) (WindowResponse, error) {
	start, err := calendar.ParseDate(req.StartDate)
	if err != nil {
		return WindowResponse{}, err
	}
	var end *time.Time
	if req.EndDate != nil {
		end, err = calendar.ParseOptionalDate(*req.EndDate)
		if err != nil {
			return WindowResponse{}, err
		}
	}

	bounds, err := ResolveWindowBounds(start, end)
	if err != nil {
		return WindowResponse{}, err
	}

	st, err := s.windows.OpenRemoteWindow(ctx, companyID, actor.UserID, bounds)
	if err != nil {
		s.logger.Error("open remote window failed", zap.String("company_id", companyID), zap.Error(err))
		return WindowResponse{}, err
	}

	s.logger.Info("remote window opened",
		zap.String("company_id", companyID),
		zap.String("window", bounds.String()),
		zap.String("opened_by", actor.UserID),
	)
	// Announce the limit LogDay enforces, not the stored one.
	announced := st.RemoteWindow()
	announced.Limit = announced.EffectiveLimit(s.windows.HardCap())
	s.notifyOpened(ctx, companyID, actor.UserID, announced, bounds)

	return mapWindowResponse(st.RemoteWindow(), s.windows.HardCap(), s.today()), nil
}

// notifyOpened runs detached from the request. Failures are logged and never
// reach the caller.
func (s *service) notifyOpened(ctx context.Context, companyID, openedBy string, window settings.RemoteWindow, bounds calendar.Period) {
	if s.notifier == nil {
		return
	}
	detached := context.WithoutCancel(ctx)
	go func() {
		nctx, cancel := context.WithTimeout(detached, notifyTimeout)
		defer cancel()
		if err := s.notifier.RemoteWindowOpened(nctx, companyID, openedBy, window, bounds); err != nil {
			s.logger.Warn("remote window notification failed",
				zap.String("company_id", companyID),
				zap.String("window", bounds.String()),
				zap.Error(err),
			)
		}
	}()
}

func (s *service) CloseWindow(ctx context.Context, companyID string, actor domain.Actor) (WindowResponse, error) {
	st, err := s.windows.CloseRemoteWindow(ctx, companyID, actor.UserID)
	if err != nil {
		return WindowResponse{}, err
	}
	s.logger.Info("remote window closed", zap.String("company_id", companyID), zap.String("closed_by", actor.UserID))
	return mapWindowResponse(st.RemoteWindow(), s.windows.HardCap(), s.today()), nil
}

// openWindow returns the window and its bounds when it is open.
func (s *service) openWindow(ctx context.Context, companyID string) (settings.RemoteWindow, calendar.Period, error) {
	st, err := s.windows.Get(ctx, companyID)
	if err != nil {
		return settings.RemoteWindow{}, calendar.Period{}, err
	}
	w := st.RemoteWindow()
	bounds, ok := w.Bounds()
	if !w.IsOpen || !ok {
		return settings.RemoteWindow{}, calendar.Period{}, remoteworkerrors.ErrWindowClosed
	}
	return w, bounds, nil
}

func (s *service) resolveEmployee(ctx context.Context, companyID string, actor domain.Actor, requested string) (*employee.Employee, error) {
	employeeID := actor.TargetEmployee(requested)
	if !actor.CanActFor(employeeID) {
		return nil, apperror.ErrForbidden
	}
	return s.employees.FindByIDAndCompany(ctx, companyID, employeeID)
}

func (s *service) LogDay(ctx context.Context, companyID string, actor domain.Actor, req LogDayRequest) (RemoteWorkLogResponse, error) {
	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		return RemoteWorkLogResponse{}, err
	}

	emp, err := s.resolveEmployee(ctx, companyID, actor, req.EmployeeID)
	if err != nil {
		return RemoteWorkLogResponse{}, err
	}
	employeeID := emp.ID.String()

	window, bounds, err := s.openWindow(ctx, companyID)
	if err != nil {
		return RemoteWorkLogResponse{}, err
	}
	if !bounds.Contains(date) {
		return RemoteWorkLogResponse{}, remoteworkerrors.ErrDateOutsideWindow
	}

	working, err := s.calendar.IsWorkingDay(ctx, companyID, employeeID, date)
	if err != nil {
		return RemoteWorkLogResponse{}, err
	}
	if !working && !actor.Privileged {
		return RemoteWorkLogResponse{}, remoteworkerrors.ErrNonWorkingDay
	}

	limit := window.EffectiveLimit(s.windows.HardCap())
	period := calendar.PeriodBounds(date, window.Frequency)

	log := &RemoteWorkLog{
		ID:         uuid.New(),
		CompanyID:  emp.CompanyID,
		EmployeeID: emp.ID,
		WorkDate:   date,
		Reason:     req.Reason,
	}
	if actorUUID, err := uuid.Parse(actor.UserID); err == nil {
		log.CreatedBy = &actorUUID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RemoteWorkLogResponse{}, err
	}
	defer tx.Rollback()

	// Serializes quota checks for this person until commit.
	if _, err := s.counters.WithTx(tx).Next(ctx, companyID, lockKey(employeeID)); err != nil {
		s.logger.Error("acquire remote work lock failed", zap.String("employee_id", employeeID), zap.Error(err))
		return RemoteWorkLogResponse{}, err
	}

	qtx := s.repo.WithTx(tx)

	// Insert first so a duplicate date reports the conflict, then count
	// including the new row.
	if err := qtx.Create(ctx, log); err != nil {
		if dberr.IsUniqueViolation(err) {
			return RemoteWorkLogResponse{}, remoteworkerrors.ErrRemoteLogExists
		}
		return RemoteWorkLogResponse{}, err
	}

	used, err := qtx.CountBetween(ctx, companyID, employeeID, period.Start, period.End)
	if err != nil {
		return RemoteWorkLogResponse{}, err
	}
	if used > int64(limit) {
		s.logger.Info("remote work quota reached",
			zap.String("employee_id", employeeID),
			zap.String("period", period.String()),
			zap.Int("limit", limit),
		)
		return RemoteWorkLogResponse{}, remoteworkerrors.ErrQuotaReached
	}

	if err := tx.Commit(); err != nil {
		return RemoteWorkLogResponse{}, err
	}

	s.logger.Info("remote work day logged",
		zap.String("employee_id", employeeID),
		zap.String("date", calendar.FormatDate(date)),
		zap.Int64("used", used),
		zap.Int("limit", limit),
	)
	return mapLogResponse(*log), nil
}

func (s *service) SetPreferences(ctx context.Context, companyID string, actor domain.Actor, req SetPreferencesRequest) (PreferencesResponse, error) {
	emp, err := s.resolveEmployee(ctx, companyID, actor, req.EmployeeID)
	if err != nil {
		return PreferencesResponse{}, err
	}
	employeeID := emp.ID.String()

	window, bounds, err := s.openWindow(ctx, companyID)
	if err != nil {
		return PreferencesResponse{}, err
	}

	dates, err := dedupeDates(req.Dates)
	if err != nil {
		return PreferencesResponse{}, err
	}
	for _, d := range dates {
		if !bounds.Contains(d) {
			return PreferencesResponse{}, remoteworkerrors.ErrDateOutsideWindow
		}
	}

	limit := window.EffectiveLimit(s.windows.HardCap())
	if len(dates) > limit {
		return PreferencesResponse{}, remoteworkerrors.ErrTooManyPreferences
	}

	if len(dates) > 0 && !actor.Privileged {
		snap, err := s.calendar.Snapshot(ctx, companyID, employeeID, bounds.Start, bounds.End)
		if err != nil {
			return PreferencesResponse{}, err
		}
		for _, d := range dates {
			if !snap.IsWorkingDay(d) {
				return PreferencesResponse{}, remoteworkerrors.ErrNonWorkingDay
			}
		}
	}

	var createdBy *uuid.UUID
	if actorUUID, err := uuid.Parse(actor.UserID); err == nil {
		createdBy = &actorUUID
	}
	logs := make([]RemoteWorkLog, len(dates))
	for i, d := range dates {
		logs[i] = RemoteWorkLog{
			ID:         uuid.New(),
			CompanyID:  emp.CompanyID,
			EmployeeID: emp.ID,
			WorkDate:   d,
			Reason:     req.Reason,
			CreatedBy:  createdBy,
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PreferencesResponse{}, err
	}
	defer tx.Rollback()

	if _, err := s.counters.WithTx(tx).Next(ctx, companyID, lockKey(employeeID)); err != nil {
		s.logger.Error("acquire remote work lock failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PreferencesResponse{}, err
	}

	qtx := s.repo.WithTx(tx)

	removed, err := qtx.DeleteBetween(ctx, companyID, employeeID, bounds.Start, bounds.End)
	if err != nil {
		return PreferencesResponse{}, err
	}

	// A window can straddle two periods, and each period may already hold
	// logs from outside the window.
	for _, group := range groupByPeriod(dates, window.Frequency) {
		outside, err := qtx.CountBetween(ctx, companyID, employeeID, group.period.Start, group.period.End)
		if err != nil {
			return PreferencesResponse{}, err
		}
		if outside+int64(group.count) > int64(limit) {
			return PreferencesResponse{}, remoteworkerrors.ErrQuotaReached
		}
	}

	if err := qtx.CreateBatch(ctx, logs); err != nil {
		if dberr.IsUniqueViolation(err) {
			return PreferencesResponse{}, remoteworkerrors.ErrRemoteLogExists
		}
		return PreferencesResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PreferencesResponse{}, err
	}

	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = calendar.FormatDate(d)
	}

	s.logger.Info("remote work preferences replaced",
		zap.String("employee_id", employeeID),
		zap.String("window", bounds.String()),
		zap.Strings("dates", out),
		zap.Int64("removed", removed),
	)

	return PreferencesResponse{
		EmployeeID:  employeeID,
		WindowStart: calendar.FormatDate(bounds.Start),
		WindowEnd:   calendar.FormatDate(bounds.End),
		Dates:       out,
		Removed:     removed,
	}, nil
}

func (s *service) ListLogs(ctx context.Context, companyID string, actor domain.Actor, q ListLogsQuery) ([]RemoteWorkLogResponse, error) {
	filter := ListFilter{EmployeeID: q.EmployeeID}
	if !actor.Privileged {
		if q.EmployeeID != "" && q.EmployeeID != actor.EmployeeID {
			return nil, apperror.ErrForbidden
		}
		filter.EmployeeID = actor.EmployeeID
	}

	start, err := calendar.ParseOptionalDate(q.Start)
	if err != nil {
		return nil, err
	}
	end, err := calendar.ParseOptionalDate(q.End)
	if err != nil {
		return nil, err
	}
	filter.Start, filter.End = start, end

	rows, err := s.repo.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	res := make([]RemoteWorkLogResponse, len(rows))
	for i, r := range rows {
		res[i] = mapLogResponse(r)
	}
	return res, nil
}

// dedupeDates parses and de-duplicates dates, returning them sorted.
func dedupeDates(raw []string) ([]time.Time, error) {
	seen := make(map[time.Time]struct{}, len(raw))
	out := make([]time.Time, 0, len(raw))
	for _, r := range raw {
		d, err := calendar.ParseDate(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

type periodGroup struct {
	period calendar.Period
	count  int
}

func groupByPeriod(dates []time.Time, freq calendar.Frequency) []periodGroup {
	var groups []periodGroup
	for _, d := range dates {
		p := calendar.PeriodBounds(d, freq)
		if n := len(groups); n > 0 && groups[n-1].period.Start.Equal(p.Start) {
			groups[n-1].count++
			continue
		}
		groups = append(groups, periodGroup{period: p, count: 1})
	}
	return groups
}
