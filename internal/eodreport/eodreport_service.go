package eodreport

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-attendance/internal/bootstrap"
	"go-attendance/internal/calendar"
	"go-attendance/internal/domain"
	"go-attendance/internal/employee"
	eodreporterrors "go-attendance/internal/eodreport/errors"
	"go-attendance/internal/settings"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/dberr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeLookup resolves the person a report belongs to.
type EmployeeLookup interface {
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error)
}

// PolicyProvider returns the company's submission policy.
type PolicyProvider interface {
	Get(ctx context.Context, companyID string) (settings.Settings, error)
}

//go:generate mockgen -source=eodreport_service.go -destination=mock/eodreport_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, companyID string, actor domain.Actor, req SubmitEodReportRequest) (EodReportResponse, error)
	Update(ctx context.Context, companyID string, actor domain.Actor, id string, req UpdateEodReportRequest) (EodReportResponse, error)
	GetByID(ctx context.Context, companyID string, actor domain.Actor, id string, canReadAll bool) (EodReportResponse, error)
	List(ctx context.Context, companyID string, actor domain.Actor, q ListEodReportsQuery, canReadAll bool) ([]EodReportResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeLookup
	calendar  calendar.Policy
	policies  PolicyProvider
	now       func() time.Time
	logger    *zap.Logger
	audit     bootstrap.AuditLogger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeLookup,
	calendarPolicy calendar.Policy,
	policies PolicyProvider,
	audit bootstrap.AuditLogger,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithClock(db, repo, employees, calendarPolicy, policies, audit, time.Now, logger...)
}

// NewServiceWithClock is NewService with an explicit source of "now".
func NewServiceWithClock(
	db *sql.DB,
	repo Repository,
	employees EmployeeLookup,
	calendarPolicy calendar.Policy,
	policies PolicyProvider,
	audit bootstrap.AuditLogger,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("eodreport.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("eodreport.service")
	}
	if audit == nil {
		audit = bootstrap.NewStdoutAuditLogger()
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		calendar:  calendarPolicy,
		policies:  policies,
		now:       now,
		logger:    l,
		audit:     audit,
	}
}

func (s *service) Submit(ctx context.Context, companyID string, actor domain.Actor, req SubmitEodReportRequest) (EodReportResponse, error) {
	employeeID := actor.TargetEmployee(req.EmployeeID)
	if !actor.CanActFor(employeeID) {
		return EodReportResponse{}, apperror.ErrForbidden
	}
	if !actor.Privileged && (req.SubmittedAt != nil || req.IsLate != nil) {
		return EodReportResponse{}, eodreporterrors.ErrOverrideNotAllowed
	}

	reportDate, err := calendar.ParseDate(req.ReportDate)
	if err != nil {
		return EodReportResponse{}, err
	}

	now := s.now().UTC()
	if reportDate.After(calendar.Today(now)) {
		return EodReportResponse{}, eodreporterrors.ErrFutureReportDate
	}

	emp, err := s.employees.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		return EodReportResponse{}, err
	}

	working, err := s.calendar.IsWorkingDay(ctx, companyID, employeeID, reportDate)
	if err != nil {
		return EodReportResponse{}, err
	}
	if !working && !actor.Privileged {
		return EodReportResponse{}, eodreporterrors.ErrNonWorkingDay
	}

	st, err := s.policies.Get(ctx, companyID)
	if err != nil {
		return EodReportResponse{}, err
	}
	policy := st.SubmissionPolicy()

	report := &EodReport{
		ID:         uuid.New(),
		CompanyID:  emp.CompanyID,
		EmployeeID: emp.ID,
		ReportDate: reportDate,
		Tasks:      mapTasks(req.Tasks),
		Notes:      req.Notes,
	}
	if actorUUID, err := uuid.Parse(actor.UserID); err == nil {
		report.UpdatedBy = &actorUUID
	}

	if req.submitNow() {
		report.SubmittedAt = &now
		report.IsLate = IsLate(reportDate, now, policy)
	}
	if err := applyOverride(report, req.SubmittedAt, req.IsLate); err != nil {
		return EodReportResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EodReportResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, report); err != nil {
		if dberr.IsUniqueViolation(err) {
			return EodReportResponse{}, eodreporterrors.ErrReportAlreadyExists
		}
		s.logger.Error("create eod report failed",
			zap.String("employee_id", employeeID),
			zap.String("report_date", req.ReportDate),
			zap.Error(err),
		)
		return EodReportResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EodReportResponse{}, err
	}

	s.logger.Info("eod report stored",
		zap.String("report_id", report.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("report_date", calendar.FormatDate(reportDate)),
		zap.Bool("draft", report.IsDraft()),
		zap.Bool("is_late", report.IsLate),
	)
	if report.Overridden || (!working && actor.Privileged) {
		s.auditOverride(ctx, actor, report, "submit")
	}

	return mapToResponse(*report, EffectiveDeadline(reportDate, policy)), nil
}

func (s *service) Update(ctx context.Context, companyID string, actor domain.Actor, id string, req UpdateEodReportRequest) (EodReportResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EodReportResponse{}, eodreporterrors.ErrInvalidReportID
	}
	if !actor.Privileged && (req.SubmittedAt != nil || req.IsLate != nil) {
		return EodReportResponse{}, eodreporterrors.ErrOverrideNotAllowed
	}

	st, err := s.policies.Get(ctx, companyID)
	if err != nil {
		return EodReportResponse{}, err
	}
	policy := st.SubmissionPolicy()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EodReportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	report, err := qtx.FindByIDAndCompanyForUpdate(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EodReportResponse{}, eodreporterrors.ErrReportNotFound
		}
		return EodReportResponse{}, err
	}
	if !actor.CanActFor(report.EmployeeID.String()) {
		return EodReportResponse{}, apperror.ErrForbidden
	}

	now := s.now().UTC()
	if !actor.Privileged && !CanOwnerEdit(report.SubmittedAt, now, policy) {
		return EodReportResponse{}, eodreporterrors.ErrEditWindowElapsed
	}

	if req.Tasks != nil {
		report.Tasks = mapTasks(req.Tasks)
	}
	if req.Notes != nil {
		report.Notes = req.Notes
	}

	// A draft's first submission decides lateness unless HR already set it.
	// Submitted reports keep theirs.
	if req.SubmitNow && report.IsDraft() {
		report.SubmittedAt = &now
		if !report.Overridden {
			report.IsLate = IsLate(report.ReportDate, now, policy)
		}
	}
	if err := applyOverride(report, req.SubmittedAt, req.IsLate); err != nil {
		return EodReportResponse{}, err
	}
	if actorUUID, err := uuid.Parse(actor.UserID); err == nil {
		report.UpdatedBy = &actorUUID
	}

	if err := qtx.Update(ctx, report); err != nil {
		s.logger.Error("update eod report failed", zap.String("report_id", id), zap.Error(err))
		return EodReportResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return EodReportResponse{}, err
	}

	s.logger.Info("eod report updated",
		zap.String("report_id", id),
		zap.Bool("draft", report.IsDraft()),
		zap.Bool("is_late", report.IsLate),
	)
	if req.SubmittedAt != nil || req.IsLate != nil {
		s.auditOverride(ctx, actor, report, "update")
	}

	return mapToResponse(*report, EffectiveDeadline(report.ReportDate, policy)), nil
}

func (s *service) GetByID(ctx context.Context, companyID string, actor domain.Actor, id string, canReadAll bool) (EodReportResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EodReportResponse{}, eodreporterrors.ErrInvalidReportID
	}

	report, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EodReportResponse{}, eodreporterrors.ErrReportNotFound
		}
		return EodReportResponse{}, err
	}
	if !canReadAll && !actor.CanActFor(report.EmployeeID.String()) {
		return EodReportResponse{}, eodreporterrors.ErrReportNotFound
	}

	st, err := s.policies.Get(ctx, companyID)
	if err != nil {
		return EodReportResponse{}, err
	}
	return mapToResponse(*report, EffectiveDeadline(report.ReportDate, st.SubmissionPolicy())), nil
}

func (s *service) List(ctx context.Context, companyID string, actor domain.Actor, q ListEodReportsQuery, canReadAll bool) ([]EodReportResponse, error) {
	filter := ListFilter{EmployeeID: q.EmployeeID}
	if !canReadAll && !actor.Privileged {
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
		s.logger.Error("list eod reports failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}

	st, err := s.policies.Get(ctx, companyID)
	if err != nil {
		return nil, err
	}
	policy := st.SubmissionPolicy()

	res := make([]EodReportResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r, EffectiveDeadline(r.ReportDate, policy))
	}
	return res, nil
}

func (s *service) auditOverride(ctx context.Context, actor domain.Actor, r *EodReport, op string) {
	meta := map[string]any{
		"op":            op,
		"actor_user_id": actor.UserID,
		"actor_role":    actor.Role,
		"report_id":     r.ID.String(),
		"employee_id":   r.EmployeeID.String(),
		"report_date":   calendar.FormatDate(r.ReportDate),
		"is_late":       r.IsLate,
	}
	if r.SubmittedAt != nil {
		meta["submitted_at"] = r.SubmittedAt.UTC().Format(time.RFC3339Nano)
	}
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "EOD_REPORT_OVERRIDE",
		Message: "privileged change to an eod report",
		Meta:    meta,
	})
}

// applyOverride stores privileged corrections verbatim. Once overridden the
// values are never recomputed.
func applyOverride(r *EodReport, submittedAt *string, isLate *bool) error {
	if submittedAt != nil {
		at, err := time.Parse(time.RFC3339Nano, *submittedAt)
		if err != nil {
			return eodreporterrors.ErrInvalidSubmittedAt
		}
		at = at.UTC()
		r.SubmittedAt = &at
		r.Overridden = true
	}
	if isLate != nil {
		r.IsLate = *isLate
		r.Overridden = true
	}
	return nil
}
