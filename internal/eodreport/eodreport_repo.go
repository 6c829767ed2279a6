package eodreport

import (
	"context"
	"database/sql"
	"time"

	"go-attendance/internal/shared/gormtx"
	"go-attendance/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	EmployeeID string
	Start      *time.Time
	End        *time.Time
}

//go:generate mockgen -source=eodreport_repo.go -destination=mock/eodreport_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *EodReport) error
	Update(ctx context.Context, r *EodReport) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*EodReport, error)
	FindByIDAndCompanyForUpdate(ctx context.Context, companyID, id string) (*EodReport, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]EodReport, error)
	SubmittedDates(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]time.Time, error)
	EarliestSubmittedDate(ctx context.Context, companyID, employeeID string) (*time.Time, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rep *EodReport) error {
	return gormtx.Conn(ctx, r.db, r.tx).Create(rep).Error
}

func (r *repository) Update(ctx context.Context, rep *EodReport) error {
	return gormtx.Conn(ctx, r.db, r.tx).Save(rep).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*EodReport, error) {
	var rep EodReport
	err := gormtx.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		First(&rep, "id = ?", id).Error
	return &rep, err
}

func (r *repository) FindByIDAndCompanyForUpdate(ctx context.Context, companyID, id string) (*EodReport, error) {
	var rep EodReport
	err := gormtx.Conn(ctx, r.db, r.tx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&rep, "id = ?", id).Error
	return &rep, err
}

func (r *repository) List(ctx context.Context, companyID string, filter ListFilter) ([]EodReport, error) {
	q := gormtx.Conn(ctx, r.db, r.tx).Scopes(tenant.Scope(companyID))
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Start != nil {
		q = q.Where("report_date >= ?", *filter.Start)
	}
	if filter.End != nil {
		q = q.Where("report_date <= ?", *filter.End)
	}

	var rows []EodReport
	err := q.Order("report_date DESC, created_at DESC").Find(&rows).Error
	return rows, err
}

// SubmittedDates returns the report dates in [start, end] that have been
// submitted. Drafts do not count.
func (r *repository) SubmittedDates(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := gormtx.Conn(ctx, r.db, r.tx).
		Model(&EodReport{}).
		Scopes(tenant.OwnedBy(companyID, employeeID)).
		Where("submitted_at IS NOT NULL").
		Where("report_date BETWEEN ? AND ?", start, end).
		Order("report_date ASC").
		Pluck("report_date", &dates).Error
	return dates, err
}

func (r *repository) EarliestSubmittedDate(ctx context.Context, companyID, employeeID string) (*time.Time, error) {
	var dates []time.Time
	err := gormtx.Conn(ctx, r.db, r.tx).
		Model(&EodReport{}).
		Scopes(tenant.OwnedBy(companyID, employeeID)).
		Where("submitted_at IS NOT NULL").
		Order("report_date ASC").
		Limit(1).
		Pluck("report_date", &dates).Error
	if err != nil || len(dates) == 0 {
		return nil, err
	}
	return &dates[0], nil
}
